package prompt

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"genai-prompt/internal/llm"
)

// MoviesTemplate is the catalog name of the movie recommendation template.
const MoviesTemplate = "movies"

// ErrTemplateNotFound is returned by Catalog.Get for unknown names.
var ErrTemplateNotFound = errors.New("template not found")

//go:embed templates.yaml
var defaultTemplates []byte

// Template is a named prompt with the generation options it is always sent with.
type Template struct {
	Name        string   `yaml:"-"`
	Description string   `yaml:"description"`
	Model       string   `yaml:"model"`
	Temperature float64  `yaml:"temperature"`
	MaxTokens   int      `yaml:"max_tokens"`
	Role        string   `yaml:"role"`
	Text        string   `yaml:"text"`
	Fields      []string `yaml:"fields"`
}

// Options returns the template's generation options.
func (t Template) Options() llm.ChatOptions {
	return llm.ChatOptions{
		Model:       t.Model,
		Temperature: t.Temperature,
		MaxTokens:   t.MaxTokens,
		Role:        t.Role,
	}
}

// Render fills the template's placeholders from bindings.
func (t Template) Render(bindings map[string]any) (string, error) {
	return Render(t.Text, bindings)
}

// Catalog is a read-only set of templates keyed by name.
type Catalog struct {
	templates map[string]Template
}

type catalogFile struct {
	Templates map[string]Template `yaml:"templates"`
}

// Load parses the templates compiled into the binary.
func Load() (*Catalog, error) {
	return Parse(defaultTemplates)
}

// Parse builds a catalog from YAML. Every template must have text and valid
// generation options.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("no templates defined")
	}

	c := &Catalog{templates: make(map[string]Template, len(file.Templates))}
	for name, tmpl := range file.Templates {
		tmpl.Name = name
		if tmpl.Text == "" {
			return nil, fmt.Errorf("template %s: text is required", name)
		}
		if err := tmpl.Options().Validate(); err != nil {
			return nil, fmt.Errorf("template %s: %w", name, err)
		}
		c.templates[name] = tmpl
	}
	return c, nil
}

// Get returns the template registered under name.
func (c *Catalog) Get(name string) (Template, error) {
	tmpl, ok := c.templates[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return tmpl, nil
}

// Names lists the catalog's template names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
