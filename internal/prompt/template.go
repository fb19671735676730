package prompt

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrMissingBinding is matched by every *MissingBindingError.
var ErrMissingBinding = errors.New("missing template binding")

// MissingBindingError reports a placeholder that had no value at render time.
type MissingBindingError struct {
	Name string
}

func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("missing template binding for placeholder {%s}", e.Name)
}

// Is lets errors.Is match ErrMissingBinding.
func (e *MissingBindingError) Is(target error) bool {
	return target == ErrMissingBinding
}

// placeholderPattern matches {name} where name is an identifier. Braces around
// anything else (JSON examples, punctuation) are left alone.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Render replaces every {name} placeholder in template with fmt.Sprint of its
// binding. Values are inserted verbatim. Bindings not referenced by the
// template are ignored; a referenced placeholder without a binding fails.
func Render(template string, bindings map[string]any) (string, error) {
	for _, name := range Placeholders(template) {
		if _, ok := bindings[name]; !ok {
			return "", &MissingBindingError{Name: name}
		}
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		return fmt.Sprint(bindings[name])
	}), nil
}

// Placeholders returns the distinct placeholder names in template, in order of
// first appearance.
func Placeholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
