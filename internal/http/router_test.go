package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"

	"genai-prompt/internal/metrics"
	"genai-prompt/internal/service"
	"genai-prompt/internal/service/mocks"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockChatService, *mocks.MockMovieService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockChatService := mocks.NewMockChatService(ctrl)
	mockMovieService := mocks.NewMockMovieService(ctrl)

	reg := prometheus.NewRegistry()
	deps := &Deps{
		ChatService:    mockChatService,
		MovieService:   mockMovieService,
		LLMPinger:      okPinger{},
		Metrics:        metrics.New(reg),
		MetricsHandler: metrics.Handler(reg),
	}
	return NewRouter(deps), mockChatService, mockMovieService
}

func TestNewRouter(t *testing.T) {
	router, _, _ := newTestRouter(t)
	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	router, mockChatService, mockMovieService := newTestRouter(t)

	mockChatService.EXPECT().
		ProcessChat(gomock.Any(), service.ChatRequest{Message: "hi"}).
		Return(service.ChatResponse{Reply: "hello"}, nil)
	mockMovieService.EXPECT().
		Recommend(gomock.Any(), service.MovieQuery{Category: "action", Year: 2022}).
		Return(service.MovieReply{"title": "X"}, nil)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{
			name:       "GET /chat",
			method:     http.MethodGet,
			path:       "/chat?message=hi",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET /movies",
			method:     http.MethodGet,
			path:       "/movies",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST /chat method not allowed",
			method:     http.MethodPost,
			path:       "/chat",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "POST /movies method not allowed",
			method:     http.MethodPost,
			path:       "/movies",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "GET /health",
			method:     http.MethodGet,
			path:       "/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET /metrics",
			method:     http.MethodGet,
			path:       "/metrics",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/chat",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	router, mockChatService, _ := newTestRouter(t)

	mockChatService.EXPECT().
		ProcessChat(gomock.Any(), gomock.Any()).
		Return(service.ChatResponse{Reply: "ok"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/chat?message=x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Router should apply CORS middleware")
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("Router should apply LoggerMiddleware")
	}
}

func TestRouter_MetricsCountRequests(t *testing.T) {
	router, mockChatService, _ := newTestRouter(t)

	mockChatService.EXPECT().
		ProcessChat(gomock.Any(), gomock.Any()).
		Return(service.ChatResponse{Reply: "ok"}, nil)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/chat?message=x", nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if !strings.Contains(w.Body.String(), `genai_http_requests_total{method="GET",route="/chat",status="200"} 1`) {
		t.Errorf("metrics output missing /chat request:\n%s", w.Body.String())
	}
}
