package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"genai-prompt/internal/service"
	"genai-prompt/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func TestNewMoviesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMovieService := mocks.NewMockMovieService(ctrl)
	handler := NewMoviesHandler(mockMovieService)

	if handler == nil {
		t.Fatal("NewMoviesHandler() returned nil")
	}
	if handler.movieService != mockMovieService {
		t.Error("NewMoviesHandler() movieService not set correctly")
	}
}

func TestMoviesHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reply := service.MovieReply{
		"category": "action",
		"year":     float64(2018),
		"title":    "X",
		"producer": "Y",
		"actors":   []any{"A", "B"},
		"summary":  "Z",
	}

	tests := []struct {
		name       string
		method     string
		target     string
		mockSetup  func(*mocks.MockMovieService)
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:   "explicit parameters",
			method: http.MethodGet,
			target: "/movies?category=action&year=2018",
			mockSetup: func(m *mocks.MockMovieService) {
				m.EXPECT().
					Recommend(gomock.Any(), service.MovieQuery{Category: "action", Year: 2018}).
					Return(reply, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: map[string]any{
				"category": "action",
				"year":     float64(2018),
				"title":    "X",
				"producer": "Y",
				"actors":   []any{"A", "B"},
				"summary":  "Z",
			},
		},
		{
			name:   "defaults when parameters absent",
			method: http.MethodGet,
			target: "/movies",
			mockSetup: func(m *mocks.MockMovieService) {
				m.EXPECT().
					Recommend(gomock.Any(), service.MovieQuery{Category: "action", Year: 2022}).
					Return(service.MovieReply{"title": "Top Gun: Maverick"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"title": "Top Gun: Maverick"},
		},
		{
			name:   "defaults when parameters empty",
			method: http.MethodGet,
			target: "/movies?category=&year=",
			mockSetup: func(m *mocks.MockMovieService) {
				m.EXPECT().
					Recommend(gomock.Any(), service.MovieQuery{Category: "action", Year: 2022}).
					Return(service.MovieReply{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{},
		},
		{
			name:   "arbitrary values accepted",
			method: http.MethodGet,
			target: "/movies?category=space%20westerns&year=-3",
			mockSetup: func(m *mocks.MockMovieService) {
				m.EXPECT().
					Recommend(gomock.Any(), service.MovieQuery{Category: "space westerns", Year: -3}).
					Return(service.MovieReply{"title": "?"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"title": "?"},
		},
		{
			name:   "non integer year",
			method: http.MethodGet,
			target: "/movies?year=last",
			mockSetup: func(m *mocks.MockMovieService) {
				// No calls expected
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "method not allowed",
			method: http.MethodPost,
			target: "/movies",
			mockSetup: func(m *mocks.MockMovieService) {
				// No calls expected
			},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:   "malformed model reply",
			method: http.MethodGet,
			target: "/movies",
			mockSetup: func(m *mocks.MockMovieService) {
				m.EXPECT().
					Recommend(gomock.Any(), gomock.Any()).
					Return(nil, service.ErrMalformedReply)
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "external service failure",
			method: http.MethodGet,
			target: "/movies",
			mockSetup: func(m *mocks.MockMovieService) {
				m.EXPECT().
					Recommend(gomock.Any(), gomock.Any()).
					Return(nil, service.ExternalError(errors.New("rate limited"), "failed"))
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "unexpected failure",
			method: http.MethodGet,
			target: "/movies",
			mockSetup: func(m *mocks.MockMovieService) {
				m.EXPECT().
					Recommend(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMovieService := mocks.NewMockMovieService(ctrl)
			tt.mockSetup(mockMovieService)

			handler := NewMoviesHandler(mockMovieService)

			req := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if w.Header().Get("Content-Type") != "application/json" {
				t.Errorf("ServeHTTP() Content-Type = %q, want application/json", w.Header().Get("Content-Type"))
			}
			if tt.wantBody == nil {
				return
			}

			var got map[string]any
			if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
				t.Fatalf("ServeHTTP() invalid JSON: %v", err)
			}
			if !reflect.DeepEqual(got, tt.wantBody) {
				t.Errorf("ServeHTTP() body = %v, want %v", got, tt.wantBody)
			}
		})
	}
}
