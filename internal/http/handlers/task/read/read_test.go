package read

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/task-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/task-manager/internal/models"
	"github.com/magabrotheeeer/task-manager/internal/storage"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Read(ctx context.Context, id int, userUID string) (*models.Task, error) {
	args := m.Called(ctx, id, userUID)
	if res := args.Get(0); res != nil {
		return res.(*models.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		url            string
		ctxUserUID     any
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "успешное чтение задачи",
			url:        "/tasks/123",
			ctxUserUID: "user-uid-123",
			setupMock: func(m *MockService) {
				task := &models.Task{
					ID:      123,
					Title:   "Buy milk",
					UserUID: "user-uid-123",
				}
				m.On("Read", mock.Anything, 123, "user-uid-123").Return(task, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"Buy milk"`,
		},
		{
			name:           "некорректный id в URL",
			url:            "/tasks/abc",
			ctxUserUID:     "user-uid-123",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode id from url"}`,
		},
		{
			name:           "нет пользователя в контексте",
			url:            "/tasks/123",
			ctxUserUID:     nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:       "задача не найдена",
			url:        "/tasks/777",
			ctxUserUID: "user-uid-123",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, 777, "user-uid-123").Return(nil, storage.ErrTaskNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"task not found"}`,
		},
		{
			name:       "ошибка сервиса чтения",
			url:        "/tasks/777",
			ctxUserUID: "user-uid-123",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, 777, "user-uid-123").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not read task"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			// Устанавливаем URL params с помощью роутера chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", strings.TrimPrefix(tt.url, "/tasks/"))
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.ctxUserUID != nil {
				ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.ctxUserUID)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
