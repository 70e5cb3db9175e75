package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authservice "github.com/magabrotheeeer/task-manager/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, name, email, password string) (string, error) {
	args := m.Called(ctx, name, email, password)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	authMock := new(AuthServiceMock)
	logger := newNoopLogger()

	handler := New(logger, authMock)

	tests := []struct {
		name           string
		requestBody    interface{}
		mockUID        string
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantData       map[string]any
		wantError      string
		wantStatus     string
	}{
		{
			name:           "valid registration",
			requestBody:    Request{Name: "Ann", Email: "ann@example.com", Password: "password123"},
			mockUID:        "some-uuid-string",
			mockCalled:     true,
			wantStatusCode: http.StatusCreated,
			wantData: map[string]any{
				"uid": "some-uuid-string",
			},
			wantStatus: "OK",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
			wantStatus:     "Error",
		},
		{
			name:           "validation error - missing name",
			requestBody:    Request{Email: "ann@example.com", Password: "password123"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Name is a required field",
			wantStatus:     "Error",
		},
		{
			name:           "validation error - short password",
			requestBody:    Request{Name: "Ann", Email: "ann@example.com", Password: "123"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Password is too short",
			wantStatus:     "Error",
		},
		{
			name:           "email already taken",
			requestBody:    Request{Name: "Ann", Email: "ann@example.com", Password: "password123"},
			mockErr:        authservice.ErrEmailTaken,
			mockCalled:     true,
			wantStatusCode: http.StatusConflict,
			wantError:      "email already taken",
			wantStatus:     "Error",
		},
		{
			name:           "internal service error",
			requestBody:    Request{Name: "Ann", Email: "ann@example.com", Password: "password123"},
			mockErr:        errors.New("db error"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to register new user",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock.ExpectedCalls = nil
			authMock.Calls = nil

			if tt.mockCalled {
				body := tt.requestBody.(Request)
				authMock.On("Register", mock.Anything, body.Name, body.Email, body.Password).
					Return(tt.mockUID, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				errStr, ok := got["error"].(string)
				assert.True(t, ok)
				assert.Equal(t, tt.wantError, errStr)
			} else {
				assert.Nil(t, got["error"])
			}

			if tt.wantData != nil {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				for k, v := range tt.wantData {
					assert.Equal(t, v, data[k])
				}
			} else {
				assert.Nil(t, got["data"])
			}

			if tt.mockCalled {
				authMock.AssertExpectations(t)
			}
		})
	}
}
