package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backlogapi/internal/auth"
	"backlogapi/internal/entity"
	"backlogapi/internal/httpx"
	"backlogapi/internal/store/mocks"
	"backlogapi/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

var testUser = entity.User{
	ID:        "test-user-id-123",
	Username:  "testuser",
	Email:     "test@example.com",
	Password:  "hashedpassword",
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

func TestUserHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockUserRepository(ctrl)
	handler := NewUserHandler(mockRepo, "test-secret")

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "success - valid registration",
			body: map[string]string{
				"email":    "new@example.com",
				"username": "newuser",
				"password": "Password123",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					GetByEmail(gomock.Any(), "new@example.com").
					Return(entity.User{}, usecase.ErrNotFound)
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad request - invalid JSON",
			body:           "invalid json",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "bad request - missing email",
			body: map[string]string{
				"username": "newuser",
				"password": "Password123",
			},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "bad request - password too weak",
			body: map[string]string{
				"email":    "new@example.com",
				"username": "newuser",
				"password": "weak",
			},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "conflict - email already exists",
			body: map[string]string{
				"email":    "existing@example.com",
				"username": "newuser",
				"password": "Password123",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					GetByEmail(gomock.Any(), "existing@example.com").
					Return(testUser, nil)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
			if bodyMap, ok := tt.body.(map[string]string); ok {
				body, _ := json.Marshal(bodyMap)
				r = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
				r.Header.Set("Content-Type", "application/json")
			}

			handler.Register(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUserHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockUserRepository(ctrl)
	handler := NewUserHandler(mockRepo, "test-secret")

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "success - valid credentials",
			body: map[string]string{
				"email":    "test@example.com",
				"password": "password123",
			},
			setupMock: func() {
				hashedPassword, _ := auth.HashPassword("password123")
				user := testUser
				user.Password = hashedPassword
				mockRepo.EXPECT().
					GetByEmail(gomock.Any(), "test@example.com").
					Return(user, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - invalid JSON",
			body:           "invalid json",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unauthorized - user not found",
			body: map[string]string{
				"email":    "notfound@example.com",
				"password": "password123",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					GetByEmail(gomock.Any(), "notfound@example.com").
					Return(entity.User{}, usecase.ErrNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unauthorized - wrong password",
			body: map[string]string{
				"email":    "test@example.com",
				"password": "wrongpassword",
			},
			setupMock: func() {
				hashedPassword, _ := auth.HashPassword("password123")
				user := testUser
				user.Password = hashedPassword
				mockRepo.EXPECT().
					GetByEmail(gomock.Any(), "test@example.com").
					Return(user, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
			if bodyMap, ok := tt.body.(map[string]string); ok {
				body, _ := json.Marshal(bodyMap)
				r = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
				r.Header.Set("Content-Type", "application/json")
			}

			handler.Login(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), "token")
			}
		})
	}
}

func TestUserHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockUserRepository(ctrl)
	handler := NewUserHandler(mockRepo, "test-secret")

	tests := []struct {
		name           string
		setupMock      func() context.Context
		expectedStatus int
	}{
		{
			name: "success - authenticated user",
			setupMock: func() context.Context {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), testUser.ID).
					Return(testUser, nil)
				return httpx.ContextWithUserID(context.Background(), testUser.ID)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found - user deleted",
			setupMock: func() context.Context {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), "gone").
					Return(entity.User{}, usecase.ErrNotFound)
				return httpx.ContextWithUserID(context.Background(), "gone")
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/auth/me", nil).WithContext(ctx)

			handler.Me(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
