package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backlogapi/internal/entity"
	"backlogapi/internal/platform/igdb"
	"backlogapi/internal/store/mocks"
	"backlogapi/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_RandomBacklog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLibrary := mocks.NewMockLibraryRepository(ctrl)
	mockTokens := mocks.NewMockPushTokenRepository(ctrl)

	t.Run("success - resolved metadata attached", func(t *testing.T) {
		mockLibrary.EXPECT().
			RandomBacklogged(gomock.Any(), testUser.ID).
			Return(entity.UserGame{ID: "row-1", IGDBGameID: 42, Status: entity.StatusBacklogged}, nil)

		resolver := &stubResolver{details: json.RawMessage(`{"id":42,"name":"Outer Wilds","rating":93.5,"cover":{"url":"//img/co1.jpg"}}`)}
		handler := NewNotificationHandler(mockLibrary, mockTokens, resolver)

		w := httptest.NewRecorder()
		handler.RandomBacklog(w, authedRequest(http.MethodGet, "/notifications/backlog/random", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Game struct {
					IGDBGameID int64           `json:"igdb_game_id"`
					Name       string          `json:"name"`
					CoverURL   string          `json:"cover_url"`
					Details    json.RawMessage `json:"game_details"`
				} `json:"game"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(42), resp.Data.Game.IGDBGameID)
		assert.Equal(t, "Outer Wilds", resp.Data.Game.Name)
		assert.Equal(t, "//img/co1.jpg", resp.Data.Game.CoverURL)
	})

	t.Run("success - metadata failure leaves details null", func(t *testing.T) {
		mockLibrary.EXPECT().
			RandomBacklogged(gomock.Any(), testUser.ID).
			Return(entity.UserGame{ID: "row-1", IGDBGameID: 42, Status: entity.StatusBacklogged}, nil)

		handler := NewNotificationHandler(mockLibrary, mockTokens, &stubResolver{err: igdb.ErrUnavailable})

		w := httptest.NewRecorder()
		handler.RandomBacklog(w, authedRequest(http.MethodGet, "/notifications/backlog/random", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"game_details":null`)
	})

	t.Run("not found - empty backlog", func(t *testing.T) {
		mockLibrary.EXPECT().
			RandomBacklogged(gomock.Any(), testUser.ID).
			Return(entity.UserGame{}, usecase.ErrNotFound)

		handler := NewNotificationHandler(mockLibrary, mockTokens, &stubResolver{})

		w := httptest.NewRecorder()
		handler.RandomBacklog(w, authedRequest(http.MethodGet, "/notifications/backlog/random", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNotificationHandler_SaveToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLibrary := mocks.NewMockLibraryRepository(ctrl)
	mockTokens := mocks.NewMockPushTokenRepository(ctrl)
	handler := NewNotificationHandler(mockLibrary, mockTokens, &stubResolver{})

	tests := []struct {
		name           string
		body           string
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"fcm_token":"fcm-token-abcdef-123456"}`,
			setupMock: func() {
				mockTokens.EXPECT().
					Save(gomock.Any(), testUser.ID, "fcm-token-abcdef-123456").
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - missing token",
			body:           `{}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - token too short",
			body:           `{"fcm_token":"abc"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - invalid JSON",
			body:           `not json`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			handler.SaveToken(w, authedRequest(http.MethodPost, "/notifications/token", []byte(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestNotificationHandler_DeleteToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLibrary := mocks.NewMockLibraryRepository(ctrl)
	mockTokens := mocks.NewMockPushTokenRepository(ctrl)
	handler := NewNotificationHandler(mockLibrary, mockTokens, &stubResolver{})

	mockTokens.EXPECT().Delete(gomock.Any(), testUser.ID).Return(nil)

	w := httptest.NewRecorder()
	handler.DeleteToken(w, authedRequest(http.MethodDelete, "/notifications/token", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
