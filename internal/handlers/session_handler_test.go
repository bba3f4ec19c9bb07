// internal/handlers/session_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocab_trainer/internal/handlers"
	"vocab_trainer/internal/model"
	"vocab_trainer/internal/service/mocks"
)

func newSessionRouter(mockService *mocks.MockSessionService) chi.Router {
	h := handlers.NewSessionHandler(mockService, nil)
	router := chi.NewRouter()
	router.Post("/api/v1/sessions", h.PrepareSession)
	return router
}

func TestSessionHandler_PrepareSession(t *testing.T) {
	session := &model.Session{
		Words: []model.SessionWord{
			{WordID: uuid.New(), Text: "first", Translation: "一つ目", SourceLang: "en", TargetLang: "ja", Due: true},
			{WordID: uuid.New(), Text: "second", Translation: "二つ目", SourceLang: "en", TargetLang: "ja"},
		},
		Counts: model.SessionCounts{Total: 5, Due: 1, Selected: 2},
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockSessionService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: セッション組み立て成功",
			body: model.PrepareSessionRequest{Limit: 2},
			setupMock: func(m *mocks.MockSessionService) {
				m.On("BuildSession", anyCtx, 2, "").Return(session, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "正常系: 言語フィルタ付き",
			body: model.PrepareSessionRequest{Limit: 10, Language: "en"},
			setupMock: func(m *mocks.MockSessionService) {
				filtered := &model.Session{Words: session.Words, Counts: session.Counts, Language: "en"}
				m.On("BuildSession", anyCtx, 10, "en").Return(filtered, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "正常系: 語彙が空なら空のセッション",
			body: model.PrepareSessionRequest{Limit: 10},
			setupMock: func(m *mocks.MockSessionService) {
				empty := &model.Session{Words: []model.SessionWord{}, Counts: model.SessionCounts{}}
				m.On("BuildSession", anyCtx, 10, "").Return(empty, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "異常系: 指定言語の語彙なしは422",
			body: model.PrepareSessionRequest{Limit: 10, Language: "fr"},
			setupMock: func(m *mocks.MockSessionService) {
				m.On("BuildSession", anyCtx, 10, "fr").
					Return(nil, model.NewAppError("NO_WORDS_FOR_LANGUAGE", "この言語の語彙が登録されていません。", "language", model.ErrNoWordsForLanguage)).Once()
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "NO_WORDS_FOR_LANGUAGE",
		},
		{
			name: "異常系: ストレージ障害は503",
			body: model.PrepareSessionRequest{Limit: 10},
			setupMock: func(m *mocks.MockSessionService) {
				m.On("BuildSession", anyCtx, 10, "").
					Return(nil, model.NewAppError("STORAGE_ERROR", "セッション候補の取得に失敗しました。", "", model.ErrStorage)).Once()
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   "STORAGE_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewMockSessionService(t)
			tc.setupMock(mockService)
			router := newSessionRouter(mockService)

			req := createRequest(t, "POST", "/api/v1/sessions", tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedCode != "" {
				assertErrorResponse(t, rr, tc.expectedCode)
			} else {
				var resp model.Session
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, resp.Counts.Selected, len(resp.Words))
			}
		})
	}
}
