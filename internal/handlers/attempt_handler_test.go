//go:build !integration

// internal/handlers/attempt_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_vocab_mastery/internal/handlers"
	"go_vocab_mastery/internal/model"
	svc_mocks "go_vocab_mastery/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAttemptHandler_PostAttempt(t *testing.T) {
	learnerID := uuid.New()
	wordID := uuid.New()
	occurredAt := time.Now().Add(-time.Minute).UTC()

	validPayload := map[string]interface{}{
		"word_id":             wordID.String(),
		"occurred_at":         occurredAt.Format(time.RFC3339Nano),
		"was_correct":         true,
		"response_latency_ms": 800,
		"mode":                "learn",
	}

	successResult := &model.AttemptResultResponse{
		AttemptID:    uuid.New(),
		Applied:      true,
		Gem:          &model.GemAward{AwardID: uuid.New(), Rarity: model.RarityRare, Points: 50},
		MasteryLevel: 0,
		Stage:        string(model.StageNew),
	}

	tests := []struct {
		name         string
		withLearner  bool
		payload      interface{}
		setupMock    func(m *svc_mocks.AttemptService)
		expectedCode int
		check        func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			name:        "正常系: 解答が受理される",
			withLearner: true,
			payload:     validPayload,
			setupMock: func(m *svc_mocks.AttemptService) {
				m.On("SubmitAttempt", mock.Anything, learnerID, mock.AnythingOfType("*model.PostAttemptRequest")).
					Return(successResult, nil).Once()
			},
			expectedCode: http.StatusCreated,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var resp model.AttemptResultResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Applied)
				require.NotNil(t, resp.Gem)
				assert.Equal(t, model.RarityRare, resp.Gem.Rarity)
			},
		},
		{
			name:        "正常系: 古い記録はapplied=falseで返る",
			withLearner: true,
			payload:     validPayload,
			setupMock: func(m *svc_mocks.AttemptService) {
				stale := &model.AttemptResultResponse{
					AttemptID:    uuid.New(),
					Applied:      false,
					MasteryLevel: 3,
					Stage:        string(model.StageReview),
				}
				m.On("SubmitAttempt", mock.Anything, learnerID, mock.AnythingOfType("*model.PostAttemptRequest")).
					Return(stale, nil).Once()
			},
			expectedCode: http.StatusCreated,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var resp model.AttemptResultResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.False(t, resp.Applied)
				assert.Nil(t, resp.Gem)
			},
		},
		{
			name:        "異常系: 学習者IDがコンテキストにない",
			withLearner: false,
			payload:     validPayload,
			setupMock: func(m *svc_mocks.AttemptService) {
				// サービスは呼ばれないはず
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "異常系: ボディが不正なJSON",
			withLearner:  true,
			payload:      `{"word_id": `,
			setupMock:    func(m *svc_mocks.AttemptService) {},
			expectedCode: http.StatusBadRequest,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				errResp := decodeErrorResponse(t, rr.Body)
				assert.Equal(t, "INVALID_REQUEST_BODY", errResp.Error.Code)
			},
		},
		{
			name:        "異常系: 必須フィールドの欠落",
			withLearner: true,
			payload: map[string]interface{}{
				"occurred_at": occurredAt.Format(time.RFC3339Nano),
				"was_correct": true,
			},
			setupMock:    func(m *svc_mocks.AttemptService) {},
			expectedCode: http.StatusBadRequest,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				errResp := decodeErrorResponse(t, rr.Body)
				assert.Equal(t, "VALIDATION_ERROR", errResp.Error.Code)
			},
		},
		{
			name:        "異常系: サービスが検証エラーを返す",
			withLearner: true,
			payload:     validPayload,
			setupMock: func(m *svc_mocks.AttemptService) {
				appErr := model.NewAppError("VALIDATION_ERROR", "発生時刻が未来を指しています。", "occurred_at", model.ErrInvalidInput)
				m.On("SubmitAttempt", mock.Anything, learnerID, mock.AnythingOfType("*model.PostAttemptRequest")).
					Return(nil, appErr).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:        "異常系: 単語が存在しない",
			withLearner: true,
			payload:     validPayload,
			setupMock: func(m *svc_mocks.AttemptService) {
				appErr := model.NewAppError("NOT_FOUND", "単語が見つかりません。", "word_id", model.ErrNotFound)
				m.On("SubmitAttempt", mock.Anything, learnerID, mock.AnythingOfType("*model.PostAttemptRequest")).
					Return(nil, appErr).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svc_mocks.AttemptService)
			tt.setupMock(mockService)
			handler := handlers.NewAttemptHandler(mockService, newTestLogger())

			req := newJsonRequest(t, http.MethodPost, "/api/v1/attempts", tt.payload)
			if tt.withLearner {
				req = req.WithContext(contextWithLearner(req.Context(), learnerID))
			}
			rr := httptest.NewRecorder()

			handler.PostAttempt(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code, "body: %s", rr.Body.String())
			if tt.check != nil {
				tt.check(t, rr)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestAttemptHandler_GetGems(t *testing.T) {
	learnerID := uuid.New()

	tests := []struct {
		name         string
		withLearner  bool
		setupMock    func(m *svc_mocks.AttemptService)
		expectedCode int
		check        func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			name:        "正常系: 獲得ジェムの一覧を返す",
			withLearner: true,
			setupMock: func(m *svc_mocks.AttemptService) {
				awards := []*model.GemAward{
					{AwardID: uuid.New(), AttemptID: uuid.New(), WordID: uuid.New(), Rarity: model.RarityEpic, Points: 100},
					{AwardID: uuid.New(), AttemptID: uuid.New(), WordID: uuid.New(), Rarity: model.RarityCommon, Points: 10},
				}
				m.On("GetRecentGems", mock.Anything, learnerID).Return(awards, nil).Once()
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var resp []*model.GemAward
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				require.Len(t, resp, 2)
				assert.Equal(t, model.RarityEpic, resp[0].Rarity)
				assert.Equal(t, 100, resp[0].Points)
			},
		},
		{
			name:        "正常系: 獲得がなければ空のJSON配列を返す",
			withLearner: true,
			setupMock: func(m *svc_mocks.AttemptService) {
				m.On("GetRecentGems", mock.Anything, learnerID).Return([]*model.GemAward{}, nil).Once()
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.JSONEq(t, "[]", rr.Body.String())
			},
		},
		{
			name:        "異常系: 学習者IDがコンテキストにない",
			withLearner: false,
			setupMock: func(m *svc_mocks.AttemptService) {
				// サービスは呼ばれないはず
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:        "異常系: サービスがエラーを返す",
			withLearner: true,
			setupMock: func(m *svc_mocks.AttemptService) {
				appErr := model.NewAppError("INTERNAL_SERVER_ERROR", "報酬履歴の取得に失敗しました。", "", assert.AnError)
				m.On("GetRecentGems", mock.Anything, learnerID).Return(nil, appErr).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svc_mocks.AttemptService)
			tt.setupMock(mockService)
			handler := handlers.NewAttemptHandler(mockService, newTestLogger())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/gems", nil)
			if tt.withLearner {
				req = req.WithContext(contextWithLearner(req.Context(), learnerID))
			}
			rr := httptest.NewRecorder()

			handler.GetGems(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code, "body: %s", rr.Body.String())
			if tt.check != nil {
				tt.check(t, rr)
			}
			mockService.AssertExpectations(t)
		})
	}
}
