//go:build !integration

// internal/handlers/word_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_vocab_mastery/internal/handlers"
	"go_vocab_mastery/internal/model"
	svc_mocks "go_vocab_mastery/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWordHandler_PostWord(t *testing.T) {
	createdWord := &model.Word{
		WordID:      uuid.New(),
		Term:        "manzana",
		Translation: "apple",
		Language:    "es",
		Category:    "food",
	}

	validPayload := map[string]interface{}{
		"term":        "manzana",
		"translation": "apple",
		"language":    "es",
		"category":    "food",
	}

	tests := []struct {
		name         string
		payload      interface{}
		setupMock    func(m *svc_mocks.WordService)
		expectedCode int
		expectedErr  string
	}{
		{
			name:    "正常系: 単語を作成して201",
			payload: validPayload,
			setupMock: func(m *svc_mocks.WordService) {
				m.On("CreateWord", mock.Anything, mock.AnythingOfType("*model.PostWordRequest")).
					Return(createdWord, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "異常系: 不正なJSONボディ",
			payload:      `{"term": "manzana",`,
			setupMock:    func(m *svc_mocks.WordService) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "INVALID_REQUEST_BODY",
		},
		{
			name:         "異常系: 必須フィールド欠落",
			payload:      map[string]interface{}{"term": "manzana"},
			setupMock:    func(m *svc_mocks.WordService) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION_ERROR",
		},
		{
			name:    "異常系: 同一言語内で語が重複",
			payload: validPayload,
			setupMock: func(m *svc_mocks.WordService) {
				m.On("CreateWord", mock.Anything, mock.AnythingOfType("*model.PostWordRequest")).
					Return(nil, model.NewAppError("CONFLICT", "同じ語が既に登録されています。", "term", model.ErrConflict)).Once()
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "CONFLICT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svc_mocks.WordService)
			tt.setupMock(mockService)
			handler := handlers.NewWordHandler(mockService, newTestLogger())

			req := newJsonRequest(t, http.MethodPost, "/api/v1/words", tt.payload)
			rr := httptest.NewRecorder()

			handler.PostWord(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code, "body: %s", rr.Body.String())
			if tt.expectedCode == http.StatusCreated {
				var got model.Word
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, createdWord.WordID, got.WordID)
				assert.Equal(t, "manzana", got.Term)
			}
			if tt.expectedErr != "" {
				errResp := decodeErrorResponse(t, rr.Body)
				assert.Equal(t, tt.expectedErr, errResp.Error.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestWordHandler_GetWords(t *testing.T) {
	words := []*model.Word{
		{WordID: uuid.New(), Term: "manzana", Translation: "apple", Language: "es"},
		{WordID: uuid.New(), Term: "pomme", Translation: "apple", Language: "fr"},
	}

	t.Run("正常系: 一覧を返す", func(t *testing.T) {
		mockService := new(svc_mocks.WordService)
		mockService.On("ListWords", mock.Anything, "", "").Return(words, nil).Once()
		handler := handlers.NewWordHandler(mockService, newTestLogger())

		req := newJsonRequest(t, http.MethodGet, "/api/v1/words", nil)
		rr := httptest.NewRecorder()

		handler.GetWords(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []*model.Word
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("正常系: 言語・カテゴリフィルタがサービスへ渡る", func(t *testing.T) {
		mockService := new(svc_mocks.WordService)
		mockService.On("ListWords", mock.Anything, "es", "food").Return(words[:1], nil).Once()
		handler := handlers.NewWordHandler(mockService, newTestLogger())

		req := newJsonRequest(t, http.MethodGet, "/api/v1/words?language=es&category=food", nil)
		rr := httptest.NewRecorder()

		handler.GetWords(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("正常系: 該当なしでも空配列を返す", func(t *testing.T) {
		mockService := new(svc_mocks.WordService)
		mockService.On("ListWords", mock.Anything, "", "").Return(nil, nil).Once()
		handler := handlers.NewWordHandler(mockService, newTestLogger())

		req := newJsonRequest(t, http.MethodGet, "/api/v1/words", nil)
		rr := httptest.NewRecorder()

		handler.GetWords(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
		mockService.AssertExpectations(t)
	})
}

func TestWordHandler_GetWord(t *testing.T) {
	wordID := uuid.New()
	word := &model.Word{WordID: wordID, Term: "manzana", Translation: "apple", Language: "es"}

	tests := []struct {
		name         string
		wordIDParam  string
		setupMock    func(m *svc_mocks.WordService)
		expectedCode int
	}{
		{
			name:        "正常系: 単語を取得",
			wordIDParam: wordID.String(),
			setupMock: func(m *svc_mocks.WordService) {
				m.On("GetWord", mock.Anything, wordID).Return(word, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "異常系: 単語IDがUUIDでない",
			wordIDParam:  "not-a-uuid",
			setupMock:    func(m *svc_mocks.WordService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:        "異常系: 単語が見つからない",
			wordIDParam: wordID.String(),
			setupMock: func(m *svc_mocks.WordService) {
				m.On("GetWord", mock.Anything, wordID).
					Return(nil, model.NewAppError("NOT_FOUND", "単語が見つかりません。", "", model.ErrNotFound)).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svc_mocks.WordService)
			tt.setupMock(mockService)
			handler := handlers.NewWordHandler(mockService, newTestLogger())

			req := newJsonRequest(t, http.MethodGet, "/api/v1/words/"+tt.wordIDParam, nil)
			req = req.WithContext(contextWithChiURLParam(req.Context(), "word_id", tt.wordIDParam))
			rr := httptest.NewRecorder()

			handler.GetWord(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code, "body: %s", rr.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}

func TestWordHandler_PatchWord(t *testing.T) {
	wordID := uuid.New()
	patched := &model.Word{WordID: wordID, Term: "manzana", Translation: "apple (fruit)", Language: "es"}

	t.Run("正常系: 部分更新して200", func(t *testing.T) {
		mockService := new(svc_mocks.WordService)
		mockService.On("PatchWord", mock.Anything, wordID, mock.AnythingOfType("*model.PatchWordRequest")).
			Return(patched, nil).Once()
		handler := handlers.NewWordHandler(mockService, newTestLogger())

		req := newJsonRequest(t, http.MethodPatch, "/api/v1/words/"+wordID.String(),
			map[string]interface{}{"translation": "apple (fruit)"})
		req = req.WithContext(contextWithChiURLParam(req.Context(), "word_id", wordID.String()))
		rr := httptest.NewRecorder()

		handler.PatchWord(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got model.Word
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "apple (fruit)", got.Translation)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 未知のフィールドを拒否", func(t *testing.T) {
		mockService := new(svc_mocks.WordService)
		handler := handlers.NewWordHandler(mockService, newTestLogger())

		req := newJsonRequest(t, http.MethodPatch, "/api/v1/words/"+wordID.String(),
			`{"unknown_field": "x"}`)
		req = req.WithContext(contextWithChiURLParam(req.Context(), "word_id", wordID.String()))
		rr := httptest.NewRecorder()

		handler.PatchWord(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errResp := decodeErrorResponse(t, rr.Body)
		assert.Equal(t, "INVALID_REQUEST_BODY", errResp.Error.Code)
		mockService.AssertNotCalled(t, "PatchWord", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWordHandler_PutWord(t *testing.T) {
	wordID := uuid.New()
	updated := &model.Word{WordID: wordID, Term: "manzana", Translation: "apple", Language: "es", Category: "fruit"}

	t.Run("正常系: 全体更新して200", func(t *testing.T) {
		mockService := new(svc_mocks.WordService)
		mockService.On("UpdateWord", mock.Anything, wordID, mock.AnythingOfType("*model.PutWordRequest")).
			Return(updated, nil).Once()
		handler := handlers.NewWordHandler(mockService, newTestLogger())

		req := newJsonRequest(t, http.MethodPut, "/api/v1/words/"+wordID.String(), map[string]interface{}{
			"term":        "manzana",
			"translation": "apple",
			"language":    "es",
			"category":    "fruit",
		})
		req = req.WithContext(contextWithChiURLParam(req.Context(), "word_id", wordID.String()))
		rr := httptest.NewRecorder()

		handler.PutWord(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "body: %s", rr.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 言語コードが短すぎる", func(t *testing.T) {
		mockService := new(svc_mocks.WordService)
		handler := handlers.NewWordHandler(mockService, newTestLogger())

		req := newJsonRequest(t, http.MethodPut, "/api/v1/words/"+wordID.String(), map[string]interface{}{
			"term":        "manzana",
			"translation": "apple",
			"language":    "e",
		})
		req = req.WithContext(contextWithChiURLParam(req.Context(), "word_id", wordID.String()))
		rr := httptest.NewRecorder()

		handler.PutWord(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errResp := decodeErrorResponse(t, rr.Body)
		assert.Equal(t, "VALIDATION_ERROR", errResp.Error.Code)
		assert.Equal(t, "language", errResp.Error.Field)
		mockService.AssertNotCalled(t, "UpdateWord", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWordHandler_DeleteWord(t *testing.T) {
	wordID := uuid.New()

	t.Run("正常系: 削除して204", func(t *testing.T) {
		mockService := new(svc_mocks.WordService)
		mockService.On("DeleteWord", mock.Anything, wordID).Return(nil).Once()
		handler := handlers.NewWordHandler(mockService, newTestLogger())

		req := newJsonRequest(t, http.MethodDelete, "/api/v1/words/"+wordID.String(), nil)
		req = req.WithContext(contextWithChiURLParam(req.Context(), "word_id", wordID.String()))
		rr := httptest.NewRecorder()

		handler.DeleteWord(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 存在しない単語", func(t *testing.T) {
		mockService := new(svc_mocks.WordService)
		mockService.On("DeleteWord", mock.Anything, wordID).
			Return(model.NewAppError("NOT_FOUND", "単語が見つかりません。", "", model.ErrNotFound)).Once()
		handler := handlers.NewWordHandler(mockService, newTestLogger())

		req := newJsonRequest(t, http.MethodDelete, "/api/v1/words/"+wordID.String(), nil)
		req = req.WithContext(contextWithChiURLParam(req.Context(), "word_id", wordID.String()))
		rr := httptest.NewRecorder()

		handler.DeleteWord(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})
}
