// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_mastery/internal/model"
	"go_vocab_mastery/internal/service"
	"go_vocab_mastery/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type WordHandler struct {
	service service.WordService
	logger  *slog.Logger
}

func NewWordHandler(s service.WordService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		service: s,
		logger:  logger,
	}
}

// parseWordID はURLパラメータから単語IDを取得します。
func parseWordID(r *http.Request) (uuid.UUID, *model.AppError) {
	wordIDStr := chi.URLParam(r, "word_id")
	wordID, err := uuid.Parse(wordIDStr)
	if err != nil {
		return uuid.Nil, model.NewAppError("VALIDATION_ERROR", "単語IDの形式が正しくありません。", "word_id", model.ErrInvalidInput)
	}
	return wordID, nil
}

// PostWord は新しい単語リソースを作成するためのハンドラ
func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostWord"))

	var req model.PostWordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := validateStruct(logger, req); appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	word, err := h.service.CreateWord(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word created successfully", slog.String("word_id", word.WordID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, word)
}

// GetWords は単語リソースの一覧を取得するためのハンドラ
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWords"))

	language := r.URL.Query().Get("language")
	category := r.URL.Query().Get("category")

	words, err := h.service.ListWords(r.Context(), language, category)
	if err != nil {
		logger.Error("Error listing words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if words == nil {
		words = []*model.Word{}
	}
	logger.Info("Words listed successfully", slog.Int("count", len(words)))
	webutil.RespondWithJSON(w, http.StatusOK, words)
}

// GetWord は特定の単語リソースを取得するためのハンドラ
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWord"))

	wordID, appErr := parseWordID(r)
	if appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	word, err := h.service.GetWord(r.Context(), wordID)
	if err != nil {
		logger.Warn("Error getting word in service", slog.Any("error", err), slog.String("word_id", wordID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, word)
}

// PutWord は単語リソース全体を更新するためのハンドラ
func (h *WordHandler) PutWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutWord"))

	wordID, appErr := parseWordID(r)
	if appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.PutWordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := validateStruct(logger, req); appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	word, err := h.service.UpdateWord(r.Context(), wordID, &req)
	if err != nil {
		logger.Error("Error updating word in service", slog.Any("error", err), slog.String("word_id", wordID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word updated successfully", slog.String("word_id", wordID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, word)
}

// PatchWord は単語リソースを部分更新するためのハンドラ
func (h *WordHandler) PatchWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchWord"))

	wordID, appErr := parseWordID(r)
	if appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.PatchWordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := validateStruct(logger, req); appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	word, err := h.service.PatchWord(r.Context(), wordID, &req)
	if err != nil {
		logger.Error("Error patching word in service", slog.Any("error", err), slog.String("word_id", wordID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word patched successfully", slog.String("word_id", wordID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, word)
}

// DeleteWord は単語リソースを論理削除するためのハンドラ
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteWord"))

	wordID, appErr := parseWordID(r)
	if appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.DeleteWord(r.Context(), wordID); err != nil {
		logger.Error("Error deleting word in service", slog.Any("error", err), slog.String("word_id", wordID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word deleted successfully", slog.String("word_id", wordID.String()))
	w.WriteHeader(http.StatusNoContent)
}
