// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_mastery/internal/middleware"
	"go_vocab_mastery/internal/model"
	"go_vocab_mastery/internal/service"
	"go_vocab_mastery/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

// GetDueWords は復習期限が到来している単語の一覧を返すハンドラ
func (h *ReviewHandler) GetDueWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDueWords"))

	learnerID, ok := middleware.GetLearnerID(r.Context())
	if !ok {
		logger.Warn("Learner ID not found in context")
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()))

	dueWords, err := h.service.GetDueWords(r.Context(), learnerID)
	if err != nil {
		logger.Error("Error getting due words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if dueWords == nil {
		dueWords = []*model.DueWordResponse{}
	}
	logger.Info("Due words listed successfully", slog.Int("count", len(dueWords)))
	webutil.RespondWithJSON(w, http.StatusOK, dueWords)
}

// GetDueWordsCount は復習期限が到来している単語数を返すハンドラ
func (h *ReviewHandler) GetDueWordsCount(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDueWordsCount"))

	learnerID, ok := middleware.GetLearnerID(r.Context())
	if !ok {
		logger.Warn("Learner ID not found in context")
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	count, err := h.service.GetDueWordsCount(r.Context(), learnerID)
	if err != nil {
		logger.Error("Error counting due words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.DueWordsCountResponse{Count: count})
}
