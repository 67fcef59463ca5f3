// internal/handlers/attempt_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_mastery/internal/middleware"
	"go_vocab_mastery/internal/model"
	"go_vocab_mastery/internal/service"
	"go_vocab_mastery/internal/webutil"
)

type AttemptHandler struct {
	service service.AttemptService
	logger  *slog.Logger
}

func NewAttemptHandler(s service.AttemptService, logger *slog.Logger) *AttemptHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttemptHandler{
		service: s,
		logger:  logger,
	}
}

// PostAttempt は1回の解答を受け付けるハンドラ
func (h *AttemptHandler) PostAttempt(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAttempt"))

	learnerID, ok := middleware.GetLearnerID(r.Context())
	if !ok {
		logger.Warn("Learner ID not found in context")
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()))

	var req model.PostAttemptRequest
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

	result, err := h.service.SubmitAttempt(r.Context(), learnerID, &req)
	if err != nil {
		logger.Error("Error submitting attempt in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Attempt processed",
		slog.String("attempt_id", result.AttemptID.String()),
		slog.Bool("applied", result.Applied),
	)
	webutil.RespondWithJSON(w, http.StatusCreated, result)
}

// GetGems は学習者の獲得ジェムを新しい順で返すハンドラ
func (h *AttemptHandler) GetGems(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetGems"))

	learnerID, ok := middleware.GetLearnerID(r.Context())
	if !ok {
		logger.Warn("Learner ID not found in context")
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()))

	awards, err := h.service.GetRecentGems(r.Context(), learnerID)
	if err != nil {
		logger.Error("Error getting gem awards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, awards)
}
