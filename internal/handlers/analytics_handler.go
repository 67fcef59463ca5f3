// internal/handlers/analytics_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"go_vocab_mastery/internal/analytics"
	"go_vocab_mastery/internal/middleware"
	"go_vocab_mastery/internal/model"
	"go_vocab_mastery/internal/service"
	"go_vocab_mastery/internal/webutil"
)

type AnalyticsHandler struct {
	service service.AnalyticsService
	logger  *slog.Logger
}

func NewAnalyticsHandler(s service.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsHandler{
		service: s,
		logger:  logger,
	}
}

// GetSummary は学習者の分析サマリーを返すハンドラ
func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSummary"))

	learnerID, ok := middleware.GetLearnerID(r.Context())
	if !ok {
		logger.Warn("Learner ID not found in context")
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()))

	filters, appErr := parseAnalyticsFilters(r)
	if appErr != nil {
		logger.Warn("Invalid analytics filters", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	snap, err := h.service.GetSummary(r.Context(), learnerID, filters)
	if err != nil {
		logger.Error("Error getting analytics summary in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Analytics summary returned",
		slog.Int("total_words", snap.TotalWords),
		slog.Int("weak_count", snap.WeakCount),
	)
	webutil.RespondWithJSON(w, http.StatusOK, snap)
}

// ClearCache は学習者の分析キャッシュを手動で破棄するハンドラ。
// スナップショットはTTLを持たないため、運用時の強制リセットはここから行います。
func (h *AnalyticsHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ClearCache"))

	learnerID, ok := middleware.GetLearnerID(r.Context())
	if !ok {
		logger.Warn("Learner ID not found in context")
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	h.service.InvalidateLearner(learnerID)
	logger.Info("Analytics cache cleared", slog.String("learner_id", learnerID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// parseAnalyticsFilters はクエリパラメータを分析フィルタに変換します。
// 時刻は RFC3339、正答率は 0..1 の小数で受け取ります。
func parseAnalyticsFilters(r *http.Request) (analytics.Filters, *model.AppError) {
	q := r.URL.Query()
	f := analytics.Filters{
		Language: q.Get("language"),
		Category: q.Get("category"),
	}

	if s := q.Get("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return f, model.NewAppError("VALIDATION_ERROR", "from はRFC3339形式で指定してください。", "from", model.ErrInvalidInput)
		}
		f.From = &t
	}
	if s := q.Get("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return f, model.NewAppError("VALIDATION_ERROR", "to はRFC3339形式で指定してください。", "to", model.ErrInvalidInput)
		}
		f.To = &t
	}
	if s := q.Get("min_accuracy"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 || v > 1 {
			return f, model.NewAppError("VALIDATION_ERROR", "min_accuracy は0から1の小数で指定してください。", "min_accuracy", model.ErrInvalidInput)
		}
		f.MinAccuracy = &v
	}
	if s := q.Get("max_accuracy"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 || v > 1 {
			return f, model.NewAppError("VALIDATION_ERROR", "max_accuracy は0から1の小数で指定してください。", "max_accuracy", model.ErrInvalidInput)
		}
		f.MaxAccuracy = &v
	}

	return f, nil
}
