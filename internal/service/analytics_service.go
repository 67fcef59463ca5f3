// internal/service/analytics_service.go
package service

import (
	"context"
	"time"

	"go_vocab_mastery/internal/analytics"
	"go_vocab_mastery/internal/config"
	"go_vocab_mastery/internal/middleware"
	"go_vocab_mastery/internal/model"
	"go_vocab_mastery/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsService インターフェース
type AnalyticsService interface {
	GetSummary(ctx context.Context, learnerID uuid.UUID, f analytics.Filters) (*model.AnalyticsSnapshot, error)
	InvalidateLearner(learnerID uuid.UUID)
	InvalidateAll()
}

type analyticsService struct {
	db          *gorm.DB
	attemptRepo repository.AttemptRepository
	wordRepo    repository.WordRepository
	masteryRepo repository.MasteryRepository
	cache       *analytics.Cache
	cfg         *config.Config
}

func NewAnalyticsService(
	db *gorm.DB,
	attemptRepo repository.AttemptRepository,
	wordRepo repository.WordRepository,
	masteryRepo repository.MasteryRepository,
	cache *analytics.Cache,
	cfg *config.Config,
) AnalyticsService {
	return &analyticsService{
		db:          db,
		attemptRepo: attemptRepo,
		wordRepo:    wordRepo,
		masteryRepo: masteryRepo,
		cache:       cache,
		cfg:         cfg,
	}
}

// GetSummary は学習者の分析サマリーを返します。
// (学習者, フィルタ) 単位のリードスルーキャッシュを通し、
// ミス時は履歴全体から再集計してキャッシュに載せます。
func (s *analyticsService) GetSummary(ctx context.Context, learnerID uuid.UUID, f analytics.Filters) (*model.AnalyticsSnapshot, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	if snap, ok := s.cache.Get(learnerID, f); ok {
		logger.Debug("Analytics cache hit", "filter_hash", f.Hash())
		return snap, nil
	}

	records, err := s.attemptRepo.FindByLearner(ctx, s.db, learnerID)
	if err != nil {
		logger.Error("Failed to load attempt history for analytics", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "解答履歴の取得に失敗しました。", "", err)
	}

	// 集計対象の単語メタデータをまとめて引く
	wordIDSet := make(map[uuid.UUID]struct{}, len(records))
	wordIDs := make([]uuid.UUID, 0, len(records))
	for _, rec := range records {
		if _, seen := wordIDSet[rec.WordID]; !seen {
			wordIDSet[rec.WordID] = struct{}{}
			wordIDs = append(wordIDs, rec.WordID)
		}
	}
	words, err := s.wordRepo.FindByIDs(ctx, s.db, wordIDs)
	if err != nil {
		logger.Error("Failed to load words for analytics", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語情報の取得に失敗しました。", "", err)
	}

	// 復習候補の件数上限は Summarize 側でフィルタ適用後に課す。
	// ここで絞ると、フィルタで残るはずの単語が先に切り捨てられてしまう。
	dueWordIDs, err := s.masteryRepo.FindDueWordIDs(ctx, s.db, learnerID, time.Now())
	if err != nil {
		logger.Error("Failed to load due words for analytics", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習対象の取得に失敗しました。", "", err)
	}

	snap := analytics.Summarize(records, words, dueWordIDs, f, analytics.Config{
		WeakThreshold:   s.cfg.App.Analytics.WeakThreshold,
		StrongThreshold: s.cfg.App.Analytics.StrongThreshold,
		MinAttempts:     s.cfg.App.Analytics.MinAttempts,
		ReviewPageSize:  s.cfg.App.Analytics.ReviewPageSize,
	})

	s.cache.Put(learnerID, f, snap)
	logger.Info("Analytics summary computed",
		"total_words", snap.TotalWords,
		"weak_count", snap.WeakCount,
		"strong_count", snap.StrongCount,
	)
	return snap, nil
}

// InvalidateLearner は指定学習者のキャッシュエントリをすべて破棄します。
// 解答の書き込み後に呼ばれます。
func (s *analyticsService) InvalidateLearner(learnerID uuid.UUID) {
	s.cache.Clear(learnerID)
}

// InvalidateAll は全学習者のキャッシュを破棄します。運用時の手動リセット用。
func (s *analyticsService) InvalidateAll() {
	s.cache.ClearAll()
}
