// internal/service/review_service.go
package service

import (
	"context"
	"time"

	"go_vocab_mastery/internal/config"
	"go_vocab_mastery/internal/middleware"
	"go_vocab_mastery/internal/model"
	"go_vocab_mastery/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService インターフェース
type ReviewService interface {
	GetDueWords(ctx context.Context, learnerID uuid.UUID) ([]*model.DueWordResponse, error)
	GetDueWordsCount(ctx context.Context, learnerID uuid.UUID) (int64, error)
}

type reviewService struct {
	db          *gorm.DB
	masteryRepo repository.MasteryRepository
	cfg         *config.Config
}

func NewReviewService(db *gorm.DB, masteryRepo repository.MasteryRepository, cfg *config.Config) ReviewService {
	return &reviewService{
		db:          db,
		masteryRepo: masteryRepo,
		cfg:         cfg,
	}
}

func (s *reviewService) GetDueWords(ctx context.Context, learnerID uuid.UUID) ([]*model.DueWordResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	states, err := s.masteryRepo.FindDueByLearner(ctx, s.db, learnerID, time.Now(), s.cfg.App.ReviewLimit)
	if err != nil {
		logger.Error("Failed to find due words from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習単語の取得に失敗しました。", "", err)
	}

	responses := make([]*model.DueWordResponse, 0, len(states))
	for _, st := range states {
		if st.Word == nil {
			logger.Warn("Found mastery state with nil Word during review generation, skipping", "state_id", st.StateID)
			continue
		}
		responses = append(responses, &model.DueWordResponse{
			WordID:       st.WordID,
			Term:         st.Word.Term,
			Translation:  st.Word.Translation,
			Language:     st.Word.Language,
			Category:     st.Word.Category,
			MasteryLevel: st.MasteryLevel,
			Stage:        string(st.Stage()),
			NextDueAt:    st.NextDueAt,
		})
	}

	logger.Info("Successfully retrieved due words", "count", len(responses))
	return responses, nil
}

func (s *reviewService) GetDueWordsCount(ctx context.Context, learnerID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	count, err := s.masteryRepo.CountDueByLearner(ctx, s.db, learnerID, time.Now())
	if err != nil {
		logger.Error("Failed to count due words", "error", err)
		return 0, model.NewAppError("INTERNAL_SERVER_ERROR", "単語数の取得に失敗しました。", "", err)
	}

	logger.Info("Successfully counted due words", "count", count)
	return count, nil
}
