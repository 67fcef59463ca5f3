//go:generate mockery --name GemRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_vocab_mastery/internal/middleware"
	"go_vocab_mastery/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GemRepository interface {
	Create(ctx context.Context, tx *gorm.DB, award *model.GemAward) error
	FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, limit int) ([]*model.GemAward, error)
}

type gormGemRepository struct{}

func NewGormGemRepository() GemRepository {
	return &gormGemRepository{}
}

func (r *gormGemRepository) Create(ctx context.Context, tx *gorm.DB, award *model.GemAward) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(award)
	if result.Error != nil {
		logger.Error("Error creating gem award in DB",
			"error", result.Error,
			"attempt_id", award.AttemptID.String(),
			"rarity", award.Rarity.String(),
		)
		return fmt.Errorf("gormGemRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormGemRepository) FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, limit int) ([]*model.GemAward, error) {
	var awards []*model.GemAward
	result := db.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&awards)
	if result.Error != nil {
		return nil, fmt.Errorf("gormGemRepository.FindByLearner: %w", result.Error)
	}
	return awards, nil
}
