//go:generate mockery --name AttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_vocab_mastery/internal/middleware"
	"go_vocab_mastery/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptRepository は解答履歴への追記専用アクセスを提供する。
// 履歴は不変の台帳であり、UpdateやDeleteは存在しない。
type AttemptRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *model.AttemptRecord) error
	FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.AttemptRecord, error)
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

func (r *gormAttemptRepository) Create(ctx context.Context, tx *gorm.DB, record *model.AttemptRecord) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(record)
	if result.Error != nil {
		logger.Error("Error creating attempt record in DB",
			"error", result.Error,
			"learner_id", record.LearnerID.String(),
			"word_id", record.WordID.String(),
		)
		return fmt.Errorf("gormAttemptRepository.Create: %w", result.Error)
	}
	return nil
}

// FindByLearner は学習者の全履歴を発生時刻の昇順で返す。分析の集計入力になる。
func (r *gormAttemptRepository) FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.AttemptRecord, error) {
	logger := middleware.GetLogger(ctx)
	var records []*model.AttemptRecord
	result := db.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		Order("occurred_at ASC").
		Find(&records)
	if result.Error != nil {
		logger.Error("Error finding attempt records in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return nil, fmt.Errorf("gormAttemptRepository.FindByLearner: %w", result.Error)
	}
	return records, nil
}
