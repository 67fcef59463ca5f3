//go:generate mockery --name MasteryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_vocab_mastery/internal/middleware"
	"go_vocab_mastery/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MasteryRepository interface {
	Create(ctx context.Context, tx *gorm.DB, state *model.MasteryState) error // トランザクション対応
	FindByWordID(ctx context.Context, db *gorm.DB, learnerID, wordID uuid.UUID) (*model.MasteryState, error)
	Update(ctx context.Context, tx *gorm.DB, state *model.MasteryState) error // トランザクション対応
	FindDueByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time, limit int) ([]*model.MasteryState, error)
	CountDueByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time) (int64, error)
	FindDueWordIDs(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time) ([]uuid.UUID, error)
}

type gormMasteryRepository struct {
	// DB接続はService層から渡される想定
}

func NewGormMasteryRepository() MasteryRepository {
	return &gormMasteryRepository{}
}

func (r *gormMasteryRepository) Create(ctx context.Context, tx *gorm.DB, state *model.MasteryState) error {
	// UUIDはService層で設定済み想定
	result := tx.WithContext(ctx).Create(state)
	// GORMは複合ユニーク制約違反などをErrorで返す
	return result.Error
}

func (r *gormMasteryRepository) FindByWordID(ctx context.Context, db *gorm.DB, learnerID, wordID uuid.UUID) (*model.MasteryState, error) {
	var state model.MasteryState
	result := db.WithContext(ctx).Where("learner_id = ? AND word_id = ?", learnerID, wordID).First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormMasteryRepository.FindByWordID: %w", result.Error)
	}
	return &state, nil
}

func (r *gormMasteryRepository) Update(ctx context.Context, tx *gorm.DB, state *model.MasteryState) error {
	// state オブジェクト全体を渡して更新
	// Saveは主キーに基づいてUpdate or Insertを行う。ここではUpdate。
	// 呼び出し元(Service)で存在確認している想定
	result := tx.WithContext(ctx).Save(state)
	if result.Error != nil {
		return fmt.Errorf("gormMasteryRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormMasteryRepository) FindDueByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time, limit int) ([]*model.MasteryState, error) {
	logger := middleware.GetLogger(ctx)
	var states []*model.MasteryState

	// 期限到来順、同時刻なら習熟レベルの低いものが先。
	// Wordが論理削除されていないものだけを対象にする
	result := db.WithContext(ctx).
		Preload("Word", "deleted_at IS NULL").
		Joins("JOIN words ON words.word_id = mastery_states.word_id AND words.deleted_at IS NULL").
		Where("mastery_states.learner_id = ? AND mastery_states.next_due_at <= ?", learnerID, now).
		Order("mastery_states.next_due_at ASC, mastery_states.mastery_level ASC").
		Limit(limit).
		Find(&states)

	if result.Error != nil {
		logger.Error("Error finding due states in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return nil, fmt.Errorf("gormMasteryRepository.FindDueByLearner: %w", result.Error)
	}

	return states, nil
}

func (r *gormMasteryRepository) CountDueByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	result := db.WithContext(ctx).
		Model(&model.MasteryState{}).
		Joins("JOIN words ON words.word_id = mastery_states.word_id AND words.deleted_at IS NULL").
		Where("mastery_states.learner_id = ? AND mastery_states.next_due_at <= ?", learnerID, now).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormMasteryRepository.CountDueByLearner: %w", result.Error)
	}
	return count, nil
}

// FindDueWordIDs は期限到来中の単語IDのみを期限順で返す。分析の復習キュー用。
func (r *gormMasteryRepository) FindDueWordIDs(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time) ([]uuid.UUID, error) {
	var wordIDs []uuid.UUID
	result := db.WithContext(ctx).
		Model(&model.MasteryState{}).
		Joins("JOIN words ON words.word_id = mastery_states.word_id AND words.deleted_at IS NULL").
		Where("mastery_states.learner_id = ? AND mastery_states.next_due_at <= ?", learnerID, now).
		Order("mastery_states.next_due_at ASC, mastery_states.mastery_level ASC").
		Pluck("mastery_states.word_id", &wordIDs)
	if result.Error != nil {
		return nil, fmt.Errorf("gormMasteryRepository.FindDueWordIDs: %w", result.Error)
	}
	return wordIDs, nil
}
