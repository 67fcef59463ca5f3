//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	// middleware.GetLoggerが返す型として必要
	"go_vocab_mastery/internal/middleware"
	"go_vocab_mastery/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WordRepository インターフェース
type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error)
	FindAll(ctx context.Context, db *gorm.DB, language, category string) ([]*model.Word, error)
	FindByIDs(ctx context.Context, db *gorm.DB, wordIDs []uuid.UUID) (map[uuid.UUID]*model.Word, error)
	Update(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error
	CheckTermExists(ctx context.Context, db *gorm.DB, term, language string, excludeWordID *uuid.UUID) (bool, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"term", word.Term,
			"language", word.Language,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).Where("word_id = ?", wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

func (r *gormWordRepository) FindAll(ctx context.Context, db *gorm.DB, language, category string) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	query := db.WithContext(ctx)
	if language != "" {
		query = query.Where("language = ?", language)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	result := query.Order("created_at DESC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words in DB",
			"error", result.Error,
			"language", language,
			"category", category,
		)
		return nil, fmt.Errorf("gormWordRepository.FindAll: %w", result.Error)
	}
	return words, nil
}

// FindByIDs は指定したIDの単語をまとめて取得し、WordIDをキーとするマップで返す。
// 見つからなかったIDはマップに含まれないだけで、エラーにはしない。
func (r *gormWordRepository) FindByIDs(ctx context.Context, db *gorm.DB, wordIDs []uuid.UUID) (map[uuid.UUID]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	if len(wordIDs) == 0 {
		return map[uuid.UUID]*model.Word{}, nil
	}
	var words []*model.Word
	result := db.WithContext(ctx).Where("word_id IN ?", wordIDs).Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by IDs in DB",
			"error", result.Error,
			"count", len(wordIDs),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByIDs: %w", result.Error)
	}
	wordMap := make(map[uuid.UUID]*model.Word, len(words))
	for _, w := range words {
		wordMap[w.WordID] = w
	}
	return wordMap, nil
}

func (r *gormWordRepository) Update(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Word{}).Where("word_id = ?", wordID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating word in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWordRepository) Delete(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Delete(&model.Word{}, wordID)
	if result.Error != nil {
		logger.Error("Error deleting word in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWordRepository) CheckTermExists(ctx context.Context, db *gorm.DB, term, language string, excludeWordID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Word{}).Where("term = ? AND language = ?", term, language)
	if excludeWordID != nil {
		query = query.Where("word_id != ?", *excludeWordID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking term existence in DB",
			"error", result.Error,
			"term", term,
			"language", language,
		)
		return false, fmt.Errorf("gormWordRepository.CheckTermExists: %w", result.Error)
	}
	return count > 0, nil
}
