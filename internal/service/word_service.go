// internal/service/word_service.go
package service

import (
	"context"
	"errors"

	"go_vocab_mastery/internal/middleware"
	"go_vocab_mastery/internal/model"
	"go_vocab_mastery/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WordService interface {
	CreateWord(ctx context.Context, req *model.PostWordRequest) (*model.Word, error)
	GetWord(ctx context.Context, wordID uuid.UUID) (*model.Word, error)
	ListWords(ctx context.Context, language, category string) ([]*model.Word, error)
	UpdateWord(ctx context.Context, wordID uuid.UUID, req *model.PutWordRequest) (*model.Word, error)
	PatchWord(ctx context.Context, wordID uuid.UUID, req *model.PatchWordRequest) (*model.Word, error)
	DeleteWord(ctx context.Context, wordID uuid.UUID) error
}

type wordService struct {
	db       *gorm.DB // トランザクション用にDB接続を持つ
	wordRepo repository.WordRepository
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository) WordService {
	return &wordService{
		db:       db,
		wordRepo: wordRepo,
	}
}

func (s *wordService) CreateWord(ctx context.Context, req *model.PostWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	var createdWord *model.Word

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 同一言語内で単語の重複を禁止する
		exists, err := s.wordRepo.CheckTermExists(ctx, tx, req.Term, req.Language, nil)
		if err != nil {
			logger.Error("Error checking term existence in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の重複確認に失敗しました。", "", err)
		}
		if exists {
			return model.NewAppError("CONFLICT", "同じ単語がすでに登録されています。", "term", model.ErrConflict)
		}

		word := &model.Word{
			WordID:      uuid.New(),
			Term:        req.Term,
			Translation: req.Translation,
			Language:    req.Language,
			Category:    req.Category,
			Subcategory: req.Subcategory,
			ExampleText: req.ExampleText,
			AudioURL:    req.AudioURL,
		}
		if err := s.wordRepo.Create(ctx, tx, word); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の作成に失敗しました。", "", err)
		}

		createdWord = word
		return nil // コミット
	})

	if err != nil {
		return nil, err
	}

	logger.Info("Word created", "word_id", createdWord.WordID, "term", createdWord.Term)
	return createdWord, nil
}

func (s *wordService) GetWord(ctx context.Context, wordID uuid.UUID) (*model.Word, error) {
	// エラーはリポジトリで変換済み
	return s.wordRepo.FindByID(ctx, s.db, wordID)
}

func (s *wordService) ListWords(ctx context.Context, language, category string) ([]*model.Word, error) {
	words, err := s.wordRepo.FindAll(ctx, s.db, language, category)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", err)
	}
	return words, nil
}

func (s *wordService) UpdateWord(ctx context.Context, wordID uuid.UUID, req *model.PutWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx).With("word_id", wordID)

	var updatedWord *model.Word

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.wordRepo.FindByID(ctx, tx, wordID); err != nil {
			return err
		}

		exists, err := s.wordRepo.CheckTermExists(ctx, tx, req.Term, req.Language, &wordID)
		if err != nil {
			logger.Error("Error checking term existence in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の重複確認に失敗しました。", "", err)
		}
		if exists {
			return model.NewAppError("CONFLICT", "同じ単語がすでに登録されています。", "term", model.ErrConflict)
		}

		updates := map[string]interface{}{
			"term":         req.Term,
			"translation":  req.Translation,
			"language":     req.Language,
			"category":     req.Category,
			"subcategory":  req.Subcategory,
			"example_text": req.ExampleText,
			"audio_url":    req.AudioURL,
		}
		if err := s.wordRepo.Update(ctx, tx, wordID, updates); err != nil {
			return err
		}

		word, err := s.wordRepo.FindByID(ctx, tx, wordID)
		if err != nil {
			return err
		}
		updatedWord = word
		return nil
	})

	if err != nil {
		return nil, err
	}
	return updatedWord, nil
}

func (s *wordService) PatchWord(ctx context.Context, wordID uuid.UUID, req *model.PatchWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx).With("word_id", wordID)

	var patchedWord *model.Word

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.wordRepo.FindByID(ctx, tx, wordID)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Term != nil {
			// 単語名の変更は同一言語内での重複を再確認する
			exists, err := s.wordRepo.CheckTermExists(ctx, tx, *req.Term, current.Language, &wordID)
			if err != nil {
				logger.Error("Error checking term existence in transaction", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の重複確認に失敗しました。", "", err)
			}
			if exists {
				return model.NewAppError("CONFLICT", "同じ単語がすでに登録されています。", "term", model.ErrConflict)
			}
			updates["term"] = *req.Term
		}
		if req.Translation != nil {
			updates["translation"] = *req.Translation
		}
		if req.Category != nil {
			updates["category"] = *req.Category
		}
		if req.Subcategory != nil {
			updates["subcategory"] = *req.Subcategory
		}
		if req.ExampleText != nil {
			updates["example_text"] = *req.ExampleText
		}
		if req.AudioURL != nil {
			updates["audio_url"] = *req.AudioURL
		}

		if err := s.wordRepo.Update(ctx, tx, wordID, updates); err != nil {
			return err
		}

		word, err := s.wordRepo.FindByID(ctx, tx, wordID)
		if err != nil {
			return err
		}
		patchedWord = word
		return nil
	})

	if err != nil {
		return nil, err
	}
	return patchedWord, nil
}

// DeleteWord は単語を論理削除します。習熟状態と解答履歴は残りますが、
// 復習対象の検索は削除済み単語をJOINで除外するため、期限リストからは消えます。
func (s *wordService) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("word_id", wordID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.wordRepo.Delete(ctx, tx, wordID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("NOT_FOUND", "削除対象の単語が見つかりません。", "word_id", model.ErrNotFound)
		}
		logger.Error("Error deleting word", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の削除に失敗しました。", "", err)
	}

	logger.Info("Word deleted")
	return nil
}
