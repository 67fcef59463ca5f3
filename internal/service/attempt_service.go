// internal/service/attempt_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_vocab_mastery/internal/middleware"
	"go_vocab_mastery/internal/model"
	"go_vocab_mastery/internal/repository"
	"go_vocab_mastery/internal/reward"
	"go_vocab_mastery/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 獲得ジェム一覧の1回あたりの返却上限
const recentGemsLimit = 50

// AttemptService インターフェース
type AttemptService interface {
	SubmitAttempt(ctx context.Context, learnerID uuid.UUID, req *model.PostAttemptRequest) (*model.AttemptResultResponse, error)
	GetRecentGems(ctx context.Context, learnerID uuid.UUID) ([]*model.GemAward, error)
}

type attemptService struct {
	db          *gorm.DB
	wordRepo    repository.WordRepository
	attemptRepo repository.AttemptRepository
	masteryRepo repository.MasteryRepository
	gemRepo     repository.GemRepository
	scheduler   *srs.Scheduler
	engine      *reward.Engine
	analytics   AnalyticsService // 書き込み後のキャッシュ無効化用
	locks       *keyedMutex
}

func NewAttemptService(
	db *gorm.DB,
	wordRepo repository.WordRepository,
	attemptRepo repository.AttemptRepository,
	masteryRepo repository.MasteryRepository,
	gemRepo repository.GemRepository,
	scheduler *srs.Scheduler,
	engine *reward.Engine,
	analytics AnalyticsService,
) AttemptService {
	return &attemptService{
		db:          db,
		wordRepo:    wordRepo,
		attemptRepo: attemptRepo,
		masteryRepo: masteryRepo,
		gemRepo:     gemRepo,
		scheduler:   scheduler,
		engine:      engine,
		analytics:   analytics,
		locks:       newKeyedMutex(),
	}
}

// SubmitAttempt は1回の解答を記録し、習熟状態の更新と報酬計算を行います。
// 同一 (学習者, 単語) への送信はキー付きミューテックスで直列化し、
// 履歴追記・状態更新・報酬保存は1トランザクションで原子的に行います。
func (s *attemptService) SubmitAttempt(ctx context.Context, learnerID uuid.UUID, req *model.PostAttemptRequest) (*model.AttemptResultResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	record, err := model.NewAttemptRecord(learnerID, req, time.Now())
	if err != nil {
		return nil, err
	}
	logger = logger.With("word_id", record.WordID)

	// 未知モードは learn にフォールバック済み。観測のため警告だけ残す。
	if req.Mode != "" && !s.engine.KnownMode(model.GameMode(req.Mode)) {
		logger.Warn("Unknown game mode, falling back to learn", "mode", req.Mode)
	}

	// 同一 (学習者, 単語) の並行送信を直列化
	unlock := s.locks.Lock(learnerID.String() + "|" + record.WordID.String())
	defer unlock()

	var result *model.AttemptResultResponse

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 単語の存在確認（論理削除済みは対象外）
		if _, err := s.wordRepo.FindByID(ctx, tx, record.WordID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "単語が見つかりません。", "word_id", model.ErrNotFound)
			}
			logger.Error("Error finding word in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の確認中にエラーが発生しました。", "", err)
		}

		state, err := s.masteryRepo.FindByWordID(ctx, tx, learnerID, record.WordID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding mastery state in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "習熟状態の確認中にエラーが発生しました。", "", err)
		}
		isNewState := errors.Is(err, model.ErrNotFound)
		if isNewState {
			state = nil
		}

		// 報酬計算には更新前のレベルを使う (この解答自体の昇格は影響しない)
		preUpdateLevel := 0
		if state != nil {
			preUpdateLevel = state.MasteryLevel
		}

		newState, err := s.scheduler.Apply(state, record)
		if err != nil {
			if errors.Is(err, model.ErrStaleRecord) {
				// 遅延到着した古い記録。一切の変更を行わず、成功として報告する。
				logger.Info("Stale attempt record ignored",
					"occurred_at", record.OccurredAt,
					"last_reviewed_at", state.LastReviewedAt,
				)
				result = &model.AttemptResultResponse{
					AttemptID:    record.AttemptID,
					Applied:      false,
					MasteryLevel: state.MasteryLevel,
					Stage:        string(state.Stage()),
					NextDueAt:    &state.NextDueAt,
				}
				return nil
			}
			logger.Error("Error applying attempt to mastery state", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "習熟状態の更新に失敗しました。", "", err)
		}

		if err := s.attemptRepo.Create(ctx, tx, record); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "解答履歴の保存に失敗しました。", "", err)
		}

		if isNewState {
			if err := s.masteryRepo.Create(ctx, tx, newState); err != nil {
				logger.Error("Error creating mastery state", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "習熟状態の作成に失敗しました。", "", err)
			}
		} else {
			if err := s.masteryRepo.Update(ctx, tx, newState); err != nil {
				logger.Error("Error updating mastery state", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "習熟状態の更新に失敗しました。", "", err)
			}
		}

		rarity, points := s.engine.Compute(record.Mode, reward.Context{
			ResponseTimeMs:      record.ResponseLatencyMs,
			StreakCount:         record.StreakCount,
			HintUsed:            record.HintUsed,
			CurrentMasteryLevel: preUpdateLevel,
		})
		award := &model.GemAward{
			AwardID:   uuid.New(),
			AttemptID: record.AttemptID,
			LearnerID: learnerID,
			WordID:    record.WordID,
			Rarity:    rarity,
			Points:    points,
		}
		if err := s.gemRepo.Create(ctx, tx, award); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "報酬の保存に失敗しました。", "", err)
		}

		result = &model.AttemptResultResponse{
			AttemptID:    record.AttemptID,
			Applied:      true,
			Gem:          award,
			MasteryLevel: newState.MasteryLevel,
			Stage:        string(newState.Stage()),
			NextDueAt:    &newState.NextDueAt,
		}
		return nil // コミット
	})

	if err != nil {
		return nil, err
	}

	// 履歴が変わったので同一学習者の分析キャッシュを無効化する
	if result.Applied && s.analytics != nil {
		s.analytics.InvalidateLearner(learnerID)
	}

	logger.Info("Attempt submitted",
		"applied", result.Applied,
		"mastery_level", result.MasteryLevel,
		"stage", result.Stage,
	)
	return result, nil
}

// GetRecentGems は学習者が獲得したジェムを新しい順に返します。
func (s *attemptService) GetRecentGems(ctx context.Context, learnerID uuid.UUID) ([]*model.GemAward, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	awards, err := s.gemRepo.FindByLearner(ctx, s.db, learnerID, recentGemsLimit)
	if err != nil {
		logger.Error("Error finding gem awards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "報酬履歴の取得に失敗しました。", "", err)
	}
	if awards == nil {
		awards = []*model.GemAward{}
	}
	return awards, nil
}
