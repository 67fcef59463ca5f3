// internal/service/review_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_vocab_mastery/internal/model"
	"go_vocab_mastery/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBReview() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func Test_reviewService_GetDueWords(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview()
	learnerID := uuid.New()
	cfg := testAnalyticsConfig()

	wordID1 := uuid.New()
	wordID2 := uuid.New()
	now := time.Now()

	dueStates := []*model.MasteryState{
		{
			StateID:      uuid.New(),
			LearnerID:    learnerID,
			WordID:       wordID1,
			MasteryLevel: 1,
			NextDueAt:    now.Add(-2 * time.Hour),
			Word:         &model.Word{WordID: wordID1, Term: "manzana", Translation: "apple", Language: "es", Category: "food"},
		},
		{
			StateID:      uuid.New(),
			LearnerID:    learnerID,
			WordID:       wordID2,
			MasteryLevel: 4,
			NextDueAt:    now.Add(-time.Hour),
			Word:         &model.Word{WordID: wordID2, Term: "perro", Translation: "dog", Language: "es"},
		},
	}

	tests := []struct {
		name      string
		setupMock func(m *mocks.MasteryRepository)
		wantErr   bool
		wantLen   int
		check     func(t *testing.T, got []*model.DueWordResponse)
	}{
		{
			name: "正常系: 期限到来中の単語を返す",
			setupMock: func(m *mocks.MasteryRepository) {
				m.On("FindDueByLearner", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, mock.AnythingOfType("time.Time"), cfg.App.ReviewLimit).
					Return(dueStates, nil).Once()
			},
			wantLen: 2,
			check: func(t *testing.T, got []*model.DueWordResponse) {
				assert.Equal(t, "manzana", got[0].Term)
				assert.Equal(t, string(model.StageLearning), got[0].Stage)
				assert.Equal(t, string(model.StageReview), got[1].Stage)
			},
		},
		{
			name: "正常系: Wordがnilの状態はスキップする",
			setupMock: func(m *mocks.MasteryRepository) {
				states := []*model.MasteryState{
					dueStates[0],
					{StateID: uuid.New(), LearnerID: learnerID, WordID: uuid.New(), Word: nil},
				}
				m.On("FindDueByLearner", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, mock.AnythingOfType("time.Time"), cfg.App.ReviewLimit).
					Return(states, nil).Once()
			},
			wantLen: 1,
		},
		{
			name: "正常系: 期限到来なしで空リスト",
			setupMock: func(m *mocks.MasteryRepository) {
				m.On("FindDueByLearner", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, mock.AnythingOfType("time.Time"), cfg.App.ReviewLimit).
					Return([]*model.MasteryState{}, nil).Once()
			},
			wantLen: 0,
		},
		{
			name: "異常系: リポジトリエラー",
			setupMock: func(m *mocks.MasteryRepository) {
				m.On("FindDueByLearner", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, mock.AnythingOfType("time.Time"), cfg.App.ReviewLimit).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MasteryRepository)
			tt.setupMock(mockRepo)
			svc := NewReviewService(db, mockRepo, cfg)

			got, err := svc.GetDueWords(ctx, learnerID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Len(t, got, tt.wantLen)
				if tt.check != nil {
					tt.check(t, got)
				}
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func Test_reviewService_GetDueWordsCount(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview()
	learnerID := uuid.New()
	cfg := testAnalyticsConfig()

	t.Run("正常系: カウントを返す", func(t *testing.T) {
		mockRepo := new(mocks.MasteryRepository)
		mockRepo.On("CountDueByLearner", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, mock.AnythingOfType("time.Time")).
			Return(int64(7), nil).Once()
		svc := NewReviewService(db, mockRepo, cfg)

		count, err := svc.GetDueWordsCount(ctx, learnerID)
		require.NoError(t, err)
		assert.Equal(t, int64(7), count)
		mockRepo.AssertExpectations(t)
	})

	t.Run("異常系: リポジトリエラー", func(t *testing.T) {
		mockRepo := new(mocks.MasteryRepository)
		mockRepo.On("CountDueByLearner", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, mock.AnythingOfType("time.Time")).
			Return(int64(0), errors.New("db error")).Once()
		svc := NewReviewService(db, mockRepo, cfg)

		_, err := svc.GetDueWordsCount(ctx, learnerID)
		require.Error(t, err)
		mockRepo.AssertExpectations(t)
	})
}
