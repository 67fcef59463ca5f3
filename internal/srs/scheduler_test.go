// internal/srs/scheduler_test.go
package srs

import (
	"testing"
	"time"

	"go_vocab_mastery/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(correct bool, latencyMs int64, mode model.GameMode, at time.Time) *model.AttemptRecord {
	return &model.AttemptRecord{
		AttemptID:         uuid.New(),
		LearnerID:         uuid.New(),
		WordID:            uuid.New(),
		OccurredAt:        at,
		WasCorrect:        correct,
		ResponseLatencyMs: latencyMs,
		Mode:              mode,
	}
}

func Test_Scheduler_Quality(t *testing.T) {
	s := NewScheduler(DefaultConfig())
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		correct     bool
		latencyMs   int64
		mode        model.GameMode
		wantQuality int
	}{
		{"不正解は速くても品質1", false, 100, model.ModeLearn, QualityIncorrect},
		{"不正解かつ時間超過は品質0", false, 5000, model.ModeLearn, QualityBlackout},
		{"速い正解は品質5", true, 900, model.ModeLearn, QualityCorrectFast},
		{"普通の正解は品質3", true, 1800, model.ModeLearn, QualityCorrectNormal},
		{"遅い正解は品質2", true, 2500, model.ModeLearn, QualityCorrectSlow},
		{"閾値ちょうどは速い扱い", true, 1000, model.ModeLearn, QualityCorrectFast},
		{"タイピングモードは閾値が緩い", true, 3500, model.ModeRecall, QualityCorrectFast},
		{"未知モードはデフォルト閾値", true, 900, model.GameMode("unknown"), QualityCorrectFast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newTestRecord(tt.correct, tt.latencyMs, tt.mode, base)
			assert.Equal(t, tt.wantQuality, s.Quality(rec))
		})
	}
}

func Test_Scheduler_Apply_InitialState(t *testing.T) {
	s := NewScheduler(DefaultConfig())
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// 初回解答（不正解）: レベル0・間隔1日のまま
	rec := newTestRecord(false, 3000, model.ModeLearn, base)
	state, err := s.Apply(nil, rec)
	require.NoError(t, err)
	assert.Equal(t, 0, state.MasteryLevel)
	assert.Equal(t, 1.0, state.SrsIntervalDays)
	assert.Equal(t, 0, state.ConsecutiveCorrect)
	assert.Equal(t, base.Add(24*time.Hour), state.NextDueAt)
	require.NotNil(t, state.LastReviewedAt)
	assert.Equal(t, base, *state.LastReviewedAt)
	assert.Equal(t, rec.LearnerID, state.LearnerID)
	assert.Equal(t, rec.WordID, state.WordID)
}

// 学習シナリオ: (不正解,3000ms) → (正解,1800ms) → (正解,900ms) を learn モードで
func Test_Scheduler_Apply_ReviewScenario(t *testing.T) {
	s := NewScheduler(DefaultConfig())
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	learnerID := uuid.New()
	wordID := uuid.New()

	mkRec := func(correct bool, latencyMs int64, at time.Time) *model.AttemptRecord {
		return &model.AttemptRecord{
			AttemptID: uuid.New(), LearnerID: learnerID, WordID: wordID,
			OccurredAt: at, WasCorrect: correct, ResponseLatencyMs: latencyMs,
			Mode: model.ModeLearn,
		}
	}

	// 1回目: 不正解
	state, err := s.Apply(nil, mkRec(false, 3000, base))
	require.NoError(t, err)
	assert.Equal(t, 0, state.MasteryLevel)
	assert.Equal(t, 1.0, state.SrsIntervalDays)

	// 2回目: 普通の速さで正解 (品質3)
	state, err = s.Apply(state, mkRec(true, 1800, base.Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, 1, state.ConsecutiveCorrect)

	// 3回目: 速く正解 (品質5)
	state, err = s.Apply(state, mkRec(true, 900, base.Add(2*time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, 2, state.ConsecutiveCorrect)
	assert.Greater(t, state.SrsIntervalDays, 1.0)
}

// 品質3以上の連続レビューで間隔が単調非減少であること
func Test_Scheduler_Apply_MonotonicIntervalGrowth(t *testing.T) {
	s := NewScheduler(DefaultConfig())
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	learnerID := uuid.New()
	wordID := uuid.New()

	var state *model.MasteryState
	var err error
	prevInterval := 0.0
	for i := 0; i < 15; i++ {
		rec := &model.AttemptRecord{
			AttemptID: uuid.New(), LearnerID: learnerID, WordID: wordID,
			OccurredAt: at, WasCorrect: true, ResponseLatencyMs: 500,
			Mode: model.ModeLearn,
		}
		state, err = s.Apply(state, rec)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, state.SrsIntervalDays, prevInterval,
			"interval must never shrink on quality >= 3 (iteration %d)", i)
		if i >= 1 {
			assert.Greater(t, state.SrsIntervalDays, 1.0,
				"interval must strictly grow after 2 consecutive correct reviews")
		}
		prevInterval = state.SrsIntervalDays
		at = at.Add(intervalDuration(state.SrsIntervalDays))
	}

	// 上限でレベルが止まり、間隔もキャップされる
	assert.Equal(t, model.MaxMasteryLevel, state.MasteryLevel)
	assert.LessOrEqual(t, state.SrsIntervalDays, DefaultConfig().MaxIntervalDays)
	assert.Equal(t, model.StageMastered, state.Stage())
}

// N回連続正解後の失念で、ストリークが0に戻り間隔が半減（下限1日）すること
func Test_Scheduler_Apply_LapseRecovery(t *testing.T) {
	for _, n := range []int{1, 3, 8} {
		s := NewScheduler(DefaultConfig())
		at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		learnerID := uuid.New()
		wordID := uuid.New()

		var state *model.MasteryState
		var err error
		for i := 0; i < n; i++ {
			rec := &model.AttemptRecord{
				AttemptID: uuid.New(), LearnerID: learnerID, WordID: wordID,
				OccurredAt: at, WasCorrect: true, ResponseLatencyMs: 500,
				Mode: model.ModeLearn,
			}
			state, err = s.Apply(state, rec)
			require.NoError(t, err)
			at = at.Add(time.Hour)
		}

		levelBefore := state.MasteryLevel
		intervalBefore := state.SrsIntervalDays

		lapse := &model.AttemptRecord{
			AttemptID: uuid.New(), LearnerID: learnerID, WordID: wordID,
			OccurredAt: at, WasCorrect: false, ResponseLatencyMs: 1500,
			Mode: model.ModeLearn,
		}
		state, err = s.Apply(state, lapse)
		require.NoError(t, err)

		assert.Equal(t, 0, state.ConsecutiveCorrect, "n=%d", n)
		wantInterval := intervalBefore * 0.5
		if wantInterval < 1 {
			wantInterval = 1
		}
		assert.InDelta(t, wantInterval, state.SrsIntervalDays, 1e-9, "n=%d", n)
		if levelBefore > 0 {
			assert.Equal(t, levelBefore-1, state.MasteryLevel, "n=%d", n)
		} else {
			assert.Equal(t, 0, state.MasteryLevel, "n=%d", n)
		}
	}
}

// 古いタイムスタンプの記録は適用されず ErrStaleRecord になること
func Test_Scheduler_Apply_StaleRecord(t *testing.T) {
	s := NewScheduler(DefaultConfig())
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	learnerID := uuid.New()
	wordID := uuid.New()

	first := &model.AttemptRecord{
		AttemptID: uuid.New(), LearnerID: learnerID, WordID: wordID,
		OccurredAt: base, WasCorrect: true, ResponseLatencyMs: 500,
		Mode: model.ModeLearn,
	}
	state, err := s.Apply(nil, first)
	require.NoError(t, err)
	snapshot := *state

	tests := []struct {
		name       string
		occurredAt time.Time
	}{
		{"過去のタイムスタンプ", base.Add(-time.Minute)},
		{"同一のタイムスタンプ", base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stale := &model.AttemptRecord{
				AttemptID: uuid.New(), LearnerID: learnerID, WordID: wordID,
				OccurredAt: tt.occurredAt, WasCorrect: false, ResponseLatencyMs: 500,
				Mode: model.ModeLearn,
			}
			got, err := s.Apply(state, stale)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrStaleRecord)
			assert.Nil(t, got)
			assert.Equal(t, snapshot, *state, "stale record must not mutate state")
		})
	}
}

// Apply が引数の state を変更しない（純関数である）こと
func Test_Scheduler_Apply_DoesNotMutateInput(t *testing.T) {
	s := NewScheduler(DefaultConfig())
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	rec := newTestRecord(true, 500, model.ModeLearn, base)
	state, err := s.Apply(nil, rec)
	require.NoError(t, err)
	snapshot := *state

	later := &model.AttemptRecord{
		AttemptID: uuid.New(), LearnerID: rec.LearnerID, WordID: rec.WordID,
		OccurredAt: base.Add(time.Hour), WasCorrect: true, ResponseLatencyMs: 500,
		Mode: model.ModeLearn,
	}
	next, err := s.Apply(state, later)
	require.NoError(t, err)
	assert.Equal(t, snapshot, *state)
	assert.NotEqual(t, state.ConsecutiveCorrect, next.ConsecutiveCorrect)
}

// 失念と回復を経て再び Mastered に到達できること
func Test_Scheduler_Apply_LapseThenRecoverToMastered(t *testing.T) {
	s := NewScheduler(DefaultConfig())
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	learnerID := uuid.New()
	wordID := uuid.New()

	apply := func(state *model.MasteryState, correct bool) *model.MasteryState {
		t.Helper()
		rec := &model.AttemptRecord{
			AttemptID: uuid.New(), LearnerID: learnerID, WordID: wordID,
			OccurredAt: at, WasCorrect: correct, ResponseLatencyMs: 500,
			Mode: model.ModeLearn,
		}
		next, err := s.Apply(state, rec)
		require.NoError(t, err)
		at = at.Add(time.Hour)
		return next
	}

	var state *model.MasteryState
	for i := 0; i < 10; i++ {
		state = apply(state, true)
	}
	require.Equal(t, model.MaxMasteryLevel, state.MasteryLevel)

	state = apply(state, false)
	assert.Equal(t, model.MaxMasteryLevel-1, state.MasteryLevel)
	assert.Equal(t, model.StageReview, state.Stage())

	for i := 0; i < 10; i++ {
		state = apply(state, true)
	}
	assert.Equal(t, model.MaxMasteryLevel, state.MasteryLevel)
	assert.Equal(t, model.StageMastered, state.Stage())
}
