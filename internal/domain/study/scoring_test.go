package study

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var baseInstant = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func recordAt(score float64, last time.Time) *Record {
	return &Record{UserID: 1, WID: "apple~n", LastReview: &last, Score: score}
}

func TestRetentionBounds(t *testing.T) {
	assert.Equal(t, 1.0, Retention(0, 0))
	assert.Equal(t, 1.0, Retention(0, 7.5))

	for _, days := range []float64{0.5, 1, 3, 30, 365} {
		for _, score := range []float64{0, 0.1, 1, 4, 100} {
			r := Retention(days, score)
			assert.Greater(t, r, 0.0, "days=%v score=%v", days, score)
			assert.Less(t, r, 1.0, "days=%v score=%v", days, score)
		}
	}
}

func TestRetentionDecaysSlowerWithHigherScore(t *testing.T) {
	weak := Retention(3, 0.5)
	strong := Retention(3, 5)
	assert.Greater(t, strong, weak)
}

func TestPriorityGrowsWithElapsedTime(t *testing.T) {
	assert.Equal(t, 0.0, Priority(0, 2))
	assert.Greater(t, Priority(5, 2), Priority(1, 2))
}

func TestPriorityEquivalentForm(t *testing.T) {
	// days / retention == days * e^(days/(score+1))
	days, score := 4.0, 1.5
	want := days * math.Exp(days/(score+1))
	assert.InDelta(t, want, Priority(days, score), 1e-12)
}

func TestDaysSinceClampsNegativeElapsed(t *testing.T) {
	future := baseInstant.Add(48 * time.Hour)
	assert.Equal(t, 0.0, DaysSince(future, baseInstant))
}

func TestNextScoreFirstReview(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    float64
	}{
		{OutcomeKnown, 1.0},
		{OutcomeUnfamiliar, 0.5},
		{OutcomeForgotten, 0.1},
	}
	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			assert.Equal(t, tt.want, NextScore(nil, tt.outcome, baseInstant))
		})
	}
}

func TestNextScoreNilLastReviewTreatedAsFirst(t *testing.T) {
	prior := &Record{UserID: 1, WID: "apple~n", Score: 3}
	assert.Equal(t, 1.0, NextScore(prior, OutcomeKnown, baseInstant))
}

func TestNextScoreKnownAfterThreeDays(t *testing.T) {
	// score 2.0 reviewed 3 days ago: retention = e^(-3/3) = e^-1,
	// new score = 2 + (1 - e^-1)*2 = 3.2642... -> 3.26
	prior := recordAt(2.0, baseInstant.Add(-3*24*time.Hour))
	assert.Equal(t, 3.26, NextScore(prior, OutcomeKnown, baseInstant))
}

func TestNextScoreKnownSameDay(t *testing.T) {
	// Repeated same-day review earns the flat bonus, not the decay reward.
	prior := recordAt(4.0, baseInstant.Add(-2*time.Hour))
	assert.Equal(t, 4.5, NextScore(prior, OutcomeKnown, baseInstant))
}

func TestNextScoreKnownPartialDayFloorsToSameDay(t *testing.T) {
	// 23h elapsed floors to 0 whole days.
	prior := recordAt(1.0, baseInstant.Add(-23*time.Hour))
	assert.Equal(t, 1.5, NextScore(prior, OutcomeKnown, baseInstant))
}

func TestNextScoreUnfamiliarHalves(t *testing.T) {
	prior := recordAt(1.0, baseInstant.Add(-24*time.Hour))
	assert.Equal(t, 0.5, NextScore(prior, OutcomeUnfamiliar, baseInstant))
}

func TestNextScoreForgottenDecimates(t *testing.T) {
	prior := recordAt(0.5, baseInstant.Add(-24*time.Hour))
	assert.Equal(t, 0.05, NextScore(prior, OutcomeForgotten, baseInstant))
}

func TestNextScoreUnfamiliarThenForgotten(t *testing.T) {
	last := baseInstant.Add(-24 * time.Hour)
	prior := recordAt(1.0, last)

	first := NextScore(prior, OutcomeUnfamiliar, baseInstant)
	assert.Equal(t, 0.5, first)

	// Immediately report again at the same instant against the new state.
	second := NextScore(recordAt(first, baseInstant), OutcomeForgotten, baseInstant)
	assert.Equal(t, 0.05, second)
}

func TestNextScoreNeverNegative(t *testing.T) {
	for _, outcome := range []Outcome{OutcomeKnown, OutcomeUnfamiliar, OutcomeForgotten} {
		for _, score := range []float64{0, 0.01, 0.5, 2, 50} {
			for _, age := range []time.Duration{0, 24 * time.Hour, 90 * 24 * time.Hour} {
				prior := recordAt(score, baseInstant.Add(-age))
				got := NextScore(prior, outcome, baseInstant)
				assert.GreaterOrEqual(t, got, 0.0,
					"outcome=%s score=%v age=%v", outcome, score, age)
			}
		}
	}
}

func TestNextScoreFutureLastReviewClamped(t *testing.T) {
	// Reference instant before the last review behaves like a same-day
	// repeat instead of blowing up the exponential.
	prior := recordAt(2.0, baseInstant.Add(72*time.Hour))
	assert.Equal(t, 2.5, NextScore(prior, OutcomeKnown, baseInstant))
}

func TestNextScoreRoundsToTwoDecimals(t *testing.T) {
	prior := recordAt(0.33, baseInstant.Add(-24*time.Hour))
	got := NextScore(prior, OutcomeUnfamiliar, baseInstant)
	assert.Equal(t, 0.17, got) // 0.165 rounds half away from zero
}
