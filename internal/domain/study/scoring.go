package study

import (
	"math"
	"time"
)

// The decay model follows the Ebbinghaus forgetting curve R = e^(-t/S),
// where t is the elapsed time in days and the stability S grows with the
// accumulated score. All functions take the reference instant explicitly so
// results are deterministic under test.

const hoursPerDay = 24.0

// Initial scores for a word reviewed for the first time.
const (
	initialScoreKnown      = 1.0
	initialScoreUnfamiliar = 0.5
	initialScoreForgotten  = 0.1
)

// sameDayBonus is the flat reward for repeating a word within the same day.
// It replaces the decay-proportional reward so rapid re-clicks cannot farm
// score.
const sameDayBonus = 0.5

// DaysSince returns the fractional days elapsed from last to at, clamped at
// zero when at precedes last.
func DaysSince(last, at time.Time) float64 {
	days := at.Sub(last).Hours() / hoursPerDay
	if days < 0 {
		return 0
	}
	return days
}

// wholeDaysSince is DaysSince floored to whole days; the score-update rule
// counts only completed days.
func wholeDaysSince(last, at time.Time) float64 {
	return math.Floor(DaysSince(last, at))
}

// Retention computes the modeled recall probability e^(-days/(score+1)).
// It is 1 at zero elapsed days and strictly within (0, 1] for days >= 0.
func Retention(days, score float64) float64 {
	return math.Exp(-days / (score + 1))
}

// Priority computes the review urgency: elapsed days weighted by the inverse
// of retention, so long-overdue and poorly-retained words rank first.
func Priority(days, score float64) float64 {
	return days / Retention(days, score)
}

// NextScore applies a recall outcome to the prior record state and returns
// the new score, rounded to two decimals. A nil prior means the word has
// never been reviewed.
func NextScore(prior *Record, outcome Outcome, at time.Time) float64 {
	if prior == nil || prior.LastReview == nil {
		return initialScore(outcome)
	}

	base := prior.Score
	days := wholeDaysSince(*prior.LastReview, at)
	retention := Retention(days, base)

	var next float64
	switch outcome {
	case OutcomeKnown:
		if days > 0 {
			// The reward grows with how far retention had decayed:
			// recalling a word genuinely at risk is worth more.
			next = base + (1-retention)*2
		} else {
			next = base + sameDayBonus
		}
	case OutcomeUnfamiliar:
		next = math.Max(0, base/2)
	case OutcomeForgotten:
		next = math.Max(0, base*0.1)
	default:
		next = base
	}

	return roundScore(next)
}

func initialScore(outcome Outcome) float64 {
	switch outcome {
	case OutcomeKnown:
		return initialScoreKnown
	case OutcomeForgotten:
		return initialScoreForgotten
	default:
		return initialScoreUnfamiliar
	}
}

// roundScore rounds half away from zero to two decimal places.
func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
