package wellbeing

import (
	"slices"
	"time"

	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
)

// DefaultDisplayLimit is how many correlation rows a table shows
const DefaultDisplayLimit = 7

// Correlation thresholds
const (
	StrongMoodThreshold   = 3.5
	StrongTaskThreshold   = 2
	PositiveMoodThreshold = 3.0
	PositiveTaskThreshold = 1
)

// CorrelationTier describes how a day's mood lines up with its completions
type CorrelationTier string

const (
	TierStrongPositive CorrelationTier = "strong_positive"
	TierPositive       CorrelationTier = "positive"
	TierNegative       CorrelationTier = "negative"
	TierNeutral        CorrelationTier = "neutral"
)

// CorrelationRow is one classified day
type CorrelationRow struct {
	Date           time.Time        `json:"date"`
	Label          string           `json:"label"`
	AverageMood    float64          `json:"average_mood"`
	Mood           models.MoodLabel `json:"mood"`
	CompletedTasks int              `json:"completed_tasks"`
	Tier           CorrelationTier  `json:"tier"`
}

// ClassifyDay applies the tier rules in order; the first match wins.
func ClassifyDay(avgMood float64, completed int) CorrelationTier {
	switch {
	case avgMood >= StrongMoodThreshold && completed >= StrongTaskThreshold:
		return TierStrongPositive
	case avgMood >= PositiveMoodThreshold && completed >= PositiveTaskThreshold:
		return TierPositive
	case avgMood < PositiveMoodThreshold && completed == 0:
		return TierNegative
	default:
		return TierNeutral
	}
}

// Classify builds a row for every bucket that has at least one mood entry,
// newest day first. Days without mood data are skipped, never scored as 0.
func Classify(buckets []DailyBucket) []CorrelationRow {
	rows := make([]CorrelationRow, 0, len(buckets))
	for _, b := range buckets {
		if !b.HasMood() {
			continue
		}
		avg := b.MoodAverage.Value
		rows = append(rows, CorrelationRow{
			Date:           b.Date,
			Label:          b.Label,
			AverageMood:    avg,
			Mood:           models.MoodFromScore(avg),
			CompletedTasks: b.CompletedTasks,
			Tier:           ClassifyDay(avg, b.CompletedTasks),
		})
	}

	slices.SortStableFunc(rows, func(a, b CorrelationRow) int {
		return b.Date.Compare(a.Date)
	})

	return rows
}

// Limit returns a copy of the first n rows. n <= 0 keeps every row.
func Limit(rows []CorrelationRow, n int) []CorrelationRow {
	if n <= 0 || n > len(rows) {
		n = len(rows)
	}
	out := make([]CorrelationRow, n)
	copy(out, rows[:n])
	return out
}

// TierCounts tallies rows per tier
func TierCounts(rows []CorrelationRow) map[CorrelationTier]int {
	counts := map[CorrelationTier]int{
		TierStrongPositive: 0,
		TierPositive:       0,
		TierNegative:       0,
		TierNeutral:        0,
	}
	for _, r := range rows {
		counts[r.Tier]++
	}
	return counts
}
