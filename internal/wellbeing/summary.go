package wellbeing

import (
	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
)

// MoodShare is the count and percentage of one mood label
type MoodShare struct {
	Mood    models.MoodLabel `json:"mood"`
	Count   int              `json:"count"`
	Percent float64          `json:"percent"`
}

// MoodDistribution summarizes how often each mood was logged.
// The zero value is the empty distribution.
type MoodDistribution struct {
	Total        int               `json:"total"`
	Moods        []MoodShare       `json:"moods,omitempty"`
	MostFrequent *models.MoodLabel `json:"most_frequent,omitempty"`
}

// Empty reports whether the distribution has no entries
func (d MoodDistribution) Empty() bool {
	return d.Total == 0
}

// Count returns how many entries had the given mood
func (d MoodDistribution) Count(m models.MoodLabel) int {
	for _, s := range d.Moods {
		if s.Mood == m {
			return s.Count
		}
	}
	return 0
}

// MoodStats computes the distribution over all six labels in canonical
// order. Entries with a label outside the known set are not counted.
//
// The most frequent label is found by walking the canonical order and
// keeping the first label whose count beats the running maximum, so an
// exact tie goes to the label that comes first in that order.
func MoodStats(entries []models.MoodEntry) MoodDistribution {
	labels := models.MoodLabels()
	counts := make([]int, len(labels))
	total := 0
	for _, e := range entries {
		if !e.Mood.Valid() {
			continue
		}
		counts[e.Mood.Ordinal()]++
		total++
	}

	if total == 0 {
		return MoodDistribution{}
	}

	dist := MoodDistribution{
		Total: total,
		Moods: make([]MoodShare, len(labels)),
	}

	maxCount := 0
	for i, label := range labels {
		dist.Moods[i] = MoodShare{
			Mood:    label,
			Count:   counts[i],
			Percent: float64(counts[i]) / float64(total) * 100,
		}
		if counts[i] > maxCount {
			maxCount = counts[i]
			mostFrequent := label
			dist.MostFrequent = &mostFrequent
		}
	}

	return dist
}

// TaskStats summarizes task completion. The zero value is the empty stats
// object returned when there are no tasks.
type TaskStats struct {
	Total          int               `json:"total"`
	Completed      int               `json:"completed"`
	Pending        int               `json:"pending"`
	CompletionRate float64           `json:"completion_rate"`
	Categories     CategoryBreakdown `json:"categories,omitempty"`
}

// Empty reports whether there were no tasks
func (s TaskStats) Empty() bool {
	return s.Total == 0
}

// TaskSummary computes totals, completion rate and per-category counts
func TaskSummary(tasks []models.TaskEvent) TaskStats {
	if len(tasks) == 0 {
		return TaskStats{}
	}

	stats := TaskStats{
		Total:      len(tasks),
		Categories: CategoryBreakdown{},
	}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		}
		stats.Categories.add(t)
	}
	stats.Pending = stats.Total - stats.Completed
	stats.CompletionRate = float64(stats.Completed) / float64(stats.Total) * 100

	return stats
}
