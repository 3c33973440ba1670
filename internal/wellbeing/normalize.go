package wellbeing

import (
	"slices"
	"time"

	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
)

// Timestamped is any record ordered by its creation time
type Timestamped interface {
	Timestamp() time.Time
}

// Normalize returns the records created inside r, most recent first.
// The input slice is left untouched and duplicates are kept.
func Normalize[T Timestamped](records []T, r DateRange) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if r.Contains(rec.Timestamp()) {
			out = append(out, rec)
		}
	}

	slices.SortStableFunc(out, func(a, b T) int {
		return b.Timestamp().Compare(a.Timestamp())
	})

	return out
}

// NormalizeMoods is Normalize for mood entries
func NormalizeMoods(entries []models.MoodEntry, r DateRange) []models.MoodEntry {
	return Normalize(entries, r)
}

// NormalizeTasks is Normalize for task events
func NormalizeTasks(tasks []models.TaskEvent, r DateRange) []models.TaskEvent {
	return Normalize(tasks, r)
}
