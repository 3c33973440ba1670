package wellbeing

import (
	"time"

	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
)

func at(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func mood(id string, label models.MoodLabel, created time.Time) models.MoodEntry {
	return models.MoodEntry{
		ID:        id,
		UserID:    "user-123",
		Mood:      label,
		CreatedAt: created,
	}
}

func openTask(id, category string, created time.Time) models.TaskEvent {
	t := models.TaskEvent{
		ID:        id,
		UserID:    "user-123",
		Title:     "task " + id,
		CreatedAt: created,
	}
	if category != "" {
		t.Category = &category
	}
	return t
}

func doneTask(id, category string, created, completed time.Time) models.TaskEvent {
	t := openTask(id, category, created)
	t.Completed = true
	t.CompletedAt = &completed
	return t
}

func labels(points []TrendPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Label
	}
	return out
}
