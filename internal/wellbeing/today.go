package wellbeing

import (
	"time"

	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
)

// TodayLabelLayout formats the dashboard heading, e.g. "Friday, March 7"
const TodayLabelLayout = "Monday, January 2"

// DailySnapshot is the dashboard view of the current day
type DailySnapshot struct {
	Date            time.Time         `json:"date"`
	Label           string            `json:"label"`
	TodayMood       *models.MoodLabel `json:"today_mood,omitempty"`
	LastMood        *models.MoodLabel `json:"last_mood,omitempty"`
	EntriesThisWeek int               `json:"entries_this_week"`
	PendingTasks    int               `json:"pending_tasks"`
	CompletedToday  int               `json:"completed_today"`
}

// Today builds the snapshot for now's calendar day in loc.
// TodayMood is the most recent entry created today; LastMood is the most
// recent entry overall. EntriesThisWeek counts entries from the last seven
// days up to now.
func Today(moods []models.MoodEntry, tasks []models.TaskEvent, now time.Time, loc *time.Location) DailySnapshot {
	loc = resolveLocation(loc, now)
	today := keyOf(now, loc)
	date := startOfDay(now, loc)
	weekAgo := now.In(loc).AddDate(0, 0, -7)

	snap := DailySnapshot{
		Date:  date,
		Label: date.Format(TodayLabelLayout),
	}

	ordered := NormalizeMoods(moods, DateRange{})
	if len(ordered) > 0 {
		last := ordered[0].Mood
		snap.LastMood = &last
	}
	for _, e := range ordered {
		if snap.TodayMood == nil && keyOf(e.CreatedAt, loc) == today {
			mood := e.Mood
			snap.TodayMood = &mood
		}
		if !e.CreatedAt.Before(weekAgo) {
			snap.EntriesThisWeek++
		}
	}

	for _, t := range tasks {
		if !t.Completed {
			snap.PendingTasks++
			continue
		}
		if doneAt, ok := t.CompletionTime(); ok && keyOf(doneAt, loc) == today {
			snap.CompletedToday++
		}
	}

	return snap
}
