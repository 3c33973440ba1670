package wellbeing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
)

func TestToday(t *testing.T) {
	now := at(2025, time.March, 7, 18)
	moods := []models.MoodEntry{
		mood("old", models.MoodSad, at(2025, time.February, 20, 9)),
		mood("week", models.MoodAnxious, at(2025, time.March, 1, 9)),
		mood("morning", models.MoodCalm, at(2025, time.March, 7, 8)),
		mood("evening", models.MoodJoyful, at(2025, time.March, 7, 17)),
	}
	tasks := []models.TaskEvent{
		openTask("open", "work", at(2025, time.March, 6, 9)),
		doneTask("today", "work", at(2025, time.March, 6, 9), at(2025, time.March, 7, 10)),
		doneTask("yesterday", "work", at(2025, time.March, 6, 9), at(2025, time.March, 6, 10)),
	}

	snap := Today(moods, tasks, now, time.UTC)

	assert.Equal(t, at(2025, time.March, 7, 0), snap.Date)
	assert.Equal(t, "Friday, March 7", snap.Label)
	require.NotNil(t, snap.TodayMood)
	assert.Equal(t, models.MoodJoyful, *snap.TodayMood)
	require.NotNil(t, snap.LastMood)
	assert.Equal(t, models.MoodJoyful, *snap.LastMood)
	assert.Equal(t, 3, snap.EntriesThisWeek)
	assert.Equal(t, 1, snap.PendingTasks)
	assert.Equal(t, 1, snap.CompletedToday)
}

func TestTodayWithoutEntryToday(t *testing.T) {
	now := at(2025, time.March, 7, 18)
	moods := []models.MoodEntry{mood("a", models.MoodSad, at(2025, time.March, 5, 9))}

	snap := Today(moods, nil, now, time.UTC)

	assert.Nil(t, snap.TodayMood)
	require.NotNil(t, snap.LastMood)
	assert.Equal(t, models.MoodSad, *snap.LastMood)
}

func TestTodayEmpty(t *testing.T) {
	snap := Today(nil, nil, at(2025, time.March, 7, 18), time.UTC)

	assert.Nil(t, snap.TodayMood)
	assert.Nil(t, snap.LastMood)
	assert.Zero(t, snap.EntriesThisWeek)
	assert.Zero(t, snap.PendingTasks)
	assert.Zero(t, snap.CompletedToday)
}

func TestTodayWeekSpansCalendarDaysAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Clocks sprang forward on March 9, so seven calendar days is 167 hours
	now := time.Date(2025, time.March, 12, 12, 0, 0, 0, ny)
	beforeCutoff := time.Date(2025, time.March, 5, 11, 30, 0, 0, ny)
	atCutoff := time.Date(2025, time.March, 5, 12, 0, 0, 0, ny)
	require.Less(t, now.Sub(beforeCutoff), 168*time.Hour)

	snap := Today([]models.MoodEntry{mood("a", models.MoodCalm, beforeCutoff)}, nil, now, ny)
	assert.Equal(t, 0, snap.EntriesThisWeek)

	snap = Today([]models.MoodEntry{mood("b", models.MoodCalm, atCutoff)}, nil, now, ny)
	assert.Equal(t, 1, snap.EntriesThisWeek)
}
