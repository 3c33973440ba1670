package wellbeing

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
)

func TestBuildNarrativeUsesEveryClassifiedDay(t *testing.T) {
	now := at(2025, time.March, 20, 20)
	var moods []models.MoodEntry
	var tasks []models.TaskEvent

	// Ten recent neutral days with no completions
	for d := 11; d <= 20; d++ {
		moods = append(moods, mood("n"+strconv.Itoa(d), models.MoodNeutral, at(2025, time.March, d, 9)))
	}
	// One strong day further back than the display limit reaches
	strong := at(2025, time.March, 2, 9)
	moods = append(moods, mood("strong", models.MoodJoyful, strong))
	tasks = append(tasks,
		doneTask("a", "work", strong, strong.Add(time.Hour)),
		doneTask("b", "work", strong, strong.Add(2*time.Hour)),
	)

	report := Build(Snapshot{Moods: moods, Tasks: tasks}, Params{
		Window:       WindowMonth,
		Now:          now,
		Location:     time.UTC,
		DisplayLimit: DefaultDisplayLimit,
	})

	require.Len(t, report.Correlations, DefaultDisplayLimit)
	for _, row := range report.Correlations {
		assert.Equal(t, TierNeutral, row.Tier)
	}
	assert.Equal(t, 11, report.ClassifiedDays)
	assert.Equal(t, 1, report.TierCounts[TierStrongPositive])
	assert.Equal(t, InsightTaskMoodPositive, report.Insight.Kind)
}

func TestBuildReport(t *testing.T) {
	now := at(2025, time.March, 10, 20)
	snapshot := Snapshot{
		Moods: []models.MoodEntry{
			mood("old", models.MoodSad, at(2024, time.December, 1, 9)),
			mood("a", models.MoodCalm, at(2025, time.March, 9, 9)),
			mood("b", models.MoodJoyful, at(2025, time.March, 10, 9)),
		},
		Tasks: []models.TaskEvent{
			doneTask("1", "health", at(2025, time.March, 10, 8), at(2025, time.March, 10, 9)),
			openTask("2", "work", at(2025, time.March, 10, 8)),
		},
	}

	report := Build(snapshot, Params{Window: WindowWeek, Now: now, Location: time.UTC})

	assert.Equal(t, WindowWeek, report.Window)
	assert.Equal(t, "UTC", report.Timezone)
	assert.Equal(t, now, report.GeneratedAt)
	assert.Len(t, report.Trend, 7)
	assert.Len(t, report.Correlations, 2)
	assert.Equal(t, 2, report.WindowMoods.Total)
	assert.Equal(t, 3, report.Moods.Total)
	assert.Equal(t, 2, report.Tasks.Total)
	assert.Equal(t, CategoryBreakdown{
		"health": {Total: 1, Completed: 1},
		"work":   {Total: 1},
	}, report.WindowCategories)
	require.NotNil(t, report.Today.TodayMood)
	assert.Equal(t, models.MoodJoyful, *report.Today.TodayMood)
}

func TestBuildIsDeterministic(t *testing.T) {
	now := at(2025, time.March, 10, 20)
	snapshot := Snapshot{
		Moods: []models.MoodEntry{
			mood("b", models.MoodJoyful, at(2025, time.March, 10, 9)),
			mood("a", models.MoodCalm, at(2025, time.March, 9, 9)),
		},
	}
	params := Params{Window: WindowWeek, Now: now, Location: time.UTC, DisplayLimit: 3}

	assert.Equal(t, Build(snapshot, params), Build(snapshot, params))
}

func TestRestampMatchesBuildLaterTheSameDay(t *testing.T) {
	t0 := at(2025, time.March, 10, 20)
	later := t0.Add(2 * time.Minute)
	edge := t0.AddDate(0, 0, -7).Add(time.Minute)

	snapshot := Snapshot{
		Moods: []models.MoodEntry{
			mood("edge", models.MoodCalm, edge),
			mood("today", models.MoodJoyful, at(2025, time.March, 10, 9)),
		},
		Tasks: []models.TaskEvent{
			doneTask("1", "work", at(2025, time.March, 10, 8), t0.Add(time.Minute)),
		},
	}
	params := Params{Window: WindowWeek, Now: t0, Location: time.UTC, DisplayLimit: DefaultDisplayLimit}

	first := Build(snapshot, params)
	require.Equal(t, 2, first.Today.EntriesThisWeek)

	params.Now = later
	restamped := first.Restamp(snapshot, params)

	assert.Equal(t, Build(snapshot, params), restamped)
	assert.Equal(t, 1, restamped.Today.EntriesThisWeek)
	assert.Equal(t, later, restamped.GeneratedAt)

	// The original is untouched
	assert.Equal(t, t0, first.GeneratedAt)
	assert.Equal(t, 2, first.Today.EntriesThisWeek)
}

func TestCloneSharesNothing(t *testing.T) {
	now := at(2025, time.March, 10, 20)
	report := Build(Snapshot{
		Moods: []models.MoodEntry{mood("a", models.MoodCalm, at(2025, time.March, 10, 9))},
		Tasks: []models.TaskEvent{doneTask("1", "work", at(2025, time.March, 10, 8), at(2025, time.March, 10, 9))},
	}, Params{Window: WindowWeek, Now: now, Location: time.UTC})

	clone := report.Clone()
	require.Equal(t, report, clone)

	clone.Trend[0].Label = "changed"
	clone.Correlations[0].Tier = TierNegative
	clone.TierCounts[TierNegative] = 99
	clone.Moods.Moods[0].Count = 99
	*clone.Moods.MostFrequent = models.MoodAngry
	clone.WindowCategories["work"] = CategoryCount{Total: 99}
	clone.Tasks.Categories["work"] = CategoryCount{Total: 99}
	*clone.Today.LastMood = models.MoodAngry

	assert.NotEqual(t, "changed", report.Trend[0].Label)
	assert.Equal(t, TierPositive, report.Correlations[0].Tier)
	assert.Zero(t, report.TierCounts[TierNegative])
	assert.Zero(t, report.Moods.Moods[0].Count)
	assert.Equal(t, models.MoodCalm, *report.Moods.MostFrequent)
	assert.Equal(t, 1, report.WindowCategories["work"].Total)
	assert.Equal(t, 1, report.Tasks.Categories["work"].Total)
	assert.Equal(t, models.MoodCalm, *report.Today.LastMood)
}
