package wellbeing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
)

func TestNarrate(t *testing.T) {
	tests := []struct {
		name string
		rows []CorrelationRow
		want InsightKind
	}{
		{"no rows", nil, InsightInsufficientData},
		{"only neutral and positive", []CorrelationRow{{Tier: TierNeutral}, {Tier: TierPositive}}, InsightInsufficientData},
		{"negative day", []CorrelationRow{{Tier: TierNeutral}, {Tier: TierNegative}}, InsightTaskMoodNegative},
		{"strong positive wins over negative", []CorrelationRow{{Tier: TierNegative}, {Tier: TierStrongPositive}}, InsightTaskMoodPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Narrate(tt.rows)
			assert.Equal(t, tt.want, got.Kind)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestNarrateStrongDay(t *testing.T) {
	day := at(2025, time.March, 10, 0)
	entries := []models.MoodEntry{
		mood("a", models.MoodCalm, day.Add(9*time.Hour)),
		mood("b", models.MoodCalm, day.Add(18*time.Hour)),
	}
	var tasks []models.TaskEvent
	for _, id := range []string{"1", "2", "3"} {
		tasks = append(tasks, doneTask(id, "work", day.Add(8*time.Hour), day.Add(10*time.Hour)))
	}

	agg := Aggregate(entries, tasks, WindowWeek, day.Add(20*time.Hour), time.UTC)
	rows := Classify(agg.Buckets)

	assert.Equal(t, TierStrongPositive, rows[0].Tier)
	assert.Equal(t, NewInsight(InsightTaskMoodPositive), Narrate(rows))
}

func TestNewInsightMessagesAreDistinct(t *testing.T) {
	seen := map[string]InsightKind{}
	for _, kind := range []InsightKind{InsightTaskMoodPositive, InsightTaskMoodNegative, InsightInsufficientData} {
		insight := NewInsight(kind)
		assert.Equal(t, kind, insight.Kind)
		_, dup := seen[insight.Message]
		assert.False(t, dup, "message for %s reused", kind)
		seen[insight.Message] = kind
	}

	assert.Equal(t, InsightInsufficientData, NewInsight("bogus").Kind)
}
