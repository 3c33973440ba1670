package wellbeing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
)

func TestTrendAllGapsWithoutEntries(t *testing.T) {
	agg := Aggregate(nil, nil, WindowMonth, at(2025, time.March, 10, 12), time.UTC)

	points := agg.TrendSeries()
	assert.Len(t, points, 30)
	for _, p := range points {
		assert.True(t, p.Score.IsGap(), "day %s", p.Label)
	}
}

func TestTrendIsRestartable(t *testing.T) {
	entries := []models.MoodEntry{
		mood("a", models.MoodCalm, at(2025, time.March, 8, 8)),
		mood("b", models.MoodSad, at(2025, time.March, 10, 8)),
	}
	agg := Aggregate(entries, nil, WindowWeek, at(2025, time.March, 10, 12), time.UTC)
	seq := agg.Trend()

	var first, second []TrendPoint
	for p := range seq {
		first = append(first, p)
	}
	for p := range seq {
		second = append(second, p)
	}

	assert.Len(t, first, 7)
	assert.Equal(t, first, second)
	assert.Equal(t, first, agg.TrendSeries())
}

func TestTrendStopsWhenConsumerBreaks(t *testing.T) {
	agg := Aggregate(nil, nil, WindowQuarter, at(2025, time.March, 10, 12), time.UTC)

	n := 0
	for range agg.Trend() {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestTrendPointJSONMarksGapsAsNull(t *testing.T) {
	entries := []models.MoodEntry{mood("a", models.MoodAngry, at(2025, time.March, 10, 8))}
	agg := Aggregate(entries, nil, 2, at(2025, time.March, 10, 12), time.UTC)
	points := agg.TrendSeries()

	gap, err := points[0].Score.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "null", string(gap))

	angry, err := points[1].Score.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "0", string(angry))
}
