package wellbeing

import (
	"iter"
	"time"

	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
)

// TrendPoint is one day of the mood line. A gap score means no entries
// that day; charts must break the line there rather than interpolate.
type TrendPoint struct {
	Date  time.Time    `json:"date"`
	Label string       `json:"label"`
	Score models.Score `json:"score"`
}

// Trend yields one point per bucket, oldest first. The sequence reads the
// aggregation on every iteration, so it can be ranged over repeatedly.
func (a Aggregation) Trend() iter.Seq[TrendPoint] {
	return func(yield func(TrendPoint) bool) {
		for _, b := range a.Buckets {
			if !yield(TrendPoint{Date: b.Date, Label: b.Label, Score: b.MoodAverage}) {
				return
			}
		}
	}
}

// TrendSeries collects Trend into a slice
func (a Aggregation) TrendSeries() []TrendPoint {
	points := make([]TrendPoint, 0, len(a.Buckets))
	for p := range a.Trend() {
		points = append(points, p)
	}
	return points
}
