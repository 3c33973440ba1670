package wellbeing

import (
	"maps"
	"slices"
	"time"

	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
)

// Snapshot is an immutable view of one user's records at a point in time
type Snapshot struct {
	Moods []models.MoodEntry
	Tasks []models.TaskEvent
}

// Params are the scalar inputs of a report
type Params struct {
	Window       Window
	Now          time.Time
	Location     *time.Location
	DisplayLimit int
}

// Report bundles every derived value for one snapshot
type Report struct {
	Window           Window                  `json:"window"`
	Timezone         string                  `json:"timezone"`
	GeneratedAt      time.Time               `json:"generated_at"`
	Trend            []TrendPoint            `json:"trend"`
	Correlations     []CorrelationRow        `json:"correlations"`
	ClassifiedDays   int                     `json:"classified_days"`
	TierCounts       map[CorrelationTier]int `json:"tier_counts"`
	Insight          Insight                 `json:"insight"`
	WindowMoods      MoodDistribution        `json:"window_moods"`
	WindowCategories CategoryBreakdown       `json:"window_categories"`
	Moods            MoodDistribution        `json:"moods"`
	Tasks            TaskStats               `json:"tasks"`
	Today            DailySnapshot           `json:"today"`
}

// Build runs the whole pipeline. The narrative and tier counts always use
// every classified day; only Correlations is cut to the display limit.
func Build(s Snapshot, p Params) Report {
	now, loc := p.clock()

	moods := NormalizeMoods(s.Moods, DateRange{})
	tasks := NormalizeTasks(s.Tasks, DateRange{})

	agg := Aggregate(moods, tasks, p.Window, now, loc)
	rows := Classify(agg.Buckets)

	r := Report{
		Window:           p.Window,
		Timezone:         loc.String(),
		Trend:            agg.TrendSeries(),
		Correlations:     Limit(rows, p.DisplayLimit),
		ClassifiedDays:   len(rows),
		TierCounts:       TierCounts(rows),
		Insight:          Narrate(rows),
		WindowMoods:      MoodStats(agg.WindowMoods()),
		WindowCategories: agg.Categories,
		Moods:            MoodStats(moods),
		Tasks:            TaskSummary(tasks),
	}
	r.stamp(moods, tasks, now, loc)
	return r
}

// Restamp returns a copy of r with GeneratedAt and Today recomputed for
// p.Now. Every other field depends only on the snapshot, the window, the
// zone and the calendar day of p.Now, so restamping a report built earlier
// the same day from the same snapshot yields Build(s, p).
func (r Report) Restamp(s Snapshot, p Params) Report {
	now, loc := p.clock()
	out := r.Clone()
	out.stamp(NormalizeMoods(s.Moods, DateRange{}), NormalizeTasks(s.Tasks, DateRange{}), now, loc)
	return out
}

func (r *Report) stamp(moods []models.MoodEntry, tasks []models.TaskEvent, now time.Time, loc *time.Location) {
	r.GeneratedAt = now
	r.Today = Today(moods, tasks, now, loc)
}

func (p Params) clock() (time.Time, *time.Location) {
	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}
	return now, resolveLocation(p.Location, now)
}

// Clone returns a copy of r that shares no slices, maps or pointers with it
func (r Report) Clone() Report {
	out := r
	out.Trend = slices.Clone(r.Trend)
	out.Correlations = slices.Clone(r.Correlations)
	out.TierCounts = maps.Clone(r.TierCounts)
	out.WindowMoods = r.WindowMoods.clone()
	out.WindowCategories = maps.Clone(r.WindowCategories)
	out.Moods = r.Moods.clone()
	out.Tasks.Categories = maps.Clone(r.Tasks.Categories)
	out.Today.TodayMood = clonePtr(r.Today.TodayMood)
	out.Today.LastMood = clonePtr(r.Today.LastMood)
	return out
}

func (d MoodDistribution) clone() MoodDistribution {
	d.Moods = slices.Clone(d.Moods)
	d.MostFrequent = clonePtr(d.MostFrequent)
	return d
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
