package wellbeing

import (
	"sort"
	"time"

	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
)

// DayLabelLayout formats bucket labels, e.g. "Mar 7"
const DayLabelLayout = "Jan 2"

// DailyBucket holds everything recorded on one calendar day of a window
type DailyBucket struct {
	Date           time.Time          `json:"date"`
	Label          string             `json:"label"`
	Moods          []models.MoodEntry `json:"-"`
	MoodCount      int                `json:"mood_count"`
	MoodAverage    models.Score       `json:"mood_average"`
	CompletedTasks int                `json:"completed_tasks"`
}

// HasMood reports whether at least one mood entry was logged that day
func (b DailyBucket) HasMood() bool {
	return b.MoodAverage.Valid
}

// CategoryCount tracks how many tasks of a category exist and are done
type CategoryCount struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// Pending returns the number of open tasks in the category
func (c CategoryCount) Pending() int {
	return c.Total - c.Completed
}

// CategoryBreakdown maps category name to its counts
type CategoryBreakdown map[string]CategoryCount

// Names returns the category names sorted alphabetically
func (cb CategoryBreakdown) Names() []string {
	names := make([]string, 0, len(cb))
	for name := range cb {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (cb CategoryBreakdown) add(task models.TaskEvent) {
	name := task.CategoryName()
	count := cb[name]
	count.Total++
	if task.Completed {
		count.Completed++
	}
	cb[name] = count
}

// Aggregation is the result of bucketing a snapshot into a window
type Aggregation struct {
	Window     Window            `json:"window"`
	Buckets    []DailyBucket     `json:"buckets"`
	Categories CategoryBreakdown `json:"categories"`
}

// Aggregate buckets moods and task completions into one slot per calendar
// day, from today-(window-1) through today, oldest first. Day boundaries
// are taken in loc; a nil loc means today's own location.
//
// Mood entries land on the day they were created. A task counts toward a
// day's completions only when it is completed and completed_at falls on
// that day. Categories cover every task created inside the window.
func Aggregate(moods []models.MoodEntry, tasks []models.TaskEvent, window Window, today time.Time, loc *time.Location) Aggregation {
	loc = resolveLocation(loc, today)

	agg := Aggregation{
		Window:     window,
		Buckets:    []DailyBucket{},
		Categories: CategoryBreakdown{},
	}

	days := window.Days()
	if days <= 0 {
		return agg
	}

	agg.Buckets = make([]DailyBucket, days)
	index := make(map[dayKey]int, days)

	y, m, d := today.In(loc).Date()
	for i := 0; i < days; i++ {
		date := time.Date(y, m, d-(days-1-i), 0, 0, 0, 0, loc)
		agg.Buckets[i] = DailyBucket{
			Date:        date,
			Label:       date.Format(DayLabelLayout),
			MoodAverage: models.Gap(),
		}
		index[keyOf(date, loc)] = i
	}

	sums := make([]int, days)
	for _, entry := range moods {
		i, ok := index[keyOf(entry.CreatedAt, loc)]
		if !ok {
			continue
		}
		agg.Buckets[i].Moods = append(agg.Buckets[i].Moods, entry)
		sums[i] += entry.Mood.Ordinal()
	}

	for _, task := range tasks {
		if doneAt, ok := task.CompletionTime(); ok {
			if i, ok := index[keyOf(doneAt, loc)]; ok {
				agg.Buckets[i].CompletedTasks++
			}
		}
		if _, ok := index[keyOf(task.CreatedAt, loc)]; ok {
			agg.Categories.add(task)
		}
	}

	for i := range agg.Buckets {
		n := len(agg.Buckets[i].Moods)
		agg.Buckets[i].MoodCount = n
		if n > 0 {
			agg.Buckets[i].MoodAverage = models.ScoreOf(float64(sums[i]) / float64(n))
		}
	}

	return agg
}

// WindowMoods returns every mood entry that fell inside the window,
// most recent first.
func (a Aggregation) WindowMoods() []models.MoodEntry {
	var entries []models.MoodEntry
	for _, b := range a.Buckets {
		entries = append(entries, b.Moods...)
	}
	return NormalizeMoods(entries, DateRange{})
}
