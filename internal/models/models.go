package models

import (
	"strings"
	"time"
)

// UncategorizedCategory is the bucket used for tasks without a category
const UncategorizedCategory = "uncategorized"

// MoodEntry represents a row from the mood_entries table.
// The sentiment/emotion/wellness fields are filled in later by the text
// analysis collaborator and may be absent.
type MoodEntry struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Mood           MoodLabel `json:"mood"`
	JournalText    *string   `json:"journal_text,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	Sentiment      *string   `json:"sentiment,omitempty"`
	SentimentScore *float64  `json:"sentiment_score,omitempty"`
	Emotion        *string   `json:"emotion,omitempty"`
	EmotionScore   *float64  `json:"emotion_score,omitempty"`
	WellnessTip    *string   `json:"wellness_tip,omitempty"`
}

// Timestamp returns the creation time of the entry
func (e MoodEntry) Timestamp() time.Time {
	return e.CreatedAt
}

// TaskEvent represents a row from the tasks table
type TaskEvent struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Timestamp returns the creation time of the task
func (t TaskEvent) Timestamp() time.Time {
	return t.CreatedAt
}

// CategoryName returns the task category, folding missing or blank
// categories into UncategorizedCategory.
func (t TaskEvent) CategoryName() string {
	if t.Category == nil {
		return UncategorizedCategory
	}
	name := strings.TrimSpace(*t.Category)
	if name == "" {
		return UncategorizedCategory
	}
	return name
}

// CompletionTime returns when the task was completed. The second value is
// false unless the task is completed and carries a completion timestamp.
func (t TaskEvent) CompletionTime() (time.Time, bool) {
	if !t.Completed || t.CompletedAt == nil {
		return time.Time{}, false
	}
	return *t.CompletedAt, true
}

// Consistent reports whether completed and completed_at agree
func (t TaskEvent) Consistent() bool {
	return t.Completed == (t.CompletedAt != nil)
}
