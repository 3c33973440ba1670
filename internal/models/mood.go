package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMood is returned when a mood label is outside the fixed set
var ErrUnknownMood = errors.New("unknown mood label")

// MoodLabel is one of the six moods a user can log
type MoodLabel string

const (
	MoodAngry   MoodLabel = "angry"
	MoodSad     MoodLabel = "sad"
	MoodAnxious MoodLabel = "anxious"
	MoodNeutral MoodLabel = "neutral"
	MoodCalm    MoodLabel = "calm"
	MoodJoyful  MoodLabel = "joyful"
)

// NeutralOrdinal is the score used for labels outside the known set
const NeutralOrdinal = 3

// moodLabels is the canonical order; the index of each label is its ordinal.
var moodLabels = [...]MoodLabel{
	MoodAngry,
	MoodSad,
	MoodAnxious,
	MoodNeutral,
	MoodCalm,
	MoodJoyful,
}

// MoodLabels returns all mood labels in canonical order (angry first)
func MoodLabels() []MoodLabel {
	labels := make([]MoodLabel, len(moodLabels))
	copy(labels, moodLabels[:])
	return labels
}

// ParseMoodLabel converts a raw string to a MoodLabel
func ParseMoodLabel(s string) (MoodLabel, error) {
	m := MoodLabel(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMood, s)
	}
	return m, nil
}

// Valid reports whether m is one of the six known labels
func (m MoodLabel) Valid() bool {
	_, ok := m.index()
	return ok
}

// Ordinal returns the position of m on the 0-5 mood scale.
// Unknown labels score as neutral.
func (m MoodLabel) Ordinal() int {
	if i, ok := m.index(); ok {
		return i
	}
	return NeutralOrdinal
}

func (m MoodLabel) index() (int, bool) {
	for i, label := range moodLabels {
		if label == m {
			return i, true
		}
	}
	return 0, false
}

// String returns the label value
func (m MoodLabel) String() string {
	return string(m)
}

// MoodFromScore maps an average daily score back to the nearest mood label
func MoodFromScore(avg float64) MoodLabel {
	switch {
	case avg >= 4.5:
		return MoodJoyful
	case avg >= 3.5:
		return MoodCalm
	case avg >= 2.5:
		return MoodNeutral
	case avg >= 1.5:
		return MoodAnxious
	case avg >= 0.5:
		return MoodSad
	default:
		return MoodAngry
	}
}
