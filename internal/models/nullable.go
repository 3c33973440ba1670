package models

import (
	"encoding/json"
)

// Score is a daily mood score that can be absent.
//   - No mood entries that day: Valid=false (a gap, serialized as null)
//   - At least one entry:        Valid=true, Value is the mean ordinal
//
// A gap is never the same thing as a score of 0 (angry), which is why this
// is not a plain float64.
type Score struct {
	Value float64
	Valid bool
}

// ScoreOf returns a present score
func ScoreOf(v float64) Score {
	return Score{Value: v, Valid: true}
}

// Gap returns the "no data" marker
func Gap() Score {
	return Score{}
}

// IsGap reports whether the score marks a day without data
func (s Score) IsGap() bool {
	return !s.Valid
}

// MarshalJSON implements custom JSON marshaling for Score.
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// UnmarshalJSON implements custom JSON unmarshaling for Score.
func (s *Score) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Score{}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = ScoreOf(v)
	return nil
}
