package repository

import (
	"context"
	"errors"
	"net/url"

	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
	"github.com/JonnyWalker81/wellbeing/backend/internal/wellbeing"
)

// ErrUpstream wraps every failure talking to the record store
var ErrUpstream = errors.New("record store unavailable")

// pageSize is the number of rows requested per PostgREST call
const pageSize = 1000

// Querier runs PostgREST selects. *supabase.Client satisfies it.
type Querier interface {
	Query(ctx context.Context, table string, query url.Values) ([]byte, error)
}

// MoodRepository loads a user's mood entries, newest first
type MoodRepository interface {
	ListByUser(ctx context.Context, userID string, r wellbeing.DateRange) ([]models.MoodEntry, error)
}

// TaskRepository loads a user's tasks, newest first
type TaskRepository interface {
	ListByUser(ctx context.Context, userID string, r wellbeing.DateRange) ([]models.TaskEvent, error)
}
