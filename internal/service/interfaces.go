package service

import (
	"context"
	"time"

	"github.com/JonnyWalker81/wellbeing/backend/internal/wellbeing"
)

// Query carries the per-request report parameters. Zero fields fall back to
// the service defaults.
type Query struct {
	Window   wellbeing.Window
	Location *time.Location
	Range    wellbeing.DateRange
}

// Correlations is the correlation table as displayed plus the narrative
// computed from every classified day
type Correlations struct {
	Rows           []wellbeing.CorrelationRow        `json:"rows"`
	ClassifiedDays int                               `json:"classified_days"`
	TierCounts     map[wellbeing.CorrelationTier]int `json:"tier_counts"`
	Insight        wellbeing.Insight                 `json:"insight"`
}

// InsightsService defines the interface for wellbeing analytics
type InsightsService interface {
	GetReport(ctx context.Context, userID string, q Query) (*wellbeing.Report, error)
	GetTrend(ctx context.Context, userID string, q Query) ([]wellbeing.TrendPoint, error)
	GetCorrelations(ctx context.Context, userID string, q Query) (*Correlations, error)
	GetMoodStats(ctx context.Context, userID string, q Query) (wellbeing.MoodDistribution, error)
	GetTaskStats(ctx context.Context, userID string, q Query) (wellbeing.TaskStats, error)
	GetToday(ctx context.Context, userID string, q Query) (wellbeing.DailySnapshot, error)
}
