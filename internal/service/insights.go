package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JonnyWalker81/wellbeing/backend/internal/cache"
	"github.com/JonnyWalker81/wellbeing/backend/internal/logger"
	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
	"github.com/JonnyWalker81/wellbeing/backend/internal/repository"
	"github.com/JonnyWalker81/wellbeing/backend/internal/wellbeing"
)

// Options are the service defaults, normally taken from the analytics
// config section
type Options struct {
	DefaultWindow wellbeing.Window
	Location      *time.Location
	DisplayLimit  int
	// Now is the clock; nil means time.Now
	Now func() time.Time
}

type insightsService struct {
	moodRepo repository.MoodRepository
	taskRepo repository.TaskRepository
	cache    cache.Cache
	opts     Options
}

// NewInsightsService creates a new insights service. A nil cache disables
// memoization.
func NewInsightsService(moodRepo repository.MoodRepository, taskRepo repository.TaskRepository, c cache.Cache, opts Options) InsightsService {
	if c == nil {
		c = cache.Nop{}
	}
	if !opts.DefaultWindow.Valid() {
		opts.DefaultWindow = wellbeing.WindowWeek
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.DisplayLimit == 0 {
		opts.DisplayLimit = wellbeing.DefaultDisplayLimit
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &insightsService{
		moodRepo: moodRepo,
		taskRepo: taskRepo,
		cache:    c,
		opts:     opts,
	}
}

// GetReport loads the whole history and builds the report, reusing a report
// cached for the same snapshot, parameters and day
func (s *insightsService) GetReport(ctx context.Context, userID string, q Query) (*wellbeing.Report, error) {
	userID, err := ValidateUserID(userID)
	if err != nil {
		return nil, err
	}
	log := logger.Ctx(ctx).With(logger.String("user_id", userID))

	snapshot, err := s.loadSnapshot(ctx, userID, wellbeing.DateRange{})
	if err != nil {
		log.Error("Failed to load snapshot", logger.Err(err))
		return nil, err
	}

	params := s.params(q)

	fingerprint, err := cache.Fingerprint(snapshot)
	if err != nil {
		return nil, err
	}
	key := cache.Key(userID, fingerprint, params)

	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		// A broken cache only costs a recomputation
		log.Warn("Report cache read failed", logger.Err(err))
	}
	if ok {
		log.Debug("Report cache hit", logger.String("key", key))
		// The key pins the calendar day; the clock-dependent fields are
		// recomputed for this request
		report := cached.Restamp(snapshot, params)
		return &report, nil
	}

	start := time.Now()
	report := wellbeing.Build(snapshot, params)
	log.Debug("Report computed",
		logger.Int("window", int(params.Window)),
		logger.String("timezone", report.Timezone),
		logger.Int("mood_entries", len(snapshot.Moods)),
		logger.Int("tasks", len(snapshot.Tasks)),
		logger.Int("classified_days", report.ClassifiedDays),
		logger.String("insight", string(report.Insight.Kind)),
		logger.Duration("duration", time.Since(start)),
	)

	if err := s.cache.Set(ctx, key, &report); err != nil {
		log.Warn("Report cache write failed", logger.Err(err))
	}

	return &report, nil
}

func (s *insightsService) GetTrend(ctx context.Context, userID string, q Query) ([]wellbeing.TrendPoint, error) {
	report, err := s.GetReport(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	return report.Trend, nil
}

func (s *insightsService) GetCorrelations(ctx context.Context, userID string, q Query) (*Correlations, error) {
	report, err := s.GetReport(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	return &Correlations{
		Rows:           report.Correlations,
		ClassifiedDays: report.ClassifiedDays,
		TierCounts:     report.TierCounts,
		Insight:        report.Insight,
	}, nil
}

func (s *insightsService) GetToday(ctx context.Context, userID string, q Query) (wellbeing.DailySnapshot, error) {
	report, err := s.GetReport(ctx, userID, q)
	if err != nil {
		return wellbeing.DailySnapshot{}, err
	}
	return report.Today, nil
}

// GetMoodStats summarizes the entries in q.Range, or the whole history when
// the range is open
func (s *insightsService) GetMoodStats(ctx context.Context, userID string, q Query) (wellbeing.MoodDistribution, error) {
	userID, err := ValidateUserID(userID)
	if err != nil {
		return wellbeing.MoodDistribution{}, err
	}
	if err := q.Range.Validate(); err != nil {
		return wellbeing.MoodDistribution{}, err
	}

	entries, err := s.moodRepo.ListByUser(ctx, userID, q.Range)
	if err != nil {
		logger.Ctx(ctx).Error("Failed to load mood entries", logger.String("user_id", userID), logger.Err(err))
		return wellbeing.MoodDistribution{}, err
	}

	return wellbeing.MoodStats(wellbeing.NormalizeMoods(entries, q.Range)), nil
}

// GetTaskStats summarizes the tasks created in q.Range
func (s *insightsService) GetTaskStats(ctx context.Context, userID string, q Query) (wellbeing.TaskStats, error) {
	userID, err := ValidateUserID(userID)
	if err != nil {
		return wellbeing.TaskStats{}, err
	}
	if err := q.Range.Validate(); err != nil {
		return wellbeing.TaskStats{}, err
	}

	tasks, err := s.taskRepo.ListByUser(ctx, userID, q.Range)
	if err != nil {
		logger.Ctx(ctx).Error("Failed to load tasks", logger.String("user_id", userID), logger.Err(err))
		return wellbeing.TaskStats{}, err
	}

	return wellbeing.TaskSummary(wellbeing.NormalizeTasks(tasks, q.Range)), nil
}

func (s *insightsService) params(q Query) wellbeing.Params {
	p := wellbeing.Params{
		Window:       q.Window,
		Now:          s.opts.Now(),
		Location:     q.Location,
		DisplayLimit: s.opts.DisplayLimit,
	}
	if !p.Window.Valid() {
		p.Window = s.opts.DefaultWindow
	}
	if p.Location == nil {
		p.Location = s.opts.Location
	}
	return p
}

// loadSnapshot fetches both tables concurrently
func (s *insightsService) loadSnapshot(ctx context.Context, userID string, r wellbeing.DateRange) (wellbeing.Snapshot, error) {
	var (
		moods []models.MoodEntry
		tasks []models.TaskEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		moods, err = s.moodRepo.ListByUser(gctx, userID, r)
		if err != nil {
			return fmt.Errorf("failed to load mood entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		tasks, err = s.taskRepo.ListByUser(gctx, userID, r)
		if err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return wellbeing.Snapshot{}, err
	}

	return wellbeing.Snapshot{Moods: moods, Tasks: tasks}, nil
}
