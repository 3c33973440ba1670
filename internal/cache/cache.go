// Package cache memoizes computed reports. A report is a pure function of
// the snapshot and its parameters, so an entry never needs invalidation:
// any change to the user's records changes the snapshot fingerprint and
// therefore the key.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JonnyWalker81/wellbeing/backend/internal/logger"
	"github.com/JonnyWalker81/wellbeing/backend/internal/wellbeing"
)

// Supported drivers
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverNone   = "none"
)

// ErrUnknownDriver is returned by New for an unsupported driver name
var ErrUnknownDriver = errors.New("unknown cache driver")

// fingerprintNamespace scopes snapshot fingerprints
var fingerprintNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://wellbeing.app/snapshot"))

// Cache stores reports by key. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) (*wellbeing.Report, bool, error)
	Set(ctx context.Context, key string, report *wellbeing.Report) error
}

// Config selects and tunes the cache backend
type Config struct {
	Driver        string
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// New builds the cache named by cfg.Driver
func New(cfg Config, log logger.Logger) (Cache, error) {
	switch cfg.Driver {
	case DriverMemory, "":
		log.Info("Using in-memory report cache", logger.Duration("ttl", cfg.TTL))
		return NewMemory(cfg.TTL), nil
	case DriverRedis:
		c, err := DialRedis(cfg)
		if err != nil {
			return nil, err
		}
		log.Info("Using redis report cache",
			logger.String("addr", cfg.RedisAddr),
			logger.Int("db", cfg.RedisDB),
			logger.Duration("ttl", cfg.TTL),
		)
		return c, nil
	case DriverNone:
		log.Info("Report cache disabled")
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Fingerprint identifies the content of a snapshot. Two snapshots with the
// same records in the same order share a fingerprint.
func Fingerprint(s wellbeing.Snapshot) (string, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return uuid.NewSHA1(fingerprintNamespace, body).String(), nil
}

// Key builds the cache key for one report. The reference day is taken in
// p.Location so reports roll over at the user's midnight.
func Key(userID, fingerprint string, p wellbeing.Params) string {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	day := p.Now.In(loc).Format(time.DateOnly)
	return fmt.Sprintf("wellbeing:report:%s:%s:%d:%s:%s:%d", userID, fingerprint, p.Window, loc.String(), day, p.DisplayLimit)
}

// Nop never stores anything
type Nop struct{}

func (Nop) Get(context.Context, string) (*wellbeing.Report, bool, error) { return nil, false, nil }

func (Nop) Set(context.Context, string, *wellbeing.Report) error { return nil }
