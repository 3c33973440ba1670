package cache

import (
	"context"
	"sync"
	"time"

	"github.com/JonnyWalker81/wellbeing/backend/internal/wellbeing"
)

type memoryEntry struct {
	report    wellbeing.Report
	expiresAt time.Time
}

// Memory is a process-local cache with a fixed TTL. Reports are copied on
// the way in and out, so callers never share state with the cache or with
// each other.
type Memory struct {
	mu        sync.RWMutex
	ttl       time.Duration
	entries   map[string]memoryEntry
	nextSweep time.Time
	now       func() time.Time
}

// NewMemory creates an in-memory cache. A non-positive ttl keeps entries
// for the life of the process.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) (*wellbeing.Report, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if m.expired(entry, m.now()) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false, nil
	}
	report := entry.report.Clone()
	return &report, true, nil
}

// Set stores a copy of report. Keys embed the snapshot fingerprint and the
// day, so superseded entries are never read again; Set sweeps them out at
// most once per ttl.
func (m *Memory) Set(_ context.Context, key string, report *wellbeing.Report) error {
	now := m.now()
	entry := memoryEntry{report: report.Clone()}
	if m.ttl > 0 {
		entry.expiresAt = now.Add(m.ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ttl > 0 && !now.Before(m.nextSweep) {
		m.sweep(now)
		m.nextSweep = now.Add(m.ttl)
	}
	m.entries[key] = entry
	return nil
}

// sweep drops expired entries; m.mu must be held
func (m *Memory) sweep(now time.Time) int {
	removed := 0
	for key, entry := range m.entries {
		if m.expired(entry, now) {
			delete(m.entries, key)
			removed++
		}
	}
	return removed
}

func (m *Memory) size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memory) expired(e memoryEntry, now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}
