package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Record is one successful generation as remembered by the journal.
type Record struct {
	Timestamp        time.Time `json:"timestamp"`
	ProgramName      string    `json:"program_name"`
	TargetAudience   string    `json:"target_audience"`
	Localized        bool      `json:"localized"`
	AdCopy1          string    `json:"ad_copy_1"`
	AdCopy2          string    `json:"ad_copy_2"`
	CreativeBrief    string    `json:"creative_brief"`
	PerformanceScore float64   `json:"performance_score"`
}

// Journal is a bounded JSON-file-backed log. Once the bound is reached
// the oldest entries are dropped.
type Journal[T any] struct {
	mu    sync.RWMutex
	items []T
	path  string
	limit int
}

// NewJournal opens the journal at path, loading any existing entries.
// An unreadable or corrupt file starts the journal empty.
func NewJournal[T any](path string, limit int) *Journal[T] {
	j := &Journal[T]{
		path:  path,
		limit: limit,
	}
	j.load()
	return j
}

func (j *Journal[T]) Append(item T) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.items = append(j.items, item)
	if j.limit > 0 && len(j.items) > j.limit {
		j.items = j.items[len(j.items)-j.limit:]
	}
	return j.save()
}

// Recent returns up to n entries, newest first. n <= 0 returns all.
func (j *Journal[T]) Recent(n int) []T {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if n <= 0 || n > len(j.items) {
		n = len(j.items)
	}

	out := make([]T, 0, n)
	for i := len(j.items) - 1; i >= len(j.items)-n; i-- {
		out = append(out, j.items[i])
	}
	return out
}

func (j *Journal[T]) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.items)
}

func (j *Journal[T]) Clear() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.items = nil
	return j.save()
}

func (j *Journal[T]) load() {
	data, err := os.ReadFile(j.path)
	if err != nil {
		return
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return
	}
	j.items = items
}

func (j *Journal[T]) save() error {
	data, err := json.MarshalIndent(j.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(j.path), 0755); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}
	if err := os.WriteFile(j.path, data, 0644); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}
