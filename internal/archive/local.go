package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) SaveRound(ctx context.Context, round Round) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	data, err := json.MarshalIndent(round, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode round: %w", err)
	}

	path := filepath.Join(s.dir, roundName(round.CreatedAt))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write round file: %w", err)
	}

	return path, nil
}

// Recent lists round file names, newest first. Timestamped names sort
// lexicographically in chronological order.
func (s *LocalStore) Recent(ctx context.Context, n int) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read archive directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if n > 0 && len(names) > n {
		names = names[:n]
	}
	return names, nil
}

func roundName(created time.Time) string {
	if created.IsZero() {
		created = time.Now()
	}
	return fmt.Sprintf("round_%s.json", created.Format("20060102_150405"))
}
