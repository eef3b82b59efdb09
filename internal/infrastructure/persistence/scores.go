// Package persistence stores best scores between runs.
package persistence

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/quasilyte/gdata"
)

const scoresKey = "best_scores"

// ItemStore is a key/value blob store; *gdata.Manager satisfies it
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Scores keeps the best score per level name
type Scores struct {
	store ItemStore
	best  map[string]int
}

// Open opens the per-user data directory of the application
func Open(appName string) (*Scores, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return NewScores(m), nil
}

// NewScores creates a score table over store
func NewScores(store ItemStore) *Scores {
	return &Scores{store: store}
}

// Best returns the best score recorded for level, 0 if none
func (s *Scores) Best(level string) (int, error) {
	if err := s.load(); err != nil {
		return 0, err
	}
	return s.best[level], nil
}

// Submit records score if it beats the stored best and reports whether it did.
// The table is only updated once the store accepted it.
func (s *Scores) Submit(level string, score int) (bool, error) {
	if err := s.load(); err != nil {
		return false, err
	}
	if prev, ok := s.best[level]; ok && prev >= score {
		return false, nil
	}

	next := maps.Clone(s.best)
	next[level] = score
	data, err := json.Marshal(next)
	if err != nil {
		return false, fmt.Errorf("encode scores: %w", err)
	}
	if err := s.store.SaveItem(scoresKey, data); err != nil {
		return false, fmt.Errorf("save scores: %w", err)
	}
	s.best = next
	return true, nil
}

func (s *Scores) load() error {
	if s.best != nil {
		return nil
	}
	data, err := s.store.LoadItem(scoresKey)
	if err != nil {
		return fmt.Errorf("load scores: %w", err)
	}
	best := map[string]int{}
	if data != nil {
		if err := json.Unmarshal(data, &best); err != nil {
			return fmt.Errorf("parse scores: %w", err)
		}
	}
	s.best = best
	return nil
}
