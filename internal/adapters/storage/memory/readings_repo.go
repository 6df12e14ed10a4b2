package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"yardura-service/internal/domain/readings"
)

type readingRepo struct {
	mu   sync.RWMutex
	byID map[string]readings.Reading
}

func NewReadingRepo() readings.Repository {
	return &readingRepo{
		byID: make(map[string]readings.Reading),
	}
}

func (r *readingRepo) Create(ctx context.Context, rd readings.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rd.ID == "" {
		return errors.New("reading id required")
	}
	if _, exists := r.byID[rd.ID]; exists {
		return errors.New("reading already exists")
	}

	r.byID[rd.ID] = rd
	return nil
}

func (r *readingRepo) GetByID(ctx context.Context, id string) (readings.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rd, ok := r.byID[id]
	if !ok {
		return readings.Reading{}, ErrNotFound
	}
	return rd, nil
}

func (r *readingRepo) ListByDog(ctx context.Context, dogID string, filter readings.ListFilter) ([]readings.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}

	out := make([]readings.Reading, 0)

	for _, rd := range r.byID {
		if rd.DogID != dogID {
			continue
		}

		// Source filter
		if len(filter.Sources) > 0 {
			ok := false
			for _, s := range filter.Sources {
				if rd.Source == s {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}

		// Date filters (occurred_at)
		if filter.From != nil {
			if rd.OccurredAt.Before((*filter.From).Add(-1 * time.Nanosecond)) {
				continue
			}
		}
		if filter.To != nil {
			if rd.OccurredAt.After(*filter.To) {
				continue
			}
		}

		out = append(out, rd)
	}

	// Orden por occurred_at desc (más reciente primero)
	sort.Slice(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *readingRepo) Void(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rd, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	rd.Status = readings.StatusVoided
	r.byID[id] = rd
	return nil
}
