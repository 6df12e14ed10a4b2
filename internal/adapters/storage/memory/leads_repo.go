package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"yardura-service/internal/domain/leads"
)

type leadRepo struct {
	mu   sync.RWMutex
	byID map[string]leads.Lead
}

func NewLeadRepo() leads.Repository {
	return &leadRepo{
		byID: make(map[string]leads.Lead),
	}
}

func (r *leadRepo) Create(ctx context.Context, l leads.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.ID == "" {
		return errors.New("lead id required")
	}
	if _, exists := r.byID[l.ID]; exists {
		return errors.New("lead already exists")
	}
	r.byID[l.ID] = l
	return nil
}

func (r *leadRepo) Update(ctx context.Context, l leads.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.ID == "" {
		return errors.New("lead id required")
	}
	if _, exists := r.byID[l.ID]; !exists {
		return ErrNotFound
	}
	r.byID[l.ID] = l
	return nil
}

func (r *leadRepo) GetByID(ctx context.Context, id string) (leads.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return leads.Lead{}, ErrNotFound
	}
	return l, nil
}

func (r *leadRepo) List(ctx context.Context, filter leads.ListFilter) ([]leads.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	out := make([]leads.Lead, 0)
	for _, l := range r.byID {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.AssigneeID != "" && l.AssigneeID != filter.AssigneeID {
			continue
		}
		out = append(out, l)
	}

	// Más recientes primero: el equipo trabaja la cola de arriba hacia abajo.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
