package memory

import (
	"context"
	"errors"
	"sync"

	"yardura-service/internal/domain/quotes"
)

type quoteRepo struct {
	mu   sync.RWMutex
	byID map[string]quotes.Quote
}

func NewQuoteRepo() quotes.Repository {
	return &quoteRepo{
		byID: make(map[string]quotes.Quote),
	}
}

func (r *quoteRepo) Create(ctx context.Context, q quotes.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if q.ID == "" {
		return errors.New("quote id required")
	}
	if _, exists := r.byID[q.ID]; exists {
		return errors.New("quote already exists")
	}
	r.byID[q.ID] = q
	return nil
}

func (r *quoteRepo) GetByID(ctx context.Context, id string) (quotes.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.byID[id]
	if !ok {
		return quotes.Quote{}, ErrNotFound
	}
	return q, nil
}
