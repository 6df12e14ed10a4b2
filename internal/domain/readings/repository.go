package readings

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rd Reading) error
	GetByID(ctx context.Context, id string) (Reading, error)
	ListByDog(ctx context.Context, dogID string, filter ListFilter) ([]Reading, error)
	Void(ctx context.Context, id string) error
}

type ListFilter struct {
	Sources []Source
	From    *time.Time
	To      *time.Time
	Limit   int
}
