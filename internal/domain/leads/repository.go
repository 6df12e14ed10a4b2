package leads

import "context"

type Repository interface {
	Create(ctx context.Context, l Lead) error
	Update(ctx context.Context, l Lead) error
	GetByID(ctx context.Context, id string) (Lead, error)
	List(ctx context.Context, filter ListFilter) ([]Lead, error)
}

type ListFilter struct {
	Status     Status
	AssigneeID string
	Limit      int
}
