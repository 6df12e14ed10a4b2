package quotes

import "context"

type Repository interface {
	Create(ctx context.Context, q Quote) error
	GetByID(ctx context.Context, id string) (Quote, error)
}
