package billing

import (
	"context"

	"yardura-service/internal/domain/pricing"
)

// CatalogSyncer publica el catálogo de precios en el proveedor de billing.
// La implementación real vive en adapters/billing/stripe.
type CatalogSyncer interface {
	// SyncCatalog asegura que cada entrada del catálogo exista como precio
	// en el proveedor, con su lookup key. Devuelve cuántos precios creó.
	SyncCatalog(ctx context.Context, catalog []pricing.PriceConfig) (created int, err error)
}
