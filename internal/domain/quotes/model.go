package quotes

import (
	"time"

	"yardura-service/internal/domain/pricing"
)

// Quote es una cotización armada por el wizard y persistida para seguimiento
// comercial. Los montos quedan congelados al momento de crearla.
type Quote struct {
	ID string

	// Datos de contacto del interesado (el wizard es público).
	Email   string
	Phone   string
	Name    string
	Address string
	ZipCode string

	// Configuración del servicio cotizado.
	Dogs      int
	Frequency pricing.Frequency
	YardSize  pricing.YardSize
	AddOns    pricing.AddOns

	// Propiedad comercial: no cotizamos por fórmula.
	Commercial          bool
	RequiresCustomQuote bool

	// Montos en centavos, congelados al crear.
	PerVisitCents int64
	MonthlyCents  int64
	OneTimeCents  int64

	// Initial clean opcional (solo si vino bucket o fecha de última limpieza).
	InitialClean *pricing.InitialCleanEstimate

	// Lookup key del catálogo de Stripe; vacío fuera del rango 1..8 perros
	// o para cotizaciones comerciales.
	StripeLookupKey string

	CreatedAt time.Time
}
