package leads

import "time"

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusConverted Status = "converted"
	StatusLost      Status = "lost"
)

// Lead es un interesado del pipeline de ventas, normalmente creado a partir
// de una cotización del wizard.
type Lead struct {
	ID string

	// QuoteID es opcional: un lead puede entrar por teléfono sin cotizar.
	QuoteID string

	Email   string
	Phone   string
	Name    string
	ZipCode string
	Notes   string

	Status Status

	// AssigneeID es el rep de ventas a cargo; vacío = sin asignar.
	AssigneeID string

	CreatedAt time.Time
	UpdatedAt time.Time
	ClosedAt  *time.Time
}
