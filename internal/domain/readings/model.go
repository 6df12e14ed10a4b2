package readings

import "time"

// Reading es una observación de depósito registrada durante una visita de
// ruta (o por un sensor/import). Color y consistencia se guardan tal como
// las describió quien registró; la normalización vive en wellness.
type Reading struct {
	ID    string
	DogID string

	OccurredAt time.Time
	RecordedAt time.Time

	Color       string
	Consistency string
	WeightLbs   *float64

	Notes string

	Source Source
	Status Status
}
