package dogs

import "time"

// Dog representa el perfil básico de un perro registrado en el servicio.
type Dog struct {
	ID          string
	OwnerUserID string

	Name  string
	Breed string

	// WeightLbs es el peso de referencia declarado por el dueño; las
	// lecturas de ruta pueden traer pesos medidos por depósito.
	WeightLbs *float64

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
