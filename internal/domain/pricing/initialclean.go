package pricing

import (
	"fmt"
	"time"
)

// Estimador de limpieza inicial ("deep clean") previo al servicio recurrente.
// El precio escala con el backlog acumulado (bucket de días desde la última
// limpieza) y siempre respeta el piso del bucket.

// CleanupBucket es la categoría de backlog en días desde la última limpieza.
// Esquema canónico (estilo DoodyCalls): 7, 14, 42, 999.
// 30/60/90 son valores legacy que la tabla sigue aceptando.
type CleanupBucket string

const (
	Bucket7       CleanupBucket = "7"
	Bucket14      CleanupBucket = "14"
	Bucket30      CleanupBucket = "30" // legacy
	Bucket42      CleanupBucket = "42"
	Bucket60      CleanupBucket = "60" // legacy
	Bucket90      CleanupBucket = "90"  // legacy
	BucketUnknown CleanupBucket = "999" // no sabe / > 6 semanas
)

type bucketConfig struct {
	multiplier float64
	floorCents int64
	label      string
}

var bucketConfigs = map[CleanupBucket]bucketConfig{
	Bucket7:       {multiplier: 1.0, floorCents: 4900, label: "Today / ≤ 7 days (Well maintained)"},
	Bucket14:      {multiplier: 1.0, floorCents: 4900, label: "≤ 2 weeks (Well maintained)"},
	Bucket30:      {multiplier: 1.0, floorCents: 4900, label: "Legacy - 15-30 days"},
	Bucket42:      {multiplier: 1.75, floorCents: 6900, label: "2–6 weeks (It's pretty neglected)"},
	Bucket60:      {multiplier: 1.75, floorCents: 6900, label: "Legacy - 31-60 days"},
	Bucket90:      {multiplier: 1.75, floorCents: 6900, label: "Legacy - 61-90 days"},
	BucketUnknown: {multiplier: 2.5, floorCents: 8900, label: "> 6 weeks (Watch your step!)"},
}

// Ajustes independientes por tamaño de patio y por cantidad de perros.
// Perros sobre 4 clampean al ajuste de 4 (el multiplicador de bucket ya
// escala con el volumen; esta tabla ajusta mano de obra).
var initialCleanYardAdjustments = map[YardSize]float64{
	YardSmall:  0.90,
	YardMedium: 1.0,
	YardLarge:  1.05,
	YardXLarge: 1.10,
}

var initialCleanDogAdjustments = map[int]float64{
	1: 0.95,
	2: 1.0,
	3: 1.05,
	4: 1.10,
}

// InitialCleanEstimate es el resultado con breakdown completo para
// display/auditoría.
type InitialCleanEstimate struct {
	InitialCleanCents int64                 `json:"initial_clean_cents"`
	Bucket            CleanupBucket         `json:"bucket"`
	Breakdown         InitialCleanBreakdown `json:"breakdown"`
}

type InitialCleanBreakdown struct {
	BasePerVisitCents int64   `json:"base_per_visit_cents"`
	BucketMultiplier  float64 `json:"bucket_multiplier"`
	YardDogAdjustment float64 `json:"yard_dog_adjustment"`
	AdjustedCents     int64   `json:"adjusted_cents"`
	FloorCents        int64   `json:"floor_cents"`
	FinalCents        int64   `json:"final_cents"`
}

// IsValidBucket valida el string del bucket antes del lookup.
// Sin fallback silencioso a un bucket default.
func IsValidBucket(s string) bool {
	_, ok := bucketConfigs[CleanupBucket(s)]
	return ok
}

// CalculateInitialClean calcula la limpieza inicial:
//  1. base = perVisitCents × multiplicador del bucket
//  2. ajuste combinado patio × perros
//  3. final = max(round(ajustado), piso del bucket)
//
// El piso es un mínimo duro: siempre se respeta.
func CalculateInitialClean(perVisitCents int64, bucket CleanupBucket, dogs int, yardSize YardSize) (InitialCleanEstimate, error) {
	cfg, ok := bucketConfigs[bucket]
	if !ok {
		return InitialCleanEstimate{}, fmt.Errorf("%w: %q", ErrUnknownBucket, bucket)
	}
	if dogs < 1 {
		return InitialCleanEstimate{}, ErrInvalidDogs
	}
	yardAdj, ok := initialCleanYardAdjustments[yardSize]
	if !ok {
		return InitialCleanEstimate{}, ErrUnknownYardSize
	}

	dogKey := dogs
	if dogKey > 4 {
		dogKey = 4
	}
	dogAdj := initialCleanDogAdjustments[dogKey]

	base := float64(perVisitCents) * cfg.multiplier
	adjustment := yardAdj * dogAdj
	adjusted := roundCents(base * adjustment)

	final := adjusted
	if final < cfg.floorCents {
		final = cfg.floorCents
	}

	return InitialCleanEstimate{
		InitialCleanCents: final,
		Bucket:            bucket,
		Breakdown: InitialCleanBreakdown{
			BasePerVisitCents: perVisitCents,
			BucketMultiplier:  cfg.multiplier,
			YardDogAdjustment: adjustment,
			AdjustedCents:     adjusted,
			FloorCents:        cfg.floorCents,
			FinalCents:        final,
		},
	}, nil
}

// MapDateToBucket clasifica los días transcurridos desde la última limpieza
// en el esquema simplificado: ≤14 → '14', ≤42 → '42', resto → '999'.
func MapDateToBucket(lastCleaned, now time.Time) CleanupBucket {
	days := int(now.Sub(lastCleaned).Hours() / 24)
	switch {
	case days <= 14:
		return Bucket14
	case days <= 42:
		return Bucket42
	default:
		return BucketUnknown
	}
}

// BucketLabel devuelve la etiqueta de display del bucket.
func BucketLabel(bucket CleanupBucket) (string, error) {
	cfg, ok := bucketConfigs[bucket]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBucket, bucket)
	}
	return cfg.label, nil
}

// FormatCents formatea centavos a dólares para display.
func FormatCents(cents int64) string {
	if cents == 0 {
		return "Free"
	}
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
