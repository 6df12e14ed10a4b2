package pricing

import "errors"

// Frequency define las cadencias de servicio soportadas.
// @Enum weekly, twice-weekly, bi-weekly, one-time
type Frequency string

const (
	FrequencyWeekly      Frequency = "weekly"
	FrequencyTwiceWeekly Frequency = "twice-weekly"
	FrequencyBiWeekly    Frequency = "bi-weekly"
	FrequencyOneTime     Frequency = "one-time"
)

// YardSize define las categorías de tamaño de patio.
// @Enum small, medium, large, xlarge
type YardSize string

const (
	YardSmall  YardSize = "small"  // < 1/4 acre
	YardMedium YardSize = "medium" // 1/4 - 1/2 acre
	YardLarge  YardSize = "large"  // 1/2 - 1 acre
	YardXLarge YardSize = "xlarge" // > 1 acre
)

// AddOns son los extras opcionales por visita.
// Litter se ignora en servicio one-time.
type AddOns struct {
	Deodorize bool `json:"deodorize"`
	Litter    bool `json:"litter"`
}

// Errores de validación. Nunca se aplica un default "razonable"
// ante un enum desconocido: eso corrompería facturación.
var (
	ErrUnknownFrequency = errors.New("pricing: unknown frequency")
	ErrUnknownYardSize  = errors.New("pricing: unknown yard size")
	ErrUnknownBucket    = errors.New("pricing: unknown cleanup bucket")
	ErrInvalidDogs      = errors.New("pricing: dogs must be >= 1")
	ErrInvalidZone      = errors.New("pricing: zone multiplier must be > 0")

	// ErrOneTimeFrequency: one-time no tiene tarifa por visita recurrente;
	// se calcula con OneTimeEstimate.
	ErrOneTimeFrequency = errors.New("pricing: one-time frequency has no per-visit rate")

	// ErrDogsOutOfRange aplica solo al catálogo de Stripe (1..8 perros).
	// La fórmula de tiers sí extrapola; el catálogo precomputado no.
	ErrDogsOutOfRange = errors.New("pricing: dogs out of catalog range (1-8)")
)

// baseRate es la tabla de tarifas por frecuencia, en centavos.
// tier1 = 1 perro, tier2 = 2 perros, tier3 = 3 perros;
// cada perro extra sobre 3 suma extraDog.
type baseRate struct {
	tier1    int64
	tier2    int64
	tier3    int64
	extraDog int64
}

var baseRates = map[Frequency]baseRate{
	// twice-weekly es el total semanal de 2 visitas; se divide entre 2 por visita.
	FrequencyWeekly:      {tier1: 2000, tier2: 2400, tier3: 2800, extraDog: 400},
	FrequencyTwiceWeekly: {tier1: 3200, tier2: 3800, tier3: 4400, extraDog: 600},
	FrequencyBiWeekly:    {tier1: 2800, tier2: 3200, tier3: 3600, extraDog: 400},
	FrequencyOneTime:     {tier1: 8900, tier2: 10400, tier3: 11900, extraDog: 1500},
}

var yardMultipliers = map[YardSize]float64{
	YardSmall:  0.8,
	YardMedium: 1.0,
	YardLarge:  1.2,
	YardXLarge: 1.4,
}

// Recargos planos por add-on, en centavos.
const (
	deodorizeSurchargeCents = 1000
	litterSurchargeCents    = 500
)

// Visitas por mes por frecuencia (proyección mensual).
var visitsPerMonth = map[Frequency]float64{
	FrequencyWeekly:      4.33,
	FrequencyTwiceWeekly: 8.67,
	FrequencyBiWeekly:    2.17,
	FrequencyOneTime:     0,
}

func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyWeekly, FrequencyTwiceWeekly, FrequencyBiWeekly, FrequencyOneTime:
		return Frequency(s), nil
	default:
		return "", ErrUnknownFrequency
	}
}

func ParseYardSize(s string) (YardSize, error) {
	switch YardSize(s) {
	case YardSmall, YardMedium, YardLarge, YardXLarge:
		return YardSize(s), nil
	default:
		return "", ErrUnknownYardSize
	}
}
