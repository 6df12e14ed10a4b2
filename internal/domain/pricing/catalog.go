package pricing

import (
	"fmt"
	"strings"
)

// Catálogo precomputado de precios para Stripe:
// 4 frecuencias × 4 tamaños × 8 cantidades de perros = 128 entradas.
// Cada entrada lleva un lookup key determinístico `${frequency}_${yardSize}_${dogs}dog`.

const (
	catalogMinDogs = 1
	catalogMaxDogs = 8
)

// PriceConfig es una entrada del catálogo.
type PriceConfig struct {
	Frequency       Frequency `json:"frequency"`
	YardSize        YardSize  `json:"yard_size"`
	Dogs            int       `json:"dogs"`
	PriceID         string    `json:"price_id"`
	LookupKey       string    `json:"lookup_key"`
	UnitAmountCents int64     `json:"unit_amount_cents"`
	Description     string    `json:"description"`
}

// LookupKey genera la clave de búsqueda del catálogo para una configuración.
// Rechaza configuraciones fuera del catálogo precomputado.
func LookupKey(frequency Frequency, yardSize YardSize, dogs int) (string, error) {
	if _, err := ParseFrequency(string(frequency)); err != nil {
		return "", err
	}
	if _, err := ParseYardSize(string(yardSize)); err != nil {
		return "", err
	}
	if dogs < catalogMinDogs || dogs > catalogMaxDogs {
		return "", ErrDogsOutOfRange
	}
	return fmt.Sprintf("%s_%s_%ddog", frequency, yardSize, dogs), nil
}

// PriceID genera el identificador de precio con el patrón
// price_{frequency}_{yard_size}_{dogs}dog (frecuencia con guiones bajos).
func PriceID(frequency Frequency, yardSize YardSize, dogs int) (string, error) {
	if _, err := LookupKey(frequency, yardSize, dogs); err != nil {
		return "", err
	}
	f := strings.ReplaceAll(string(frequency), "-", "_")
	return fmt.Sprintf("price_%s_%s_%ddog", f, yardSize, dogs), nil
}

// UnitAmount calcula el monto unitario de una entrada del catálogo,
// consistente con PerVisitEstimate / OneTimeEstimate (sin add-ons).
func UnitAmount(frequency Frequency, yardSize YardSize, dogs int) (int64, error) {
	if _, err := LookupKey(frequency, yardSize, dogs); err != nil {
		return 0, err
	}
	return InstantQuote(dogs, frequency, yardSize, AddOns{})
}

// GenerateCatalog produce las 128 entradas del catálogo.
func GenerateCatalog() []PriceConfig {
	frequencies := []Frequency{FrequencyWeekly, FrequencyTwiceWeekly, FrequencyBiWeekly, FrequencyOneTime}
	sizes := []YardSize{YardSmall, YardMedium, YardLarge, YardXLarge}

	out := make([]PriceConfig, 0, len(frequencies)*len(sizes)*catalogMaxDogs)
	for _, f := range frequencies {
		for _, ys := range sizes {
			for dogs := catalogMinDogs; dogs <= catalogMaxDogs; dogs++ {
				// Rango validado por construcción; los errores no pueden ocurrir acá.
				key, _ := LookupKey(f, ys, dogs)
				id, _ := PriceID(f, ys, dogs)
				amount, _ := UnitAmount(f, ys, dogs)

				plural := ""
				if dogs > 1 {
					plural = "s"
				}

				out = append(out, PriceConfig{
					Frequency:       f,
					YardSize:        ys,
					Dogs:            dogs,
					PriceID:         id,
					LookupKey:       key,
					UnitAmountCents: amount,
					Description:     fmt.Sprintf("%d dog%s, %s yard, %s service", dogs, plural, ys, f),
				})
			}
		}
	}
	return out
}
