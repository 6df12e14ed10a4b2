package pricing

import "math"

// Todo el cálculo interno es en centavos enteros. A dólares solo
// se formatea en el borde (FormatCents).

// roundCents redondea half-up al centavo final.
func roundCents(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// tierCents devuelve la tarifa base por cantidad de perros.
func tierCents(r baseRate, dogs int) float64 {
	switch {
	case dogs <= 1:
		return float64(r.tier1)
	case dogs == 2:
		return float64(r.tier2)
	default:
		return float64(r.tier3) + float64(dogs-3)*float64(r.extraDog)
	}
}

// PerVisitEstimate calcula el precio por visita de un servicio recurrente.
//   - weekly: tier completo por visita
//   - twice-weekly: mitad del tier semanal por visita (2 visitas suman el tier)
//   - bi-weekly: tier completo por visita (ocurre la mitad de veces al mes)
//
// one-time no pasa por acá: usar OneTimeEstimate.
func PerVisitEstimate(dogs int, frequency Frequency, yardSize YardSize, addOns AddOns) (int64, error) {
	if dogs < 1 {
		return 0, ErrInvalidDogs
	}
	if frequency == FrequencyOneTime {
		return 0, ErrOneTimeFrequency
	}
	rates, ok := baseRates[frequency]
	if !ok {
		return 0, ErrUnknownFrequency
	}
	mult, ok := yardMultipliers[yardSize]
	if !ok {
		return 0, ErrUnknownYardSize
	}

	perVisit := tierCents(rates, dogs)
	if frequency == FrequencyTwiceWeekly {
		perVisit /= 2
	}

	perVisit *= mult

	if addOns.Deodorize {
		perVisit += deodorizeSurchargeCents
	}
	if addOns.Litter {
		perVisit += litterSurchargeCents
	}

	return roundCents(perVisit), nil
}

// OneTimeEstimate calcula el precio de una limpieza única.
// Litter no aplica a one-time (solo deodorize).
func OneTimeEstimate(dogs int, yardSize YardSize, addOns AddOns) (int64, error) {
	if dogs < 1 {
		return 0, ErrInvalidDogs
	}
	mult, ok := yardMultipliers[yardSize]
	if !ok {
		return 0, ErrUnknownYardSize
	}

	price := tierCents(baseRates[FrequencyOneTime], dogs) * mult
	if addOns.Deodorize {
		price += deodorizeSurchargeCents
	}

	return roundCents(price), nil
}

// InstantQuote rutea a la calculadora que corresponde según la frecuencia.
func InstantQuote(dogs int, frequency Frequency, yardSize YardSize, addOns AddOns) (int64, error) {
	if frequency == FrequencyOneTime {
		return OneTimeEstimate(dogs, yardSize, addOns)
	}
	return PerVisitEstimate(dogs, frequency, yardSize, addOns)
}

// PerVisitEstimateWithZone aplica el multiplicador de zona al precio por visita.
func PerVisitEstimateWithZone(dogs int, frequency Frequency, yardSize YardSize, addOns AddOns, zone float64) (int64, error) {
	if zone <= 0 {
		return 0, ErrInvalidZone
	}
	base, err := PerVisitEstimate(dogs, frequency, yardSize, addOns)
	if err != nil {
		return 0, err
	}
	return roundCents(float64(base) * zone), nil
}

// OneTimeEstimateWithZone aplica el multiplicador de zona a la limpieza única.
func OneTimeEstimateWithZone(dogs int, yardSize YardSize, addOns AddOns, zone float64) (int64, error) {
	if zone <= 0 {
		return 0, ErrInvalidZone
	}
	base, err := OneTimeEstimate(dogs, yardSize, addOns)
	if err != nil {
		return 0, err
	}
	return roundCents(float64(base) * zone), nil
}

// InstantQuoteWithZone rutea según frecuencia aplicando zona.
func InstantQuoteWithZone(dogs int, frequency Frequency, yardSize YardSize, addOns AddOns, zone float64) (int64, error) {
	if frequency == FrequencyOneTime {
		return OneTimeEstimateWithZone(dogs, yardSize, addOns, zone)
	}
	return PerVisitEstimateWithZone(dogs, frequency, yardSize, addOns, zone)
}

// MonthlyProjection proyecta el costo mensual desde el precio por visita.
// one-time proyecta 0.
func MonthlyProjection(perVisitCents int64, frequency Frequency) (int64, error) {
	vpm, ok := visitsPerMonth[frequency]
	if !ok {
		return 0, ErrUnknownFrequency
	}
	return roundCents(float64(perVisitCents) * vpm), nil
}
