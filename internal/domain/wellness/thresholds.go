package wellness

import "math"

// Umbrales y lógica de decisión centralizada del status.
const (
	// softConsistencyThreshold: ratio de lecturas soft que marca la semana.
	softConsistencyThreshold = 0.3

	// maxConsecutiveSoftWeeksForAttention: semanas soft consecutivas => attention.
	maxConsecutiveSoftWeeksForAttention = 2

	// minSoftWeeksForMonitor: semanas soft (no consecutivas) => monitor.
	minSoftWeeksForMonitor = 2

	// minParasiteWeeks: semanas con mucous/greasy => señal de parásitos.
	minParasiteWeeks = 2

	// scoreIssuePenalty: puntos que resta cada issue detectado.
	scoreIssuePenalty = 25

	// trendStableDelta: banda muerta de ratio para leer "stable".
	trendStableDelta = 0.10
)

// DetermineWellnessStatus deriva el status general. Cascada de prioridad
// estricta, no score ponderado: attention domina monitor domina good.
func DetermineWellnessStatus(softWeeks, maxConsecutiveSoft, alertWeeks int) Status {
	if alertWeeks > 0 || maxConsecutiveSoft >= maxConsecutiveSoftWeeksForAttention {
		return StatusAttention
	}
	if softWeeks >= minSoftWeeksForMonitor {
		return StatusMonitor
	}
	return StatusGood
}

// CalculateWellnessScore: clamp(normalRate×100 − issueRate×25, 0, 100).
func CalculateWellnessScore(normalRate, issueRate float64) int {
	score := normalRate*100 - issueRate*scoreIssuePenalty
	score = math.Max(0, math.Min(100, score))
	return int(math.Floor(score + 0.5))
}

// ShouldShowParasiteWarning: canal de alerta separado del status general;
// mucous/greasy sostenido es una señal clínica distinta (posibles parásitos).
func ShouldShowParasiteWarning(mucousWeeks, greasyWeeks int) bool {
	if greasyWeeks > mucousWeeks {
		return greasyWeeks >= minParasiteWeeks
	}
	return mucousWeeks >= minParasiteWeeks
}

// trendFor compara el ratio de señal "mala" entre la ventana reciente y la
// anterior. Dentro de la banda ±trendStableDelta se lee stable.
func trendFor(recentRatio, priorRatio float64) Trend {
	delta := recentRatio - priorRatio
	if math.Abs(delta) < trendStableDelta {
		return TrendStable
	}
	if delta < 0 {
		return TrendImproving
	}
	return TrendDeclining
}
