package wellness

import "time"

const (
	// DefaultWeeks es la ventana estándar de la vista computada.
	DefaultWeeks = 8

	weekKeyLayout = "2006-01-02"
)

// BuildWeeklyRollups agrupa lecturas por semana alineada a lunes y arma los
// agregados de las últimas weeksCount semanas, en orden cronológico
// ascendente. Devuelve además cuántas lecturas se saltaron por timestamp
// inválido.
//
// Invariante: sum(colors) == deposits == sum(consistency) para toda semana
// bien formada (cada lectura aporta exactamente un bucket de color y uno de
// consistencia).
func BuildWeeklyRollups(readings []Reading, now time.Time, weeksCount int) ([]WeekRollup, int) {
	if weeksCount <= 0 {
		weeksCount = DefaultWeeks
	}

	byWeek := make(map[string][]Reading)
	skipped := 0
	for _, r := range readings {
		t, ok := parseTimestamp(r.Timestamp)
		if !ok {
			skipped++
			continue
		}
		key := MondayStart(t).Format(weekKeyLayout)
		byWeek[key] = append(byWeek[key], r)
	}

	series := BuildWeeklySeries(now, weeksCount)

	// series viene más reciente primero; la vista va ascendente.
	out := make([]WeekRollup, 0, weeksCount)
	for i := len(series) - 1; i >= 0; i-- {
		start := series[i]
		key := start.Format(weekKeyLayout)
		out = append(out, buildRollup(start, key, byWeek[key]))
	}
	return out, skipped
}

func buildRollup(start time.Time, key string, weekReadings []Reading) WeekRollup {
	var colors ColorCounts
	var consistency ConsistencyCounts
	mucous, greasy := 0, 0
	softCount := 0

	weightSum := 0.0
	weightN := 0

	for _, r := range weekReadings {
		switch ColorKeyFor(r.Color) {
		case ColorYellow:
			colors.Yellow++
		case ColorRed:
			colors.Red++
		case ColorBlack:
			colors.Black++
		default:
			colors.Normal++
		}

		switch ConsistencyKeyFor(r.Consistency) {
		case ConsistencySoft:
			consistency.Soft++
			softCount++
		case ConsistencyMucous:
			// mucous/greasy cuentan como soft en la partición,
			// y aparte como señal propia
			consistency.Soft++
			softCount++
			mucous++
		case ConsistencyGreasy:
			consistency.Soft++
			softCount++
			greasy++
		case ConsistencyDry:
			consistency.Dry++
		default:
			consistency.Normal++
		}

		if r.WeightLbs != nil {
			weightSum += *r.WeightLbs
			weightN++
		}
	}

	deposits := len(weekReadings)

	softRatio := 0.0
	if deposits > 0 {
		softRatio = float64(softCount) / float64(deposits)
	}

	// Etiquetas de issues en lenguaje simple.
	issues := make([]string, 0, 4)
	if deposits > 0 && softRatio >= softConsistencyThreshold {
		issues = append(issues, "Soft consistency")
	}
	if colors.Red > 0 {
		issues = append(issues, "Red traces")
	} else if colors.Black > 0 {
		issues = append(issues, "Black color")
	}
	if colors.Yellow > 0 {
		issues = append(issues, "Yellow color")
	}
	switch {
	case mucous > 0 && greasy > 0:
		issues = append(issues, "Mucous & greasy")
	case mucous > 0:
		issues = append(issues, "Mucous")
	case greasy > 0:
		issues = append(issues, "Greasy")
	}
	if consistency.Dry > 0 {
		issues = append(issues, "Dry consistency")
	}

	// Status semanal: rojo/negro => attention; cualquier otra señal => monitor.
	status := StatusGood
	switch {
	case colors.Red > 0 || colors.Black > 0:
		status = StatusAttention
	case len(issues) > 0:
		status = StatusMonitor
	}

	score := 100
	if deposits > 0 {
		normalRate := float64(colors.Normal+consistency.Normal) / float64(2*deposits)
		score = CalculateWellnessScore(normalRate, float64(len(issues)))
	}

	avgWeight := 0.0
	if weightN > 0 {
		avgWeight = weightSum / float64(weightN)
	}

	return WeekRollup{
		StartISO:      key,
		Label:         FormatWeekLabel(start),
		Deposits:      deposits,
		AvgWeightLbs:  avgWeight,
		Colors:        colors,
		Consistency:   consistency,
		Mucous:        mucous,
		Greasy:        greasy,
		Issues:        issues,
		Status:        status,
		WellnessScore: score,
	}
}

// ComputeWellness arma la vista completa de 8 semanas desde las lecturas.
func ComputeWellness(readings []Reading, now time.Time) Computed {
	weekly, skipped := BuildWeeklyRollups(readings, now, DefaultWeeks)

	softWeeks := 0
	alertWeeks := 0
	mucousWeeks := 0
	greasyWeeks := 0
	maxConsecutiveSoft := 0
	consecutiveSoft := 0

	var donut ColorCounts

	for _, w := range weekly {
		weekSoft := w.Deposits > 0 &&
			float64(w.Consistency.Soft)/float64(w.Deposits) >= softConsistencyThreshold
		if weekSoft {
			softWeeks++
			consecutiveSoft++
			if consecutiveSoft > maxConsecutiveSoft {
				maxConsecutiveSoft = consecutiveSoft
			}
		} else {
			consecutiveSoft = 0
		}

		if w.Colors.Red > 0 || w.Colors.Black > 0 {
			alertWeeks++
		}
		if w.Mucous > 0 {
			mucousWeeks++
		}
		if w.Greasy > 0 {
			greasyWeeks++
		}

		donut.Normal += w.Colors.Normal
		donut.Yellow += w.Colors.Yellow
		donut.Red += w.Colors.Red
		donut.Black += w.Colors.Black
	}

	latest := DetermineWellnessStatus(softWeeks, maxConsecutiveSoft, alertWeeks)
	parasite := ShouldShowParasiteWarning(mucousWeeks, greasyWeeks)

	stack := make([]ConsistencyStackWeek, 0, len(weekly))
	mucousSeries := make([]SignalPoint, 0, len(weekly))
	greasySeries := make([]SignalPoint, 0, len(weekly))
	drySeries := make([]SignalPoint, 0, len(weekly))
	for _, w := range weekly {
		stack = append(stack, ConsistencyStackWeek{
			WeekISO: w.StartISO,
			Normal:  w.Consistency.Normal,
			Soft:    w.Consistency.Soft,
			Dry:     w.Consistency.Dry,
		})
		mucousSeries = append(mucousSeries, SignalPoint{WeekISO: w.StartISO, Count: w.Mucous})
		greasySeries = append(greasySeries, SignalPoint{WeekISO: w.StartISO, Count: w.Greasy})
		drySeries = append(drySeries, SignalPoint{WeekISO: w.StartISO, Count: w.Consistency.Dry})
	}

	colorTrend, consistencyTrend, overallTrend := computeTrends(weekly)

	return Computed{
		LatestStatus:    latest,
		LatestCopy:      statusCopy(latest, softWeeks, parasite),
		Weekly:          weekly,
		ParasiteWarning: parasite,
		SkippedReadings: skipped,
		Trends: Trends{
			ColorTrend:       colorTrend,
			ConsistencyTrend: consistencyTrend,
			OverallTrend:     overallTrend,
			ColorDonut:       donut,
			ColorBreakdown: []ColorBreakdownEntry{
				{Label: "Normal", Count: donut.Normal},
				{Label: "Yellow", Count: donut.Yellow},
				{Label: "Red", Count: donut.Red},
				{Label: "Black", Count: donut.Black},
			},
			ConsistencyStack: stack,
			SignalSparklines: []SignalSparkline{
				{Key: "mucous", Series: mucousSeries},
				{Key: "greasy", Series: greasySeries},
				{Key: "dry", Series: drySeries},
			},
		},
	}
}

// computeTrends compara la mitad reciente contra la anterior (4w vs 4w en la
// ventana estándar) sobre ratios de señal anormal.
func computeTrends(weekly []WeekRollup) (color, consistency, overall Trend) {
	half := len(weekly) / 2
	if half == 0 {
		return TrendStable, TrendStable, TrendStable
	}

	prior := weekly[:half]
	recent := weekly[len(weekly)-half:]

	priorColor, priorSoft := windowRatios(prior)
	recentColor, recentSoft := windowRatios(recent)

	color = trendFor(recentColor, priorColor)
	consistency = trendFor(recentSoft, priorSoft)
	overall = trendFor((recentColor+recentSoft)/2, (priorColor+priorSoft)/2)
	return color, consistency, overall
}

// windowRatios devuelve (ratio de color anormal, ratio soft) de una ventana.
func windowRatios(weeks []WeekRollup) (abnormalColor, soft float64) {
	deposits := 0
	abnormal := 0
	softCount := 0
	for _, w := range weeks {
		deposits += w.Deposits
		abnormal += w.Colors.Yellow + w.Colors.Red + w.Colors.Black
		softCount += w.Consistency.Soft
	}
	if deposits == 0 {
		return 0, 0
	}
	return float64(abnormal) / float64(deposits), float64(softCount) / float64(deposits)
}
