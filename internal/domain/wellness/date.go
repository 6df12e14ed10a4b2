package wellness

import (
	"fmt"
	"time"
)

// MondayStart devuelve el lunes 00:00 de la semana ISO de d (local-naive).
// Lunes = 0 vía (weekday+6)%7.
func MondayStart(d time.Time) time.Time {
	day := (int(d.Weekday()) + 6) % 7
	return time.Date(d.Year(), d.Month(), d.Day()-day, 0, 0, 0, 0, d.Location())
}

// FormatWeekLabel formatea el rango de la semana: "Sep 1-7" o "Aug 31 - Sep 6".
func FormatWeekLabel(start time.Time) string {
	end := start.AddDate(0, 0, 6)

	if start.Month() == end.Month() {
		return fmt.Sprintf("%s %d-%d", start.Format("Jan"), start.Day(), end.Day())
	}
	return fmt.Sprintf("%s %d - %s %d", start.Format("Jan"), start.Day(), end.Format("Jan"), end.Day())
}

// BuildWeeklySeries devuelve los inicios de semana hacia atrás desde now,
// la semana actual primero.
func BuildWeeklySeries(now time.Time, weeksCount int) []time.Time {
	weeks := make([]time.Time, 0, weeksCount)
	current := MondayStart(now)

	for i := 0; i < weeksCount; i++ {
		weeks = append(weeks, current)
		current = current.AddDate(0, 0, -7)
	}
	return weeks
}

// parseTimestamp acepta los formatos que manda el sistema de captura.
// Una lectura con timestamp no parseable se excluye de la agregación
// (el caller reporta el salto), nunca rompe el cálculo.
func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
