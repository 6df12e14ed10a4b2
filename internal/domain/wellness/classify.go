package wellness

import "strings"

// Clasificación de texto libre a categorías cerradas: substring
// case-insensitive, primer match gana, en orden fijo de prioridad.
// Funciones totales: nunca fallan, nunca devuelven vacío. Lo no reconocido
// cae en "normal" a propósito: ausencia de señal no es alarmante, y
// clasificar mal como normal es menos dañino que tirar abajo un dashboard.

// ColorKeyFor clasifica un color de lectura.
func ColorKeyFor(raw string) ColorKey {
	c := strings.ToLower(strings.TrimSpace(raw))
	if c == "" {
		return ColorNormal
	}

	switch {
	case strings.Contains(c, "red"):
		return ColorRed
	case strings.Contains(c, "black"), strings.Contains(c, "tarry"), strings.Contains(c, "melena"):
		return ColorBlack
	case strings.Contains(c, "yellow"), strings.Contains(c, "gray"), strings.Contains(c, "grey"):
		return ColorYellow
	case strings.Contains(c, "green"):
		return ColorNormal
	case strings.Contains(c, "brown"), strings.Contains(c, "tan"),
		strings.Contains(c, "normal"), strings.Contains(c, "healthy"):
		return ColorNormal
	default:
		return ColorNormal
	}
}

// ConsistencyKeyFor clasifica una consistencia de lectura.
// "loose" colapsa en soft (no se mantiene como categoría aparte).
func ConsistencyKeyFor(raw string) ConsistencyKey {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return ConsistencyNormal
	}

	switch {
	case strings.Contains(v, "firm"), strings.Contains(v, "formed"),
		strings.Contains(v, "normal"), strings.Contains(v, "healthy"):
		return ConsistencyNormal
	case strings.Contains(v, "soft"), strings.Contains(v, "loose"):
		return ConsistencySoft
	case strings.Contains(v, "dry"), strings.Contains(v, "hard"):
		return ConsistencyDry
	case strings.Contains(v, "mucous"), strings.Contains(v, "mucus"):
		return ConsistencyMucous
	case strings.Contains(v, "greasy"), strings.Contains(v, "fatty"):
		return ConsistencyGreasy
	default:
		return ConsistencyNormal
	}
}
