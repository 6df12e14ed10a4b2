package wellness

// Vista derivada de salud a partir de lecturas de residuos. Todo el paquete
// es puro: recibe lecturas en memoria y devuelve structs serializables
// (sin clases con métodos, sin estado compartido).

// Status es el enum canónico de tres niveles. El origen usaba
// good/monitor/attention y normal/monitor/action indistintamente;
// acá se unifica.
// @Enum good, monitor, attention
type Status string

const (
	StatusGood      Status = "good"
	StatusMonitor   Status = "monitor"
	StatusAttention Status = "attention"
)

// ColorKey es el conjunto cerrado de colores clasificados.
type ColorKey string

const (
	ColorNormal ColorKey = "normal"
	ColorYellow ColorKey = "yellow"
	ColorRed    ColorKey = "red"
	ColorBlack  ColorKey = "black"
)

// ConsistencyKey es el conjunto cerrado de consistencias clasificadas.
type ConsistencyKey string

const (
	ConsistencyNormal ConsistencyKey = "normal"
	ConsistencySoft   ConsistencyKey = "soft"
	ConsistencyDry    ConsistencyKey = "dry"
	ConsistencyMucous ConsistencyKey = "mucous"
	ConsistencyGreasy ConsistencyKey = "greasy"
)

// Trend es la dirección de tendencia entre ventanas.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Reading es la lectura cruda que provee el sistema de captura en campo.
// Color y Consistency son texto libre; Timestamp es ISO-8601 y puede venir
// malformado (se salta, nunca rompe la agregación). Read-only para este core.
type Reading struct {
	ID          string   `json:"id"`
	Timestamp   string   `json:"timestamp"`
	Color       string   `json:"color"`
	Consistency string   `json:"consistency"`
	WeightLbs   *float64 `json:"weight_lbs,omitempty"`
}

// ColorCounts cuenta lecturas por color en una semana.
type ColorCounts struct {
	Normal int `json:"normal"`
	Yellow int `json:"yellow"`
	Red    int `json:"red"`
	Black  int `json:"black"`
}

func (c ColorCounts) Total() int {
	return c.Normal + c.Yellow + c.Red + c.Black
}

// ConsistencyCounts cuenta lecturas por consistencia en una semana.
// Mucous y greasy se pliegan en soft para la partición (toda lectura cae en
// exactamente un bucket); se trackean aparte para las señales.
type ConsistencyCounts struct {
	Normal int `json:"normal"`
	Soft   int `json:"soft"`
	Dry    int `json:"dry"`
}

func (c ConsistencyCounts) Total() int {
	return c.Normal + c.Soft + c.Dry
}

// WeekRollup es el agregado semanal (semana alineada a lunes).
type WeekRollup struct {
	StartISO      string            `json:"start_iso"`
	Label         string            `json:"label"`
	Deposits      int               `json:"deposits"`
	AvgWeightLbs  float64           `json:"avg_weight_lbs"`
	Colors        ColorCounts       `json:"colors"`
	Consistency   ConsistencyCounts `json:"consistency"`
	Mucous        int               `json:"mucous"`
	Greasy        int               `json:"greasy"`
	Issues        []string          `json:"issues"`
	Status        Status            `json:"status"`
	WellnessScore int               `json:"wellness_score"`
}

// StatusCopy es el texto human-readable asociado al status general.
type StatusCopy struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Advice   []string `json:"advice"`
	CTA      *CTA     `json:"cta,omitempty"`
}

type CTA struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// SignalPoint es un punto de sparkline (conteo semanal de una señal).
type SignalPoint struct {
	WeekISO string `json:"week_iso"`
	Count   int    `json:"count"`
}

type SignalSparkline struct {
	Key    string        `json:"key"` // mucous | greasy | dry
	Series []SignalPoint `json:"series"`
}

type ColorBreakdownEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type ConsistencyStackWeek struct {
	WeekISO string `json:"week_iso"`
	Normal  int    `json:"normal"`
	Soft    int    `json:"soft"`
	Dry     int    `json:"dry"`
}

// Trends resume las tendencias de la ventana de 8 semanas.
type Trends struct {
	ColorTrend       Trend                  `json:"color_trend"`
	ConsistencyTrend Trend                  `json:"consistency_trend"`
	OverallTrend     Trend                  `json:"overall_trend"`
	ColorDonut       ColorCounts            `json:"color_donut"`
	ColorBreakdown   []ColorBreakdownEntry  `json:"color_breakdown"`
	ConsistencyStack []ConsistencyStackWeek `json:"consistency_stack"`
	SignalSparklines []SignalSparkline      `json:"signal_sparklines"`
}

// Computed es la vista derivada completa. Se recalcula en cada llamada
// desde las lecturas; no hay contrato incremental.
// Weekly va en orden cronológico ascendente (la más reciente al final).
type Computed struct {
	LatestStatus    Status       `json:"latest_status"`
	LatestCopy      StatusCopy   `json:"latest_copy"`
	Weekly          []WeekRollup `json:"weekly"`
	Trends          Trends       `json:"trends"`
	ParasiteWarning bool         `json:"parasite_warning"`
	SkippedReadings int          `json:"skipped_readings"`
}
