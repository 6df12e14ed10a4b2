package wellness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorKeyFor(t *testing.T) {
	tests := []struct {
		raw  string
		want ColorKey
	}{
		{"bright RED spots", ColorRed},
		{"red", ColorRed},
		{"black", ColorBlack},
		{"tarry stool", ColorBlack},
		{"melena", ColorBlack},
		{"yellowish", ColorYellow},
		{"gray", ColorYellow},
		{"grey tint", ColorYellow},
		{"green", ColorNormal},
		{"Dark Brown", ColorNormal},
		{"tan", ColorNormal},
		{"normal", ColorNormal},
		{"healthy looking", ColorNormal},
		// sin match => normal (fail safe, no "unknown")
		{"purple??", ColorNormal},
		{"", ColorNormal},
		{"   ", ColorNormal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ColorKeyFor(tt.raw), "raw=%q", tt.raw)
	}
}

func TestConsistencyKeyFor(t *testing.T) {
	tests := []struct {
		raw  string
		want ConsistencyKey
	}{
		{"firm", ConsistencyNormal},
		{"well formed", ConsistencyNormal},
		{"Normal", ConsistencyNormal},
		{"soft", ConsistencySoft},
		// loose colapsa en soft a propósito
		{"loose", ConsistencySoft},
		{"dry", ConsistencyDry},
		{"hard", ConsistencyDry},
		{"mucous coating", ConsistencyMucous},
		{"mucus", ConsistencyMucous},
		{"greasy", ConsistencyGreasy},
		{"fatty", ConsistencyGreasy},
		{"???", ConsistencyNormal},
		{"", ConsistencyNormal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ConsistencyKeyFor(tt.raw), "raw=%q", tt.raw)
	}
}

// La clasificación es total, determinística e idempotente: clasificar una
// key ya canónica devuelve esa misma key.
func TestClassification_Idempotent(t *testing.T) {
	for _, k := range []ColorKey{ColorNormal, ColorYellow, ColorRed, ColorBlack} {
		assert.Equal(t, k, ColorKeyFor(string(k)))
		assert.Equal(t, ColorKeyFor(string(k)), ColorKeyFor(string(k)))
	}
	for _, k := range []ConsistencyKey{ConsistencyNormal, ConsistencySoft, ConsistencyDry, ConsistencyMucous, ConsistencyGreasy} {
		assert.Equal(t, k, ConsistencyKeyFor(string(k)))
	}
}

func TestClassification_AlwaysClosedSet(t *testing.T) {
	valid := map[ColorKey]bool{ColorNormal: true, ColorYellow: true, ColorRed: true, ColorBlack: true}
	inputs := []string{"", "red", "reddish brown", "x", "12345", "BLACK & tarry", "verde", "õäü"}
	for _, in := range inputs {
		assert.True(t, valid[ColorKeyFor(in)], "raw=%q", in)
	}
}
