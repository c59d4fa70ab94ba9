package freshness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Breakpoints(t *testing.T) {
	tests := []struct {
		days     int
		band     Band
		position float64
	}{
		{days: math.MinInt, band: Bad, position: 0.0},
		{days: -1, band: Bad, position: 0.0},
		{days: 0, band: Bad, position: 0.0},
		{days: 2, band: Bad, position: 0.0},
		{days: 3, band: Poor, position: 0.25},
		{days: 4, band: Poor, position: 0.25},
		{days: 5, band: Average, position: 0.5},
		{days: 6, band: Average, position: 0.5},
		{days: 7, band: Good, position: 0.75},
		{days: 8, band: Good, position: 0.75},
		{days: 9, band: Excellent, position: 1.0},
		{days: 365, band: Excellent, position: 1.0},
		{days: math.MaxInt, band: Excellent, position: 1.0},
	}

	for _, tt := range tests {
		got := Classify(tt.days)
		assert.Equal(t, tt.band, got.Band, "days=%d", tt.days)
		assert.Equal(t, tt.position, got.Position, "days=%d", tt.days)
	}
}

func TestBand_String(t *testing.T) {
	assert.Equal(t, "Bad", Bad.String())
	assert.Equal(t, "Excellent", Excellent.String())
	assert.Equal(t, "Unknown", Band(42).String())
	assert.Equal(t, 0.0, Band(-1).Position())
}
