package seismic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrichCalmSample(t *testing.T) {
	e := Enrich(0.5, 0.4, 0.45)

	assert.InDelta(t, 1.88, e.Magnitude, 0.01)
	assert.Less(t, e.Magnitude, DefaultQuakeThreshold)
	assert.False(t, IsEarthquake(e.Magnitude, DefaultQuakeThreshold))

	assert.Equal(t, 3, e.Intensity)
	assert.InDelta(t, 7.67, e.Pga, 0.01)
	assert.Equal(t, "micro", Classify(e.Magnitude))

	alert := AssessAlert(e.Magnitude, e.Intensity)
	assert.Equal(t, "none", alert.Level)
	assert.Equal(t, "green", alert.Color)
}

func TestEnrichStrongSample(t *testing.T) {
	e := Enrich(5.0, 4.5, 5.5)

	assert.InDelta(t, 3.87, e.Magnitude, 0.01)
	assert.GreaterOrEqual(t, e.Magnitude, DefaultQuakeThreshold)
	assert.True(t, IsEarthquake(e.Magnitude, DefaultQuakeThreshold))

	assert.Equal(t, 6, e.Intensity)
	assert.InDelta(t, 85.21, e.Pga, 0.01)
	assert.Equal(t, "light", Classify(e.Magnitude))

	alert := AssessAlert(e.Magnitude, e.Intensity)
	assert.Equal(t, "low", alert.Level)
	assert.Equal(t, "yellow", alert.Color)
	assert.Contains(t, alert.Message, "M3.9")
}

func TestEnrichZeroAxes(t *testing.T) {
	e := Enrich(0, 0, 0)

	assert.Equal(t, 0.0, e.Magnitude)
	assert.Equal(t, 1, e.Intensity)
	assert.Equal(t, 0.0, e.JmaIntensity)
	assert.Equal(t, 0.0, e.Pga)
	assert.InDelta(t, Gravity, e.PgaCorrected, 1e-9)
	assert.False(t, IsEarthquake(e.Magnitude, DefaultQuakeThreshold))
}

func TestEnrichClampsExtremes(t *testing.T) {
	e := Enrich(1e5, 1e5, 1e5)
	assert.Equal(t, 10.0, e.Magnitude)
	assert.Equal(t, 12, e.Intensity)
	assert.Equal(t, 6.5, e.JmaIntensity)

	// derived values stay in range no matter the input
	for range 500 {
		ax := (rand.Float64() - 0.5) * 2e4
		ay := (rand.Float64() - 0.5) * 2e4
		az := (rand.Float64() - 0.5) * 2e4
		e := Enrich(ax, ay, az)
		if e.Magnitude < 0 || e.Magnitude > 10 {
			t.Fatalf("magnitude out of range: %f", e.Magnitude)
		}
		if e.Intensity < 1 || e.Intensity > 12 {
			t.Fatalf("intensity out of range: %d", e.Intensity)
		}
	}
}

func TestEnrichMagnitudeMonotone(t *testing.T) {
	prev := -1.0
	for a := 0.0; a < 50; a += 0.5 {
		e := Enrich(a, a, a)
		assert.GreaterOrEqual(t, e.Magnitude, prev)
		prev = e.Magnitude
	}
}

func TestJmaScaleLadder(t *testing.T) {
	for range 500 {
		e := Enrich(rand.Float64()*20, rand.Float64()*20, rand.Float64()*20)
		v := e.JmaIntensity
		if v == 0 {
			continue
		}
		if v < 1 || v > 6.5 {
			t.Fatalf("jma intensity off the ladder: %f", v)
		}
		scaled := v * 2
		if scaled != math.Trunc(scaled) {
			t.Fatalf("jma intensity not a half step: %f", v)
		}
	}
}

func TestClassifyBands(t *testing.T) {
	assert.Equal(t, "micro", Classify(0))
	assert.Equal(t, "micro", Classify(1.99))
	assert.Equal(t, "minor", Classify(2))
	assert.Equal(t, "light", Classify(3))
	assert.Equal(t, "moderate", Classify(4))
	assert.Equal(t, "strong", Classify(5))
	assert.Equal(t, "major", Classify(6))
	assert.Equal(t, "great", Classify(7))
	assert.Equal(t, "great", Classify(10))
}

func TestAssessAlertBands(t *testing.T) {
	cases := []struct {
		magnitude float64
		level     string
		color     string
	}{
		{0, "none", "green"},
		{2.99, "none", "green"},
		{3.0, "low", "yellow"},
		{4.0, "medium", "orange"},
		{5.0, "high", "red"},
		{6.0, "severe", "darkred"},
		{9.5, "severe", "darkred"},
	}
	for _, c := range cases {
		got := AssessAlert(c.magnitude, intensityScale(c.magnitude))
		assert.Equal(t, c.level, got.Level, "magnitude %f", c.magnitude)
		assert.Equal(t, c.color, got.Color, "magnitude %f", c.magnitude)
	}
}

func TestEnergyGrowth(t *testing.T) {
	assert.InDelta(t, math.Pow(10, 4.8), Energy(0), 1)

	// one magnitude step multiplies released energy by 10^1.5
	ratio := Energy(5) / Energy(4)
	assert.InDelta(t, 31.6228, ratio, 0.001)
}

func TestEstimateImpactRadiusOrdering(t *testing.T) {
	r := EstimateImpactRadius(5)
	assert.InDelta(t, 316.23, r.Felt, 0.01)
	assert.Less(t, r.Extreme, r.Strong)
	assert.Less(t, r.Strong, r.Moderate)
	assert.Less(t, r.Moderate, r.Felt)
}

func TestScorerThreshold(t *testing.T) {
	s := NewScorer(0)
	assert.Equal(t, DefaultQuakeThreshold, s.Threshold)

	s = NewScorer(4.5)
	assert.False(t, s.IsEarthquake(4.49))
	assert.True(t, s.IsEarthquake(4.5))

	// the scorer only fixes the threshold, derivations are unchanged
	e := s.Enrich(0.5, 0.4, 0.45)
	assert.Equal(t, Enrich(0.5, 0.4, 0.45), e)
	assert.Equal(t, Classify(e.Magnitude), s.Classify(e.Magnitude))
	assert.Equal(t, Energy(e.Magnitude), s.Energy(e.Magnitude))
	assert.Equal(t, EstimateImpactRadius(e.Magnitude), s.EstimateImpactRadius(e.Magnitude))
}
