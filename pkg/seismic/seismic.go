// Package seismic derives earthquake measures from raw accelerometer
// samples. Axis readings are in g; derived accelerations are in m/s^2.
package seismic

import (
	"fmt"
	"math"

	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
)

const (
	// Gravity converts axis readings in g to m/s^2.
	Gravity = 9.80665

	// DefaultQuakeThreshold is the magnitude at and above which a sample
	// counts as an earthquake.
	DefaultQuakeThreshold = 3.0

	maxMagnitude = 10.0
	maxIntensity = 12
	maxJmaScale  = 6.5
)

// Enrich computes the derived measures for one sample. Gyroscope axes do not
// participate; shaking strength comes from acceleration alone.
func Enrich(ax, ay, az float64) models.Enrichment {
	pga := math.Sqrt(ax*ax+ay*ay+az*az) * Gravity

	magnitude := math.Log10(pga+1) * 2
	if magnitude < 0 {
		magnitude = 0
	}
	if magnitude > maxMagnitude {
		magnitude = maxMagnitude
	}

	return models.Enrichment{
		Magnitude:    magnitude,
		Intensity:    intensityScale(magnitude),
		JmaIntensity: jmaScale(pga),
		Pga:          pga,
		PgaCorrected: math.Abs(pga - Gravity),
	}
}

func intensityScale(magnitude float64) int {
	scale := int(math.Round(magnitude * 1.5))
	if scale < 1 {
		scale = 1
	}
	if scale > maxIntensity {
		scale = maxIntensity
	}
	return scale
}

// jmaScale maps peak ground acceleration to the instrumental shindo ladder:
// 0 for negligible shaking, then half steps from 1 up to 6.5.
func jmaScale(pga float64) float64 {
	gal := pga * 100 // cm/s^2
	if gal <= 0 {
		return 0
	}
	raw := 2*math.Log10(gal) + 0.94
	if raw < 0.5 {
		return 0
	}
	if raw < 1 {
		return 1
	}
	stepped := math.Round(raw*2) / 2
	return math.Min(stepped, maxJmaScale)
}

// Classify names the magnitude band, Richter style.
func Classify(magnitude float64) string {
	switch {
	case magnitude < 2:
		return "micro"
	case magnitude < 3:
		return "minor"
	case magnitude < 4:
		return "light"
	case magnitude < 5:
		return "moderate"
	case magnitude < 6:
		return "strong"
	case magnitude < 7:
		return "major"
	default:
		return "great"
	}
}

func AssessAlert(magnitude float64, intensity int) models.AlertAssessment {
	switch {
	case magnitude < 3:
		return models.AlertAssessment{
			Level:   "none",
			Message: "No significant seismic activity",
			Color:   "green",
		}
	case magnitude < 4:
		return models.AlertAssessment{
			Level:   "low",
			Message: fmt.Sprintf("Minor shaking detected (M%.1f, intensity %d)", magnitude, intensity),
			Color:   "yellow",
		}
	case magnitude < 5:
		return models.AlertAssessment{
			Level:   "medium",
			Message: fmt.Sprintf("Moderate earthquake detected (M%.1f, intensity %d)", magnitude, intensity),
			Color:   "orange",
		}
	case magnitude < 6:
		return models.AlertAssessment{
			Level:   "high",
			Message: fmt.Sprintf("Strong earthquake detected (M%.1f, intensity %d)", magnitude, intensity),
			Color:   "red",
		}
	default:
		return models.AlertAssessment{
			Level:   "severe",
			Message: fmt.Sprintf("Severe earthquake detected (M%.1f, intensity %d), take cover", magnitude, intensity),
			Color:   "darkred",
		}
	}
}

func IsEarthquake(magnitude, threshold float64) bool {
	return magnitude >= threshold
}

// Energy estimates released energy in joules via the Gutenberg-Richter
// relation.
func Energy(magnitude float64) float64 {
	return math.Pow(10, 1.5*magnitude+4.8)
}

// EstimateImpactRadius estimates per-band reach in km. Bands are fixed
// fractions of the felt radius 10^(0.5*M).
func EstimateImpactRadius(magnitude float64) models.ImpactRadius {
	felt := math.Pow(10, 0.5*magnitude)
	return models.ImpactRadius{
		Extreme:  round2(felt * 0.05),
		Strong:   round2(felt * 0.15),
		Moderate: round2(felt * 0.4),
		Felt:     round2(felt),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Scorer bundles the package functions behind a fixed quake threshold.
type Scorer struct {
	Threshold float64
}

func NewScorer(threshold float64) *Scorer {
	if threshold <= 0 {
		threshold = DefaultQuakeThreshold
	}
	return &Scorer{Threshold: threshold}
}

func (s *Scorer) Enrich(ax, ay, az float64) models.Enrichment {
	return Enrich(ax, ay, az)
}

func (s *Scorer) Classify(magnitude float64) string {
	return Classify(magnitude)
}

func (s *Scorer) AssessAlert(magnitude float64, intensity int) models.AlertAssessment {
	return AssessAlert(magnitude, intensity)
}

func (s *Scorer) IsEarthquake(magnitude float64) bool {
	return IsEarthquake(magnitude, s.Threshold)
}

func (s *Scorer) Energy(magnitude float64) float64 {
	return Energy(magnitude)
}

func (s *Scorer) EstimateImpactRadius(magnitude float64) models.ImpactRadius {
	return EstimateImpactRadius(magnitude)
}
