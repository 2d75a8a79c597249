// Package rendering provides functionality to render resume previews as HTML documents.
package rendering

import (
	"math"
	"strconv"
)

// minScale is the smallest effective font scale; zero, negative and
// non-finite inputs are coerced here.
const minScale = 0.01

// EffectiveScale clamps a raw font-scale value to a strictly positive scale,
// rounded to two decimal places.
func EffectiveScale(raw float64) float64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw <= 0 {
		return minScale
	}
	rounded := math.Round(raw*100) / 100
	if rounded < minScale {
		return minScale
	}
	return rounded
}

// ScalePercent returns the integer percentage label for a font scale,
// e.g. 0.85 renders as 85.
func ScalePercent(raw float64) int {
	return int(math.Round(EffectiveScale(raw) * 100))
}

// formatScale renders a scale value without trailing zeros ("1", "0.85").
func formatScale(scale float64) string {
	return strconv.FormatFloat(scale, 'f', -1, 64)
}
