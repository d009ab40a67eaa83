package normalize

import (
	"math"
	"strconv"
)

// MagicUnitPx is the design system's base spacing multiplier: one magic unit
// equals 16 pixel-equivalents (and one rem at the default root font size).
const MagicUnitPx = 16

// formatNumber renders a float without trailing zeros ("2.5", "40").
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// remString renders a rem magnitude ("1rem", "2.5rem").
func remString(n float64) string {
	return formatNumber(n) + "rem"
}

// pxString renders a pixel magnitude ("40px").
func pxString(n float64) string {
	return formatNumber(n) + "px"
}

// remToPx converts a rem magnitude to its rounded pixel equivalent.
func remToPx(rem float64) float64 {
	return math.Round(rem * MagicUnitPx)
}
