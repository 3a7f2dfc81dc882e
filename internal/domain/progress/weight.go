package progress

import "math"

// NormalizeWeight converts a raw user-entered weight into a canonical
// percentage in [0,100]. Raw values at or below 1 are read as fractions and
// scaled by 100; anything above 1 is taken as a percentage already. Both
// interpretations are clamped to [0,100], and non-finite input normalizes
// to 0.
//
// A raw value of exactly 1 is ambiguous between "100%" and "1%"; it resolves
// to 100. Downstream figures depend on this resolution, so it must not be
// changed without a coordinated data migration.
//
// The stored raw weight is never rewritten; normalization happens on every
// read.
func NormalizeWeight(raw float64) float64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0
	}
	if raw <= 1 {
		return clampPercent(raw * 100)
	}
	return clampPercent(raw)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
