// Package quality implements the theme quality heuristics used by CI
// tooling: the fixed-weight completeness scorer, the comprehensive
// per-check quality report, and the CI summary report.
package quality

// Fixed weights of the completeness scorer. The score rewards
// structural richness only; it never inspects values.
const (
	baseScore      = 70.0
	nameBonus      = 5.0
	versionBonus   = 5.0
	colorsBonus    = 10.0
	fontsBonus     = 5.0
	metadataBonus  = 5.0
	maxScore       = 100.0
	richColorCount = 5
)

// PassThreshold is the minimum score for a PASS verdict.
const PassThreshold = 70.0

// scoreable is the subset of the theme document the scorer reads.
// internal/theme.Document satisfies it.
type scoreable interface {
	Has(key string) bool
	ColorCount() int
}

// Score computes the completeness score of a theme document.
//
// The result starts at 70 and earns bonuses for present fields: name
// and version (+5 each), a colors table with more than five entries
// (+10), fonts and metadata (+5 each), clamped to 100. There is no
// penalty path, so the result is always within [70, 100]; degenerate
// values do not lower it.
func Score(doc scoreable) float64 {
	score := baseScore
	if doc.Has("name") {
		score += nameBonus
	}
	if doc.Has("version") {
		score += versionBonus
	}
	if doc.Has("colors") && doc.ColorCount() > richColorCount {
		score += colorsBonus
	}
	if doc.Has("fonts") {
		score += fontsBonus
	}
	if doc.Has("metadata") {
		score += metadataBonus
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}
