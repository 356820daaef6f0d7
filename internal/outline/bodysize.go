package outline

import "math"

// BodySize estimates the dominant paragraph font size: the most frequent
// rounded first-run size across all lines. On a tie the value that
// reached the winning count first is kept, so the result is deterministic
// for a given line order. Returns cfg.DefaultBodySize when no line has a
// run.
func BodySize(lines []Line, cfg Config) float64 {
	counts := make(map[int]int)
	best, bestCount := 0, 0
	for _, ln := range lines {
		if len(ln.Runs) == 0 {
			continue
		}
		size := int(math.Round(ln.Runs[0].Size))
		counts[size]++
		if counts[size] > bestCount {
			best, bestCount = size, counts[size]
		}
	}
	if bestCount == 0 {
		return cfg.DefaultBodySize
	}
	return float64(best)
}
