package match

// DefaultThreshold is the minimum similarity a candidate must clear to be
// accepted as a fuzzy match.
const DefaultThreshold = 0.43

// Score computes the similarity between a dataset key and a widget name
// after normalization, taking the better of the plain and suffix-stripped
// comparisons.
func Score(key, name string) float64 {
	score := Similarity(NormalizeIdent(key), NormalizeIdent(name))

	stripped := Similarity(
		NormalizeIdentWithSuffixStrip(key),
		NormalizeIdentWithSuffixStrip(name),
	)
	if stripped > score {
		score = stripped
	}

	return score
}

// Closest returns the candidate most similar to target, or false when no
// candidate scores at or above the threshold. Ties are broken by first
// occurrence in the candidate order, so resolution is deterministic for a
// fixed widget collection. A threshold <= 0 falls back to DefaultThreshold.
func Closest(target string, candidates []string, threshold float64) (string, bool) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	best := ""
	bestScore := 0.0
	found := false

	for _, candidate := range candidates {
		score := Score(target, candidate)
		if score < threshold {
			continue
		}

		// Strictly greater keeps the earliest candidate on ties
		if !found || score > bestScore {
			best = candidate
			bestScore = score
			found = true
		}
	}

	return best, found
}
