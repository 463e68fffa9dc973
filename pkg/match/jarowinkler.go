// Package match provides approximate string comparison for duplicate
// detection. It is pure computation: no state, no failure modes.
package match

// winklerPrefixWeight is the per-character boost for a shared leading prefix.
const winklerPrefixWeight = 0.1

// maxPrefixLength caps the prefix considered by the Winkler boost.
const maxPrefixLength = 4

// JaroWinkler returns the Jaro-Winkler similarity between two strings in
// [0,1]. The function is symmetric, returns 1 for identical strings, and 0
// when either string is empty (and the other is not).
//
// Case folding is the caller's responsibility: duplicate resolution
// lower-cases names before comparing.
func JaroWinkler(a, b string) float64 {
	if a == b {
		return 1
	}

	jaro := jaroSimilarity(a, b)
	if jaro == 0 {
		return 0
	}

	prefix := commonPrefix(a, b)
	return jaro + float64(prefix)*winklerPrefixWeight*(1-jaro)
}

// jaroSimilarity computes the Jaro score: the average of the proportion of
// matched characters in each string and the proportion of matches that are
// not transposed.
func jaroSimilarity(a, b string) float64 {
	lenA, lenB := len(a), len(b)
	if lenA == 0 || lenB == 0 {
		return 0
	}

	// Characters match when equal and within half the longer length,
	// minus one, of each other.
	window := max(lenA, lenB)/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, lenA)
	matchedB := make([]bool, lenB)

	matches := 0
	for i := 0; i < lenA; i++ {
		start := max(0, i-window)
		end := min(i+window+1, lenB)

		// First eligible unmatched character wins, scanned left to right.
		for j := start; j < end; j++ {
			if matchedB[j] || a[i] != b[j] {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0
	}

	// Re-walk matched characters in original order on both sides; positions
	// where they differ are transpositions, counted in halves.
	transpositions := 0
	k := 0
	for i := 0; i < lenA; i++ {
		if !matchedA[i] {
			continue
		}
		for !matchedB[k] {
			k++
		}
		if a[i] != b[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	t := float64(transpositions) / 2
	return (m/float64(lenA) + m/float64(lenB) + (m-t)/m) / 3
}

// commonPrefix returns the length of the shared leading prefix, capped at
// maxPrefixLength.
func commonPrefix(a, b string) int {
	limit := min(maxPrefixLength, min(len(a), len(b)))
	prefix := 0
	for i := 0; i < limit; i++ {
		if a[i] != b[i] {
			break
		}
		prefix++
	}
	return prefix
}
