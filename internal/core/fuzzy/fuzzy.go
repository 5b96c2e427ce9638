// Package fuzzy scores string similarity for typo-tolerant lexicon lookups.
// The metric is the classic matching-block ratio: twice the number of
// matching characters across the longest common blocks, divided by the
// combined length of both strings. It is symmetric and lands in [0, 1].
package fuzzy

import "strings"

// DefaultThreshold is the general-purpose candidacy cutoff.
const DefaultThreshold = 0.8

// ScanThreshold is the looser cutoff used when scanning a keyword against
// the full dictionary in both languages.
const ScanThreshold = 0.65

// Similarity returns the normalized similarity of a and b after case-folding
// and trimming surrounding whitespace. Identical strings score 1.0.
func Similarity(a, b string) float64 {
	ra := []rune(strings.ToLower(strings.TrimSpace(a)))
	rb := []rune(strings.ToLower(strings.TrimSpace(b)))

	length := len(ra) + len(rb)
	if length == 0 {
		return 1.0
	}
	return 2.0 * float64(totalMatching(ra, rb)) / float64(length)
}

// IsCandidate reports whether a and b are similar enough to pair up.
func IsCandidate(a, b string, threshold float64) bool {
	return Similarity(a, b) >= threshold
}

// totalMatching sums the sizes of the matching blocks between a and b:
// recursively take the longest common block, then match the pieces to its
// left and to its right.
func totalMatching(a, b []rune) int {
	type span struct{ alo, ahi, blo, bhi int }

	// Index positions of each rune in b for the longest-match search.
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	total := 0
	queue := []span{{0, len(a), 0, len(b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		bestI, bestJ, bestSize := longestMatch(a, b2j, s.alo, s.ahi, s.blo, s.bhi)
		if bestSize == 0 {
			continue
		}
		total += bestSize
		queue = append(queue,
			span{s.alo, bestI, s.blo, bestJ},
			span{bestI + bestSize, s.ahi, bestJ + bestSize, s.bhi},
		)
	}
	return total
}

// longestMatch finds the longest block a[i:i+size] == b[j:j+size] with
// alo <= i < i+size <= ahi and blo <= j < j+size <= bhi, preferring the
// earliest block in a, then in b.
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) (int, int, int) {
	bestI, bestJ, bestSize := alo, blo, 0
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newJ2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newJ2len[j] = k
			if k > bestSize {
				bestI, bestJ, bestSize = i-k+1, j-k+1, k
			}
		}
		j2len = newJ2len
	}
	return bestI, bestJ, bestSize
}
