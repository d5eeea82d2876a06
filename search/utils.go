package search

import (
	"golang.org/x/exp/constraints"
)

// MaxBy finds the element with the largest key (like lodash's maxBy). Ties go
// to the element that comes first.
func MaxBy[T any, K constraints.Ordered](slice []T, keyFunc func(T) K) T {
	if len(slice) == 0 {
		var zero T
		return zero
	}

	maxElem := slice[0]
	maxKey := keyFunc(maxElem)

	for _, elem := range slice[1:] {
		if key := keyFunc(elem); key > maxKey {
			maxKey = key
			maxElem = elem
		}
	}

	return maxElem
}

// chunks splits [0, n) into at most parts contiguous ranges of near equal size.
func chunks(n, parts int) [][2]int {
	if parts < 1 {
		parts = 1
	}
	parts = min(parts, n)

	out := make([][2]int, 0, parts)
	start := 0
	for i := range parts {
		end := start + (n-start)/(parts-i)
		out = append(out, [2]int{start, end})
		start = end
	}
	return out
}
