package powersort

// detectRun returns the end index (inclusive) of the maximal monotone run
// beginning at lo within [lo, hi). A strictly descending run is reversed in
// place so it comes back ascending; ties are never treated as descending,
// which is what keeps the reversal stable. When onlyIncreasingRuns is set,
// descending sequences are never reversed: the run stops after a single
// element instead, matching the configuration spec.md §4.4 reserves for
// MinRunLen=1 callers that already guarantee ascending natural runs.
func detectRun[T any](a []T, lo, hi int, less func(a, b T) bool, onlyIncreasingRuns bool) int {
	if lo == hi-1 {
		return lo
	}

	runHi := lo + 1
	descending := less(a[runHi], a[lo])
	if descending && onlyIncreasingRuns {
		return lo
	}

	if descending {
		runHi++
		for runHi < hi && less(a[runHi], a[runHi-1]) {
			runHi++
		}
		reverseRange(a, lo, runHi)
	} else {
		for runHi < hi && !less(a[runHi], a[runHi-1]) {
			runHi++
		}
	}
	return runHi - 1
}

// reverseRange reverses a[lo:hi) in place.
func reverseRange[T any](a []T, lo, hi int) {
	for lo < hi-1 {
		a[lo], a[hi-1] = a[hi-1], a[lo]
		lo++
		hi--
	}
}

// extendRun stable-inserts a[start+nPresorted : endTarget+1] into the
// already-sorted prefix a[start : start+nPresorted) via binary insertion
// sort. The search returns the rightmost insertion point so that elements
// equal to the pivot keep their relative order (the pivot always lands
// after them).
func extendRun[T any](a []T, start, endTarget, nPresorted int, less func(a, b T) bool) {
	sortedEnd := start + nPresorted
	if sortedEnd == start {
		sortedEnd++
	}

	for i := sortedEnd; i <= endTarget; i++ {
		pivot := a[i]

		left, right := start, i
		for left < right {
			mid := int(uint(left+right) >> 1)
			if less(pivot, a[mid]) {
				right = mid
			} else {
				left = mid + 1
			}
		}

		n := i - left
		if n > 0 {
			copy(a[left+1:i+1], a[left:i])
			a[left] = pivot
		}
	}
}
