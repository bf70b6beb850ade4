package powersort

// Engine is a reusable Powersort instance: its merge workspace and adaptive
// gallop threshold persist across calls to SortRange, so a caller sorting
// many ranges (e.g. one tile per worker in a parallel sort harness, per
// spec.md §5 "Parallel usage") can avoid reallocating the merge buffer for
// each one. The zero value is ready to use; NewEngine lets a caller seed the
// initial workspace.
type Engine[T any] struct {
	tmp       []T
	minGallop int

	// Stats, if non-nil, accumulates merge-cost instrumentation across
	// every call to SortRange. See the Stats type.
	Stats *Stats
}

// NewEngine returns an Engine that starts from the given workspace instead
// of allocating its own. workspace may be nil.
func NewEngine[T any](workspace []T) *Engine[T] {
	return &Engine[T]{tmp: workspace, minGallop: minGallopInit}
}

// Sort sorts a in place using DefaultOptions.
func Sort[T any](a []T, less func(a, b T) bool) error {
	return SortRange(a, 0, len(a), less, DefaultOptions())
}

// SortRange sorts a[lo:hi] in place using a one-shot Engine.
func SortRange[T any](a []T, lo, hi int, less func(a, b T) bool, opts Options) error {
	e := &Engine[T]{minGallop: minGallopInit}
	return e.SortRange(a, lo, hi, less, opts)
}

// SortRange sorts a[lo:hi] in place, reusing e's workspace and adaptive
// gallop threshold from any prior call.
func (e *Engine[T]) SortRange(a []T, lo, hi int, less func(a, b T) bool, opts Options) error {
	if less == nil {
		return ErrNilComparator
	}
	if lo < 0 || hi > len(a) || lo > hi {
		return ErrInvalidRange
	}
	if err := opts.validate(); err != nil {
		return err
	}
	if e.minGallop == 0 {
		e.minGallop = minGallopInit
	}

	n := hi - lo
	if n < 2 {
		return nil // spec.md §8: n=0,1 are no-ops with zero comparator calls
	}

	if n < opts.MinRunLen {
		// spec.md §4.5 small-range fast path: one run, one insertion sort,
		// no merges.
		runEnd := detectRun(a, lo, hi, less, opts.OnlyIncreasingRuns)
		extendRun(a, lo, hi-1, runEnd-lo+1, less)
		return nil
	}

	stack := newPowerStack(n)

	sA := lo
	eA := detectRun(a, lo, hi, less, opts.OnlyIncreasingRuns)
	if eA-sA+1 < opts.MinRunLen {
		target := lo + opts.MinRunLen - 1
		if target > hi-1 {
			target = hi - 1
		}
		extendRun(a, sA, target, eA-sA+1, less)
		eA = target
	}

	for eA < hi-1 {
		sB := eA + 1
		eB := detectRun(a, sB, hi, less, opts.OnlyIncreasingRuns)
		if eB-sB+1 < opts.MinRunLen {
			target := sB + opts.MinRunLen - 1
			if target > hi-1 {
				target = hi - 1
			}
			extendRun(a, sB, target, eB-sB+1, less)
			eB = target
		}

		k := nodePower(lo, hi, sA, sB, eB, opts.UseMSBPower)

		for l := stack.top; l > k; l-- {
			if !stack.occupied[l] {
				continue
			}
			if err := e.merge(a, stack.start[l], stack.end[l], sA, eA, less); err != nil {
				return err
			}
			sA = stack.start[l]
			stack.clear(l)
		}

		if err := stack.push(k, sA, eA); err != nil {
			return err
		}

		sA, eA = sB, eB
	}

	for l := stack.top; l >= 1; l-- {
		if !stack.occupied[l] {
			continue
		}
		if err := e.merge(a, stack.start[l], stack.end[l], sA, eA, less); err != nil {
			return err
		}
		sA = stack.start[l]
		stack.clear(l)
	}

	return nil
}

// merge merges adjacent runs [s1,e1] and [s2,e2] (inclusive, s2 == e1+1)
// in place via the galloping stable merge (spec.md §4.6), after trimming
// the prefix of run 1 already <= run 2's head and the suffix of run 2
// already >= run 1's tail.
func (e *Engine[T]) merge(a []T, s1, e1, s2, e2 int, less func(a, b T) bool) error {
	base1, len1 := s1, e1-s1+1
	base2, len2 := s2, e2-s2+1
	e.Stats.record(len1, len2)

	k := gallopRight(a[base2], a, base1, len1, 0, less)
	base1 += k
	len1 -= k
	if len1 == 0 {
		return nil
	}

	len2 = gallopLeft(a[base1+len1-1], a, base2, len2, len2-1, less)
	if len2 == 0 {
		return nil
	}

	if len1 <= len2 {
		return e.mergeLo(a, base1, len1, base2, len2, less)
	}
	return e.mergeHi(a, base1, len1, base2, len2, less)
}
