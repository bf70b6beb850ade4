package powersort

import "fmt"

// powerStack holds the pending runs of a Powersort driver loop, one slot per
// power level (spec.md §4.4 "Run stack and driver loop"). Unlike the
// teacher's Timsort stack — which holds the whole backlog in stack order and
// collapses it by a length invariant — Powersort addresses each pending run
// directly by the power of its right boundary, and drains from the current
// top down to (but not including) the incoming run's own power.
type powerStack struct {
	occupied []bool
	start    []int
	end      []int
	top      int // highest occupied level, 0 if the stack is empty
}

// newPowerStack allocates a stack sized for a range of length n. The number
// of levels a power can take for a range of length n is floor(log2 n) + 2
// (spec.md §4.4 "State").
func newPowerStack(n int) *powerStack {
	levels := 2
	for m := n; m > 1; m >>= 1 {
		levels++
	}
	return &powerStack{
		occupied: make([]bool, levels+1),
		start:    make([]int, levels+1),
		end:      make([]int, levels+1),
	}
}

// push records run [start, end] at power level k, becoming the new top.
func (s *powerStack) push(k, start, end int) error {
	if k <= 0 || k >= len(s.occupied) {
		return fmt.Errorf("powersort: power level %d out of range [1, %d)", k, len(s.occupied))
	}
	s.occupied[k] = true
	s.start[k] = start
	s.end[k] = end
	s.top = k
	return nil
}

// clear empties level l. Called once its run has been folded into the
// merge result moving through the driver loop.
func (s *powerStack) clear(l int) {
	s.occupied[l] = false
}
