package powersort

// Stats accumulates the merge-cost instrumentation spec.md §4.6 describes
// as optional: the sum of |A|+|B| over every merge performed. It is not
// consulted by the algorithm itself — only a benchmark harness (out of
// scope per spec.md §1) would read it — but Engine updates it when set, so
// such a harness can attach one without forking the engine.
type Stats struct {
	MergeCount int
	MergeCost  int64
}

func (s *Stats) record(len1, len2 int) {
	if s == nil {
		return
	}
	s.MergeCount++
	s.MergeCost += int64(len1 + len2)
}
