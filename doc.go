// Package powersort implements Powersort, a stable comparison sort that
// schedules its merges from a nearly-optimal merge tree instead of Timsort's
// run-length invariant.
//
// What:
//
//   - Sort / SortRange sort a slice in place given a strict less-than
//     predicate, the same calling convention this repository has always used
//     for its sorted-slice helpers.
//   - Engine exposes the sort as a reusable value: construct one per worker
//     and call SortRange repeatedly, reusing its merge workspace across
//     calls instead of reallocating per call.
//   - Natural runs are detected and extended exactly as in a classic
//     Timsort; what changes is the schedule used to decide which two
//     adjacent runs merge next. Powersort computes a "node power" for the
//     boundary between every pair of adjacent runs and drains the pending
//     run stack down to that power before pushing, producing a merge tree
//     within an additive constant of the information-theoretic optimum for
//     the observed run-length distribution.
//
// Why:
//
//   - Timsort's merge-at-invariant schedule is provably good on average but
//     has known adversarial run-length patterns ("Timsort drag" sequences)
//     that push its merge cost well above the achievable optimum. Powersort
//     closes that gap while keeping the same stability guarantee, the same
//     galloping merge, and the same linear-time best case on already-sorted
//     input.
//
// Complexity:
//
//   - Sort: O(n log n) comparisons worst case, O(n) on a presorted or
//     few-run input. Merge cost (sum of |A|+|B| over all merges) is within
//     an additive O(n) of the optimal merge tree for the run decomposition.
//   - Memory: O(min(|A|, |B|)) per merge, capped at n/2 overall, reused
//     across merges within one sort call.
//
// Options:
//
//   - Options.MinRunLen: short natural runs are extended to this length via
//     binary insertion sort before entering the merge schedule.
//   - Options.UseMSBPower: select the O(1) leading-zero-count node-power
//     computation over the bit-by-bit fallback; both must agree by
//     construction (see DESIGN.md).
//   - Options.OnlyIncreasingRuns: disable descending-run reversal, useful
//     when the caller already guarantees weakly increasing natural runs.
//
// Errors:
//
//   - ErrInvalidRange, ErrNilComparator, ErrInvalidMinRunLen,
//     ErrIncompatibleOptions: precondition failures, fail fast, no mutation.
//   - ErrComparatorContract: the supplied less-than predicate is not a
//     consistent total order; the array may be left partially reordered.
package powersort
