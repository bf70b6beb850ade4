// Package sorted collects the slice operations that assume their input is
// already sorted under a caller-supplied less-than predicate: search,
// insert, remove, and the merge-style set operations (Union, Merge,
// Difference, Intersection, IterateOver).
//
// These are carried over from the project's earlier per-type template
// packages rather than dropped: a Powersort engine is only half of what
// those templates provided, and the other half — the binary-search-backed
// helpers built on top of a sorted slice — still has no dependency on how
// the slice got sorted. Every function here that compares elements takes
// the same func(a, b T) bool less-than predicate Engine.SortRange does.
package sorted
