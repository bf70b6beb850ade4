package powersort

import "errors"

var (
	// ErrInvalidRange indicates lo/hi do not describe a valid sub-range of a.
	ErrInvalidRange = errors.New("powersort: invalid range: require 0 <= lo <= hi <= len(a)")
	// ErrNilComparator indicates a nil less-than predicate was supplied.
	ErrNilComparator = errors.New("powersort: less must not be nil")
	// ErrInvalidMinRunLen indicates Options.MinRunLen fell outside [1, 64].
	ErrInvalidMinRunLen = errors.New("powersort: MinRunLen must be in [1, 64]")
	// ErrIncompatibleOptions indicates a rejected combination of Options
	// fields, per spec.md §6: UseMSBPower=false is incompatible with
	// OnlyIncreasingRuns=true, and MinRunLen>1 requires
	// {UseMSBPower=true, OnlyIncreasingRuns=false}.
	ErrIncompatibleOptions = errors.New("powersort: incompatible Options combination")
	// ErrComparatorContract is returned when the galloping merge observes a
	// run emptying out of turn, the signature of a non-transitive or
	// non-total less-than predicate. The array may be partially reordered.
	ErrComparatorContract = errors.New("powersort: comparison method violates its general contract")
	// ErrWorkspaceExhausted names the resource-exhaustion case of a merge
	// buffer that cannot grow to the capacity a merge requires (the
	// taxonomy entry in SPEC_FULL.md §7). No function in this package
	// returns it: the engine always allocates a larger buffer when it needs
	// one, including past a workspace passed to NewEngine.
	ErrWorkspaceExhausted = errors.New("powersort: workspace exhausted")
)
