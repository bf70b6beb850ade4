package powersort

// Options configures one sort call. The zero value is not valid on its own;
// use DefaultOptions and override individual fields.
type Options struct {
	// UseMSBPower selects the O(1) most-significant-bit node-power
	// computation (spec.md §4.3 computation 1). When false, the bit-by-bit
	// fallback (computation 2) is used instead; the two must agree on any
	// input where both are defined.
	UseMSBPower bool

	// OnlyIncreasingRuns disables descending-run reversal in the run
	// detector: only weakly increasing runs are accepted. Requires
	// UseMSBPower true.
	OnlyIncreasingRuns bool

	// MinRunLen is the short-run extension threshold, in [1, 64]. Values
	// above 1 require UseMSBPower=true and OnlyIncreasingRuns=false.
	MinRunLen int
}

const (
	minAllowedRunLen = 1
	maxAllowedRunLen = 64
	defaultMinRunLen = 24
)

// DefaultOptions returns the configuration used by Sort: the MSB node-power
// computation, descending-run reversal enabled, and a MinRunLen of 24.
func DefaultOptions() Options {
	return Options{
		UseMSBPower:        true,
		OnlyIncreasingRuns: false,
		MinRunLen:          defaultMinRunLen,
	}
}

// validate rejects the combinations spec.md §6 names as fail-fast
// preconditions, before any element of the array is touched.
func (o Options) validate() error {
	if o.MinRunLen < minAllowedRunLen || o.MinRunLen > maxAllowedRunLen {
		return ErrInvalidMinRunLen
	}
	if !o.UseMSBPower && o.OnlyIncreasingRuns {
		return ErrIncompatibleOptions
	}
	if o.MinRunLen > 1 && (!o.UseMSBPower || o.OnlyIncreasingRuns) {
		return ErrIncompatibleOptions
	}
	return nil
}
