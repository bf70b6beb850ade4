package powersort

import "math/bits"

// nodePowerMSB computes the node power of the boundary between adjacent runs
// A=[sA..eA] and B=[sB..eB] inside the outer range [lo, hi), using the
// O(1) most-significant-bit trick from spec.md §4.3 computation 1.
//
// Let a = (mA-lo)/n and b = (mB-lo)/n be the normalized midpoints of A and B
// as rationals in [0, 1), where mA=(sA+sB)/2 and mB=(sB+eB+1)/2. The power is
// 1 plus the number of leading binary-fraction bits a and b share. Both a and
// b are computed here as 32-bit fixed-point fractions (multiplied by 2^32)
// via a single widened 64-bit shift-then-divide, so the shared-prefix count
// is just the leading-zero count of their XOR.
//
// Requires n = hi-lo to fit in a signed 32-bit integer (spec.md §1 Non-goals).
func nodePowerMSB(lo, hi, sA, sB, eB int) int {
	n := int64(hi - lo)

	l := 2*int64(sA) + 2*int64(sB) - 4*int64(lo)
	r := 2*int64(sB) + 2*int64(eB) + 2 - 4*int64(lo)

	a := uint32((l << 30) / n)
	b := uint32((r << 30) / n)

	return bits.LeadingZeros32(a^b) + 1
}

// nodePowerBitwise computes the same node power as nodePowerMSB by
// simulating long division of the two run-midpoint fractions by n, one
// binary digit at a time, until the digits first differ (spec.md §4.3
// computation 2). It has no word-width constraint on n and is the
// normative definition nodePowerMSB is checked against.
func nodePowerBitwise(lo, hi, sA, sB, eB int) int {
	n := hi - lo

	l := 2*sA + 2*sB - 4*lo
	r := 2*sB + 2*eB + 2 - 4*lo
	divisor := 4 * n

	count := 0
	for {
		count++

		l *= 2
		digitL := 0
		if l >= divisor {
			digitL = 1
			l -= divisor
		}

		r *= 2
		digitR := 0
		if r >= divisor {
			digitR = 1
			r -= divisor
		}

		if digitL != digitR {
			return count
		}
	}
}

// nodePower dispatches to the configured node-power computation.
func nodePower(lo, hi, sA, sB, eB int, useMSB bool) int {
	if useMSB {
		return nodePowerMSB(lo, hi, sA, sB, eB)
	}
	return nodePowerBitwise(lo, hi, sA, sB, eB)
}
