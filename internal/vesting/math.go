package vesting

import "math/big"

// Releasable implements the pure piecewise-linear, slice-quantised release
// function from §4.E. Order of operations is normative: the multiply must
// happen before the final division for deterministic slice quantisation,
// and math/big gives that multiply all the headroom it needs — amount_total
// is capped at 2²⁰⁰ and vested_seconds never exceeds 50·365·86400 < 2³¹, so
// the intermediate product never approaches an overflow concern the way it
// would in a fixed-width integer.
func Releasable(s *Schedule, now int64) *big.Int {
	if s.Status == StatusRevoked {
		return zero()
	}
	if now < s.CliffAbsolute {
		return zero()
	}
	if now >= s.Start+s.Duration {
		return clone(s.Unreleased())
	}

	elapsed := now - s.Start
	slice := int64(s.SliceSeconds)
	slices := elapsed / slice
	vestedSeconds := slices * slice

	vestedAmount := new(big.Int).Mul(s.AmountTotal, big.NewInt(vestedSeconds))
	vestedAmount.Quo(vestedAmount, big.NewInt(s.Duration))

	return sub(vestedAmount, s.Released)
}
