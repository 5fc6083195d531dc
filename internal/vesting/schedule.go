package vesting

import (
	"math/big"

	"vestlock/internal/sdk"
)

// Status is a schedule's lifecycle stage (§3).
type Status uint8

const (
	StatusInitialized Status = 1
	StatusRevoked     Status = 2
)

// Schedule is the central vesting record from §3. A zero-value Schedule
// (Duration == 0) is the in-band sentinel for "no such record" — the
// query surface returns exactly this for a miss rather than an error.
type Schedule struct {
	Start         int64
	CliffAbsolute int64
	Duration      int64
	SliceSeconds  uint8
	AmountTotal   *big.Int
	Released      *big.Int
	Status        Status
	Beneficiary   sdk.Address
	Revokable     bool
}

// Exists reports whether this is a real record rather than the zero
// sentinel.
func (s *Schedule) Exists() bool {
	return s != nil && s.Duration != 0
}

// Unreleased returns amount_total - released for the schedule as stored.
func (s *Schedule) Unreleased() *big.Int {
	return sub(s.AmountTotal, s.Released)
}

// Duration bounds from §3 clause 3.
const (
	MinDuration       = 7 * 24 * 3600
	MaxDuration       = 50 * 365 * 24 * 3600
	MinSliceSeconds   = 1
	MaxSliceSeconds   = 60
	MaxStartLookahead = 30 * 7 * 24 * 3600
)
