package vesting

import (
	"math/big"
	"testing"

	"vestlock/internal/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSchedule(amount int64, duration, cliffOffset int64, slice uint8) *Schedule {
	return &Schedule{
		Start:         0,
		CliffAbsolute: cliffOffset,
		Duration:      duration,
		SliceSeconds:  slice,
		AmountTotal:   big.NewInt(amount),
		Released:      big.NewInt(0),
		Status:        StatusInitialized,
		Beneficiary:   sdk.Address("alice"),
		Revokable:     true,
	}
}

func TestReleasableGradualVest(t *testing.T) {
	const day = 24 * 3600
	s := newSchedule(100, 4*7*day, 0, 1)

	r := Releasable(s, s.Duration/2)
	require.Equal(t, "50", r.String())

	s.Released = r
	r2 := Releasable(s, s.Duration+1)
	assert.Equal(t, "50", r2.String())

	s.Released = new(big.Int).Add(s.Released, r2)
	assert.Equal(t, int64(0), s.Unreleased().Int64())
}

func TestReleasableBeforeCliff(t *testing.T) {
	s := newSchedule(100, 1000, 500, 1)
	assert.Equal(t, "0", Releasable(s, 499).String())
	assert.Equal(t, "50", Releasable(s, 500).String())
}

func TestReleasableAfterCliffBeforeSlice(t *testing.T) {
	s := newSchedule(1000, 1000, 0, 10)
	r := Releasable(s, 9)
	assert.Equal(t, "0", r.String(), "elapsed 9s with a 10s slice has not crossed a quantisation boundary")

	r = Releasable(s, 10)
	assert.Equal(t, "10", r.String())
}

func TestReleasableFullAfterDuration(t *testing.T) {
	s := newSchedule(100, 1000, 0, 1)
	s.Released = big.NewInt(30)
	r := Releasable(s, 1000)
	assert.Equal(t, "70", r.String())

	r2 := Releasable(s, 5000)
	assert.Equal(t, "70", r2.String(), "releasable is the full remainder for any time at or beyond duration")
}

func TestReleasableRevokedIsZero(t *testing.T) {
	s := newSchedule(100, 1000, 0, 1)
	s.Status = StatusRevoked
	assert.Equal(t, "0", Releasable(s, 1000).String())
}

func TestReleasableMonotoneNonDecreasing(t *testing.T) {
	s := newSchedule(1_000_000, 365*24*3600, 0, 7)
	prev := Releasable(s, 0)
	for now := int64(0); now <= s.Duration; now += 3600 {
		cur := Releasable(s, now)
		assert.True(t, cur.Cmp(prev) >= 0, "releasable must never decrease as now advances")
		prev = cur
	}
}
