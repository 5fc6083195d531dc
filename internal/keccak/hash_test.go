package keccak

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafIsDoubleHashOfFingerprint(t *testing.T) {
	tuple := Tuple{
		Beneficiary:  "alice",
		Start:        100,
		CliffOffset:  10,
		Duration:     1000,
		SliceSeconds: 5,
		Revokable:    true,
		Amount:       big.NewInt(42),
	}
	fp := Fingerprint(tuple)
	leaf := Leaf(tuple)
	assert.Equal(t, Keccak256(fp[:]), leaf)
}

func TestFingerprintIsDeterministic(t *testing.T) {
	tuple := Tuple{Beneficiary: "bob", Duration: 1, SliceSeconds: 1, Amount: big.NewInt(1)}
	assert.Equal(t, Fingerprint(tuple), Fingerprint(tuple))
}

func TestFingerprintDistinguishesFields(t *testing.T) {
	base := Tuple{Beneficiary: "carol", Duration: 1000, SliceSeconds: 1, Amount: big.NewInt(1)}
	variant := base
	variant.Amount = big.NewInt(2)
	assert.NotEqual(t, Fingerprint(base), Fingerprint(variant))
}

func TestScheduleIDDiffersByIndex(t *testing.T) {
	assert.NotEqual(t, ScheduleID("dana", 0), ScheduleID("dana", 1))
}

func TestScheduleIDDiffersByBeneficiary(t *testing.T) {
	assert.NotEqual(t, ScheduleID("dana", 0), ScheduleID("erin", 0))
}

func TestHashRoundTripsThroughString(t *testing.T) {
	h := Keccak256([]byte("round trip"))
	parsed, err := ParseHash(h.String())
	require.NoError(t, err)
	assert.Equal(t, h, parsed)
}

func TestParseHashRejectsBadLength(t *testing.T) {
	_, err := ParseHash("deadbeef")
	assert.Error(t, err)
}

func TestZeroHashIsZero(t *testing.T) {
	var h Hash
	assert.True(t, h.IsZero())
	h = Keccak256([]byte("x"))
	assert.False(t, h.IsZero())
}
