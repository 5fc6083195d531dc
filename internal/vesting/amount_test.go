package vesting

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountRoundTripsThroughDecimalString(t *testing.T) {
	x := new(big.Int).Lsh(big.NewInt(1), 190)
	encoded := encodeAmount(x)
	decoded, err := decodeAmount(encoded)
	require.NoError(t, err)
	assert.Equal(t, x, decoded)
}

func TestDecodeEmptyAmountIsZero(t *testing.T) {
	x, err := decodeAmount("")
	require.NoError(t, err)
	assert.Equal(t, int64(0), x.Int64())
}

func TestDecodeCorruptAmountFails(t *testing.T) {
	_, err := decodeAmount("not-a-number")
	assert.Error(t, err)
}
