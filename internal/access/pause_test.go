package access

import (
	"math/big"
	"testing"

	"vestlock/internal/keccak"
	"vestlock/internal/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPauseFlagToggles(t *testing.T) {
	ctrl := NewController(sdk.NewMockState())
	require.NoError(t, ctrl.RequireNotPaused())

	ctrl.SetPaused(true)
	assert.Error(t, ctrl.RequireNotPaused())

	ctrl.SetPaused(false)
	assert.NoError(t, ctrl.RequireNotPaused())
}

func TestReentrancyGuardRejectsNestedEnter(t *testing.T) {
	ctrl := NewController(sdk.NewMockState())
	require.NoError(t, ctrl.Enter())
	assert.Error(t, ctrl.Enter(), "a second Enter before Exit must be rejected")
	ctrl.Exit()
	assert.NoError(t, ctrl.Enter())
}

func TestMerkleRootDefaultsToZero(t *testing.T) {
	ctrl := NewController(sdk.NewMockState())
	assert.True(t, ctrl.MerkleRoot().IsZero())

	root := keccak.Keccak256([]byte("root"))
	ctrl.SetMerkleRoot(root)
	assert.Equal(t, root, ctrl.MerkleRoot())
}

func TestVTokenCostRejectsAtOrAboveOneToken(t *testing.T) {
	ctrl := NewController(sdk.NewMockState())
	oneToken := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	assert.Error(t, ctrl.SetVTokenCost(oneToken))
	assert.NoError(t, ctrl.SetVTokenCost(new(big.Int).Sub(oneToken, big.NewInt(1))))
}

func TestPaymentReceiverRejectsZero(t *testing.T) {
	ctrl := NewController(sdk.NewMockState())
	assert.Error(t, ctrl.SetPaymentReceiver(sdk.ZeroAddress))
	require.NoError(t, ctrl.SetPaymentReceiver(sdk.Address("vault")))
	assert.Equal(t, sdk.Address("vault"), ctrl.PaymentReceiver())
}
