package access

import (
	"math/big"

	"vestlock/internal/keccak"
	"vestlock/internal/sdk"
	"vestlock/internal/vlerror"
)

// Config mutation keys for the §4.H purchasable-variant fields the Admin
// rotates post-init: the Merkle root, the per-unit native-currency cost,
// and the payment receiver. Kept alongside roles/pause/handover since all
// four are Admin-gated mutable fields on the single instance, per §4.C's
// "Admin ... rotates Merkle root, updates unit cost and payment sink."
const (
	merkleRootKey      = "merkle_root"
	vTokenCostKey      = "v_token_cost"
	paymentReceiverKey = "payment_receiver"
)

// oneToken mirrors vesting.oneToken; duplicated here rather than imported
// to avoid an access->vesting dependency for a single constant.
var oneToken = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// MerkleRoot returns the currently configured root, the zero hash if none
// has been set.
func (c *Controller) MerkleRoot() keccak.Hash {
	ptr := c.state.Get(merkleRootKey)
	if ptr == nil || *ptr == "" {
		return keccak.Hash{}
	}
	h, err := keccak.ParseHash(*ptr)
	if err != nil {
		return keccak.Hash{}
	}
	return h
}

// SetMerkleRoot rotates the root. Admin-only is checked by the caller.
func (c *Controller) SetMerkleRoot(root keccak.Hash) {
	c.state.Set(merkleRootKey, root.String())
}

// VTokenCost returns the configured per-unit native-currency price, zero
// if never set.
func (c *Controller) VTokenCost() *big.Int {
	ptr := c.state.Get(vTokenCostKey)
	if ptr == nil || *ptr == "" {
		return new(big.Int)
	}
	x, ok := new(big.Int).SetString(*ptr, 10)
	if !ok {
		return new(big.Int)
	}
	return x
}

// SetVTokenCost sets the per-unit price, rejecting values at or above
// 10^18 per §4.H ("must be < 10^18 ... the reference rejects 10 * 10^18 as
// excessive").
func (c *Controller) SetVTokenCost(cost *big.Int) error {
	if cost.Sign() < 0 || cost.Cmp(oneToken) >= 0 {
		return vlerror.New(vlerror.InvalidAmount, "v_token_cost must be less than 10^18")
	}
	c.state.Set(vTokenCostKey, cost.String())
	return nil
}

// PaymentReceiver returns the configured receiver of purchasable-claim
// payments.
func (c *Controller) PaymentReceiver() sdk.Address {
	ptr := c.state.Get(paymentReceiverKey)
	if ptr == nil {
		return sdk.ZeroAddress
	}
	return sdk.Address(*ptr)
}

// SetPaymentReceiver sets the receiver, rejecting the zero identity per
// §6's "Mutation is Admin-gated and rejects the zero identity."
func (c *Controller) SetPaymentReceiver(receiver sdk.Address) error {
	if receiver.IsZero() {
		return vlerror.New(vlerror.InvalidAddress, "payment receiver must not be zero")
	}
	c.state.Set(paymentReceiverKey, receiver.String())
	return nil
}
