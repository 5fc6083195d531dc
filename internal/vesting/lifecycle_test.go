package vesting

import (
	"math/big"
	"testing"

	"vestlock/internal/keccak"
	"vestlock/internal/merkle"
	"vestlock/internal/sdk"
	"vestlock/internal/vlerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * 3600

func newFixture(t *testing.T) (*Engine, *sdk.MockToken, *sdk.MockLog, sdk.Address) {
	t.Helper()
	state := sdk.NewMockState()
	token := sdk.NewMockToken(18)
	log := &sdk.MockLog{}
	self := sdk.Address("contract")
	token.Fund(self, big.NewInt(1_000_000))
	return NewEngine(state, token, log, self), token, log, self
}

func bal(token *sdk.MockToken, a sdk.Address) string {
	b, _ := token.BalanceOf(a)
	return b.String()
}

func TestCreateAndRelease(t *testing.T) {
	eng, token, _, _ := newFixture(t)
	beneficiary := sdk.Address("alice")

	id, err := eng.Create(0, CreateParams{
		Beneficiary:  beneficiary,
		Start:        0,
		CliffOffset:  0,
		Duration:     4 * 7 * day,
		SliceSeconds: 1,
		Revokable:    true,
		Amount:       big.NewInt(100),
	})
	require.NoError(t, err)

	r, err := eng.Releasable(id, 2*7*day)
	require.NoError(t, err)
	assert.Equal(t, "50", r.String())

	require.NoError(t, eng.Release(id, 2*7*day, r))
	assert.Equal(t, "50", bal(token, beneficiary))
	assert.Equal(t, "50", eng.BalanceOf(beneficiary).String())
	assert.Equal(t, "50", eng.TotalSupply().String())

	r2, err := eng.Releasable(id, 4*7*day+1)
	require.NoError(t, err)
	require.NoError(t, eng.Release(id, 4*7*day+1, r2))

	assert.Equal(t, "100", bal(token, beneficiary))
	assert.Equal(t, "0", eng.TotalSupply().String())
	assert.Equal(t, "0", eng.BalanceOf(beneficiary).String())
}

func TestCreateAndReleaseAtScenarioScale(t *testing.T) {
	eng, token, _, self := newFixture(t)
	beneficiary := sdk.Address("alice")
	oneToken := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	amount := new(big.Int).Mul(big.NewInt(100), oneToken)
	token.Fund(self, amount)

	id, err := eng.Create(0, CreateParams{
		Beneficiary:  beneficiary,
		Start:        0,
		Duration:     4 * 7 * day,
		SliceSeconds: 1,
		Revokable:    true,
		Amount:       amount,
	})
	require.NoError(t, err)

	half := new(big.Int).Div(amount, big.NewInt(2))
	r, err := eng.Releasable(id, 2*7*day)
	require.NoError(t, err)
	assert.Equal(t, half.String(), r.String())

	require.NoError(t, eng.Release(id, 2*7*day, r))
	assert.Equal(t, half.String(), bal(token, beneficiary))
}

func TestCreateRejectsInsufficientFreePool(t *testing.T) {
	eng, token, _, self := newFixture(t)
	token.Balances[self] = big.NewInt(10)

	_, err := eng.Create(0, CreateParams{
		Beneficiary:  sdk.Address("alice"),
		Start:        0,
		Duration:     7 * day,
		SliceSeconds: 1,
		Amount:       big.NewInt(100),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, vlerror.New(vlerror.InsufficientTokensInContract, ""))
}

func TestCreateRejectsDurationOutOfRange(t *testing.T) {
	eng, _, _, _ := newFixture(t)
	_, err := eng.Create(0, CreateParams{
		Beneficiary:  sdk.Address("alice"),
		Duration:     1,
		SliceSeconds: 1,
		Amount:       big.NewInt(1),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, vlerror.New(vlerror.InvalidDuration, ""))
}

func TestReleaseExceedingReleasableFails(t *testing.T) {
	eng, _, _, _ := newFixture(t)
	id, err := eng.Create(0, CreateParams{
		Beneficiary:  sdk.Address("alice"),
		Duration:     1000 * day,
		SliceSeconds: 1,
		Amount:       big.NewInt(100),
	})
	require.NoError(t, err)

	err = eng.Release(id, 100*day, big.NewInt(99))
	require.Error(t, err)
	assert.ErrorIs(t, err, vlerror.New(vlerror.InsufficientReleasableTokens, ""))
}

func TestRevokeMidFlight(t *testing.T) {
	eng, token, _, _ := newFixture(t)
	beneficiary := sdk.Address("bob")

	id, err := eng.Create(0, CreateParams{
		Beneficiary:  beneficiary,
		Duration:     1000 * day,
		SliceSeconds: 1,
		Revokable:    true,
		Amount:       big.NewInt(1000),
	})
	require.NoError(t, err)

	require.NoError(t, eng.Revoke(id, 400*day))

	assert.Equal(t, "400", bal(token, beneficiary), "vested-to-now amount pays out on revoke")
	assert.Equal(t, "0", eng.TotalSupply().String(), "revoked remainder leaves the aggregates")
	assert.Equal(t, "0", eng.BalanceOf(beneficiary).String())

	s, err := eng.ScheduleByID(id)
	require.NoError(t, err)
	assert.Equal(t, StatusRevoked, s.Status)

	err = eng.Release(id, 900*day, big.NewInt(1))
	assert.ErrorIs(t, err, vlerror.New(vlerror.ScheduleWasRevoked, ""))
}

func TestRevokeNotRevokableFails(t *testing.T) {
	eng, _, _, _ := newFixture(t)
	id, err := eng.Create(0, CreateParams{
		Beneficiary:  sdk.Address("carol"),
		Duration:     1000 * day,
		SliceSeconds: 1,
		Revokable:    false,
		Amount:       big.NewInt(100),
	})
	require.NoError(t, err)

	err = eng.Revoke(id, 500*day)
	assert.ErrorIs(t, err, vlerror.New(vlerror.NotRevokable, ""))
}

func TestReleaseAllWalksEveryIndex(t *testing.T) {
	eng, token, _, _ := newFixture(t)
	beneficiary := sdk.Address("dana")

	for i := 0; i < 3; i++ {
		_, err := eng.Create(0, CreateParams{
			Beneficiary:  beneficiary,
			Duration:     1000 * day,
			SliceSeconds: 1,
			Amount:       big.NewInt(300),
		})
		require.NoError(t, err)
	}

	total, err := eng.ReleaseAll(beneficiary, 500*day)
	require.NoError(t, err)
	assert.Equal(t, "450", total.String())
	assert.Equal(t, "450", bal(token, beneficiary))
	assert.Equal(t, uint64(3), eng.Count(beneficiary))
}

func TestWithdrawRespectsFreePool(t *testing.T) {
	eng, token, _, self := newFixture(t)
	_, err := eng.Create(0, CreateParams{
		Beneficiary:  sdk.Address("erin"),
		Duration:     1000 * day,
		SliceSeconds: 1,
		Amount:       big.NewInt(100),
	})
	require.NoError(t, err)

	room, err := eng.Withdrawable()
	require.NoError(t, err)
	assert.Equal(t, "999900", room.String())

	admin := sdk.Address("admin")
	require.NoError(t, eng.Withdraw(admin, room))
	assert.Equal(t, "999900", bal(token, admin))

	err = eng.Withdraw(admin, big.NewInt(1))
	assert.ErrorIs(t, err, vlerror.New(vlerror.InsufficientTokensInContract, ""))
	_ = self
}

// buildTwoLeafProof returns the root and the proof for leafA against a
// two-leaf tree {leafA, leafB}, using the same sorted-pair combine the
// claim gate verifies against.
func buildTwoLeafProof(leafA, leafB keccak.Hash) (root keccak.Hash, proof []keccak.Hash) {
	root = merkle.Combine(leafA, leafB)
	return root, []keccak.Hash{leafB}
}

func TestClaimInstallsScheduleAndPreventsDoubleClaim(t *testing.T) {
	eng, _, _, _ := newFixture(t)

	tuple := keccak.Tuple{
		Beneficiary:  "frank",
		Start:        0,
		CliffOffset:  0,
		Duration:     1000 * day,
		SliceSeconds: 1,
		Revokable:    false,
		Amount:       big.NewInt(500),
	}
	other := keccak.Tuple{Beneficiary: "other", Duration: 1, SliceSeconds: 1, Amount: big.NewInt(1)}

	leaf := keccak.Leaf(tuple)
	otherLeaf := keccak.Leaf(other)
	root, proof := buildTwoLeafProof(leaf, otherLeaf)

	id, err := eng.Claim(0, root, proof, tuple)
	require.NoError(t, err)

	s, err := eng.ScheduleByID(id)
	require.NoError(t, err)
	require.True(t, s.Exists())
	assert.Equal(t, "500", s.AmountTotal.String())

	_, err = eng.Claim(0, root, proof, tuple)
	assert.ErrorIs(t, err, vlerror.New(vlerror.AlreadyClaimed, ""))
}

func TestClaimRejectsBadProof(t *testing.T) {
	eng, _, _, _ := newFixture(t)
	tuple := keccak.Tuple{Beneficiary: "grace", Duration: 1000, SliceSeconds: 1, Amount: big.NewInt(10)}
	bogusRoot := keccak.Keccak256([]byte("not the root"))

	_, err := eng.Claim(0, bogusRoot, nil, tuple)
	assert.ErrorIs(t, err, vlerror.New(vlerror.InvalidProof, ""))
}

func TestClaimPurchasableRequiresExactPayment(t *testing.T) {
	eng, _, _, _ := newFixture(t)
	native := sdk.NewMockNative()
	receiver := sdk.Address("receiver")

	tuple := keccak.Tuple{
		Beneficiary:  "hank",
		Duration:     1000 * day,
		SliceSeconds: 1,
		Amount:       big.NewInt(20000),
	}
	leaf := keccak.Leaf(tuple)
	root := leaf // single-leaf tree: root == leaf, empty proof

	vTokenCost := big.NewInt(0) // price = floor(0 * amount / 1e18) = 0
	_, err := eng.ClaimPurchasable(0, root, nil, tuple, native, receiver, vTokenCost, big.NewInt(1))
	assert.ErrorIs(t, err, vlerror.New(vlerror.InvalidAmount, ""))

	id, err := eng.ClaimPurchasable(0, root, nil, tuple, native, receiver, vTokenCost, big.NewInt(0))
	require.NoError(t, err)
	assert.NotEqual(t, keccak.Hash{}, id)
	_, received := native.Received[receiver]
	assert.False(t, received)
}

// TestClaimPurchasableAtScenarioScale mirrors §8 scenario 4/6's 20000*10^18
// amount, confirming a real-valued price forwards correctly now that the
// token/native wire carries *big.Int rather than a clipped int64.
func TestClaimPurchasableAtScenarioScale(t *testing.T) {
	eng, token, _, self := newFixture(t)
	native := sdk.NewMockNative()
	receiver := sdk.Address("receiver")
	oneToken := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	token.Fund(self, new(big.Int).Mul(big.NewInt(20000), oneToken))

	tuple := keccak.Tuple{
		Beneficiary:  "ivan",
		Duration:     1000 * day,
		SliceSeconds: 1,
		Amount:       new(big.Int).Mul(big.NewInt(20000), oneToken),
	}
	leaf := keccak.Leaf(tuple)
	root := leaf

	vTokenCost := new(big.Int).Div(oneToken, big.NewInt(2)) // 0.5 native per vested unit
	price := Price(vTokenCost, tuple.Amount)

	id, err := eng.ClaimPurchasable(0, root, nil, tuple, native, receiver, vTokenCost, price)
	require.NoError(t, err)
	assert.NotEqual(t, keccak.Hash{}, id)
	assert.Equal(t, price.String(), native.Received[receiver].String())
}
