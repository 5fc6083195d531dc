package vesting

import (
	"math/big"

	"vestlock/internal/keccak"
	"vestlock/internal/merkle"
	"vestlock/internal/sdk"
	"vestlock/internal/vlerror"
)

// Engine wires the schedule store to the underlying token adapter and the
// event log, the vesting-domain counterpart of the teacher's contract
// package gluing dao storage to sdk.Token. It holds no per-call state; every
// method takes the timestamp (and any addresses) the entry point already
// resolved from Env.
type Engine struct {
	store *Store
	token sdk.TokenAdapter
	log   sdk.Logger
	self  sdk.Address
}

func NewEngine(state sdk.State, token sdk.TokenAdapter, log sdk.Logger, self sdk.Address) *Engine {
	return &Engine{store: NewStore(state), token: token, log: log, self: self}
}

// withdrawable returns underlying_balance(self) - committed_total, the
// Admin-accessible free pool from §3.
func (e *Engine) withdrawable() (*big.Int, error) {
	bal, err := e.token.BalanceOf(e.self)
	if err != nil {
		return nil, err
	}
	return sub(bal, e.store.CommittedTotal()), nil
}

// CreateParams bundles the §4.F create() arguments.
type CreateParams struct {
	Beneficiary  sdk.Address
	Start        int64
	CliffOffset  int64
	Duration     int64
	SliceSeconds uint8
	Revokable    bool
	Amount       *big.Int
}

// Create installs a new schedule for params.Beneficiary, enforcing the
// amount, duration, slice, cliff, start and solvency preconditions of §4.F
// in that order so the first violated one is always the one reported. The
// pause flag and the caller's role are not checked here; the entry points
// check them before calling Create.
func (e *Engine) Create(now int64, params CreateParams) (keccak.Hash, error) {
	if params.Amount == nil || params.Amount.Sign() <= 0 || params.Amount.Cmp(MaxAmount) > 0 {
		return keccak.Hash{}, vlerror.New(vlerror.InvalidAmount, "amount_total out of range")
	}
	if params.Duration < MinDuration || params.Duration > MaxDuration {
		return keccak.Hash{}, vlerror.New(vlerror.InvalidDuration, "duration out of range")
	}
	if params.SliceSeconds < MinSliceSeconds || params.SliceSeconds > MaxSliceSeconds {
		return keccak.Hash{}, vlerror.New(vlerror.InvalidSlicePeriod, "slice_seconds out of range")
	}
	if params.CliffOffset > params.Duration {
		return keccak.Hash{}, vlerror.New(vlerror.DurationShorterThanCliff, "cliff_offset exceeds duration")
	}
	if params.Start > now+MaxStartLookahead {
		return keccak.Hash{}, vlerror.New(vlerror.InvalidStart, "start too far in the future")
	}

	room, err := e.withdrawable()
	if err != nil {
		return keccak.Hash{}, err
	}
	if room.Cmp(params.Amount) < 0 {
		return keccak.Hash{}, vlerror.New(vlerror.InsufficientTokensInContract, "withdrawable balance below amount")
	}

	beneficiary := params.Beneficiary.String()
	index := e.store.NextIndex(beneficiary)
	id := keccak.ScheduleID(beneficiary, index)

	s := &Schedule{
		Start:         params.Start,
		CliffAbsolute: params.Start + params.CliffOffset,
		Duration:      params.Duration,
		SliceSeconds:  params.SliceSeconds,
		AmountTotal:   clone(params.Amount),
		Released:      zero(),
		Status:        StatusInitialized,
		Beneficiary:   params.Beneficiary,
		Revokable:     params.Revokable,
	}
	e.store.Save(id, s)
	e.store.AddCommittedTotal(params.Amount)
	e.store.AddCommittedBy(beneficiary, params.Amount)

	e.emitCreate(id.String(), beneficiary, index, params.Amount.String())
	e.emitVTransfer(sdk.ZeroAddress.String(), beneficiary, params.Amount.String())
	return id, nil
}

// Releasable returns releasable(s, now) for the schedule stored under id.
func (e *Engine) Releasable(id keccak.Hash, now int64) (*big.Int, error) {
	s, err := e.store.Load(id)
	if err != nil {
		return nil, err
	}
	if !s.Exists() {
		return zero(), nil
	}
	return Releasable(s, now), nil
}

// Release performs a release of exactly amount from the schedule stored
// under id, per §4.F's release(). The caller's authority (beneficiary or
// Admin) is checked by the entry point before this is called.
func (e *Engine) Release(id keccak.Hash, now int64, amount *big.Int) error {
	s, err := e.store.Load(id)
	if err != nil {
		return err
	}
	if !s.Exists() {
		return vlerror.New(vlerror.InvalidSchedule, "no such schedule")
	}
	if s.Status == StatusRevoked {
		return vlerror.New(vlerror.ScheduleWasRevoked, "schedule was revoked")
	}
	releasable := Releasable(s, now)
	if amount.Cmp(releasable) > 0 {
		return vlerror.New(vlerror.InsufficientReleasableTokens, "amount exceeds releasable")
	}
	return e.doRelease(id, s, amount)
}

// doRelease applies the §4.F release effects in order and performs the
// outbound token transfer last, so a failed transfer never leaves the
// store half-mutated under the reentrancy guard the entry point already
// holds.
func (e *Engine) doRelease(id keccak.Hash, s *Schedule, amount *big.Int) error {
	beneficiary := s.Beneficiary.String()

	s.Released = add(s.Released, amount)
	e.store.Save(id, s)
	e.store.AddCommittedTotal(new(big.Int).Neg(amount))
	e.store.AddCommittedBy(beneficiary, new(big.Int).Neg(amount))

	if err := e.token.Transfer(s.Beneficiary, amount); err != nil {
		return err
	}

	e.emitRelease(id.String(), amount.String())
	e.emitVTransfer(beneficiary, sdk.ZeroAddress.String(), amount.String())
	return nil
}

// ReleaseAllBound caps the number of a beneficiary's schedules release_all
// will walk in one call, the practical upper bound §4.F's release_all()
// leaves to implementations.
const ReleaseAllBound = 500

// ReleaseAll walks beneficiary's schedules in [0, counter) and releases
// whatever is currently releasable on each non-revoked one, per §4.F.
func (e *Engine) ReleaseAll(beneficiary sdk.Address, now int64) (*big.Int, error) {
	b := beneficiary.String()
	count := e.store.Counter(b)
	if count > ReleaseAllBound {
		count = ReleaseAllBound
	}
	total := zero()
	for index := uint64(0); index < count; index++ {
		id := keccak.ScheduleID(b, index)
		s, err := e.store.Load(id)
		if err != nil {
			return nil, err
		}
		if !s.Exists() || s.Status == StatusRevoked {
			continue
		}
		amount := Releasable(s, now)
		if amount.Sign() <= 0 {
			continue
		}
		if err := e.doRelease(id, s, amount); err != nil {
			return nil, err
		}
		total = add(total, amount)
	}
	return total, nil
}

// Revoke implements §4.F's revoke(): releases whatever is currently vested,
// then returns the remainder to the free pool and marks the schedule
// Revoked, failing with NotRevokable for a non-revokable schedule.
// Admin-only is checked by the caller.
func (e *Engine) Revoke(id keccak.Hash, now int64) error {
	s, err := e.store.Load(id)
	if err != nil {
		return err
	}
	if !s.Exists() {
		return vlerror.New(vlerror.InvalidSchedule, "no such schedule")
	}
	if s.Status != StatusInitialized {
		return vlerror.New(vlerror.ScheduleWasRevoked, "schedule was revoked")
	}
	if !s.Revokable {
		return vlerror.New(vlerror.NotRevokable, "schedule is not revokable")
	}

	if vested := Releasable(s, now); vested.Sign() > 0 {
		if err := e.doRelease(id, s, vested); err != nil {
			return err
		}
	}

	beneficiary := s.Beneficiary.String()
	unreleased := s.Unreleased()
	s.Status = StatusRevoked
	e.store.Save(id, s)
	e.store.AddCommittedTotal(new(big.Int).Neg(unreleased))
	e.store.AddCommittedBy(beneficiary, new(big.Int).Neg(unreleased))

	e.emitRevoke(id.String(), unreleased.String())
	e.emitVTransfer(beneficiary, sdk.ZeroAddress.String(), unreleased.String())
	return nil
}

// Withdraw transfers amount of the free pool to recipient, per §4.F's
// withdraw(). Admin-only is checked by the caller.
func (e *Engine) Withdraw(recipient sdk.Address, amount *big.Int) error {
	room, err := e.withdrawable()
	if err != nil {
		return err
	}
	if amount.Cmp(room) > 0 {
		return vlerror.New(vlerror.InsufficientTokensInContract, "amount exceeds withdrawable")
	}
	if err := e.token.Transfer(recipient, amount); err != nil {
		return err
	}
	e.emitWithdraw(recipient.String(), amount.String())
	return nil
}

// TotalSupply returns committed_total, the virtual token's read-only total
// supply projection (§4.F).
func (e *Engine) TotalSupply() *big.Int {
	return e.store.CommittedTotal()
}

// BalanceOf returns committed_by[b], the virtual balance projection.
func (e *Engine) BalanceOf(b sdk.Address) *big.Int {
	return e.store.CommittedBy(b.String())
}

// ScheduleByID returns the schedule stored under id, the zero sentinel if
// none exists.
func (e *Engine) ScheduleByID(id keccak.Hash) (*Schedule, error) {
	return e.store.Load(id)
}

// ScheduleByIndex returns the schedule at beneficiary's given index.
func (e *Engine) ScheduleByIndex(beneficiary sdk.Address, index uint64) (*Schedule, keccak.Hash, error) {
	id := keccak.ScheduleID(beneficiary.String(), index)
	s, err := e.store.Load(id)
	return s, id, err
}

// Count returns beneficiary's schedule count.
func (e *Engine) Count(beneficiary sdk.Address) uint64 {
	return e.store.Counter(beneficiary.String())
}

// Withdrawable exposes the free pool to the query surface.
func (e *Engine) Withdrawable() (*big.Int, error) {
	return e.withdrawable()
}

// Claim installs a schedule through the Merkle gate per §4.G/§4.H: the
// caller supplies the same tuple fields leaf() hashes, the proof is
// verified, the fingerprint is checked against double-claim, then the
// internal create path runs with the claimant as beneficiary. All
// create-path preconditions still apply; the fingerprint is recorded by
// MarkClaimed only after Create succeeds, so a failed create leaves no
// registration behind.
func (e *Engine) Claim(now int64, root keccak.Hash, proof []keccak.Hash, tuple keccak.Tuple) (keccak.Hash, error) {
	if root.IsZero() {
		return keccak.Hash{}, vlerror.New(vlerror.InvalidProof, "no merkle root configured")
	}
	leaf := keccak.Leaf(tuple)
	if !merkle.Verify(proof, leaf, root) {
		return keccak.Hash{}, vlerror.New(vlerror.InvalidProof, "proof does not verify against root")
	}
	fp := keccak.Fingerprint(tuple)
	if e.store.IsClaimed(fp) {
		return keccak.Hash{}, vlerror.New(vlerror.AlreadyClaimed, "fingerprint already claimed")
	}

	id, err := e.Create(now, CreateParams{
		Beneficiary:  sdk.Address(tuple.Beneficiary),
		Start:        tuple.Start,
		CliffOffset:  tuple.CliffOffset,
		Duration:     tuple.Duration,
		SliceSeconds: tuple.SliceSeconds,
		Revokable:    tuple.Revokable,
		Amount:       tuple.Amount,
	})
	if err != nil {
		return keccak.Hash{}, err
	}
	e.store.MarkClaimed(fp)
	e.emitClaim(id.String(), tuple.Beneficiary, tuple.Amount.String(), fp.String())
	return id, nil
}

// oneToken is 10^18, the fixed-point scale both vTokenCost and amount_total
// share (§3's decimals=18 non-goal rules out any other scale).
var oneToken = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// Price computes floor(vTokenCost * amount / 10^18), the purchasable
// variant's §4.H step-4 price formula.
func Price(vTokenCost, amount *big.Int) *big.Int {
	p := new(big.Int).Mul(vTokenCost, amount)
	return p.Quo(p, oneToken)
}

// ClaimPurchasable layers the purchasable variant's payment step on top of
// Claim: the proof is verified and the fingerprint checked for double-claim
// exactly as in Claim, then the attached native payment is checked for
// strict equality against the computed price before the outbound forward
// to the receiver and the internal create path run, per §4.H step 4's
// ordering note ("proof verify is checked before payment acceptance").
func (e *Engine) ClaimPurchasable(now int64, root keccak.Hash, proof []keccak.Hash, tuple keccak.Tuple, native sdk.NativeSink, receiver sdk.Address, vTokenCost, paid *big.Int) (keccak.Hash, error) {
	if root.IsZero() {
		return keccak.Hash{}, vlerror.New(vlerror.InvalidProof, "no merkle root configured")
	}
	leaf := keccak.Leaf(tuple)
	if !merkle.Verify(proof, leaf, root) {
		return keccak.Hash{}, vlerror.New(vlerror.InvalidProof, "proof does not verify against root")
	}
	fp := keccak.Fingerprint(tuple)
	if e.store.IsClaimed(fp) {
		return keccak.Hash{}, vlerror.New(vlerror.AlreadyClaimed, "fingerprint already claimed")
	}

	price := Price(vTokenCost, tuple.Amount)
	if paid.Cmp(price) != 0 {
		return keccak.Hash{}, vlerror.New(vlerror.InvalidAmount, "attached payment does not equal price")
	}

	id, err := e.Create(now, CreateParams{
		Beneficiary:  sdk.Address(tuple.Beneficiary),
		Start:        tuple.Start,
		CliffOffset:  tuple.CliffOffset,
		Duration:     tuple.Duration,
		SliceSeconds: tuple.SliceSeconds,
		Revokable:    tuple.Revokable,
		Amount:       tuple.Amount,
	})
	if err != nil {
		return keccak.Hash{}, err
	}

	if price.Sign() > 0 {
		if err := native.Transfer(receiver, price); err != nil {
			return keccak.Hash{}, err
		}
	}

	e.store.MarkClaimed(fp)
	e.emitClaim(id.String(), tuple.Beneficiary, tuple.Amount.String(), fp.String())
	e.emitPurchase(id.String(), tuple.Beneficiary, price.String())
	return id, nil
}
