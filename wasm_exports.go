package main

import (
	"math/big"
	"strconv"

	"vestlock/internal/access"
	"vestlock/internal/keccak"
	"vestlock/internal/vesting"
	"vestlock/internal/vlerror"

	"vestlock/internal/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Schedule lifecycle entry points (§4.F)
////////////////////////////////////////////////////////////////////////////////

type createPayload struct {
	Beneficiary  sdk.Address `json:"beneficiary"`
	Start        int64       `json:"start"`
	CliffOffset  int64       `json:"cliff_offset"`
	Duration     int64       `json:"duration"`
	SliceSeconds uint8       `json:"slice_seconds"`
	Revokable    bool        `json:"revokable"`
	Amount       string      `json:"amount"`
}

// ScheduleCreate directly installs a new schedule. Callable by Admin or a
// ScheduleCreator; fails while paused.
//
//go:wasmexport schedule_create
func ScheduleCreate(payload *string) *string {
	requireInitialized()
	in := FromJSON[createPayload](unwrapPayload(payload, "create payload missing"), "create payload")

	ctrl := newAccess()
	caller := getSenderAddress()
	if err := ctrl.RequireCreator(caller); err != nil {
		return fail(err)
	}
	if err := ctrl.RequireNotPaused(); err != nil {
		return fail(err)
	}

	amount := mustDecodeAmount(in.Amount)
	id, err := newEngine().Create(nowUnix(), vesting.CreateParams{
		Beneficiary:  in.Beneficiary,
		Start:        in.Start,
		CliffOffset:  in.CliffOffset,
		Duration:     in.Duration,
		SliceSeconds: in.SliceSeconds,
		Revokable:    in.Revokable,
		Amount:       amount,
	})
	if err != nil {
		return fail(err)
	}
	return strptr(id.String())
}

type idPayload struct {
	ID string `json:"id"`
}

type releasePayload struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
}

// ScheduleRelease releases exactly the requested amount from one schedule.
// Callable by the schedule's beneficiary or Admin; transfers underlying
// tokens out under the reentrancy guard.
//
//go:wasmexport schedule_release
func ScheduleRelease(payload *string) *string {
	requireInitialized()
	in := FromJSON[releasePayload](unwrapPayload(payload, "release payload missing"), "release payload")

	id, err := keccak.ParseHash(in.ID)
	if err != nil {
		return fail(vlerror.New(vlerror.InvalidSchedule, "malformed schedule id"))
	}

	ctrl := newAccess()
	eng := newEngine()
	if err := requireBeneficiaryOrAdmin(eng, ctrl, id); err != nil {
		return fail(err)
	}

	amount := mustDecodeAmount(in.Amount)
	err = withReentrancyGuard(ctrl, func() error {
		return eng.Release(id, nowUnix(), amount)
	})
	if err != nil {
		return fail(err)
	}
	return strptr("released")
}

type releaseAllPayload struct {
	Beneficiary sdk.Address `json:"beneficiary"`
}

// ScheduleReleaseAll releases whatever is currently releasable across all
// of beneficiary's schedules. Callable by that beneficiary or Admin.
//
//go:wasmexport schedule_release_all
func ScheduleReleaseAll(payload *string) *string {
	requireInitialized()
	in := FromJSON[releaseAllPayload](unwrapPayload(payload, "release_all payload missing"), "release_all payload")

	ctrl := newAccess()
	caller := getSenderAddress()
	if caller != in.Beneficiary && !ctrl.IsAdmin(caller) {
		return fail(vlerror.New(vlerror.Unauthorized, "caller may not release this beneficiary's schedules"))
	}

	eng := newEngine()
	var total *big.Int
	err := withReentrancyGuard(ctrl, func() error {
		var innerErr error
		total, innerErr = eng.ReleaseAll(in.Beneficiary, nowUnix())
		return innerErr
	})
	if err != nil {
		return fail(err)
	}
	return strptr(total.String())
}

// ScheduleRevoke revokes a revokable schedule: releases whatever is
// currently vested, then returns the remainder to the free pool.
// Admin-only.
//
//go:wasmexport schedule_revoke
func ScheduleRevoke(payload *string) *string {
	requireInitialized()
	in := FromJSON[idPayload](unwrapPayload(payload, "revoke payload missing"), "revoke payload")

	id, err := keccak.ParseHash(in.ID)
	if err != nil {
		return fail(vlerror.New(vlerror.InvalidSchedule, "malformed schedule id"))
	}

	ctrl := newAccess()
	if err := ctrl.RequireAdmin(getSenderAddress()); err != nil {
		return fail(err)
	}

	eng := newEngine()
	err = withReentrancyGuard(ctrl, func() error {
		return eng.Revoke(id, nowUnix())
	})
	if err != nil {
		return fail(err)
	}
	return strptr("revoked")
}

type withdrawPayload struct {
	Recipient sdk.Address `json:"recipient"`
	Amount    string      `json:"amount"`
}

// VestingWithdraw transfers amount of the free pool (underlying balance
// minus committed_total) to recipient. Admin-only.
//
//go:wasmexport vesting_withdraw
func VestingWithdraw(payload *string) *string {
	requireInitialized()
	in := FromJSON[withdrawPayload](unwrapPayload(payload, "withdraw payload missing"), "withdraw payload")

	ctrl := newAccess()
	if err := ctrl.RequireAdmin(getSenderAddress()); err != nil {
		return fail(err)
	}

	amount := mustDecodeAmount(in.Amount)
	eng := newEngine()
	err := withReentrancyGuard(ctrl, func() error {
		return eng.Withdraw(in.Recipient, amount)
	})
	if err != nil {
		return fail(err)
	}
	return strptr("withdrawn")
}

// requireBeneficiaryOrAdmin reverts unless the caller is either the
// schedule's recorded beneficiary or Admin, the authority check behind
// ScheduleRelease. ScheduleReleaseAll checks the beneficiary inline.
func requireBeneficiaryOrAdmin(eng *vesting.Engine, ctrl *access.Controller, id keccak.Hash) error {
	s, err := eng.ScheduleByID(id)
	if err != nil {
		return err
	}
	caller := getSenderAddress()
	if !s.Exists() {
		return vlerror.New(vlerror.InvalidSchedule, "no such schedule")
	}
	if caller != s.Beneficiary && !ctrl.IsAdmin(caller) {
		return vlerror.New(vlerror.Unauthorized, "caller may not act on this schedule")
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// Merkle-gated claim entry points (§4.G/§4.H)
////////////////////////////////////////////////////////////////////////////////

type claimPayload struct {
	Proof        []string `json:"proof"`
	Start        int64    `json:"start"`
	CliffOffset  int64    `json:"cliff_offset"`
	Duration     int64    `json:"duration"`
	SliceSeconds uint8    `json:"slice_seconds"`
	Revokable    bool     `json:"revokable"`
	Amount       string   `json:"amount"`
}

func decodeProof(raw []string) ([]keccak.Hash, error) {
	out := make([]keccak.Hash, len(raw))
	for i, s := range raw {
		h, err := keccak.ParseHash(s)
		if err != nil {
			return nil, vlerror.New(vlerror.InvalidProof, "malformed proof element")
		}
		out[i] = h
	}
	return out, nil
}

// ScheduleClaim self-installs a schedule by presenting a Merkle inclusion
// proof against the currently configured root; fails while paused.
//
//go:wasmexport schedule_claim
func ScheduleClaim(payload *string) *string {
	requireInitialized()
	in := FromJSON[claimPayload](unwrapPayload(payload, "claim payload missing"), "claim payload")

	ctrl := newAccess()
	if err := ctrl.RequireNotPaused(); err != nil {
		return fail(err)
	}

	proof, err := decodeProof(in.Proof)
	if err != nil {
		return fail(err)
	}

	caller := getSenderAddress()
	tuple := keccak.Tuple{
		Beneficiary:  caller.String(),
		Start:        in.Start,
		CliffOffset:  in.CliffOffset,
		Duration:     in.Duration,
		SliceSeconds: in.SliceSeconds,
		Revokable:    in.Revokable,
		Amount:       mustDecodeAmount(in.Amount),
	}

	id, err := newEngine().Claim(nowUnix(), ctrl.MerkleRoot(), proof, tuple)
	if err != nil {
		return fail(err)
	}
	return strptr(id.String())
}

type claimPurchasablePayload struct {
	claimPayload
	Paid string `json:"paid"`
}

// ScheduleClaimPurchasable layers the purchasable variant's payment step
// on top of ScheduleClaim: the caller's attached native payment must equal
// the computed price, forwarded to the configured receiver.
//
//go:wasmexport schedule_claim_purchasable
func ScheduleClaimPurchasable(payload *string) *string {
	requireInitialized()
	in := FromJSON[claimPurchasablePayload](unwrapPayload(payload, "claim payload missing"), "claim payload")

	ctrl := newAccess()
	if err := ctrl.RequireNotPaused(); err != nil {
		return fail(err)
	}

	proof, err := decodeProof(in.Proof)
	if err != nil {
		return fail(err)
	}

	caller := getSenderAddress()
	tuple := keccak.Tuple{
		Beneficiary:  caller.String(),
		Start:        in.Start,
		CliffOffset:  in.CliffOffset,
		Duration:     in.Duration,
		SliceSeconds: in.SliceSeconds,
		Revokable:    in.Revokable,
		Amount:       mustDecodeAmount(in.Amount),
	}
	paid := mustDecodeAmount(in.Paid)

	eng := newEngine()
	var id keccak.Hash
	err = withReentrancyGuard(ctrl, func() error {
		var innerErr error
		id, innerErr = eng.ClaimPurchasable(nowUnix(), ctrl.MerkleRoot(), proof, tuple,
			sdk.WasmNative{}, ctrl.PaymentReceiver(), ctrl.VTokenCost(), paid)
		return innerErr
	})
	if err != nil {
		return fail(err)
	}
	return strptr(id.String())
}

////////////////////////////////////////////////////////////////////////////////
// Admin entry points (§4.C)
////////////////////////////////////////////////////////////////////////////////

type rootPayload struct {
	Root string `json:"root"`
}

//go:wasmexport admin_set_merkle_root
func AdminSetMerkleRoot(payload *string) *string {
	requireInitialized()
	in := FromJSON[rootPayload](unwrapPayload(payload, "root payload missing"), "root payload")

	ctrl := newAccess()
	if err := ctrl.RequireAdmin(getSenderAddress()); err != nil {
		return fail(err)
	}
	root, err := keccak.ParseHash(in.Root)
	if err != nil {
		return fail(vlerror.New(vlerror.InvalidProof, "malformed root"))
	}
	old := ctrl.MerkleRoot()
	ctrl.SetMerkleRoot(root)
	emitRootRotate(old.String(), root.String())
	return strptr("rotated")
}

type costPayload struct {
	Cost string `json:"cost"`
}

//go:wasmexport admin_set_v_token_cost
func AdminSetVTokenCost(payload *string) *string {
	requireInitialized()
	in := FromJSON[costPayload](unwrapPayload(payload, "cost payload missing"), "cost payload")

	ctrl := newAccess()
	if err := ctrl.RequireAdmin(getSenderAddress()); err != nil {
		return fail(err)
	}
	cost := mustDecodeAmount(in.Cost)
	if err := ctrl.SetVTokenCost(cost); err != nil {
		return fail(err)
	}
	emitConfig("v_token_cost", cost.String())
	return strptr("set")
}

type receiverPayload struct {
	Receiver sdk.Address `json:"receiver"`
}

//go:wasmexport admin_set_payment_receiver
func AdminSetPaymentReceiver(payload *string) *string {
	requireInitialized()
	in := FromJSON[receiverPayload](unwrapPayload(payload, "receiver payload missing"), "receiver payload")

	ctrl := newAccess()
	if err := ctrl.RequireAdmin(getSenderAddress()); err != nil {
		return fail(err)
	}
	if err := ctrl.SetPaymentReceiver(in.Receiver); err != nil {
		return fail(err)
	}
	emitConfig("payment_receiver", in.Receiver.String())
	return strptr("set")
}

type pausePayload struct {
	Paused bool `json:"paused"`
}

//go:wasmexport admin_set_paused
func AdminSetPaused(payload *string) *string {
	requireInitialized()
	in := FromJSON[pausePayload](unwrapPayload(payload, "pause payload missing"), "pause payload")

	ctrl := newAccess()
	if err := ctrl.RequireAdmin(getSenderAddress()); err != nil {
		return fail(err)
	}
	ctrl.SetPaused(in.Paused)
	emitPause(in.Paused)
	return strptr("ok")
}

type rolePayload struct {
	Grantee sdk.Address `json:"grantee"`
	Role    string      `json:"role"`
}

func parseRole(s string) (access.Role, error) {
	switch access.Role(s) {
	case access.RoleAdmin, access.RoleScheduleCreator:
		return access.Role(s), nil
	default:
		return "", vlerror.New(vlerror.InvalidAddress, "unknown role: "+s)
	}
}

//go:wasmexport admin_grant_role
func AdminGrantRole(payload *string) *string {
	requireInitialized()
	in := FromJSON[rolePayload](unwrapPayload(payload, "role payload missing"), "role payload")

	ctrl := newAccess()
	if err := ctrl.RequireAdmin(getSenderAddress()); err != nil {
		return fail(err)
	}
	role, err := parseRole(in.Role)
	if err != nil {
		return fail(err)
	}
	ctrl.Grant(role, in.Grantee)
	emitRole(in.Grantee.String(), in.Role, true)
	return strptr("granted")
}

//go:wasmexport admin_revoke_role
func AdminRevokeRole(payload *string) *string {
	requireInitialized()
	in := FromJSON[rolePayload](unwrapPayload(payload, "role payload missing"), "role payload")

	ctrl := newAccess()
	if err := ctrl.RequireAdmin(getSenderAddress()); err != nil {
		return fail(err)
	}
	role, err := parseRole(in.Role)
	if err != nil {
		return fail(err)
	}
	ctrl.Revoke(role, in.Grantee)
	emitRole(in.Grantee.String(), in.Role, false)
	return strptr("revoked")
}

type handoverPayload struct {
	Nominee sdk.Address `json:"nominee"`
}

//go:wasmexport admin_begin_handover
func AdminBeginHandover(payload *string) *string {
	requireInitialized()
	in := FromJSON[handoverPayload](unwrapPayload(payload, "handover payload missing"), "handover payload")

	ctrl := newAccess()
	caller := getSenderAddress()
	if err := ctrl.RequireAdmin(caller); err != nil {
		return fail(err)
	}
	ctrl.BeginHandover(caller, in.Nominee)
	emitHandover("begin", caller.String(), in.Nominee.String())
	return strptr("begun")
}

//go:wasmexport admin_cancel_handover
func AdminCancelHandover(payload *string) *string {
	requireInitialized()

	ctrl := newAccess()
	caller := getSenderAddress()
	if err := ctrl.RequireAdmin(caller); err != nil {
		return fail(err)
	}
	pending := ctrl.PendingAdmin()
	ctrl.CancelHandover()
	emitHandover("cancel", caller.String(), pending.String())
	return strptr("cancelled")
}

//go:wasmexport admin_accept_handover
func AdminAcceptHandover(payload *string) *string {
	requireInitialized()

	caller := getSenderAddress()
	ctrl := newAccess()
	if err := ctrl.AcceptHandover(caller); err != nil {
		return fail(err)
	}
	emitHandover("accept", "", caller.String())
	return strptr("accepted")
}

////////////////////////////////////////////////////////////////////////////////
// Query surface (§4.I): read-only, no mutation, no reentrancy concern
////////////////////////////////////////////////////////////////////////////////

type scheduleView struct {
	ID            string      `json:"id"`
	Exists        bool        `json:"exists"`
	Start         int64       `json:"start"`
	CliffAbsolute int64       `json:"cliff_absolute"`
	Duration      int64       `json:"duration"`
	SliceSeconds  uint8       `json:"slice_seconds"`
	AmountTotal   string      `json:"amount_total"`
	Released      string      `json:"released"`
	Status        uint8       `json:"status"`
	Beneficiary   sdk.Address `json:"beneficiary"`
	Revokable     bool        `json:"revokable"`
	Releasable    string      `json:"releasable"`
}

func renderSchedule(id keccak.Hash, s *vesting.Schedule) string {
	view := scheduleView{ID: id.String(), Exists: s.Exists()}
	if s.Exists() {
		view.Start = s.Start
		view.CliffAbsolute = s.CliffAbsolute
		view.Duration = s.Duration
		view.SliceSeconds = s.SliceSeconds
		view.AmountTotal = s.AmountTotal.String()
		view.Released = s.Released.String()
		view.Status = uint8(s.Status)
		view.Beneficiary = s.Beneficiary
		view.Revokable = s.Revokable
		view.Releasable = vesting.Releasable(s, nowUnix()).String()
	}
	return ToJSON(view, "schedule view")
}

//go:wasmexport query_schedule_by_id
func QueryScheduleByID(payload *string) *string {
	requireInitialized()
	in := FromJSON[idPayload](unwrapPayload(payload, "id payload missing"), "id payload")
	id, err := keccak.ParseHash(in.ID)
	if err != nil {
		return fail(vlerror.New(vlerror.InvalidSchedule, "malformed schedule id"))
	}
	s, err := newEngine().ScheduleByID(id)
	if err != nil {
		return fail(err)
	}
	return strptr(renderSchedule(id, s))
}

type scheduleByIndexPayload struct {
	Beneficiary sdk.Address `json:"beneficiary"`
	Index       uint64      `json:"index"`
}

//go:wasmexport query_schedule_by_index
func QueryScheduleByIndex(payload *string) *string {
	requireInitialized()
	in := FromJSON[scheduleByIndexPayload](unwrapPayload(payload, "index payload missing"), "index payload")
	s, id, err := newEngine().ScheduleByIndex(in.Beneficiary, in.Index)
	if err != nil {
		return fail(err)
	}
	return strptr(renderSchedule(id, s))
}

//go:wasmexport query_total_supply
func QueryTotalSupply(payload *string) *string {
	requireInitialized()
	return strptr(newEngine().TotalSupply().String())
}

type addressPayload struct {
	Address sdk.Address `json:"address"`
}

//go:wasmexport query_balance_of
func QueryBalanceOf(payload *string) *string {
	requireInitialized()
	in := FromJSON[addressPayload](unwrapPayload(payload, "address payload missing"), "address payload")
	return strptr(newEngine().BalanceOf(in.Address).String())
}

//go:wasmexport query_withdrawable
func QueryWithdrawable(payload *string) *string {
	requireInitialized()
	w, err := newEngine().Withdrawable()
	if err != nil {
		return fail(err)
	}
	return strptr(w.String())
}

//go:wasmexport query_count
func QueryCount(payload *string) *string {
	requireInitialized()
	in := FromJSON[addressPayload](unwrapPayload(payload, "address payload missing"), "address payload")
	return strptr(strconv.FormatUint(newEngine().Count(in.Address), 10))
}

////////////////////////////////////////////////////////////////////////////////
// Virtual-token transfer surface: explicitly unsupported (§4.F)
////////////////////////////////////////////////////////////////////////////////

//go:wasmexport vtoken_transfer
func VTokenTransfer(payload *string) *string {
	return fail(vlerror.New(vlerror.NotSupported, "virtual balance is a read-only projection; transfer is not supported"))
}

//go:wasmexport vtoken_approve
func VTokenApprove(payload *string) *string {
	return fail(vlerror.New(vlerror.NotSupported, "virtual balance is a read-only projection; approve is not supported"))
}

//go:wasmexport vtoken_transfer_from
func VTokenTransferFrom(payload *string) *string {
	return fail(vlerror.New(vlerror.NotSupported, "virtual balance is a read-only projection; transferFrom is not supported"))
}

//go:wasmexport vtoken_allowance
func VTokenAllowance(payload *string) *string {
	return fail(vlerror.New(vlerror.NotSupported, "virtual balance is a read-only projection; allowance is not supported"))
}
