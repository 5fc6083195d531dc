package main

import (
	"vestlock/internal/access"
	"vestlock/internal/sdk"
	"vestlock/internal/vesting"
)

// getSenderAddress returns the calling transaction's sender, mirroring
// the teacher's helpers.go function of the same name.
func getSenderAddress() sdk.Address {
	return sdk.WasmEnv{}.GetEnv().Sender
}

// nowUnix returns the current block timestamp, the contract's sole time
// source (component A).
func nowUnix() int64 {
	return sdk.WasmEnv{}.GetEnv().Timestamp
}

// selfAddress returns this contract instance's own address, the "self" the
// token adapter's BalanceOf call queries for component B.
func selfAddress() sdk.Address {
	return sdk.Address(sdk.WasmEnv{}.GetEnv().ContractID)
}

// newEngine and newAccess construct the domain collaborators fresh on
// every entry point call against the real host bindings. Nothing is
// cached across calls: state lives entirely behind sdk.WasmState, so a
// fresh Engine/Controller is as cheap as a handful of field writes and
// keeps every entry point's wiring identical to what the mock-backed
// tests construct.
func newEngine() *vesting.Engine {
	return vesting.NewEngine(sdk.WasmState{}, sdk.WasmToken{}, sdk.WasmLogger{}, selfAddress())
}

func newAccess() *access.Controller {
	return access.NewController(sdk.WasmState{})
}

// withReentrancyGuard runs fn under the reentrancy guard from §4.C,
// clearing the flag on every exit path including a panic, and is used by
// every entry point whose fn performs an outbound token or native-currency
// transfer.
func withReentrancyGuard(ctrl *access.Controller, fn func() error) error {
	if err := ctrl.Enter(); err != nil {
		return err
	}
	defer ctrl.Exit()
	return fn()
}
