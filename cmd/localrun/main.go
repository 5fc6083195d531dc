// Command localrun drives the vesting engine against the in-process mock
// harness, standing in for the teacher's root main.go + contract.InitState/
// InitSKMocks/InitENVMocks local-debug wiring — there is no host runtime
// available outside a deployed wasm sandbox, so this is the "run it"
// equivalent for local iteration.
package main

import (
	"fmt"
	"math/big"

	"vestlock/internal/access"
	"vestlock/internal/sdk"
	"vestlock/internal/vesting"
)

func main() {
	state := sdk.NewMockState()
	token := sdk.NewMockToken(18)
	log := &sdk.MockLog{}

	self := sdk.Address("contract")
	admin := sdk.Address("admin")
	beneficiary := sdk.Address("alice")

	token.Fund(self, big.NewInt(1_000_000))

	ctrl := access.NewController(state)
	ctrl.Grant(access.RoleAdmin, admin)
	ctrl.Grant(access.RoleScheduleCreator, admin)

	eng := vesting.NewEngine(state, token, log, self)

	const day = 24 * 3600
	id, err := eng.Create(0, vesting.CreateParams{
		Beneficiary:  beneficiary,
		Start:        0,
		CliffOffset:  0,
		Duration:     28 * day,
		SliceSeconds: 1,
		Revokable:    true,
		Amount:       big.NewInt(1000),
	})
	if err != nil {
		fmt.Println("create failed:", err)
		return
	}
	fmt.Println("created schedule", id.String())

	releasable, _ := eng.Releasable(id, 14*day)
	fmt.Println("releasable at midpoint:", releasable.String())

	if err := eng.Release(id, 14*day, releasable); err != nil {
		fmt.Println("release failed:", err)
		return
	}
	balance, _ := token.BalanceOf(beneficiary)
	fmt.Println("balance after release:", balance.String())

	for _, line := range log.Lines {
		fmt.Println(line)
	}
}
