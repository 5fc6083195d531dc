////////////////////////////////////////////////////////////////////////////////
// vestlock: a vesting accounting engine with gated claim
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"vestlock/internal/access"
	"vestlock/internal/keccak"
	"vestlock/internal/sdk"
	"vestlock/internal/vlerror"
)

// main is left empty on purpose; the contract is driven entirely through
// its go:wasmexport entry points.
func main() {

}

const contractConfigKey = "contract_config"

// ContractConfig is the static configuration set once at init: the
// underlying-token reference, the display name/symbol and the decimals. No
// query entry point returns these fields. Everything that can change post-init
// (pause flag, roles, Merkle root, purchase cost/receiver) lives directly
// in state behind the access.Controller, not here, following the
// teacher's ContractConfig-in-state pattern.
type ContractConfig struct {
	Name            string      `json:"name"`
	Symbol          string      `json:"symbol"`
	Decimals        uint8       `json:"decimals"`
	UnderlyingToken sdk.Address `json:"underlying_token"`
}

func isContractInitialized() bool {
	ptr := sdk.WasmState{}.Get(contractConfigKey)
	return ptr != nil && *ptr != ""
}

func requireInitialized() {
	if !isContractInitialized() {
		sdk.Abort("contract not initialized")
	}
}

func loadContractConfig() *ContractConfig {
	ptr := sdk.WasmState{}.Get(contractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return FromJSON[ContractConfig](*ptr, "contract config")
}

func saveContractConfig(cfg *ContractConfig) {
	sdk.WasmState{}.Set(contractConfigKey, ToJSON(cfg, "contract config"))
}

// initPayload is the ContractInit payload from §10.3: name/symbol/
// underlying_token/vesting_creator are the base fields, none of which is
// validated here (an empty vesting_creator simply grants no
// ScheduleCreator role); the Merkle/purchase fields are optional seeds for
// the root, cost and receiver, and a missing or malformed one leaves that
// value unset. The claim entry points are exported either way.
type initPayload struct {
	Name            string      `json:"name"`
	Symbol          string      `json:"symbol"`
	UnderlyingToken sdk.Address `json:"underlying_token"`
	VestingCreator  sdk.Address `json:"vesting_creator"`
	MerkleRoot      string      `json:"merkle_root,omitempty"`
	PaymentReceiver sdk.Address `json:"payment_receiver,omitempty"`
	VTokenCost      string      `json:"v_token_cost,omitempty"`
}

// ContractInit initializes the contract with the caller as Admin and
// vesting_creator as the initial ScheduleCreator. Must be called before
// any other entry point.
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}

	in := FromJSON[initPayload](unwrapPayload(payload, "init payload missing"), "init payload")

	decimals, err := sdk.WasmToken{}.Decimals()
	if err != nil {
		return fail(err)
	}
	if decimals != underlyingDecimals {
		return fail(vlerror.New(vlerror.DecimalsError, "underlying token decimals must be 18"))
	}

	cfg := &ContractConfig{
		Name:            in.Name,
		Symbol:          in.Symbol,
		Decimals:        underlyingDecimals,
		UnderlyingToken: in.UnderlyingToken,
	}
	saveContractConfig(cfg)

	admin := getSenderAddress()
	ctrl := access.NewController(sdk.WasmState{})
	ctrl.Grant(access.RoleAdmin, admin)
	if !in.VestingCreator.IsZero() {
		ctrl.Grant(access.RoleScheduleCreator, in.VestingCreator)
	}

	if in.MerkleRoot != "" {
		if root, err := keccak.ParseHash(in.MerkleRoot); err == nil {
			ctrl.SetMerkleRoot(root)
		}
	}
	if !in.PaymentReceiver.IsZero() {
		_ = ctrl.SetPaymentReceiver(in.PaymentReceiver)
	}
	if in.VTokenCost != "" {
		if cost, err := decodeAmountPayload(in.VTokenCost); err == nil {
			_ = ctrl.SetVTokenCost(cost)
		}
	}

	emitInit(admin.String(), in.UnderlyingToken.String())
	return strptr("initialized")
}

// underlyingDecimals is fixed at 18 per §3's explicit non-goal ruling out
// other underlying-asset precisions.
const underlyingDecimals uint8 = 18
