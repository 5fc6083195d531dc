package sdk

import "math/big"

// Logger and EnvSource let the engine depend on interfaces rather than on
// the package-level host functions directly, so the same call sites work
// unmodified against either the real host or the mock harness.
type Logger interface {
	Log(msg string)
}

type EnvSource interface {
	GetEnv() Env
}

// TokenAdapter is the external fungible-token ledger collaborator (§6):
// query the contract's own balance, transfer out, and report decimals.
// The adapter is bound once at construction and never swapped. Balances and
// transfer amounts are *big.Int — §6 requires balance_of → u256, and the
// wire itself is a decimal string, not a fixed-width integer, so there is no
// host ABI reason to clip either to int64.
type TokenAdapter interface {
	BalanceOf(self Address) (*big.Int, error)
	Transfer(to Address, amount *big.Int) error
	Decimals() (uint8, error)
}

// NativeSink is the external native-currency payment collaborator (§6),
// used only by the purchasable claim variant to forward the buyer's payment
// to the configured receiver.
type NativeSink interface {
	Transfer(to Address, amount *big.Int) error
}

// WasmLogger and WasmEnv adapt the real host imports to those interfaces.
type WasmLogger struct{}

func (WasmLogger) Log(msg string) { Log(msg) }

type WasmEnv struct{}

func (WasmEnv) GetEnv() Env { return GetEnv() }

var (
	_ Logger       = WasmLogger{}
	_ Logger       = (*MockLog)(nil)
	_ EnvSource    = WasmEnv{}
	_ EnvSource    = (*MockEnv)(nil)
	_ State        = WasmState{}
	_ State        = (*MockState)(nil)
	_ TokenAdapter = WasmToken{}
	_ TokenAdapter = (*MockToken)(nil)
	_ NativeSink   = WasmNative{}
	_ NativeSink   = (*MockNative)(nil)
)
