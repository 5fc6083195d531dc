package vesting

import (
	"math/big"

	"vestlock/internal/vlerror"
)

// MaxAmount is the §3 cap on amount_total: 2²⁰⁰.
var MaxAmount = new(big.Int).Lsh(big.NewInt(1), 200)

// zero and helpers below exist because big.Int's zero value is usable but
// every call site wants a fresh, non-aliased Int to mutate into — Add/Sub on
// *big.Int mutate the receiver, so none of these ever hand back an Int that
// is still referenced by stored state.

func zero() *big.Int { return new(big.Int) }

func clone(x *big.Int) *big.Int { return new(big.Int).Set(x) }

func add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }

func sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }

// encodeAmount/decodeAmount round-trip amounts through decimal strings for
// JSON persistence, the same way the teacher stores Amount as a plain
// scaled int64 string in state.
func encodeAmount(x *big.Int) string {
	if x == nil {
		return "0"
	}
	return x.String()
}

func decodeAmount(s string) (*big.Int, error) {
	if s == "" {
		return zero(), nil
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, vlerror.New(vlerror.InvalidAmount, "corrupt stored amount "+s)
	}
	return x, nil
}
