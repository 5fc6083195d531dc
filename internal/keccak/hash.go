package keccak

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

// Keccak256 is the reference hash function H from §4.G: the legacy
// (pre-NIST) Keccak-256 variant, bit-identical to the one go-ethereum wraps
// for crypto.Keccak256 via this same golang.org/x/crypto/sha3 package.
func Keccak256(data ...[]byte) Hash {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// Tuple is the canonical schedule tuple hashed for both the Merkle leaf and
// the claim-registry fingerprint (§3, §4.G).
type Tuple struct {
	Beneficiary  string
	Start        int64
	CliffOffset  int64
	Duration     int64
	SliceSeconds uint8
	Revokable    bool
	Amount       *big.Int
}

func (t Tuple) pack() []byte {
	p := newPacker()
	p.writeIdentity(t.Beneficiary)
	p.writeUint64BE(uint64(t.Start))
	p.writeUint64BE(uint64(t.CliffOffset))
	p.writeUint64BE(uint64(t.Duration))
	p.writeByte(t.SliceSeconds)
	p.writeBool(t.Revokable)
	p.writeUint256BE(t.Amount)
	return p.bytes()
}

// Fingerprint computes H(pack(tuple)) — the claim-registry key from §3,
// "using the same canonical packing as the Merkle leaf."
func Fingerprint(t Tuple) Hash {
	return Keccak256(t.pack())
}

// Leaf computes H(H(pack(tuple))) — the double-hashed Merkle leaf from
// §4.G. Fingerprint(t) is exactly the inner hash here by construction, so
// Leaf(t) == Keccak256(Fingerprint(t)[:]) always holds.
func Leaf(t Tuple) Hash {
	fp := Fingerprint(t)
	return Keccak256(fp[:])
}

// ScheduleID computes H(beneficiary ‖ index), the globally unique,
// content-independent schedule identifier from §3.
func ScheduleID(beneficiary string, index uint64) Hash {
	p := newPacker()
	p.writeIdentity(beneficiary)
	p.writeUint64BE(index)
	return Keccak256(p.bytes())
}
