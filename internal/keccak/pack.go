// Package keccak implements the canonical byte packing and hashing used by
// the Merkle claim gate: schedule identifiers, claim fingerprints, and leaf
// encoding must all be bit-exact because proofs are generated externally.
//
// The packer below is adapted from the teacher's contract/dao/codec.go
// binWriter: a small append-only byte buffer with one typed write method per
// field kind, used here instead of encoding/json precisely because the
// Merkle layer needs a fixed, self-describing byte layout rather than a
// flexible one.
package keccak

import (
	"encoding/binary"
	"math/big"
)

// Hash is a 256-bit digest.
type Hash [32]byte

type packer struct {
	buf []byte
}

func newPacker() *packer { return &packer{} }

func (p *packer) bytes() []byte { return p.buf }

func (p *packer) writeBytes32(b [32]byte) {
	p.buf = append(p.buf, b[:]...)
}

func (p *packer) writeUint64BE(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	p.buf = append(p.buf, b[:]...)
}

func (p *packer) writeByte(v byte) {
	p.buf = append(p.buf, v)
}

func (p *packer) writeBool(v bool) {
	if v {
		p.writeByte(1)
	} else {
		p.writeByte(0)
	}
}

// writeUint256BE packs x into 32 big-endian bytes. x must be non-negative
// and fit in 256 bits — both guaranteed by the §3 range checks (amount_total
// ≤ 2²⁰⁰) before any value reaches this packer.
func (p *packer) writeUint256BE(x *big.Int) {
	var b [32]byte
	x.FillBytes(b[:])
	p.writeBytes32(b)
}

// writeIdentity folds a variable-length identity string into a fixed 32
// bytes via a single Keccak-256 hash, so every packed field below has a
// known, fixed width. This is a from-scratch canonical encoding (the
// reference system's beneficiary field is a fixed 20-byte address; this
// port's beneficiary is an opaque identity string of arbitrary length), not
// an attempt to reproduce an external wire format bit-for-bit. See
// DESIGN.md for the Open Question this resolves.
func (p *packer) writeIdentity(s string) {
	p.writeBytes32(Keccak256([]byte(s)))
}
