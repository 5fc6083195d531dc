// Package merkle implements the position-agnostic inclusion proof check
// from §4.G: a sorted-pair internal-node combine and a fold over the proof
// list, matching the teacher's own sorted-pair pattern in nothing it wrote
// directly (the DAO has no Merkle layer) but in the same terse, single-
// purpose style as its other leaf packages like contract/dao.
package merkle

import (
	"bytes"

	"vestlock/internal/keccak"
)

// Combine produces the parent of two sibling nodes. Sorting the pair before
// hashing makes proofs position-agnostic: the prover never needs to encode
// left/right, only the sibling value.
func Combine(a, b keccak.Hash) keccak.Hash {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return keccak.Keccak256(a[:], b[:])
	}
	return keccak.Keccak256(b[:], a[:])
}

// Verify folds proof against leaf with repeated sorted-pair combines and
// reports whether the terminal value equals root.
func Verify(proof []keccak.Hash, leaf keccak.Hash, root keccak.Hash) bool {
	current := leaf
	for _, sibling := range proof {
		current = Combine(current, sibling)
	}
	return current == root
}
