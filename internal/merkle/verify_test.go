package merkle

import (
	"testing"

	"vestlock/internal/keccak"

	"github.com/stretchr/testify/assert"
)

func leaf(s string) keccak.Hash {
	return keccak.Keccak256([]byte(s))
}

func TestCombineIsOrderIndependent(t *testing.T) {
	a, b := leaf("a"), leaf("b")
	assert.Equal(t, Combine(a, b), Combine(b, a))
}

func TestVerifyFourLeafTree(t *testing.T) {
	l0, l1, l2, l3 := leaf("0"), leaf("1"), leaf("2"), leaf("3")
	n01 := Combine(l0, l1)
	n23 := Combine(l2, l3)
	root := Combine(n01, n23)

	assert.True(t, Verify([]keccak.Hash{l1, n23}, l0, root))
	assert.True(t, Verify([]keccak.Hash{l0, n23}, l1, root))
	assert.True(t, Verify([]keccak.Hash{l3, n01}, l2, root))
}

func TestVerifyRejectsWrongRoot(t *testing.T) {
	l0, l1, l2 := leaf("0"), leaf("1"), leaf("2")
	wrongRoot := Combine(l1, l2)

	assert.False(t, Verify([]keccak.Hash{l1}, l0, wrongRoot))
}

func TestVerifySingleLeafTree(t *testing.T) {
	l0 := leaf("only")
	assert.True(t, Verify(nil, l0, l0))
}
