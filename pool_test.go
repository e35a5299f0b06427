package merkle_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwlabs/merkle"
	"github.com/bwlabs/merkle/digest"
)

func newSHA256() merkle.NodeHasher { return digest.SHA256() }

func TestRoots_MatchesSequentialRoots(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(0, 32)

	// enough trees to go through the worker pool path
	trees := make([][][]byte, 16)
	for i := range trees {
		f.Fuzz(&trees[i])
	}

	roots, err := merkle.Roots(newSHA256, trees)
	require.NoError(t, err)
	require.Len(t, roots, len(trees))

	for i, leaves := range trees {
		want, err := merkle.Root(digest.SHA256(), leaves)
		require.NoError(t, err)
		assert.Equal(t, want, roots[i], "tree %d", i)
	}
}

func TestRoots_SmallBatchesRunSerially(t *testing.T) {
	trees := [][][]byte{
		{[]byte("a"), []byte("b")},
		{[]byte("c")},
	}
	roots, err := merkle.Roots(newSHA256, trees)
	require.NoError(t, err)
	require.Len(t, roots, 2)

	for i, leaves := range trees {
		want, err := merkle.Root(digest.SHA256(), leaves)
		require.NoError(t, err)
		assert.Equal(t, want, roots[i])
	}
}

func TestRoots_Empty(t *testing.T) {
	roots, err := merkle.Roots(newSHA256, nil)
	require.NoError(t, err)
	assert.Nil(t, roots)
}

func TestRoots_PropagatesDigestFailure(t *testing.T) {
	malformed := make([][][]byte, 8)
	for i := range malformed {
		block := make([]byte, 32)
		malformed[i] = [][]byte{block, block}
	}
	// one tree carries a block the vectorized hasher must reject
	malformed[5] = [][]byte{[]byte("too short"), make([]byte, 32)}

	_, err := merkle.Roots(func() merkle.NodeHasher { return digest.SHA256Vectorized() }, malformed)
	require.ErrorIs(t, err, digest.ErrInvalidNodeLen)
	require.ErrorContains(t, err, "tree 5")
}

func TestHasherPool_RecyclesUsableHashers(t *testing.T) {
	pool := merkle.NewHasherPool(newSHA256)

	h := pool.Get()
	first, err := h.HashNode([]byte("a"), []byte("b"))
	require.NoError(t, err)
	pool.Put(h)

	h = pool.Get()
	second, err := h.HashNode([]byte("a"), []byte("b"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
