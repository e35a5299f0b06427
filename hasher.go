package merkle

import (
	"hash"
)

// NodeHasher is the digest primitive a PairReducer runs on: it combines
// two child blocks into the fixed-length digest of their parent node.
// An implementation may keep internal scratch state between calls, so an
// instance must not be shared across concurrently executing reductions.
type NodeHasher interface {
	// HashNode returns the digest over left || right.
	HashNode(left, right []byte) ([]byte, error)
	// EmptyRoot returns the root of a tree with no leaves.
	EmptyRoot() []byte
	// Size returns the digest length in bytes.
	Size() int
}

var _ NodeHasher = (*Hasher)(nil)

// Hasher adapts any hash.Hash into a NodeHasher. The parent digest is
// the plain hash of the concatenated children, with no domain
// separation prefixes.
type Hasher struct {
	baseHasher hash.Hash
}

func NewHasher(baseHasher hash.Hash) *Hasher {
	return &Hasher{baseHasher: baseHasher}
}

// Size returns the number of bytes HashNode will return.
func (n *Hasher) Size() int {
	return n.baseHasher.Size()
}

func (n *Hasher) EmptyRoot() []byte {
	n.baseHasher.Reset()
	return n.baseHasher.Sum(nil)
}

// HashNode hashes a node to hash(left || right).
//
//nolint:errcheck
func (n *Hasher) HashNode(left, right []byte) ([]byte, error) {
	h := n.baseHasher
	h.Reset()

	// Note this seems a little faster than calling several Write()s on the
	// underlying Hash function (see:
	// https://github.com/google/trillian/pull/1503):
	data := make([]byte, 0, len(left)+len(right))
	data = append(data, left...)
	data = append(data, right...)
	h.Write(data)
	return h.Sum(nil), nil
}
