// Package digest provides ready-made NodeHasher implementations for the
// reduction core.
package digest

import (
	"crypto/sha256"

	"github.com/zeebo/blake3"

	"github.com/bwlabs/merkle"
)

// SHA256 returns a NodeHasher backed by crypto/sha256.
func SHA256() *merkle.Hasher {
	return merkle.NewHasher(sha256.New())
}

// Blake3 returns a NodeHasher backed by BLAKE3 with a 32-byte digest.
func Blake3() *merkle.Hasher {
	return merkle.NewHasher(blake3.New())
}
