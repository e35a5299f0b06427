// Package merkle implements the level reduction step of a Merkle hash
// tree: an ordered level of blocks is folded into the next level up by
// hashing adjacent blocks pairwise, in arrival order. A trailing
// unpaired block is hashed with itself, so every non-empty level
// reduces deterministically toward a single root without any external
// padding convention.
//
// The digest primitive is pluggable through the NodeHasher interface;
// package digest ships SHA-256, vectorized SHA-256 and BLAKE3
// implementations.
package merkle
