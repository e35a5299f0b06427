package merkle

import (
	"errors"
	"fmt"
)

var (
	ErrReducerNotStarted = errors.New("reduction pass not started")
	ErrReducerInProgress = errors.New("reduction pass already in progress")
	ErrReducerFailed     = errors.New("reducer is unusable after a digest failure")
)

const (
	stateIdle = iota
	stateReducing
	stateFailed
)

// PairReducer folds one level of a Merkle tree into the next by hashing
// adjacent blocks pairwise, in arrival order. A trailing unpaired block
// is hashed with itself.
//
// A reducer runs exactly one pass at a time: Begin, one Step per block,
// then Finish. After a successful Finish the instance may be reused via
// Begin. After a digest failure the pairing state is undefined and every
// further call fails; discard the instance.
//
// PairReducer is not safe for concurrent use. Pairing depends on arrival
// order across the whole level, so a single level must never be split
// across reducer instances (see Combine).
type PairReducer struct {
	hasher NodeHasher

	state   int
	pending []byte
	// tracks whether pending holds a block; a zero-length block is
	// still a valid pending block, so a nil check is not enough
	hasPending bool
	fed        int
	out        [][]byte
	capHint    int
}

// Option configures a PairReducer.
type Option func(*PairReducer)

// InitialCapacity pre-sizes the output level for callers that know the
// level size up front: a pass over n blocks emits ceil(n/2) blocks.
func InitialCapacity(n int) Option {
	return func(r *PairReducer) {
		r.capHint = n
	}
}

func New(hasher NodeHasher, setters ...Option) *PairReducer {
	r := &PairReducer{hasher: hasher}
	for _, set := range setters {
		set(r)
	}
	return r
}

// Begin starts a new reduction pass with no block pending. It returns
// ErrReducerInProgress if the previous pass has not been completed with
// Finish.
func (r *PairReducer) Begin() error {
	switch r.state {
	case stateReducing:
		return ErrReducerInProgress
	case stateFailed:
		return ErrReducerFailed
	}
	r.pending, r.hasPending = nil, false
	r.fed = 0
	r.out = make([][]byte, 0, r.capHint)
	r.state = stateReducing
	return nil
}

// Step feeds the next block of the level. If no block is pending the
// block is held back; otherwise it is combined with the pending block,
// pending first, and the digest is appended to the output level.
//
// The reducer keeps a reference to the block until it is paired; the
// caller must not mutate it before the pass completes.
func (r *PairReducer) Step(block []byte) error {
	if err := r.inPass(); err != nil {
		return err
	}
	r.fed++
	if !r.hasPending {
		r.pending, r.hasPending = block, true
		return nil
	}
	digest, err := r.hasher.HashNode(r.pending, block)
	if err != nil {
		r.state = stateFailed
		return fmt.Errorf("combining blocks %d and %d: %w", r.fed-2, r.fed-1, err)
	}
	r.out = append(r.out, digest)
	r.pending, r.hasPending = nil, false
	return nil
}

// Finish completes the pass. A still-pending block is flushed by hashing
// it with itself. The returned level is owned by the caller and never
// touched again by the reducer; reusing the instance starts from Begin.
func (r *PairReducer) Finish() ([][]byte, error) {
	if err := r.inPass(); err != nil {
		return nil, err
	}
	if r.hasPending {
		digest, err := r.hasher.HashNode(r.pending, r.pending)
		if err != nil {
			r.state = stateFailed
			return nil, fmt.Errorf("self-pairing trailing block %d: %w", r.fed-1, err)
		}
		r.out = append(r.out, digest)
		r.pending, r.hasPending = nil, false
	}
	level := r.out
	r.out = nil
	r.state = stateIdle
	return level, nil
}

// Combine exists to make the non-parallel contract explicit: partial
// results from two reducers cannot be merged into one correct level,
// because pairing is position-dependent across the whole input. It
// returns left unchanged and must never be relied upon for correctness.
func (r *PairReducer) Combine(left, _ [][]byte) [][]byte {
	return left
}

func (r *PairReducer) inPass() error {
	switch r.state {
	case stateIdle:
		return ErrReducerNotStarted
	case stateFailed:
		return ErrReducerFailed
	}
	return nil
}
