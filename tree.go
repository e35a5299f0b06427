package merkle

// NextLevel runs a single reduction pass over level and returns the next
// level up. A level of n blocks reduces to ceil(n/2) blocks.
func NextLevel(hasher NodeHasher, level [][]byte) ([][]byte, error) {
	r := New(hasher, InitialCapacity((len(level)+1)/2))
	if err := r.Begin(); err != nil {
		return nil, err
	}
	for _, block := range level {
		if err := r.Step(block); err != nil {
			return nil, err
		}
	}
	return r.Finish()
}

// Root reduces leaves level by level until a single block remains and
// returns it. A single leaf is already a root and is returned unchanged;
// the root over no leaves at all is hasher.EmptyRoot().
func Root(hasher NodeHasher, leaves [][]byte) ([]byte, error) {
	if len(leaves) == 0 {
		return hasher.EmptyRoot(), nil
	}
	level := leaves
	for len(level) > 1 {
		next, err := NextLevel(hasher, level)
		if err != nil {
			return nil, err
		}
		level = next
	}
	return level[0], nil
}
