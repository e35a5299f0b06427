package merkle

import (
	"fmt"
	"runtime"
	"sync"
)

// HasherPool recycles NodeHasher instances across reduction passes. Get
// hands out exclusive ownership; return the hasher with Put once the
// pass that used it has completed.
type HasherPool struct {
	pool sync.Pool
}

func NewHasherPool(newHasher func() NodeHasher) *HasherPool {
	return &HasherPool{
		pool: sync.Pool{
			New: func() interface{} {
				return newHasher()
			},
		},
	}
}

func (p *HasherPool) Get() NodeHasher {
	return p.pool.Get().(NodeHasher)
}

func (p *HasherPool) Put(h NodeHasher) {
	p.pool.Put(h)
}

// Roots computes the root of every tree in trees. Trees are disjoint, so
// they are reduced concurrently: each worker owns its own reducers and
// its own pooled hasher, and no single level is ever split between
// workers.
func Roots(newHasher func() NodeHasher, trees [][][]byte) ([][]byte, error) {
	if len(trees) == 0 {
		return nil, nil
	}

	roots := make([][]byte, len(trees))

	// For small batches, serial processing avoids the goroutine overhead.
	if len(trees) <= 2 {
		h := newHasher()
		for i, leaves := range trees {
			root, err := Root(h, leaves)
			if err != nil {
				return nil, fmt.Errorf("tree %d: %w", i, err)
			}
			roots[i] = root
		}
		return roots, nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > len(trees) {
		numWorkers = len(trees)
	}

	hashers := NewHasherPool(newHasher)
	jobChan := make(chan int, len(trees))
	errs := make([]error, len(trees))
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := hashers.Get()
			defer hashers.Put(h)

			for idx := range jobChan {
				roots[idx], errs[idx] = Root(h, trees[idx])
			}
		}()
	}

	for i := range trees {
		jobChan <- i
	}
	close(jobChan)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return roots, nil
}
