package main

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/g-m-twostay/go-intrusive/Adapters"
	"github.com/g-m-twostay/go-intrusive/Trees"
	"github.com/golang/glog"
)

type config struct {
	seed                      int64
	ops, keys, workers, check int
	policy, addr              string
}

var errCorrupt = errors.New("tree is corrupt")

func (c config) validate() error {
	switch {
	case c.ops < 1 || c.workers < 1 || c.check < 1:
		return errors.New("ops, workers and check must be positive")
	case c.keys < 1:
		return errors.New("keys must be positive")
	case c.addr == "offset" && c.keys > arenaSize:
		return fmt.Errorf("offset addressing holds at most %d keys, got %d", arenaSize, c.keys)
	case c.addr != "direct" && c.addr != "offset":
		return fmt.Errorf("unknown addressing %q", c.addr)
	case c.policy != "eager" && c.policy != "lazy":
		return fmt.Errorf("unknown size policy %q", c.policy)
	}
	return nil
}

// soak runs cfg.workers workers and returns the first error any of them hit.
func soak(cfg config) error {
	var wg sync.WaitGroup
	errs := make(chan error, cfg.workers)
	for i := range cfg.workers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(cfg.seed + int64(id)))
			if err := worker(cfg, r); err != nil {
				errs <- fmt.Errorf("worker %d (seed %d): %w", id, cfg.seed+int64(id), err)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	return <-errs
}

func worker(cfg config, r *rand.Rand) error {
	switch {
	case cfg.addr == "offset" && cfg.policy == "eager":
		a := new(arena[Adapters.Eager[uint]])
		return run[onode](&a.tree, a.nodes[:cfg.keys], cfg, r)
	case cfg.addr == "offset":
		a := new(arena[Adapters.Lazy])
		return run[onode](&a.tree, a.nodes[:cfg.keys], cfg, r)
	case cfg.policy == "eager":
		return run[dnode](Trees.NewTree[dnode, dOrder, Adapters.Eager[uint]](), make([]dnode, cfg.keys), cfg, r)
	default:
		return run[dnode](Trees.NewTree[dnode, dOrder, Adapters.Lazy](), make([]dnode, cfg.keys), cfg, r)
	}
}

// run cfg.ops random operations on tree, whose elements all come from pool.
// A shadow count of linked elements is kept and compared with tree.Len at every check.
func run[T any, PT interface {
	*T
	keyed
}](tree Trees.Container[T], pool []T, cfg config, r *rand.Rand) error {
	for i := range pool {
		PT(&pool[i]).setKey(r.Intn(len(pool)))
	}
	var linked uint
	for op := 1; op <= cfg.ops; op++ {
		e := PT(&pool[r.Intn(len(pool))])
		switch k := r.Intn(8); {
		case k < 4:
			if e.linked() {
				continue
			}
			if tree.Insert((*T)(e)) == nil {
				linked++
			} else {
				e.setKey(r.Intn(len(pool)))
			}
		case k < 5:
			if tree.PopFront() != nil {
				linked--
			}
		case k < 6:
			if tree.PopBack() != nil {
				linked--
			}
		case k < 7:
			if e.linked() {
				tree.Unlink((*T)(e))
				linked--
			}
		default:
			if tree.Remove((*T)(e)) != nil {
				linked--
			}
		}
		if op%cfg.check == 0 {
			if tree.Corrupt() {
				return fmt.Errorf("after %d operations: %w", op, errCorrupt)
			}
			if n := tree.Len(); n != linked {
				return fmt.Errorf("after %d operations: Len is %d, %d elements are linked", op, n, linked)
			}
			glog.V(1).Infof("op %d: %d linked", op, linked)
		}
	}
	tree.Clear()
	for i := range pool {
		if PT(&pool[i]).linked() {
			return fmt.Errorf("element %d still linked after Clear", i)
		}
	}
	return nil
}
