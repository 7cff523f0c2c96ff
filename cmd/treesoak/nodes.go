package main

import (
	"cmp"

	"github.com/g-m-twostay/go-intrusive/Adapters"
	"github.com/g-m-twostay/go-intrusive/Ptrs"
	"github.com/g-m-twostay/go-intrusive/Trees"
)

type keyed interface {
	setKey(k int)
	linked() bool
}

// dnode is linked through plain addresses.
type dnode struct {
	key  int
	link Trees.DirectLink[dnode]
}

func (u *dnode) setKey(k int) { u.key = k }
func (u *dnode) linked() bool { return u.link.IsLinked() }

type dOrder struct{}

func (dOrder) Link(e *dnode) *Trees.DirectLink[dnode] { return &e.link }
func (dOrder) Compare(a, b *dnode) int                 { return cmp.Compare(a.key, b.key) }

// onode is linked through offsets, so it must share a block with its tree.
type onode struct {
	key  int
	link Trees.Link[Ptrs.Offset[onode]]
}

func (u *onode) setKey(k int) { u.key = k }
func (u *onode) linked() bool { return u.link.IsLinked() }

type oOrder struct{}

func (oOrder) Link(e *onode) *Trees.Link[Ptrs.Offset[onode]] { return &e.link }
func (oOrder) Compare(a, b *onode) int                        { return cmp.Compare(a.key, b.key) }

const arenaSize = 1 << 14

// arena is one block holding a tree and every element it can link.
type arena[S Adapters.Size[S]] struct {
	tree  Trees.BinTree[onode, Ptrs.Offset[onode], oOrder, S]
	nodes [arenaSize]onode
}
