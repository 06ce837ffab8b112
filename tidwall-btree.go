package bidtree

import (
	"iter"

	g "github.com/anacrolix/generics"
	"github.com/tidwall/btree"
)

type tidwallIndex struct {
	tree *btree.BTreeG[Bid]
}

var _ Index = (*tidwallIndex)(nil)

func bidLess(a, b Bid) bool {
	return a.Id < b.Id
}

func NewTidwallIndex() *tidwallIndex {
	return &tidwallIndex{
		tree: btree.NewBTreeGOptions[Bid](bidLess, btree.Options{NoLocks: true}),
	}
}

func (me *tidwallIndex) Insert(b Bid) (old g.Option[Bid]) {
	old.Value, old.Ok = me.tree.Set(b)
	return
}

func (me *tidwallIndex) Search(id string) (ret g.Option[Bid]) {
	ret.Value, ret.Ok = me.tree.Get(Bid{Id: id})
	return
}

func (me *tidwallIndex) Remove(id string) (removed g.Option[Bid]) {
	removed.Value, removed.Ok = me.tree.Delete(Bid{Id: id})
	return
}

func (me *tidwallIndex) Ascend() iter.Seq[Bid] {
	return func(yield func(Bid) bool) {
		me.tree.Scan(yield)
	}
}

func (me *tidwallIndex) Len() int {
	return me.tree.Len()
}
