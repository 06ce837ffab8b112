package bidtree

import (
	"iter"

	g "github.com/anacrolix/generics"
	"github.com/google/btree"
)

const defaultGoogleDegree = 32

type googleIndex struct {
	tree *btree.BTreeG[Bid]
}

var _ Index = (*googleIndex)(nil)

func NewGoogleIndex(degree int) *googleIndex {
	return &googleIndex{
		tree: btree.NewG[Bid](degree, bidLess),
	}
}

func (me *googleIndex) Insert(b Bid) (old g.Option[Bid]) {
	old.Value, old.Ok = me.tree.ReplaceOrInsert(b)
	return
}

func (me *googleIndex) Search(id string) (ret g.Option[Bid]) {
	ret.Value, ret.Ok = me.tree.Get(Bid{Id: id})
	return
}

func (me *googleIndex) Remove(id string) (removed g.Option[Bid]) {
	removed.Value, removed.Ok = me.tree.Delete(Bid{Id: id})
	return
}

func (me *googleIndex) Ascend() iter.Seq[Bid] {
	return func(yield func(Bid) bool) {
		me.tree.Ascend(yield)
	}
}

func (me *googleIndex) Len() int {
	return me.tree.Len()
}
