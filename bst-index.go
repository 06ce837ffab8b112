package bidtree

import (
	"iter"

	g "github.com/anacrolix/generics"

	"github.com/bidtree/bidtree/bst"
)

type bstIndex struct {
	tree bst.Tree[string, Bid]
}

var (
	_ Index     = (*bstIndex)(nil)
	_ Traverser = (*bstIndex)(nil)
)

func NewBstIndex() *bstIndex {
	return &bstIndex{}
}

func (me *bstIndex) Insert(b Bid) g.Option[Bid] {
	return me.tree.Insert(b.Id, b)
}

func (me *bstIndex) Search(id string) g.Option[Bid] {
	return me.tree.Search(id)
}

func (me *bstIndex) Remove(id string) g.Option[Bid] {
	return me.tree.Remove(id)
}

func (me *bstIndex) Ascend() iter.Seq[Bid] {
	return me.Traverse(bst.InOrder)
}

func (me *bstIndex) Traverse(order bst.Order) iter.Seq[Bid] {
	return func(yield func(Bid) bool) {
		for _, b := range me.tree.Traverse(order) {
			if !yield(b) {
				return
			}
		}
	}
}

func (me *bstIndex) Len() int {
	return me.tree.Len()
}

// Exposes the underlying tree for diagnostics like Height and Check.
func (me *bstIndex) Tree() *bst.Tree[string, Bid] {
	return &me.tree
}
