package bidtree

import (
	"cmp"
	"iter"

	"github.com/anacrolix/btree"
	g "github.com/anacrolix/generics"
)

// Backed by the anacrolix fork of ajwerner's generic btree.
type ajwernerIndex struct {
	set btree.Set[Bid]
}

var _ Index = (*ajwernerIndex)(nil)

func NewAjwernerIndex() *ajwernerIndex {
	return &ajwernerIndex{
		set: btree.MakeSet(func(a, b Bid) int {
			return cmp.Compare(a.Id, b.Id)
		}),
	}
}

func (me *ajwernerIndex) Insert(b Bid) (old g.Option[Bid]) {
	old.Value, old.Ok = me.set.Upsert(b)
	return
}

func (me *ajwernerIndex) Search(id string) (ret g.Option[Bid]) {
	ret.Value, ret.Ok = me.set.Get(Bid{Id: id})
	return
}

func (me *ajwernerIndex) Remove(id string) (removed g.Option[Bid]) {
	removed.Value, _, removed.Ok = me.set.Map.Delete(Bid{Id: id})
	return
}

func (me *ajwernerIndex) Ascend() iter.Seq[Bid] {
	return func(yield func(Bid) bool) {
		it := me.set.Iterator()
		for it.First(); it.Valid(); it.Next() {
			if !yield(it.Cur()) {
				return
			}
		}
	}
}

func (me *ajwernerIndex) Len() int {
	return me.set.Len()
}
