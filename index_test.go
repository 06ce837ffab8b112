package bidtree

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/bradfitz/iter"
	"github.com/go-quicktest/qt"

	"github.com/bidtree/bidtree/bst"
)

func scenarioIndex(t testing.TB, backend string) Index {
	idx, err := NewIndex(backend)
	qt.Assert(t, qt.IsNil(err))
	for i, id := range []string{"50", "30", "70", "20", "40", "60", "80"} {
		old := idx.Insert(Bid{Id: id, Title: "title " + id, Fund: "fund", Amount: float64(i)})
		qt.Assert(t, qt.IsFalse(old.Ok))
	}
	return idx
}

func TestBackendsScenario(t *testing.T) {
	for _, backend := range Backends() {
		t.Run(backend, func(t *testing.T) {
			idx := scenarioIndex(t, backend)
			qt.Check(t, qt.DeepEquals(Ids(idx.Ascend()), []string{"20", "30", "40", "50", "60", "70", "80"}))
			found := idx.Search("40")
			qt.Assert(t, qt.IsTrue(found.Ok))
			qt.Check(t, qt.Equals(found.Value, Bid{Id: "40", Title: "title 40", Fund: "fund", Amount: 4}))
			qt.Check(t, qt.IsFalse(idx.Search("45").Ok))

			qt.Check(t, qt.IsTrue(idx.Remove("50").Ok))
			qt.Check(t, qt.DeepEquals(Ids(idx.Ascend()), []string{"20", "30", "40", "60", "70", "80"}))
			qt.Check(t, qt.IsFalse(idx.Search("50").Ok))
			qt.Check(t, qt.IsFalse(idx.Remove("50").Ok))
			qt.Check(t, qt.Equals(idx.Len(), 6))

			old := idx.Insert(Bid{Id: "60", Title: "again"})
			qt.Check(t, qt.Equals(old.Value.Title, "title 60"))
			qt.Check(t, qt.Equals(idx.Search("60").Value.Title, "again"))
			qt.Check(t, qt.Equals(idx.Len(), 6))
		})
	}
}

func TestEmptyBackends(t *testing.T) {
	for _, backend := range Backends() {
		idx, err := NewIndex(backend)
		qt.Assert(t, qt.IsNil(err))
		qt.Check(t, qt.IsFalse(idx.Search("98104").Ok))
		qt.Check(t, qt.IsFalse(idx.Remove("98104").Ok))
		qt.Check(t, qt.HasLen(Ids(idx.Ascend()), 0))
	}
}

func TestBackendsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	var idxs []Index
	for _, backend := range Backends() {
		idx, err := NewIndex(backend)
		qt.Assert(t, qt.IsNil(err))
		idxs = append(idxs, idx)
	}
	for i := range iter.N(3000) {
		id := fmt.Sprintf("%d", rng.IntN(500))
		insert := rng.IntN(3) != 0
		var results []any
		for _, idx := range idxs {
			if insert {
				results = append(results, idx.Insert(Bid{Id: id, Amount: float64(i)}))
			} else {
				results = append(results, idx.Remove(id))
			}
		}
		for _, r := range results[1:] {
			qt.Assert(t, qt.Equals(r, results[0]))
		}
	}
	want := Ids(idxs[0].Ascend())
	for _, idx := range idxs[1:] {
		qt.Check(t, qt.DeepEquals(Ids(idx.Ascend()), want))
		qt.Check(t, qt.Equals(idx.Len(), idxs[0].Len()))
	}
}

func TestTraverse(t *testing.T) {
	idx := scenarioIndex(t, BstBackend)
	pre, err := Traverse(idx, bst.PreOrder)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.DeepEquals(Ids(pre), []string{"50", "30", "20", "40", "70", "60", "80"}))
	post, err := Traverse(idx, bst.PostOrder)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.DeepEquals(Ids(post), []string{"20", "40", "30", "60", "80", "70", "50"}))

	tidwall := scenarioIndex(t, TidwallBackend)
	in, err := Traverse(tidwall, bst.InOrder)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.HasLen(Ids(in), 7))
	_, err = Traverse(tidwall, bst.PreOrder)
	qt.Check(t, qt.IsNotNil(err))
}

func TestAjwernerIndexReplaceAndRemove(t *testing.T) {
	idx := NewAjwernerIndex()
	qt.Check(t, qt.IsFalse(idx.Insert(Bid{Id: "b", Amount: 1}).Ok))
	qt.Check(t, qt.IsFalse(idx.Insert(Bid{Id: "a", Amount: 2}).Ok))
	old := idx.Insert(Bid{Id: "b", Amount: 3})
	qt.Assert(t, qt.IsTrue(old.Ok))
	qt.Check(t, qt.Equals(old.Value.Amount, 1.0))
	qt.Check(t, qt.Equals(idx.Search("b").Value.Amount, 3.0))
	qt.Check(t, qt.Equals(idx.Len(), 2))
	removed := idx.Remove("a")
	qt.Assert(t, qt.IsTrue(removed.Ok))
	qt.Check(t, qt.Equals(removed.Value.Amount, 2.0))
	qt.Check(t, qt.IsFalse(idx.Remove("a").Ok))
	qt.Check(t, qt.DeepEquals(Ids(idx.Ascend()), []string{"b"}))
}

func TestTraverseInvalidOrder(t *testing.T) {
	for _, backend := range Backends() {
		_, err := Traverse(scenarioIndex(t, backend), bst.Order(7))
		qt.Check(t, qt.ErrorMatches(err, `invalid traversal order Order\(7\)`))
	}
}

func TestBstIndexTreeInvariant(t *testing.T) {
	idx := scenarioIndex(t, BstBackend).(*bstIndex)
	idx.Remove("30")
	qt.Check(t, qt.IsNil(idx.Tree().Check()))
	qt.Check(t, qt.Equals(idx.Tree().Height(), 3))
}

func TestUnknownBackend(t *testing.T) {
	_, err := NewIndex("skiplist")
	qt.Assert(t, qt.IsTrue(errors.Is(err, ErrUnknownBackend)))
}

func TestBidString(t *testing.T) {
	b := Bid{Id: "98104", Title: "Hoover Steam Vac", Fund: "General Fund", Amount: 27}
	qt.Check(t, qt.Equals(b.String(), "98104: Hoover Steam Vac | 27.00 | General Fund"))
}

func benchmarkIndex(b *testing.B, newIndex func() Index, ids []string) {
	b.ReportAllocs()
	b.ResetTimer()
	for range iter.N(b.N) {
		idx := newIndex()
		for _, id := range ids {
			idx.Insert(Bid{Id: id})
		}
		for _, id := range ids {
			if !idx.Search(id).Ok {
				b.FailNow()
			}
		}
		for _, id := range ids {
			idx.Remove(id)
		}
		if idx.Len() != 0 {
			b.FailNow()
		}
	}
}

func BenchmarkIndex(b *testing.B) {
	const numBids = 2000
	ids := make([]string, 0, numBids)
	for i := range iter.N(numBids) {
		ids = append(ids, fmt.Sprintf("%06d", i))
	}
	rand.New(rand.NewPCG(0, 0)).Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	for _, backend := range Backends() {
		b.Run(backend, func(b *testing.B) {
			benchmarkIndex(b, func() Index {
				idx, _ := NewIndex(backend)
				return idx
			}, ids)
		})
	}
}
