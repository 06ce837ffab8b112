package bidtree

import (
	"fmt"
	"iter"
	"slices"

	g "github.com/anacrolix/generics"

	"github.com/bidtree/bidtree/bst"
)

// An ordered set of bids keyed by Bid.Id. Inserting an Id that's already present replaces the
// stored bid and returns the previous one.
type Index interface {
	Insert(Bid) (old g.Option[Bid])
	Search(id string) g.Option[Bid]
	Remove(id string) (removed g.Option[Bid])
	// Bids in Id order.
	Ascend() iter.Seq[Bid]
	Len() int
}

// Implemented by indexes that can walk their structure in orders other than ascending.
type Traverser interface {
	Traverse(bst.Order) iter.Seq[Bid]
}

const (
	BstBackend      = "bst"
	TidwallBackend  = "tidwall"
	GoogleBackend   = "google"
	AjwernerBackend = "ajwerner"
)

func Backends() []string {
	return []string{BstBackend, TidwallBackend, GoogleBackend, AjwernerBackend}
}

func NewIndex(backend string) (Index, error) {
	switch backend {
	case BstBackend, "":
		return NewBstIndex(), nil
	case TidwallBackend:
		return NewTidwallIndex(), nil
	case GoogleBackend:
		return NewGoogleIndex(defaultGoogleDegree), nil
	case AjwernerBackend:
		return NewAjwernerIndex(), nil
	default:
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownBackend, backend, Backends())
	}
}

// Returns the bids of idx in the requested order. Only ascending order is available unless idx
// is a Traverser.
func Traverse(idx Index, order bst.Order) (iter.Seq[Bid], error) {
	if !order.Valid() {
		return nil, fmt.Errorf("invalid traversal order %v", order)
	}
	if t, ok := idx.(Traverser); ok {
		return t.Traverse(order), nil
	}
	if order == bst.InOrder {
		return idx.Ascend(), nil
	}
	return nil, fmt.Errorf("%T doesn't support %v-order traversal", idx, order)
}

func Ids(seq iter.Seq[Bid]) []string {
	return slices.Collect(func(yield func(string) bool) {
		for b := range seq {
			if !yield(b.Id) {
				return
			}
		}
	})
}
