package bst

import (
	"fmt"

	g "github.com/anacrolix/generics"
)

// Walks the whole tree verifying the ordering invariant and the cached length.
func (me *Tree[K, V]) Check() error {
	type frame struct {
		n      *node[K, V]
		lo, hi g.Option[K]
	}
	count := 0
	stack := []frame{}
	if me.root != nil {
		stack = append(stack, frame{n: me.root})
	}
	for len(stack) != 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		if f.lo.Ok && !(f.lo.Value < f.n.key) {
			return fmt.Errorf("key %v not greater than ancestor %v", f.n.key, f.lo.Value)
		}
		if f.hi.Ok && !(f.n.key < f.hi.Value) {
			return fmt.Errorf("key %v not less than ancestor %v", f.n.key, f.hi.Value)
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.lo, g.Some(f.n.key)})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, g.Some(f.n.key), f.hi})
		}
	}
	if count != me.len {
		return fmt.Errorf("counted %v nodes, expected %v", count, me.len)
	}
	return nil
}
