package bst

import (
	"fmt"
	"iter"
	"strings"

	"github.com/anacrolix/missinggo/v2/panicif"
	"golang.org/x/exp/constraints"
)

type Order int

const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

func (me Order) String() string {
	switch me {
	case InOrder:
		return "in"
	case PreOrder:
		return "pre"
	case PostOrder:
		return "post"
	default:
		return fmt.Sprintf("Order(%d)", int(me))
	}
}

func (me Order) Valid() bool {
	return me >= InOrder && me <= PostOrder
}

// Accepts the String forms, optionally suffixed with "order" or "-order".
func ParseOrder(s string) (Order, error) {
	s = strings.TrimSuffix(strings.TrimSuffix(strings.ToLower(s), "order"), "-")
	for _, o := range []Order{InOrder, PreOrder, PostOrder} {
		if s == o.String() {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown traversal order %q", s)
}

// Implements encoding.TextUnmarshaler so Order can be used directly as a flag.
func (me *Order) UnmarshalText(b []byte) (err error) {
	*me, err = ParseOrder(string(b))
	return
}

// order must be Valid.
func (me *Tree[K, V]) Traverse(order Order) iter.Seq2[K, V] {
	panicif.False(order.Valid())
	switch order {
	case PreOrder:
		return me.PreOrder()
	case PostOrder:
		return me.PostOrder()
	default:
		return me.InOrder()
	}
}

// Left subtree, node, right subtree. Keys come out sorted.
func (me *Tree[K, V]) InOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var stack []*node[K, V]
		n := me.root
		for n != nil || len(stack) != 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.key, n.value) {
				return
			}
			n = n.right
		}
	}
}

// Node, left subtree, right subtree.
func (me *Tree[K, V]) PreOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if me.root == nil {
			return
		}
		stack := []*node[K, V]{me.root}
		for len(stack) != 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.key, n.value) {
				return
			}
			// Right goes on first so left is visited first.
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}

// Left subtree, right subtree, node.
func (me *Tree[K, V]) PostOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var stack []*node[K, V]
		var last *node[K, V]
		n := me.root
		for n != nil || len(stack) != 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			top := stack[len(stack)-1]
			if top.right != nil && top.right != last {
				n = top.right
				continue
			}
			stack = stack[:len(stack)-1]
			if !yield(top.key, top.value) {
				return
			}
			last = top
		}
	}
}

// Keys in the given order. Handy for tests and display.
func Keys[K constraints.Ordered, V any](seq iter.Seq2[K, V]) (ret []K) {
	for k := range seq {
		ret = append(ret, k)
	}
	return
}
