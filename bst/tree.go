// Package bst is an unbalanced binary search tree. Depth depends only on insertion order, so
// sorted input degenerates into a list. Nothing here is safe for concurrent mutation.
package bst

import (
	g "github.com/anacrolix/generics"
	"golang.org/x/exp/constraints"
)

type node[K constraints.Ordered, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// Tree is an ordered index from K to V. The zero value is an empty tree.
type Tree[K constraints.Ordered, V any] struct {
	root *node[K, V]
	len  int
}

func (me *Tree[K, V]) Len() int {
	return me.len
}

// Inserts value under key. An existing key has its value replaced in place, and the old value
// is returned. Shape is unchanged in that case.
func (me *Tree[K, V]) Insert(key K, value V) (old g.Option[V]) {
	slot := &me.root
	for *slot != nil {
		n := *slot
		switch {
		case key < n.key:
			slot = &n.left
		case key > n.key:
			slot = &n.right
		default:
			old.Set(n.value)
			n.value = value
			return
		}
	}
	*slot = &node[K, V]{key: key, value: value}
	me.len++
	return
}

// Returns the value for key, or None if it was never inserted or has been removed.
func (me *Tree[K, V]) Search(key K) g.Option[V] {
	n := me.root
	for n != nil {
		if key == n.key {
			return g.Some(n.value)
		}
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}
	return g.None[V]()
}

func (me *Tree[K, V]) Contains(key K) bool {
	return me.Search(key).Ok
}

// Drops every node. The tree is empty and reusable afterwards.
func (me *Tree[K, V]) Clear() {
	me.root = nil
	me.len = 0
}

// Length of the longest root-to-leaf path. 0 for an empty tree.
func (me *Tree[K, V]) Height() (height int) {
	type frame struct {
		n     *node[K, V]
		depth int
	}
	if me.root == nil {
		return 0
	}
	stack := []frame{{me.root, 1}}
	for len(stack) != 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, f.depth)
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}
	return
}

type Item[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

func (me *Tree[K, V]) Min() (ret g.Option[Item[K, V]]) {
	n := me.root
	if n == nil {
		return
	}
	for n.left != nil {
		n = n.left
	}
	return g.Some(Item[K, V]{n.key, n.value})
}

func (me *Tree[K, V]) Max() (ret g.Option[Item[K, V]]) {
	n := me.root
	if n == nil {
		return
	}
	for n.right != nil {
		n = n.right
	}
	return g.Some(Item[K, V]{n.key, n.value})
}
