package bst

import (
	g "github.com/anacrolix/generics"
)

// Removes key, returning its value if it was present. Removing an absent key does nothing. The
// parent's child slot (or the tree's root) is always relinked, including when the root itself
// goes.
func (me *Tree[K, V]) Remove(key K) (removed g.Option[V]) {
	slot := me.findSlot(key)
	if *slot == nil {
		return
	}
	removed.Set((*slot).value)
	me.removeAt(slot)
	me.len--
	return
}

// Returns the slot holding the node for key, or the nil slot where it would be.
func (me *Tree[K, V]) findSlot(key K) **node[K, V] {
	slot := &me.root
	for *slot != nil {
		n := *slot
		switch {
		case key < n.key:
			slot = &n.left
		case key > n.key:
			slot = &n.right
		default:
			return slot
		}
	}
	return slot
}

func (me *Tree[K, V]) removeAt(slot **node[K, V]) {
	n := *slot
	switch {
	case n.left == nil:
		// Covers the leaf case too.
		*slot = n.right
	case n.right == nil:
		*slot = n.left
	default:
		// In-order successor: leftmost node of the right subtree.
		succSlot := &n.right
		for (*succSlot).left != nil {
			succSlot = &(*succSlot).left
		}
		succ := *succSlot
		n.key = succ.key
		n.value = succ.value
		*succSlot = succ.right
		succ.right = nil
		return
	}
	n.left = nil
	n.right = nil
}
