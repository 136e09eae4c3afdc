package trie

import "cmp"

// terminalPos is the frame position of a branch's own value.
// it sorts before the first child, so a key always comes before its extensions.
const terminalPos = -1

// frame is one level of the path from the root to the visited entry.
// pos is either terminalPos or an index into node.children; len(node.children) is the end of the level.
type frame[E cmp.Ordered, V any] struct {
	node *branch[E, V]
	pos  int
}

// Iterator walks the entries of a Trie in ascending key order.
// The zero value, and any iterator that ran past the last entry, is the end iterator.
//
// An iterator keeps references into the tree. Inserting or erasing keys that share
// a branch with the iterator's path invalidates it.
type Iterator[E cmp.Ordered, V any] struct {
	frames []frame[E, V]
}

// Entry is a key with its associated value.
type Entry[E cmp.Ordered, V any] struct {
	Key   []E
	Value V
}

// descendToMinimum pushes the path to the smallest key reachable from b.
// b must be non-empty.
func (it *Iterator[E, V]) descendToMinimum(b *branch[E, V]) {
	for {
		if b.terminal {
			it.frames = append(it.frames, frame[E, V]{node: b, pos: terminalPos})
			return
		}
		if len(b.children) == 0 {
			panic("[BUG] descendToMinimum: reached an empty branch")
		}
		it.frames = append(it.frames, frame[E, V]{node: b, pos: 0})
		b = b.children[0].node
	}
}

// IsEnd reports whether the iterator is past the last entry.
func (it *Iterator[E, V]) IsEnd() bool {
	return len(it.frames) == 0
}

// Key reconstructs the key of the current entry from the recorded path.
// It panics on the end iterator.
func (it *Iterator[E, V]) Key() []E {
	if it.IsEnd() {
		panic("trie: dereference of end iterator")
	}
	key := make([]E, 0, len(it.frames))
	for _, f := range it.frames {
		if f.pos == terminalPos {
			continue
		}
		key = append(key, f.node.children[f.pos].symbol)
	}
	return key
}

// Value returns the value of the current entry.
// It panics on the end iterator.
func (it *Iterator[E, V]) Value() V {
	return it.top().value
}

// Entry returns the key and value of the current entry.
// It panics on the end iterator.
func (it *Iterator[E, V]) Entry() Entry[E, V] {
	node := it.top()
	return Entry[E, V]{Key: it.Key(), Value: node.value}
}

// top returns the branch holding the current value, enforcing the dereference precondition.
func (it *Iterator[E, V]) top() *branch[E, V] {
	if it.IsEnd() {
		panic("trie: dereference of end iterator")
	}
	last := it.frames[len(it.frames)-1]
	if last.pos != terminalPos || !last.node.terminal {
		panic("trie: dereference of invalidated iterator")
	}
	return last.node
}

// Equal reports whether both iterators point at the same position of the same tree.
// All end iterators are equal.
func (it *Iterator[E, V]) Equal(other *Iterator[E, V]) bool {
	if len(it.frames) != len(other.frames) {
		return false
	}
	for i := range it.frames {
		if it.frames[i] != other.frames[i] {
			return false
		}
	}
	return true
}

// Next moves the iterator to the next entry in key order (pre-increment).
// Calling Next on the end iterator leaves it at the end.
func (it *Iterator[E, V]) Next() {
	for len(it.frames) > 0 {
		top := &it.frames[len(it.frames)-1]
		top.pos++
		if top.pos >= len(top.node.children) {
			// level exhausted, backtrack to the parent
			it.frames = it.frames[:len(it.frames)-1]
			continue
		}
		it.descendToMinimum(top.node.children[top.pos].node)
		return
	}
}

// PostNext advances the iterator and returns a copy of its previous position (post-increment).
func (it *Iterator[E, V]) PostNext() *Iterator[E, V] {
	prev := it.Clone()
	it.Next()
	return prev
}

// Clone returns an independent copy of the iterator.
func (it *Iterator[E, V]) Clone() *Iterator[E, V] {
	frames := make([]frame[E, V], len(it.frames))
	copy(frames, it.frames)
	return &Iterator[E, V]{frames: frames}
}
