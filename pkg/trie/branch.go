package trie

import (
	"cmp"
	"io"
	"slices"
	"strings"
)

// edge links a branch to one of its children under a single symbol.
type edge[E cmp.Ordered, V any] struct {
	symbol E
	node   *branch[E, V]
}

// branch is the only node type of the trie.
// children are kept sorted by symbol, and a branch may additionally terminate a key,
// in which case terminal is set and value holds the entry's value.
type branch[E cmp.Ordered, V any] struct {
	children []edge[E, V]
	terminal bool
	value    V
}

func compareEdge[E cmp.Ordered, V any](e edge[E, V], symbol E) int {
	return cmp.Compare(e.symbol, symbol)
}

// child returns the index of the child stored under symbol, and whether it exists.
// when it does not exist, the index is where it would be inserted.
func (b *branch[E, V]) child(symbol E) (int, bool) {
	return slices.BinarySearchFunc(b.children, symbol, compareEdge[E, V])
}

// insert stores value under key relative to this branch, creating missing branches on the way.
// an existing value for the same key is overwritten.
func (b *branch[E, V]) insert(key []E, value V) {
	if len(key) == 0 {
		b.terminal = true
		b.value = value
		return
	}

	at, found := b.child(key[0])
	if !found {
		b.children = slices.Insert(b.children, at, edge[E, V]{symbol: key[0], node: &branch[E, V]{}})
	}
	b.children[at].node.insert(key[1:], value)
}

// erase removes the value stored under key relative to this branch.
// any child left without children and without a value is detached on the way back up.
// returns true if this branch itself is now prunable.
func (b *branch[E, V]) erase(key []E) bool {
	if len(key) == 0 {
		var zero V
		b.terminal = false
		b.value = zero
		return b.prunable()
	}

	at, found := b.child(key[0])
	if !found {
		// nothing changed below this branch
		return b.prunable()
	}
	if b.children[at].node.erase(key[1:]) {
		b.children = slices.Delete(b.children, at, at+1)
	}
	return b.prunable()
}

// clear drops the whole subtree and the value of this branch.
func (b *branch[E, V]) clear() {
	var zero V
	b.children = nil
	b.terminal = false
	b.value = zero
}

// isEmpty reports whether the branch has no children and holds no value.
func (b *branch[E, V]) isEmpty() bool {
	return len(b.children) == 0 && !b.terminal
}

func (b *branch[E, V]) prunable() bool {
	return b.isEmpty()
}

// printRecursive writes the subtree in the indented tree layout.
// a value is printed before the children, as it sorts before every symbol.
func (b *branch[E, V]) printRecursive(w *strings.Builder, depth int, symbolText func(E) string, valueText func(V) string) {
	indent := strings.Repeat("  ", depth)
	if b.terminal {
		w.WriteString(indent)
		w.WriteString(":")
		w.WriteString(valueText(b.value))
		w.WriteString("\n")
	}
	for _, e := range b.children {
		w.WriteString(indent)
		w.WriteString(symbolText(e.symbol))
		w.WriteString("\n")
		e.node.printRecursive(w, depth+1, symbolText, valueText)
	}
}

// render returns the printed layout of the subtree rooted at b.
func (b *branch[E, V]) render(symbolText func(E) string, valueText func(V) string) string {
	var sb strings.Builder
	b.printRecursive(&sb, 0, symbolText, valueText)
	return sb.String()
}

// writeTo is a helper for Trie.WriteTo
func (b *branch[E, V]) writeTo(w io.Writer, symbolText func(E) string, valueText func(V) string) (int64, error) {
	n, err := io.WriteString(w, b.render(symbolText, valueText))
	return int64(n), err
}
