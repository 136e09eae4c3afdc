package trie

import (
	"cmp"
	"fmt"
	"io"
)

// Trie is an ordered map from symbol sequences to values.
// The zero value is not ready for use, construct it with New.
type Trie[E cmp.Ordered, V any] struct {
	root       branch[E, V]
	symbolText func(E) string
	valueText  func(V) string
}

// Option configures a Trie at construction time.
type Option[E cmp.Ordered, V any] func(*Trie[E, V]) *Trie[E, V]

// WithSymbolFormatter sets how symbols are rendered by Print.
func WithSymbolFormatter[E cmp.Ordered, V any](format func(E) string) Option[E, V] {
	return func(t *Trie[E, V]) *Trie[E, V] {
		t.symbolText = format
		return t
	}
}

// WithValueFormatter sets how values are rendered by Print.
func WithValueFormatter[E cmp.Ordered, V any](format func(V) string) Option[E, V] {
	return func(t *Trie[E, V]) *Trie[E, V] {
		t.valueText = format
		return t
	}
}

// New creates an empty trie.
// By default symbols and values are printed with fmt.Sprint.
func New[E cmp.Ordered, V any](opts ...Option[E, V]) *Trie[E, V] {
	t := &Trie[E, V]{
		symbolText: func(s E) string { return fmt.Sprint(s) },
		valueText:  func(v V) string { return fmt.Sprint(v) },
	}
	for _, opt := range opts {
		t = opt(t)
	}
	return t
}

// IsEmpty reports whether the trie holds no entries.
func (t *Trie[E, V]) IsEmpty() bool {
	return t.root.isEmpty()
}

// Insert associates value with key, replacing any previous value for the same key.
func (t *Trie[E, V]) Insert(key []E, value V) {
	t.root.insert(key, value)
}

// InsertEntry is Insert for an Entry.
func (t *Trie[E, V]) InsertEntry(entry Entry[E, V]) {
	t.root.insert(entry.Key, entry.Value)
}

// Erase removes key from the trie and prunes the branches it leaves empty.
// Erasing an absent key is a no-op.
func (t *Trie[E, V]) Erase(key []E) {
	// the root is never pruned
	_ = t.root.erase(key)
}

// Clear removes every entry.
func (t *Trie[E, V]) Clear() {
	t.root.clear()
}

// Find returns an iterator positioned at key, or End if key is not present.
// The returned iterator can be advanced like one obtained from Begin.
func (t *Trie[E, V]) Find(key []E) *Iterator[E, V] {
	frames := make([]frame[E, V], 0, len(key)+1)
	current := &t.root
	for _, symbol := range key {
		at, found := current.child(symbol)
		if !found {
			return t.End()
		}
		frames = append(frames, frame[E, V]{node: current, pos: at})
		current = current.children[at].node
	}
	// the key must terminate exactly here
	if !current.terminal {
		return t.End()
	}
	frames = append(frames, frame[E, V]{node: current, pos: terminalPos})
	return &Iterator[E, V]{frames: frames}
}

// Begin returns an iterator at the entry with the smallest key, or End if the trie is empty.
func (t *Trie[E, V]) Begin() *Iterator[E, V] {
	if t.IsEmpty() {
		return t.End()
	}
	it := &Iterator[E, V]{}
	it.descendToMinimum(&t.root)
	return it
}

// End returns the iterator past the last entry.
func (t *Trie[E, V]) End() *Iterator[E, V] {
	return &Iterator[E, V]{}
}

// ForEach calls f for every entry in key order until f returns false.
func (t *Trie[E, V]) ForEach(f func(key []E, value V) bool) {
	for it := t.Begin(); !it.IsEnd(); it.Next() {
		if !f(it.Key(), it.Value()) {
			return
		}
	}
}

// Entries returns all entries in key order.
func (t *Trie[E, V]) Entries() []Entry[E, V] {
	entries := []Entry[E, V]{}
	t.ForEach(func(key []E, value V) bool {
		entries = append(entries, Entry[E, V]{Key: key, Value: value})
		return true
	})
	return entries
}

// Print writes the tree layout of the trie to w.
//
// Every symbol is printed on its own line, indented by two spaces per depth level,
// and a value is printed as ":" followed by its text on the line after its last symbol:
//
//	w
//	  e
//	    r
//	      :who
func (t *Trie[E, V]) Print(w io.Writer) error {
	_, err := t.WriteTo(w)
	return err
}

// WriteTo implements io.WriterTo with the layout of Print.
func (t *Trie[E, V]) WriteTo(w io.Writer) (int64, error) {
	return t.root.writeTo(w, t.symbolText, t.valueText)
}

// String returns the layout of Print.
func (t *Trie[E, V]) String() string {
	return t.root.render(t.symbolText, t.valueText)
}
