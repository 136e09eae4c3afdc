package trie

import "io"

// StringTrie is a Trie keyed by the characters of a string.
type StringTrie[V any] struct {
	trie *Trie[rune, V]
}

// NewStringTrie creates an empty string keyed trie.
func NewStringTrie[V any](opts ...Option[rune, V]) *StringTrie[V] {
	opts = append([]Option[rune, V]{WithSymbolFormatter[rune, V](func(r rune) string {
		return string(r)
	})}, opts...)
	return &StringTrie[V]{trie: New[rune, V](opts...)}
}

// KeyString returns the key of the iterator's current entry as a string.
func KeyString[V any](it *Iterator[rune, V]) string {
	return string(it.Key())
}

// Trie exposes the underlying rune keyed trie.
func (s *StringTrie[V]) Trie() *Trie[rune, V] {
	return s.trie
}

func (s *StringTrie[V]) IsEmpty() bool {
	return s.trie.IsEmpty()
}

func (s *StringTrie[V]) Insert(key string, value V) {
	s.trie.Insert([]rune(key), value)
}

func (s *StringTrie[V]) Erase(key string) {
	s.trie.Erase([]rune(key))
}

func (s *StringTrie[V]) Clear() {
	s.trie.Clear()
}

func (s *StringTrie[V]) Find(key string) *Iterator[rune, V] {
	return s.trie.Find([]rune(key))
}

// Lookup returns the value stored under key, and whether it was found.
func (s *StringTrie[V]) Lookup(key string) (V, bool) {
	it := s.trie.Find([]rune(key))
	if it.IsEnd() {
		var zero V
		return zero, false
	}
	return it.Value(), true
}

func (s *StringTrie[V]) Begin() *Iterator[rune, V] {
	return s.trie.Begin()
}

func (s *StringTrie[V]) End() *Iterator[rune, V] {
	return s.trie.End()
}

// ForEach calls f for every entry in key order until f returns false.
func (s *StringTrie[V]) ForEach(f func(key string, value V) bool) {
	s.trie.ForEach(func(key []rune, value V) bool {
		return f(string(key), value)
	})
}

// Entries returns all entries in key order.
func (s *StringTrie[V]) Entries() []Entry[rune, V] {
	return s.trie.Entries()
}

func (s *StringTrie[V]) Print(w io.Writer) error {
	return s.trie.Print(w)
}

func (s *StringTrie[V]) String() string {
	return s.trie.String()
}
