package trie

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDictionary builds a string trie from word, translation pairs.
func newDictionary(pairs ...string) *StringTrie[string] {
	dict := NewStringTrie[string]()
	for i := 0; i+1 < len(pairs); i += 2 {
		dict.Insert(pairs[i], pairs[i+1])
	}
	return dict
}

// collect walks the trie from Begin to End and returns the keys and values it saw.
func collect(dict *StringTrie[string]) (keys []string, values []string) {
	for it := dict.Begin(); !it.Equal(dict.End()); it.Next() {
		keys = append(keys, KeyString(it))
		values = append(values, it.Value())
	}
	return keys, values
}

// TestNewTrieIsEmpty verifies that a fresh trie is empty and finds nothing.
func TestNewTrieIsEmpty(t *testing.T) {
	dict := NewStringTrie[int]()
	assert.True(t, dict.IsEmpty(), "a new trie should be empty")

	for _, key := range []string{"", "a", "wer", "unknown_key"} {
		assert.True(t, dict.Find(key).IsEnd(), "find on an empty trie should return end for %q", key)
	}

	generic := New[int, string]()
	assert.True(t, generic.IsEmpty())
	assert.Equal(t, "", generic.String())
}

func TestInsertSimple(t *testing.T) {
	dict := newDictionary("wer", "who")
	assert.False(t, dict.IsEmpty(), "trie should not be empty after insert")
}

// TestPrint verifies the indented tree layout for several insertion sets.
func TestPrint(t *testing.T) {
	testCases := []struct {
		name     string
		pairs    []string
		expected string
	}{
		{
			name:  "single word",
			pairs: []string{"wer", "who"},
			expected: "w\n" +
				"  e\n" +
				"    r\n" +
				"      :who\n",
		},
		{
			name:  "shared prefix",
			pairs: []string{"wer", "who", "wir", "we", "wird", "will"},
			expected: "w\n" +
				"  e\n" +
				"    r\n" +
				"      :who\n" +
				"  i\n" +
				"    r\n" +
				"      :we\n" +
				"      d\n" +
				"        :will\n",
		},
		{
			name:  "different roots",
			pairs: []string{"bart", "beard", "stift", "pen", "sonne", "sun", "wir", "we", "wird", "will"},
			expected: "b\n" +
				"  a\n" +
				"    r\n" +
				"      t\n" +
				"        :beard\n" +
				"s\n" +
				"  o\n" +
				"    n\n" +
				"      n\n" +
				"        e\n" +
				"          :sun\n" +
				"  t\n" +
				"    i\n" +
				"      f\n" +
				"        t\n" +
				"          :pen\n" +
				"w\n" +
				"  i\n" +
				"    r\n" +
				"      :we\n" +
				"      d\n" +
				"        :will\n",
		},
		{
			name:  "double insert keeps the last value",
			pairs: []string{"wer", "woh", "wer", "who"},
			expected: "w\n" +
				"  e\n" +
				"    r\n" +
				"      :who\n",
		},
		{
			name:  "empty key is printed at the root",
			pairs: []string{"", "root", "a", "x"},
			expected: ":root\n" +
				"a\n" +
				"  :x\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dict := newDictionary(tc.pairs...)

			var buf bytes.Buffer
			require.NoError(t, dict.Print(&buf))
			assert.Equal(t, tc.expected, buf.String())
			assert.Equal(t, tc.expected, dict.String())
		})
	}
}

func TestWriteTo(t *testing.T) {
	dict := newDictionary("wer", "who")

	var buf bytes.Buffer
	n, err := dict.Trie().WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
}

func TestInsertDouble(t *testing.T) {
	dict := newDictionary("wer", "woh", "wer", "who")

	keys, values := collect(dict)
	assert.Equal(t, []string{"wer"}, keys, "a duplicate key should leave exactly one entry")
	assert.Equal(t, []string{"who"}, values, "the last inserted value should win")
}

func TestEraseSimple(t *testing.T) {
	dict := newDictionary("wer", "who")
	dict.Erase("wer")
	assert.True(t, dict.IsEmpty())
	assert.True(t, dict.Find("wer").IsEnd())
	assert.Equal(t, "", dict.String(), "no dead branches should remain")
}

func TestEraseFail(t *testing.T) {
	dict := newDictionary("wer", "who")
	before := dict.String()

	for _, key := range []string{"was", "we", "w", "", "werx", "xyz"} {
		dict.Erase(key)
		assert.False(t, dict.IsEmpty(), "erasing absent %q should keep the trie", key)
		assert.Equal(t, before, dict.String(), "erasing absent %q should not change the tree", key)
	}
}

// TestEraseComplex verifies that erasing a key which is a prefix of another key
// keeps the branch shared with the longer key.
func TestEraseComplex(t *testing.T) {
	dict := newDictionary("wer", "who", "wir", "we", "wird", "will")
	dict.Erase("wir")

	expected := "w\n" +
		"  e\n" +
		"    r\n" +
		"      :who\n" +
		"  i\n" +
		"    r\n" +
		"      d\n" +
		"        :will\n"
	assert.Equal(t, expected, dict.String())

	keys, values := collect(dict)
	assert.Equal(t, []string{"wer", "wird"}, keys)
	assert.Equal(t, []string{"who", "will"}, values)

	it := dict.Find("wird")
	require.False(t, it.IsEnd(), "wird should still be reachable")
	assert.Equal(t, "will", it.Value())
	assert.True(t, dict.Find("wir").IsEnd())
}

// TestErasePrunesOnlyDeadBranches checks that erasing keys sharing a long prefix
// with surviving keys never removes a shared ancestor.
func TestErasePrunesOnlyDeadBranches(t *testing.T) {
	testCases := []struct {
		name      string
		pairs     []string
		erase     []string
		remaining []string
		printed   string
	}{
		{
			name:      "longer key removed, prefix key kept",
			pairs:     []string{"wir", "we", "wird", "will"},
			erase:     []string{"wird"},
			remaining: []string{"wir"},
			printed:   "w\n  i\n    r\n      :we\n",
		},
		{
			name:      "diverging key shares a long prefix",
			pairs:     []string{"nasenbaer", "coati", "nase", "nose"},
			erase:     []string{"nasenbar", "nasx", "nasenbaerx"},
			remaining: []string{"nase", "nasenbaer"},
		},
		{
			name:      "sibling branch pruned up to the fork",
			pairs:     []string{"adler", "eagle", "ader", "vein", "arm", "arm"},
			erase:     []string{"adler"},
			remaining: []string{"ader", "arm"},
			printed:   "a\n  d\n    e\n      r\n        :vein\n  r\n    m\n      :arm\n",
		},
		{
			name:      "every key removed",
			pairs:     []string{"a", "1", "ab", "2", "abc", "3"},
			erase:     []string{"ab", "abc", "a"},
			remaining: nil,
			printed:   "",
		},
		{
			name:      "empty key removed",
			pairs:     []string{"", "root", "a", "x"},
			erase:     []string{""},
			remaining: []string{"a"},
			printed:   "a\n  :x\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dict := newDictionary(tc.pairs...)
			for _, key := range tc.erase {
				dict.Erase(key)
			}
			keys, _ := collect(dict)
			assert.Equal(t, tc.remaining, keys)
			for _, key := range tc.remaining {
				assert.False(t, dict.Find(key).IsEnd(), "%q should survive", key)
			}
			if tc.printed != "" || tc.remaining == nil {
				assert.Equal(t, tc.printed, dict.String())
			}
		})
	}
}

func TestClear(t *testing.T) {
	dict := newDictionary("wer", "who", "wir", "we", "wird", "will")
	dict.Clear()

	assert.True(t, dict.IsEmpty())
	assert.True(t, dict.Begin().Equal(dict.End()))
	for _, key := range []string{"wer", "wir", "wird", "w"} {
		assert.True(t, dict.Find(key).IsEnd())
	}

	// the trie stays usable
	dict.Insert("wer", "who")
	assert.Equal(t, "who", dict.Find("wer").Value())
}

func TestLookup(t *testing.T) {
	dict := newDictionary("wer", "who")

	value, ok := dict.Lookup("wer")
	assert.True(t, ok)
	assert.Equal(t, "who", value)

	value, ok = dict.Lookup("we")
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestFind(t *testing.T) {
	dict := newDictionary("wer", "who", "wir", "we", "wird", "will")

	testCases := []struct {
		key      string
		found    bool
		expected string
	}{
		{"wird", true, "will"},
		{"wer", true, "who"},
		{"wir", true, "we"},
		{"unknown_key", false, ""},
		{"wi", false, ""},    // prefix of stored keys, not a key itself
		{"w", false, ""},     // prefix of stored keys, not a key itself
		{"wirds", false, ""}, // extends a stored key
		{"", false, ""},
	}

	for _, tc := range testCases {
		it := dict.Find(tc.key)
		if !tc.found {
			assert.True(t, it.Equal(dict.End()), "find %q should return end", tc.key)
			continue
		}
		require.False(t, it.Equal(dict.End()), "find %q should not return end", tc.key)
		assert.Equal(t, tc.key, KeyString(it))
		assert.Equal(t, tc.expected, it.Value())
	}
}

// TestFindMatchesIteration verifies that an iterator from Find is positioned exactly
// like the iterator reaching the same entry from Begin.
func TestFindMatchesIteration(t *testing.T) {
	dict := newDictionary("adler", "eagle", "ader", "vein", "sonne", "sun", "arm", "arm",
		"zeit", "time", "nase", "nose", "nasenbaer", "coati")

	for it := dict.Begin(); !it.IsEnd(); it.Next() {
		found := dict.Find(KeyString(it))
		assert.True(t, found.Equal(it), "find %q should equal the iteration position", KeyString(it))
	}

	// advancing a found iterator continues the ordered walk
	it := dict.Find("nase")
	it.Next()
	assert.Equal(t, "nasenbaer", KeyString(it))
	it.Next()
	assert.Equal(t, "sonne", KeyString(it))

	it = dict.Find("zeit")
	it.Next()
	assert.True(t, it.IsEnd())
}

func TestGenericAlphabet(t *testing.T) {
	numbers := New[int, string]()
	numbers.Insert([]int{3}, "three")
	numbers.Insert([]int{1, 2}, "one-two")
	numbers.Insert([]int{1, 10}, "one-ten")
	numbers.Insert([]int{1}, "one")
	numbers.InsertEntry(Entry[int, string]{Key: []int{2, 0}, Value: "two-zero"})

	entries := numbers.Entries()
	require.Len(t, entries, 5)
	assert.Equal(t, []int{1}, entries[0].Key)
	assert.Equal(t, []int{1, 2}, entries[1].Key)
	assert.Equal(t, []int{1, 10}, entries[2].Key, "symbols compare numerically, not textually")
	assert.Equal(t, []int{2, 0}, entries[3].Key)
	assert.Equal(t, []int{3}, entries[4].Key)

	expected := "1\n" +
		"  :one\n" +
		"  2\n" +
		"    :one-two\n" +
		"  10\n" +
		"    :one-ten\n" +
		"2\n" +
		"  0\n" +
		"    :two-zero\n" +
		"3\n" +
		"  :three\n"
	assert.Equal(t, expected, numbers.String())
}

func TestFormatters(t *testing.T) {
	bytesTrie := New[byte, int](
		WithSymbolFormatter[byte, int](func(b byte) string { return string(rune(b)) }),
		WithValueFormatter[byte, int](func(v int) string { return "#" + string(rune('0'+v)) }),
	)
	bytesTrie.Insert([]byte("ab"), 7)
	assert.Equal(t, "a\n  b\n    :#7\n", bytesTrie.String())
}

func TestForEachStops(t *testing.T) {
	dict := newDictionary("a", "1", "b", "2", "c", "3")

	visited := []string{}
	dict.ForEach(func(key string, value string) bool {
		visited = append(visited, key)
		return key != "b"
	})
	assert.Equal(t, []string{"a", "b"}, visited)
}
