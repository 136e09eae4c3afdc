package dictionary

import (
	"errors"
	"io"

	"github.com/khalid-nowaf/lextrie/pkg/trie"
	"go.uber.org/zap"
)

var ErrEmptyWord = errors.New("word must not be empty")

// holds the translation of a word, plus any additional columns it was read with.
type Metadata struct {
	Translation string            // the value the word maps to
	Attributes  map[string]string // generic key value attributes, e.g. the other columns of an input record
}

// construct a Metadata for a translation
func NewMetadata(translation string) *Metadata {
	return &Metadata{
		Translation: translation,
		Attributes:  map[string]string{},
	}
}

// Entry is a word with its metadata, as returned by ordered listings.
type Entry struct {
	Word string
	*Metadata
}

// Dictionary maps words to translations, ordered by word.
// It is not safe for concurrent use.
type Dictionary struct {
	words     *trie.StringTrie[*Metadata]
	size      int
	logger    *zap.Logger
	normalize Normalizer
	stats     Stats
}

// New creates an empty dictionary.
func New(opts ...Option) *Dictionary {
	d := DefaultOptions()
	for _, opt := range opts {
		d = opt(d)
	}
	d.words = trie.NewStringTrie[*Metadata](trie.WithValueFormatter[rune, *Metadata](func(m *Metadata) string {
		return m.Translation
	}))
	return d
}

// Insert stores translation for word, replacing the previous one if the word exists.
func (d *Dictionary) Insert(word string, translation string) (*InsertionResult, error) {
	return d.InsertMetadata(word, NewMetadata(translation))
}

// InsertMetadata is Insert with full metadata.
func (d *Dictionary) InsertMetadata(word string, metadata *Metadata) (*InsertionResult, error) {
	word = d.normalize(word)
	if word == "" {
		return nil, ErrEmptyWord
	}
	if metadata == nil {
		metadata = NewMetadata("")
	}

	result := &InsertionResult{Word: word, Current: metadata}
	if previous, found := d.words.Lookup(word); found {
		result.Action = ReplaceTranslation{}
		result.Previous = previous
		d.stats.Replaced++
	} else {
		result.Action = InsertNewWord{}
		d.size++
		d.stats.Inserted++
	}
	d.words.Insert(word, metadata)

	d.logger.Debug("word inserted",
		zap.String("word", word),
		zap.String("translation", metadata.Translation),
		zap.Stringer("action", result.Action))
	return result, nil
}

// Remove deletes word, returning false if it was not in the dictionary.
func (d *Dictionary) Remove(word string) bool {
	word = d.normalize(word)
	if _, found := d.words.Lookup(word); !found {
		return false
	}
	d.words.Erase(word)
	d.size--
	d.stats.Removed++

	d.logger.Debug("word removed", zap.String("word", word), zap.Stringer("action", RemoveExistingWord{}))
	return true
}

// Lookup returns the translation of word.
func (d *Dictionary) Lookup(word string) (string, bool) {
	metadata, found := d.LookupMetadata(word)
	if !found {
		return "", false
	}
	return metadata.Translation, true
}

// LookupMetadata returns the metadata of word.
func (d *Dictionary) LookupMetadata(word string) (*Metadata, bool) {
	return d.words.Lookup(d.normalize(word))
}

// LookupEntry returns the entry of word, keyed by the normalized word.
func (d *Dictionary) LookupEntry(word string) (Entry, bool) {
	word = d.normalize(word)
	metadata, found := d.words.Lookup(word)
	if !found {
		return Entry{}, false
	}
	return Entry{Word: word, Metadata: metadata}, true
}

func (d *Dictionary) Len() int {
	return d.size
}

func (d *Dictionary) IsEmpty() bool {
	return d.words.IsEmpty()
}

// Clear removes every word. Stats are kept.
func (d *Dictionary) Clear() {
	d.words.Clear()
	d.size = 0
}

// Entries returns all words in lexicographic order.
func (d *Dictionary) Entries() []Entry {
	entries := make([]Entry, 0, d.size)
	d.words.ForEach(func(word string, metadata *Metadata) bool {
		entries = append(entries, Entry{Word: word, Metadata: metadata})
		return true
	})
	return entries
}

// Print writes the dictionary's tree layout to w.
func (d *Dictionary) Print(w io.Writer) error {
	return d.words.Print(w)
}

func (d *Dictionary) String() string {
	return d.words.String()
}

func (d *Dictionary) Stats() Stats {
	return d.stats
}
