// Package bbow implements a "big bag of words": a case-insensitive count of
// the words found in one or more in-memory texts.
//
// A word is a maximal run of Unicode letters. Combining marks extend a word
// that has already started. Every other code point separates words, so
// punctuation touching a word ("Hello," or "(world)") is never part of it,
// and "ain't" holds the two words "ain" and "t".
//
// Keys are always lowercase. When a word already appears lowercase in the
// source text, its key is a substring of that text and nothing is copied;
// otherwise the key is a newly allocated lowercase string. Borrowed keys keep
// their source text reachable for as long as the bag is.
package bbow

import "sort"

type entry struct {
	count uint
	owned bool
}

// Bag maps lowercase words to their number of occurrences.
// The zero value is an empty bag ready to use. A Bag is not safe for
// concurrent use; callers sharing one must serialize access themselves.
type Bag struct {
	words map[string]*entry

	// scratch holds the lowercase form of the word being ingested so that
	// lookups of words already in the bag do not allocate.
	scratch []byte
}

// WordCount pairs a word with its number of occurrences.
type WordCount struct {
	Word  string `json:"word"`
	Count uint   `json:"count"`
}

// Entry describes one key of the bag, including whether the key owns its
// storage or borrows it from an ingested text.
type Entry struct {
	Word  string `json:"word"`
	Count uint   `json:"count"`
	Owned bool   `json:"owned"`
}

// New returns an empty bag.
func New() *Bag {
	return &Bag{words: make(map[string]*entry)}
}

// ExtendFromText adds every word of text to the bag. Counts accumulate
// across calls.
func (b *Bag) ExtendFromText(text string) {
	if b.words == nil {
		b.words = make(map[string]*entry)
	}

	for start, end := nextWord(text, 0); start < end; start, end = nextWord(text, end) {
		b.add(text[start:end])
	}
}

func (b *Bag) add(word string) {
	if isLower(word) {
		if e, ok := b.words[word]; ok {
			e.count++
			return
		}
		b.words[word] = &entry{count: 1}
		return
	}

	b.scratch = appendLower(b.scratch[:0], word)
	if e, ok := b.words[string(b.scratch)]; ok {
		e.count++
		return
	}
	b.words[string(b.scratch)] = &entry{count: 1, owned: true}
}

// Count returns the number of distinct words in the bag.
func (b *Bag) Count() uint {
	return uint(len(b.words))
}

// MatchCount returns the number of occurrences of word, compared
// case-insensitively. Words never ingested yield 0.
func (b *Bag) MatchCount(word string) uint {
	if isLower(word) {
		if e, ok := b.words[word]; ok {
			return e.count
		}
		return 0
	}

	var buf [64]byte
	if e, ok := b.words[string(appendLower(buf[:0], word))]; ok {
		return e.count
	}
	return 0
}

// Total returns the overall number of word occurrences; repeats are counted
// separately.
func (b *Bag) Total() uint {
	var total uint
	for _, e := range b.words {
		total += e.count
	}
	return total
}

// IsEmpty reports whether the bag holds no words.
func (b *Bag) IsEmpty() bool {
	return len(b.words) == 0
}

// Words returns the distinct words in ascending order.
func (b *Bag) Words() []string {
	words := make([]string, 0, len(b.words))
	for w := range b.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Top returns up to n words ordered by count descending, ties broken
// alphabetically. n <= 0 returns every word.
func (b *Bag) Top(n int) []WordCount {
	ranked := make([]WordCount, 0, len(b.words))
	for w, e := range b.words {
		ranked = append(ranked, WordCount{Word: w, Count: e.count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Entries returns every key with its count and ownership, in ascending
// word order.
func (b *Bag) Entries() []Entry {
	entries := make([]Entry, 0, len(b.words))
	for w, e := range b.words {
		entries = append(entries, Entry{Word: w, Count: e.count, Owned: e.owned})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})
	return entries
}
