package lemmaru

// Dictionary maps normalized surface forms to their lexical entries.
// It is built once at load time and never written afterwards, so any
// number of concurrent readers may share it without coordination.
type Dictionary struct {
	// entries keeps the readings of each surface form in insertion
	// order; ranking ties are broken by that order.
	entries map[string][]LexicalEntry
	size    int
}

func newDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string][]LexicalEntry)}
}

// add registers entry under the already-normalized surface form.
func (d *Dictionary) add(surface string, e LexicalEntry) {
	d.entries[surface] = append(d.entries[surface], e)
	d.size++
}

// Lookup returns the entries recorded for the normalized form word, in
// insertion order, or nil when the word is unknown. The returned slice
// must not be modified.
func (d *Dictionary) Lookup(word string) []LexicalEntry {
	return d.entries[word]
}

// Len returns the number of distinct surface forms.
func (d *Dictionary) Len() int { return len(d.entries) }

// Size returns the total number of lexical entries.
func (d *Dictionary) Size() int { return d.size }
