package catalog

import (
	"sort"
	"time"
)

// AppEntry is the metadata for one showcased application. The referenced
// document itself is opaque; only the metadata is ours to handle.
type AppEntry struct {
	Title       string
	Description string
	Date        time.Time // UTC midnight, day resolution
	Path        string
}

// Catalog is an immutable, date-descending sequence of entries. It is built
// exactly once per load; after New only a Pager's position into it changes.
type Catalog struct {
	entries []AppEntry
}

// New copies entries and stable-sorts them newest first. Entries sharing a
// date keep their input order. Duplicates are legal and kept.
func New(entries []AppEntry) Catalog {
	es := append([]AppEntry(nil), entries...)
	sort.SliceStable(es, func(i, j int) bool {
		return es[i].Date.After(es[j].Date)
	})
	return Catalog{entries: es}
}

// Len reports the number of entries.
func (c Catalog) Len() int { return len(c.entries) }

// At returns the entry at index i. The index must be in range; the Pager
// guarantees that for every position it hands out.
func (c Catalog) At(i int) AppEntry { return c.entries[i] }

// Entries returns a copy of the full sequence, newest first.
func (c Catalog) Entries() []AppEntry {
	return append([]AppEntry(nil), c.entries...)
}
