// Package refindex holds the corpus-wide map from uid to reference.
package refindex

import (
	"strings"

	"github.com/gorewood/docfx2astro/internal/docfx"
)

// Index maps uids to references. Duplicate uids are silently overwritten:
// the last reference added wins. Missing uids are not an error either.
//
// An Index is not safe for concurrent writes. Once populated it is only read,
// which is safe from any number of goroutines.
type Index struct {
	refs map[string]docfx.Reference
}

// New returns an empty Index.
func New() *Index {
	return &Index{refs: make(map[string]docfx.Reference)}
}

// FromDocuments builds an Index from the references of every document, in
// order. It returns the number of uids that were overwritten.
func FromDocuments(docs []*docfx.Document) (*Index, int) {
	idx := New()
	replaced := 0
	for _, doc := range docs {
		for _, ref := range doc.References {
			if idx.Add(ref.UID, ref) {
				replaced++
			}
		}
	}
	return idx, replaced
}

// Add inserts or overwrites the reference for uid and reports whether an
// earlier reference was replaced.
func (x *Index) Add(uid string, ref docfx.Reference) bool {
	_, existed := x.refs[uid]
	x.refs[uid] = ref
	return existed
}

// Lookup returns the reference for uid.
func (x *Index) Lookup(uid string) (docfx.Reference, bool) {
	ref, ok := x.refs[uid]
	return ref, ok
}

// LookupLinkable returns the reference for uid only when it has an href.
func (x *Index) LookupLinkable(uid string) (docfx.Reference, bool) {
	ref, ok := x.refs[uid]
	if !ok || strings.TrimSpace(ref.Href) == "" {
		return docfx.Reference{}, false
	}
	return ref, true
}

// Len returns the number of distinct uids.
func (x *Index) Len() int {
	return len(x.refs)
}
