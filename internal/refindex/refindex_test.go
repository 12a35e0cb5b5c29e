package refindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/docfx2astro/internal/docfx"
)

func TestIndex_AddLookup(t *testing.T) {
	idx := New()
	assert.False(t, idx.Add("A", docfx.Reference{UID: "A", Name: "first", Href: "A.html"}))

	ref, ok := idx.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, "first", ref.Name)

	_, ok = idx.Lookup("missing")
	assert.False(t, ok)
}

func TestIndex_LastWriteWins(t *testing.T) {
	idx := New()
	idx.Add("A", docfx.Reference{UID: "A", Name: "first"})
	assert.True(t, idx.Add("A", docfx.Reference{UID: "A", Name: "second"}))

	ref, _ := idx.Lookup("A")
	assert.Equal(t, "second", ref.Name)
	assert.Equal(t, 1, idx.Len())
}

func TestIndex_LookupLinkable(t *testing.T) {
	idx := New()
	idx.Add("Linked", docfx.Reference{UID: "Linked", Name: "Linked", Href: "Linked.html"})
	idx.Add("Plain", docfx.Reference{UID: "Plain", Name: "Plain"})
	idx.Add("Blank", docfx.Reference{UID: "Blank", Name: "Blank", Href: "  "})

	tests := []struct {
		uid  string
		want bool
	}{
		{"Linked", true},
		{"Plain", false},
		{"Blank", false},
		{"Missing", false},
	}
	for _, tt := range tests {
		t.Run(tt.uid, func(t *testing.T) {
			_, ok := idx.LookupLinkable(tt.uid)
			assert.Equal(t, tt.want, ok)
		})
	}

	// A plain reference is still nameable.
	ref, ok := idx.Lookup("Plain")
	require.True(t, ok)
	assert.Equal(t, "Plain", ref.Name)
}

func TestFromDocuments(t *testing.T) {
	docs := []*docfx.Document{
		{References: []docfx.Reference{{UID: "A", Name: "a1"}, {UID: "B", Name: "b"}}},
		{References: []docfx.Reference{{UID: "A", Name: "a2"}}},
	}
	idx, replaced := FromDocuments(docs)
	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, 1, replaced)

	ref, _ := idx.Lookup("A")
	assert.Equal(t, "a2", ref.Name)
}
