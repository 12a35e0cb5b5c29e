package doctree

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/docfx2astro/internal/docfx"
	"github.com/gorewood/docfx2astro/internal/refindex"
)

func sampleItems() []docfx.Item {
	return []docfx.Item{
		{UID: "Demo", Name: "Demo", Type: "Namespace"},
		{
			UID: "Demo.Widget", Parent: "Demo", Name: "Widget", FullName: "Demo.Widget",
			Type: docfx.KindClass, Namespace: "Demo", Assemblies: []string{"Demo.Core"},
			Summary:     "A <code>Widget</code>\n  that spins.",
			Inheritance: []string{"System.Object"},
		},
		{UID: "Demo.Widget.#ctor", Parent: "Demo.Widget", Name: "Widget()", Type: docfx.KindConstructor},
		{UID: "Demo.Widget.Size", Parent: "Demo.Widget", Name: "Size", Type: docfx.KindField},
		{UID: "Demo.Widget.Speed", Parent: "Demo.Widget", Name: "Speed", Type: docfx.KindProperty},
		{
			UID: "Demo.Widget.Spin(System.Int32)", Parent: "Demo.Widget", Name: "Spin(int)", Type: docfx.KindMethod,
			Syntax: &docfx.Syntax{
				Content:    "  public int Spin(int times)  ",
				Parameters: []docfx.Parameter{{ID: "times", Type: "System.Int32", Description: "How often."}},
				Return:     &docfx.Return{Type: "System.Int32", Description: "The <xref href=\"System.Int32\"></xref> count."},
			},
			Exceptions: []docfx.Exception{{Type: "System.ArgumentException", Description: "When negative."}},
		},
		{UID: "Demo.Widget.Spun", Parent: "Demo.Widget", Name: "Spun", Type: docfx.KindEvent},
		{UID: "Demo.Widget.Spin(System.Int32).Nested", Parent: "Demo.Widget.Spin(System.Int32)", Name: "Nested", Type: docfx.KindMethod},
		{UID: "Demo.Widget.Size.Nested", Parent: "Demo.Widget.Size", Name: "Hidden", Type: docfx.KindMethod},
		{UID: "Demo.Orphan.Run", Parent: "Demo.Orphan", Name: "Run", Type: docfx.KindMethod},
		{UID: "Demo.Widget.Op", Parent: "Demo.Widget", Name: "op_Add", Type: "Operator"},
		{
			UID: "Demo.Box`1", Parent: "Demo", Name: "Box", FullName: "Demo.Box`1", Type: docfx.KindStruct,
			Namespace: "Demo",
			Syntax:    &docfx.Syntax{TypeParameters: []docfx.TypeParameter{{ID: "T"}}},
		},
		{UID: "Loose", Name: "Loose", FullName: "Loose", Type: docfx.KindEnum},
	}
}

func sampleRefs() *refindex.Index {
	idx := refindex.New()
	idx.Add("System.Object", docfx.Reference{UID: "System.Object", Name: "object", Href: "https://learn.microsoft.com/dotnet/api/system.object"})
	idx.Add("System.Int32", docfx.Reference{UID: "System.Int32", Name: "int", Href: "https://learn.microsoft.com/dotnet/api/system.int32"})
	idx.Add("System.ArgumentException", docfx.Reference{UID: "System.ArgumentException", Name: "ArgumentException"})
	return idx
}

func TestBuild_Attachment(t *testing.T) {
	tree, err := Build(context.Background(), sampleItems(), sampleRefs())
	require.NoError(t, err)
	require.Len(t, tree.Types, 3)

	widget := tree.Types[0]
	assert.Equal(t, "Demo.Widget", widget.UID)
	assert.Equal(t, "Demo.Core", widget.Assembly)
	require.Len(t, widget.Constructors, 1)
	require.Len(t, widget.Fields, 1)
	require.Len(t, widget.Properties, 1)
	require.Len(t, widget.Methods, 1)
	require.Len(t, widget.Events, 1)

	spin := widget.Methods[0]
	assert.Equal(t, "Spin(int)", spin.Name)
	require.Len(t, spin.Methods, 1, "methods collect their own children")
	assert.Equal(t, "Nested", spin.Methods[0].Name)
	assert.Empty(t, widget.Fields[0].Methods, "fields do not collect children")

	for _, n := range tree.Types {
		assert.NotEqual(t, docfx.KindMethod, n.Kind, "members never become top-level nodes")
		assert.NotEqual(t, "Demo.Orphan.Run", n.UID)
	}
	_, ok := tree.Find("Demo.Orphan.Run")
	assert.False(t, ok)
}

func TestBuild_ResolvesText(t *testing.T) {
	tree, err := Build(context.Background(), sampleItems(), sampleRefs())
	require.NoError(t, err)

	widget, ok := tree.Find("Demo.Widget")
	require.True(t, ok)
	assert.Equal(t, "A `Widget` that spins.", widget.Summary)
	assert.Equal(t, "object", widget.Inheritance[0].Name)
	assert.True(t, widget.Inheritance[0].Link.External)
	assert.Equal(t, "demo.widget", widget.Link.Href)

	spin := widget.Methods[0]
	assert.Equal(t, "public int Spin(int times)", spin.Syntax)
	require.Len(t, spin.Parameters, 1)
	assert.Equal(t, "times", spin.Parameters[0].Name)
	assert.Equal(t, "int", spin.Parameters[0].Type.Name)
	require.NotNil(t, spin.Returns)
	assert.Equal(t, "The [int](https://learn.microsoft.com/dotnet/api/system.int32) count.", spin.Returns.Summary)
	require.Len(t, spin.Exceptions, 1)
	assert.Equal(t, "ArgumentException", spin.Exceptions[0].Type.Name)
	assert.True(t, spin.Exceptions[0].Type.Link.IsEmpty())

	box, ok := tree.Find("Demo.Box`1")
	require.True(t, ok)
	assert.Equal(t, `Box\<T\>`, box.DisplayName())
	assert.Equal(t, "demo.box-1", box.Link.Href)
}

func TestBuild_Assemblies(t *testing.T) {
	tree, err := Build(context.Background(), sampleItems(), sampleRefs())
	require.NoError(t, err)

	var names []string
	for _, a := range tree.Assemblies {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Demo", "Demo.Core", GlobalAssembly}, names)
	assert.Equal(t, 1, tree.Assemblies[1].Count(docfx.KindClass))
	assert.Equal(t, 0, tree.Assemblies[1].Count(docfx.KindStruct))
}

func TestAssembly_OfKindOrdinal(t *testing.T) {
	a := &Assembly{Types: []*Node{
		{Name: "banana", Kind: docfx.KindClass},
		{Name: "Cherry", Kind: docfx.KindClass},
		{Name: "Apple", Kind: docfx.KindClass},
		{Name: "Zed", Kind: docfx.KindEnum},
	}}

	var names []string
	for _, n := range a.OfKind(docfx.KindClass) {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"Apple", "Cherry", "banana"}, names)
}

func TestBuild_NoContent(t *testing.T) {
	_, err := Build(context.Background(), []docfx.Item{{UID: "Demo", Type: "Namespace"}}, refindex.New())
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, sampleItems(), sampleRefs())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuild_ParentCycle(t *testing.T) {
	items := []docfx.Item{
		{UID: "T", Name: "T", Type: docfx.KindClass},
		{UID: "A", Parent: "T", Name: "A", Type: docfx.KindMethod},
		{UID: "B", Parent: "A", Name: "B", Type: docfx.KindMethod},
		{UID: "A", Parent: "B", Name: "A again", Type: docfx.KindMethod},
	}
	tree, err := Build(context.Background(), items, refindex.New())
	require.NoError(t, err)
	require.Len(t, tree.Types[0].Methods, 1)
	assert.Len(t, tree.Types[0].Methods[0].Methods, 1)
}
