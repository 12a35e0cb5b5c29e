package doctree

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"github.com/gorewood/docfx2astro/internal/docfx"
	"github.com/gorewood/docfx2astro/internal/format"
)

// GlobalAssembly holds types that name neither an assembly nor a namespace.
const GlobalAssembly = "Global"

// ErrNoContent is returned by Build when no type-level item was found.
var ErrNoContent = errors.New("no types found in the loaded documents")

// Tree is the finished documentation tree. It is not modified after Build
// returns and may be read from any number of goroutines.
type Tree struct {
	// Types lists type nodes in discovery order.
	Types []*Node
	// Assemblies groups Types by assembly, ordered by name.
	Assemblies []*Assembly

	byUID map[string]*Node
}

// Assembly is the set of types that share an assembly name.
type Assembly struct {
	Name  string
	Types []*Node
}

// Count returns how many of the assembly's types have the given kind.
func (a *Assembly) Count(kind docfx.Kind) int {
	n := 0
	for _, t := range a.Types {
		if t.Kind == kind {
			n++
		}
	}
	return n
}

// OfKind returns the assembly's types of the given kind sorted by ordinal
// comparison of their names.
func (a *Assembly) OfKind(kind docfx.Kind) []*Node {
	var out []*Node
	for _, t := range a.Types {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(x, y *Node) int {
		return cmp.Compare(x.Name, y.Name)
	})
	return out
}

// Find returns the type node for uid.
func (t *Tree) Find(uid string) (*Node, bool) {
	n, ok := t.byUID[uid]
	return n, ok
}

// Build turns items into type nodes. refs must already hold every reference
// of the corpus: each node resolves its text exactly once, here.
//
// Items whose parent is not a known node are dropped. ctx is checked before
// each record so a cancelled build never returns a partial tree.
func Build(ctx context.Context, items []docfx.Item, refs format.Resolver) (*Tree, error) {
	b := &builder{
		ctx:      ctx,
		items:    items,
		refs:     refs,
		children: childIndex(items),
	}

	tree := &Tree{byUID: make(map[string]*Node)}
	groups := make(map[string]*Assembly)
	for i := range items {
		item := &items[i]
		if !item.Type.IsType() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		node := newNode(item, refs)
		node.Assembly = assemblyOf(item)
		if err := b.attach(node, map[string]bool{node.UID: true}); err != nil {
			return nil, err
		}

		tree.Types = append(tree.Types, node)
		tree.byUID[node.UID] = node
		group, ok := groups[node.Assembly]
		if !ok {
			group = &Assembly{Name: node.Assembly}
			groups[node.Assembly] = group
			tree.Assemblies = append(tree.Assemblies, group)
		}
		group.Types = append(group.Types, node)
	}

	if len(tree.Types) == 0 {
		return nil, ErrNoContent
	}
	slices.SortFunc(tree.Assemblies, func(x, y *Assembly) int {
		return cmp.Compare(x.Name, y.Name)
	})
	return tree, nil
}

type builder struct {
	ctx      context.Context
	items    []docfx.Item
	refs     format.Resolver
	children map[string][]int
}

// childIndex maps each parent uid to the positions of its children, in item
// order, in a single pass.
func childIndex(items []docfx.Item) map[string][]int {
	children := make(map[string][]int)
	for i := range items {
		if p := items[i].Parent; p != "" {
			children[p] = append(children[p], i)
		}
	}
	return children
}

// attach fills n's member buckets. Methods, constructors, and events collect
// their own children the same way; fields and properties do not. path guards
// against parent cycles in malformed input.
func (b *builder) attach(n *Node, path map[string]bool) error {
	for _, idx := range b.children[n.UID] {
		if err := b.ctx.Err(); err != nil {
			return err
		}
		item := &b.items[idx]
		if path[item.UID] {
			continue
		}

		var bucket *[]*Node
		recurse := false
		switch item.Type {
		case docfx.KindConstructor:
			bucket, recurse = &n.Constructors, true
		case docfx.KindField:
			bucket = &n.Fields
		case docfx.KindProperty:
			bucket = &n.Properties
		case docfx.KindMethod:
			bucket, recurse = &n.Methods, true
		case docfx.KindEvent:
			bucket, recurse = &n.Events, true
		default:
			continue
		}

		child := newNode(item, b.refs)
		if recurse {
			path[child.UID] = true
			err := b.attach(child, path)
			delete(path, child.UID)
			if err != nil {
				return err
			}
		}
		*bucket = append(*bucket, child)
	}
	return nil
}

func assemblyOf(item *docfx.Item) string {
	for _, name := range item.Assemblies {
		if name != "" {
			return name
		}
	}
	if item.Namespace != "" {
		return item.Namespace
	}
	return GlobalAssembly
}
