// Package doctree assembles flat docfx items into type nodes with
// categorized members, resolving every text field against the reference
// index as each node is built.
package doctree

import (
	"strings"

	"github.com/gorewood/docfx2astro/internal/docfx"
	"github.com/gorewood/docfx2astro/internal/format"
)

// Node is a documented type or member with its text already resolved.
// Member buckets are only populated on type nodes and, one level down, on
// methods, constructors, and events.
type Node struct {
	UID       string      `json:"uid"`
	Name      string      `json:"name"`
	FullName  string      `json:"full_name"`
	Kind      docfx.Kind  `json:"kind"`
	Namespace string      `json:"namespace,omitempty"`
	Assembly  string      `json:"assembly,omitempty"`
	Link      format.Link `json:"link"`

	Summary string `json:"summary,omitempty"`
	Remarks string `json:"remarks,omitempty"`
	Syntax  string `json:"syntax,omitempty"`

	Inheritance    []format.TypeRef `json:"inheritance,omitempty"`
	Implements     []format.TypeRef `json:"implements,omitempty"`
	Parameters     []Parameter      `json:"parameters,omitempty"`
	Returns        *Return          `json:"returns,omitempty"`
	TypeParameters []TypeParameter  `json:"type_parameters,omitempty"`
	Exceptions     []Exception      `json:"exceptions,omitempty"`
	Obsolete       *Obsolete        `json:"obsolete,omitempty"`

	Constructors []*Node `json:"constructors,omitempty"`
	Fields       []*Node `json:"fields,omitempty"`
	Properties   []*Node `json:"properties,omitempty"`
	Methods      []*Node `json:"methods,omitempty"`
	Events       []*Node `json:"events,omitempty"`
}

// Parameter is a resolved method or type parameter.
type Parameter struct {
	Name    string         `json:"name"`
	Type    format.TypeRef `json:"type"`
	Summary string         `json:"summary,omitempty"`
}

// Return is a resolved return or event handler type.
type Return struct {
	Type    format.TypeRef `json:"type"`
	Summary string         `json:"summary,omitempty"`
}

// TypeParameter is a resolved generic parameter.
type TypeParameter struct {
	Name    string `json:"name"`
	Summary string `json:"summary,omitempty"`
}

// Exception is a resolved declared exception.
type Exception struct {
	Type    format.TypeRef `json:"type"`
	Summary string         `json:"summary,omitempty"`
}

// DisplayName is the type name followed by its generic parameters, escaped
// for Markdown: Name\<T, U\>.
func (n *Node) DisplayName() string {
	if len(n.TypeParameters) == 0 {
		return n.Name
	}
	names := make([]string, len(n.TypeParameters))
	for i, tp := range n.TypeParameters {
		names[i] = tp.Name
	}
	return n.Name + `\<` + strings.Join(names, ", ") + `\>`
}

// MemberCount returns the number of direct members across all buckets.
func (n *Node) MemberCount() int {
	return len(n.Constructors) + len(n.Fields) + len(n.Properties) + len(n.Methods) + len(n.Events)
}

func newNode(item *docfx.Item, refs format.Resolver) *Node {
	n := &Node{
		UID:         item.UID,
		Name:        item.Name,
		FullName:    item.FullName,
		Kind:        item.Type,
		Namespace:   item.Namespace,
		Link:        format.NodeLink(item.UID),
		Summary:     format.FormatSummary(item.Summary, refs),
		Remarks:     format.FormatSummary(item.Remarks, refs),
		Inheritance: format.ResolveTypes(item.Inheritance, refs),
		Implements:  format.ResolveTypes(item.Implements, refs),
		Obsolete:    findObsolete(item.Attributes),
	}

	for _, ex := range item.Exceptions {
		n.Exceptions = append(n.Exceptions, Exception{
			Type:    format.ResolveType(ex.Type, refs),
			Summary: format.FormatSummary(ex.Description, refs),
		})
	}

	syn := item.Syntax
	if syn == nil {
		return n
	}
	n.Syntax = strings.TrimSpace(syn.Content)
	for _, p := range syn.Parameters {
		n.Parameters = append(n.Parameters, Parameter{
			Name:    p.ID,
			Type:    format.ResolveType(p.Type, refs),
			Summary: format.FormatSummary(p.Description, refs),
		})
	}
	for _, tp := range syn.TypeParameters {
		n.TypeParameters = append(n.TypeParameters, TypeParameter{
			Name:    format.FormatType(tp.ID),
			Summary: format.FormatSummary(tp.Description, refs),
		})
	}
	if syn.Return != nil {
		n.Returns = &Return{
			Type:    format.ResolveType(syn.Return.Type, refs),
			Summary: format.FormatSummary(syn.Return.Description, refs),
		}
	}
	return n
}
