// Package render writes the documentation tree as Markdown pages with
// frontmatter: one page per type plus top-level and per-assembly indexes.
package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/gorewood/docfx2astro/internal/docfx"
	"github.com/gorewood/docfx2astro/internal/doctree"
)

// TypePage renders the page for a type node. ctx is checked between
// sections; a cancelled render returns no content.
func TypePage(ctx context.Context, node *doctree.Node, baseSlug string) (string, error) {
	var builder strings.Builder

	fm := Frontmatter{
		Title:   node.Name + " " + kindTitle(node.Kind),
		Slug:    joinSlug(baseSlug, node.Link.Href),
		Sidebar: Sidebar{Label: node.Name},
	}
	if err := writeFrontmatter(&builder, fm); err != nil {
		return "", err
	}

	sections := []func(*strings.Builder, *doctree.Node){
		writeDefinition,
		writeConstructors,
		writeFields,
		writeProperties,
		writeMethods,
		writeEvents,
	}
	for _, write := range sections {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		write(&builder, node)
	}

	return finish(builder.String()), nil
}

// kindTitle is the word appended to a type's page title.
func kindTitle(kind docfx.Kind) string {
	switch kind {
	case docfx.KindClass, docfx.KindInterface, docfx.KindEnum, docfx.KindStruct, docfx.KindDelegate:
		return string(kind)
	default:
		return ""
	}
}

// writeDefinition writes the type's own documentation.
func writeDefinition(builder *strings.Builder, node *doctree.Node) {
	builder.WriteString("## Definition\n\n")

	writeObsolete(builder, node)
	writeSummary(builder, node)
	writeSyntax(builder, node)

	if len(node.TypeParameters) > 0 {
		builder.WriteString("### Type Parameters\n\n")
		for _, tp := range node.TypeParameters {
			fmt.Fprintf(builder, "`%s`  \n", tp.Name)
			if tp.Summary != "" {
				builder.WriteString(tp.Summary)
				builder.WriteString("\n")
			}
			builder.WriteString("\n")
		}
	}

	writeParameters(builder, node)

	if len(node.Inheritance) > 0 {
		builder.WriteString("Inheritance ")
		for i, t := range node.Inheritance {
			if i > 0 {
				builder.WriteString(" → ")
			}
			builder.WriteString(t.Markdown())
		}
		builder.WriteString("\n\n")
	}

	if len(node.Implements) > 0 {
		builder.WriteString("Implements ")
		for i, t := range node.Implements {
			if i > 0 {
				builder.WriteString(", ")
			}
			builder.WriteString(t.Markdown())
		}
		builder.WriteString("\n\n")
	}

	writeRemarks(builder, node, "##")
}

func writeConstructors(builder *strings.Builder, node *doctree.Node) {
	writeMemberSection(builder, "Constructors", node.Constructors, writeCallable)
}

func writeFields(builder *strings.Builder, node *doctree.Node) {
	writeMemberSection(builder, "Fields", node.Fields, writeValue)
}

func writeProperties(builder *strings.Builder, node *doctree.Node) {
	writeMemberSection(builder, "Properties", node.Properties, writeValue)
}

func writeMethods(builder *strings.Builder, node *doctree.Node) {
	writeMemberSection(builder, "Methods", node.Methods, writeCallable)
}

func writeEvents(builder *strings.Builder, node *doctree.Node) {
	writeMemberSection(builder, "Events", node.Events, writeEvent)
}

// writeMemberSection writes a "## heading" section with one "### name"
// block per member, in discovery order. Empty sections are omitted.
func writeMemberSection(builder *strings.Builder, heading string, members []*doctree.Node,
	body func(*strings.Builder, *doctree.Node),
) {
	if len(members) == 0 {
		return
	}
	fmt.Fprintf(builder, "## %s\n\n", heading)
	for _, member := range members {
		fmt.Fprintf(builder, "### %s\n\n", member.Name)
		writeObsolete(builder, member)
		writeSummary(builder, member)
		writeSyntax(builder, member)
		body(builder, member)
	}
}

// writeValue finishes a field or property block.
func writeValue(builder *strings.Builder, member *doctree.Node) {
	writeRemarks(builder, member, "####")
}

// writeCallable finishes a method or constructor block.
func writeCallable(builder *strings.Builder, member *doctree.Node) {
	writeParameters(builder, member)

	if member.Returns != nil {
		builder.WriteString("#### Returns\n\n")
		builder.WriteString(member.Returns.Type.Markdown())
		if member.Returns.Summary != "" {
			builder.WriteString("  \n")
			builder.WriteString(member.Returns.Summary)
		}
		builder.WriteString("\n\n")
	}

	if len(member.Exceptions) > 0 {
		builder.WriteString("#### Exceptions\n\n")
		for _, ex := range member.Exceptions {
			builder.WriteString(ex.Type.Markdown())
			builder.WriteString("  \n")
			if ex.Summary != "" {
				builder.WriteString(ex.Summary)
				builder.WriteString("\n")
			}
			builder.WriteString("\n")
		}
	}

	writeRemarks(builder, member, "####")
}

// writeEvent finishes an event block.
func writeEvent(builder *strings.Builder, member *doctree.Node) {
	if member.Returns != nil {
		builder.WriteString("#### Event Type\n\n")
		builder.WriteString(member.Returns.Type.Markdown())
		builder.WriteString("\n\n")
	}
}

// writeObsolete writes a caution or danger callout for obsolete items.
func writeObsolete(builder *strings.Builder, node *doctree.Node) {
	if node.Obsolete == nil {
		return
	}
	fmt.Fprintf(builder, ":::%s[Obsolete]\n%s\n:::\n\n", node.Obsolete.Severity, node.Obsolete.Message())
}

func writeSummary(builder *strings.Builder, node *doctree.Node) {
	if node.Summary == "" {
		return
	}
	builder.WriteString(node.Summary)
	builder.WriteString("\n\n")
}

func writeSyntax(builder *strings.Builder, node *doctree.Node) {
	if node.Syntax == "" {
		return
	}
	builder.WriteString("```csharp title=\"C#\"\n")
	builder.WriteString(node.Syntax)
	builder.WriteString("\n```\n\n")
}

// writeParameters writes "`name` type" entries followed by their summaries.
func writeParameters(builder *strings.Builder, node *doctree.Node) {
	if len(node.Parameters) == 0 {
		return
	}
	builder.WriteString("#### Parameters\n\n")
	for _, p := range node.Parameters {
		fmt.Fprintf(builder, "`%s` %s  \n", p.Name, p.Type.Markdown())
		if p.Summary != "" {
			builder.WriteString(p.Summary)
			builder.WriteString("\n")
		}
		builder.WriteString("\n")
	}
}

func writeRemarks(builder *strings.Builder, node *doctree.Node, level string) {
	if node.Remarks == "" {
		return
	}
	fmt.Fprintf(builder, "%s Remarks\n\n%s\n\n", level, node.Remarks)
}

// finish trims the page and terminates it with a single newline.
func finish(content string) string {
	return strings.TrimSpace(content) + "\n"
}
