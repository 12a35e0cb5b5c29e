package render

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gorewood/docfx2astro/internal/docfx"
	"github.com/gorewood/docfx2astro/internal/doctree"
	"github.com/gorewood/docfx2astro/internal/format"
)

// TopIndexTitle is the title of the top-level index page.
const TopIndexTitle = "API Reference"

// TopIndex renders the hidden landing page that lists every assembly with
// its per-kind type counts.
func TopIndex(tree *doctree.Tree, baseSlug string) (string, error) {
	var builder strings.Builder

	fm := Frontmatter{
		Title:   TopIndexTitle,
		Slug:    format.FormatSlug(baseSlug),
		Sidebar: Sidebar{Hidden: true},
	}
	if err := writeFrontmatter(&builder, fm); err != nil {
		return "", err
	}

	for _, asm := range tree.Assemblies {
		var counts []string
		for _, kind := range docfx.TypeKinds {
			if n := asm.Count(kind); n > 0 {
				counts = append(counts, fmt.Sprintf("%s: %d", kind.Plural(), n))
			}
		}
		fmt.Fprintf(&builder, "- [%s](%s/) (%s)\n", asm.Name, assemblySlug(asm.Name), strings.Join(counts, ", "))
	}

	return finish(builder.String()), nil
}

// AssemblyIndex renders an assembly's index: one table per type kind, rows
// ordered by ordinal comparison of the type name. Kinds with no types are
// omitted. ctx is checked between rows.
func AssemblyIndex(ctx context.Context, asm *doctree.Assembly, baseSlug string) (string, error) {
	var builder strings.Builder

	order := 0
	fm := Frontmatter{
		Title:   asm.Name,
		Slug:    joinSlug(baseSlug, assemblySlug(asm.Name)),
		Sidebar: Sidebar{Order: &order},
	}
	if err := writeFrontmatter(&builder, fm); err != nil {
		return "", err
	}

	for _, kind := range docfx.TypeKinds {
		types := asm.OfKind(kind)
		if len(types) == 0 {
			continue
		}

		fmt.Fprintf(&builder, "## %s\n\n", kind.Plural())
		builder.WriteString("| | |\n| --- | --- |\n")
		for _, t := range types {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			fmt.Fprintf(&builder, "| %s | %s |\n", t.Link.Markdown(t.DisplayName()), tableCell(t.Summary))
		}
		builder.WriteString("\n")
	}

	return finish(builder.String()), nil
}

// assemblySlug is the lower-cased path segment of an assembly.
func assemblySlug(name string) string {
	return cases.Lower(language.Und).String(name)
}

var cellReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "|", `\|`)

// tableCell keeps multi-line summaries inside a single table row.
func tableCell(s string) string {
	return cellReplacer.Replace(s)
}
