package render

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/docfx2astro/internal/format"
)

// Frontmatter is the header block the site generator reads from each page.
type Frontmatter struct {
	Title   string  `yaml:"title"`
	Slug    string  `yaml:"slug,omitempty"`
	Sidebar Sidebar `yaml:"sidebar"`
}

// Sidebar controls how a page appears in the site navigation.
type Sidebar struct {
	Label  string `yaml:"label,omitempty"`
	Order  *int   `yaml:"order,omitempty"`
	Hidden bool   `yaml:"hidden,omitempty"`
}

// writeFrontmatter writes fm between --- delimiters followed by a blank line.
func writeFrontmatter(builder *strings.Builder, fm Frontmatter) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return fmt.Errorf("encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode frontmatter: %w", err)
	}

	builder.WriteString("---\n")
	builder.Write(buf.Bytes())
	builder.WriteString("---\n\n")
	return nil
}

// joinSlug prefixes slug with the base slug.
func joinSlug(base, slug string) string {
	base = format.FormatSlug(base)
	if base == "" {
		return slug
	}
	return base + "/" + slug
}
