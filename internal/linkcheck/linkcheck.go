// Package linkcheck verifies that relative links between generated pages
// point at slugs that were actually emitted.
package linkcheck

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/docfx2astro/internal/format"
)

// ErrMissingClosingDelimiter means a page opened a frontmatter block but
// never closed it.
var ErrMissingClosingDelimiter = errors.New("frontmatter: missing closing delimiter")

// Broken is a link whose target slug is not among the checked pages.
type Broken struct {
	File   string `json:"file"`
	Target string `json:"target"`
	Slug   string `json:"slug"`
}

// Page is one parsed page.
type Page struct {
	File  string
	Slug  string
	Links []string
}

// Check reads files (relative to root), then reports every relative link
// whose target slug was not emitted. External links and same-page anchors
// are ignored. Results are ordered by file, then by link position.
func Check(root string, files []string) ([]Broken, error) {
	pages := make([]Page, 0, len(files))
	slugs := make(map[string]bool, len(files))
	for _, rel := range files {
		content, err := os.ReadFile(filepath.Join(root, rel))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", rel, err)
		}
		page, err := ParsePage(rel, content)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
		if page.Slug != "" {
			slugs[page.Slug] = true
		}
	}

	var broken []Broken
	for _, page := range pages {
		for _, dest := range page.Links {
			target, ok := Resolve(page.Slug, dest)
			if !ok || slugs[target] {
				continue
			}
			broken = append(broken, Broken{File: page.File, Target: dest, Slug: target})
		}
	}
	slices.SortStableFunc(broken, func(a, b Broken) int {
		return strings.Compare(a.File, b.File)
	})
	return broken, nil
}

// ParsePage extracts the frontmatter slug and Markdown link destinations.
func ParsePage(file string, content []byte) (Page, error) {
	page := Page{File: file}

	fm, body, err := split(content)
	if err != nil {
		return page, fmt.Errorf("%s: %w", file, err)
	}
	if len(fm) > 0 {
		var meta struct {
			Slug string `yaml:"slug"`
		}
		if err := yaml.Unmarshal(fm, &meta); err != nil {
			return page, fmt.Errorf("%s: parse frontmatter: %w", file, err)
		}
		page.Slug = format.FormatSlug(meta.Slug)
	}

	root := goldmark.New().Parser().Parse(text.NewReader(body))
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if link, ok := n.(*gmast.Link); ok {
			page.Links = append(page.Links, string(link.Destination))
		}
		return gmast.WalkContinue, nil
	})
	return page, nil
}

// Resolve returns the slug a relative link on the page with pageSlug points
// at. Pages are served as directories, so links resolve against
// /<pageSlug>/. ok is false for external links and bare fragments.
func Resolve(pageSlug, dest string) (slug string, ok bool) {
	if dest == "" || strings.HasPrefix(dest, "#") || format.IsExternal(dest) {
		return "", false
	}
	u, err := url.Parse(dest)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "", false
	}

	var p string
	if strings.HasPrefix(u.Path, "/") {
		p = path.Clean(u.Path)
	} else {
		p = path.Join("/"+pageSlug, u.Path)
	}
	return strings.Trim(p, "/"), true
}

// split separates --- delimited frontmatter from the body.
func split(content []byte) (fm, body []byte, err error) {
	const open = "---\n"
	if !bytes.HasPrefix(content, []byte(open)) {
		return nil, content, nil
	}
	rest := content[len(open):]
	if bytes.HasPrefix(rest, []byte(open)) {
		return nil, rest[len(open):], nil
	}
	idx := bytes.Index(rest, []byte("\n---\n"))
	if idx < 0 {
		if bytes.HasSuffix(rest, []byte("\n---")) {
			return rest[:len(rest)-len("---")], nil, nil
		}
		return nil, nil, ErrMissingClosingDelimiter
	}
	return rest[:idx+1], rest[idx+len("\n---\n"):], nil
}
