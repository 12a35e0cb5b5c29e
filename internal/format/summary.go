// Package format rewrites docfx documentation text into Markdown and turns
// docfx hrefs and type names into site paths and display strings.
package format

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/gorewood/docfx2astro/internal/docfx"
)

// Resolver looks up references by uid. *refindex.Index implements it.
type Resolver interface {
	Lookup(uid string) (docfx.Reference, bool)
	LookupLinkable(uid string) (docfx.Reference, bool)
}

var (
	codeTag = regexp.MustCompile(`<code\s?(?:class=".*?")?>(.*?)</code>`)
	xrefTag = regexp.MustCompile(`<xref\b[^>]*?(?:/>|>\s*</xref>)`)
)

// FormatSummary rewrites raw documentation text into Markdown. Inline code
// becomes backtick spans, %60 becomes a backtick, wrapped lines are joined,
// and xref tags become links when the target is linkable or code spans of
// the uid otherwise. Blank input yields "".
func FormatSummary(raw string, refs Resolver) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	s := codeTag.ReplaceAllString(raw, "`$1`")
	s = strings.ReplaceAll(s, "%60", "`")
	s = collapseLineBreaks(s)
	s = xrefTag.ReplaceAllStringFunc(s, func(tag string) string {
		uid, ok := xrefUID(tag)
		if !ok {
			return tag
		}
		ref, ok := refs.LookupLinkable(uid)
		if !ok {
			return "`" + uid + "`"
		}
		return LinkFromReference(ref).Markdown(ref.Name)
	})
	return strings.TrimSpace(s)
}

// xrefUID extracts the href attribute of a single xref tag.
func xrefUID(tag string) (string, bool) {
	z := html.NewTokenizer(strings.NewReader(tag))
	switch z.Next() {
	case html.StartTagToken, html.SelfClosingTagToken:
	default:
		return "", false
	}
	for {
		key, val, more := z.TagAttr()
		if string(key) == "href" {
			return string(val), true
		}
		if !more {
			return "", false
		}
	}
}

// collapseLineBreaks joins a line with the next one when the break sits
// between two non-blank characters. Blank-line paragraph breaks survive.
// CRLF line endings are normalized to LF first.
func collapseLineBreaks(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}

	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(lines[0])
	for i := 1; i < len(lines); i++ {
		next := strings.TrimLeft(lines[i], " \t")
		if endsWithText(lines[i-1]) && next != "" && !isSpace(next[0]) {
			b.WriteByte(' ')
			b.WriteString(next)
			lines[i] = next
			continue
		}
		b.WriteByte('\n')
		b.WriteString(lines[i])
	}
	return b.String()
}

func endsWithText(line string) bool {
	return line != "" && !isSpace(line[len(line)-1])
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == '\v'
}
