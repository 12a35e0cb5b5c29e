package format

import (
	"strings"

	"github.com/gorewood/docfx2astro/internal/docfx"
)

// Link is a resolved link target. The zero Link means "no link".
type Link struct {
	External bool   `json:"external"`
	Href     string `json:"href"`
}

// LinkFromReference builds a Link from a reference's href. Relative targets
// are lower-cased; external URLs are kept verbatim.
func LinkFromReference(ref docfx.Reference) Link {
	href, external := FormatHref(ref.Href)
	if !external {
		href = lower(href)
	}
	return Link{External: external, Href: href}
}

// NodeLink is the site path of the page or anchor generated for uid.
func NodeLink(uid string) Link {
	href, _ := FormatHref(uid)
	return Link{Href: lower(href)}
}

// IsEmpty reports whether l has no target.
func (l Link) IsEmpty() bool {
	return l.Href == ""
}

// Path returns the link target as written into a page that lives one level
// below the assembly directory.
func (l Link) Path() string {
	if l.External {
		return l.Href
	}
	if strings.Contains(l.Href, "#") {
		return "../" + l.Href
	}
	return "../" + l.Href + "/"
}

// Markdown renders text as a link to l, or as plain text if l is empty.
func (l Link) Markdown(text string) string {
	if l.IsEmpty() {
		return text
	}
	return "[" + text + "](" + l.Path() + ")"
}

// TypeRef is a type name paired with its optional link.
type TypeRef struct {
	Name string `json:"name"`
	Link Link   `json:"link"`
}

// Markdown renders the type as a link when it has one.
func (t TypeRef) Markdown() string {
	return t.Link.Markdown(t.Name)
}

// ResolveType turns a type uid into a display name and link. Linkable
// references produce a link; nameable ones just their name; unknown uids
// fall back to the brace-formatted uid.
func ResolveType(uid string, refs Resolver) TypeRef {
	if ref, ok := refs.LookupLinkable(uid); ok {
		return TypeRef{Name: FormatType(ref.Name), Link: LinkFromReference(ref)}
	}
	if ref, ok := refs.Lookup(uid); ok && ref.Name != "" {
		return TypeRef{Name: FormatType(ref.Name)}
	}
	return TypeRef{Name: FormatType(uid)}
}

// ResolveTypes resolves each uid in order.
func ResolveTypes(uids []string, refs Resolver) []TypeRef {
	if len(uids) == 0 {
		return nil
	}
	out := make([]TypeRef, len(uids))
	for i, uid := range uids {
		out[i] = ResolveType(uid, refs)
	}
	return out
}
