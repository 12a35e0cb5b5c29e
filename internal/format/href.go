package format

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// docfx appends an overload suffix after the last underscore of a member anchor.
	overloadAnchor = regexp.MustCompile(`^(.*?)(?:\.html)?#(.*)_[^_#]*$`)
	plainAnchor    = regexp.MustCompile(`^(.*?)(?:\.html)?#([^#]*)$`)
)

// IsExternal reports whether href is an absolute http(s) URL.
func IsExternal(href string) bool {
	return strings.HasPrefix(href, "https://") || strings.HasPrefix(href, "http://")
}

// FormatHref converts a docfx href into a site-relative page path.
//
// Absolute http(s) URLs are returned unchanged with isExternal set. Otherwise
// a trailing .html is dropped, backticks (docfx's generic arity marker) become
// hyphens, and a fragment is rewritten to <page>/#<anchor> with any overload
// suffix removed.
func FormatHref(href string) (path string, isExternal bool) {
	if IsExternal(href) {
		return href, true
	}

	path = strings.TrimSuffix(href, ".html")
	path = strings.ReplaceAll(path, "`", "-")

	if m := overloadAnchor.FindStringSubmatch(path); m != nil {
		return m[1] + "/#" + m[2], false
	}
	if m := plainAnchor.FindStringSubmatch(path); m != nil {
		return m[1] + "/#" + m[2], false
	}
	return path, false
}

// FormatType renders docfx's brace encoding of generic types.
//
//	List{{T}}  -> List\<T\>
//	{T}[]      -> T[]
func FormatType(value string) string {
	if !strings.ContainsAny(value, "{}") {
		return value
	}
	value = strings.ReplaceAll(value, "{{", `\<`)
	value = strings.ReplaceAll(value, "}}", `\>`)
	return braceStripper.Replace(value)
}

var braceStripper = strings.NewReplacer("{", "", "}", "")

// FormatSlug strips exactly one trailing slash.
func FormatSlug(value string) string {
	return strings.TrimSuffix(value, "/")
}

// lower folds s with the root locale so results do not depend on the host.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
