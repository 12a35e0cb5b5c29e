package doctree

import (
	"strconv"
	"strings"

	"github.com/gorewood/docfx2astro/internal/docfx"
)

// Severity is the callout level used for an obsolete warning.
type Severity string

// Obsolete severities.
const (
	SeverityCaution Severity = "caution"
	SeverityDanger  Severity = "danger"
)

// Obsolete describes an ObsoleteAttribute applied to an item.
type Obsolete struct {
	Severity Severity `json:"severity"`
	Reason   string   `json:"reason,omitempty"`
}

// Message is the reason given on the attribute or a generated sentence.
func (o *Obsolete) Message() string {
	if o.Reason != "" {
		return o.Reason
	}
	if o.Severity == SeverityDanger {
		return "This type is obsolete, and should not be used."
	}
	return "This type is obsolete."
}

// findObsolete returns nil unless attrs carry the obsolete marker. A boolean
// argument that parses to true makes it an error-level warning.
func findObsolete(attrs []docfx.Attribute) *Obsolete {
	for _, attr := range attrs {
		if attr.Type != docfx.ObsoleteAttributeUID {
			continue
		}
		o := &Obsolete{Severity: SeverityCaution}
		if arg, ok := attr.FirstArgument(docfx.StringTypeUID); ok {
			o.Reason = strings.TrimSpace(arg.Value)
		}
		if arg, ok := attr.FirstArgument(docfx.BooleanTypeUID); ok {
			if isError, err := strconv.ParseBool(strings.TrimSpace(arg.Value)); err == nil && isError {
				o.Severity = SeverityDanger
			}
		}
		return o
	}
	return nil
}
