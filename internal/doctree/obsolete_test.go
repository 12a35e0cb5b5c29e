package doctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/docfx2astro/internal/docfx"
)

func obsoleteAttr(args ...docfx.Argument) []docfx.Attribute {
	return []docfx.Attribute{
		{Type: "System.SerializableAttribute"},
		{Type: docfx.ObsoleteAttributeUID, Arguments: args},
	}
}

func TestFindObsolete(t *testing.T) {
	tests := []struct {
		name         string
		attrs        []docfx.Attribute
		wantNil      bool
		wantSeverity Severity
		wantMessage  string
	}{
		{
			name:    "no attributes",
			wantNil: true,
		},
		{
			name:    "unrelated attribute",
			attrs:   []docfx.Attribute{{Type: "System.SerializableAttribute"}},
			wantNil: true,
		},
		{
			name:         "bare marker is a caution",
			attrs:        obsoleteAttr(),
			wantSeverity: SeverityCaution,
			wantMessage:  "This type is obsolete.",
		},
		{
			name:         "boolean true is a danger",
			attrs:        obsoleteAttr(docfx.Argument{Type: docfx.BooleanTypeUID, Value: "true"}),
			wantSeverity: SeverityDanger,
			wantMessage:  "This type is obsolete, and should not be used.",
		},
		{
			name:         "boolean false stays a caution",
			attrs:        obsoleteAttr(docfx.Argument{Type: docfx.BooleanTypeUID, Value: "False"}),
			wantSeverity: SeverityCaution,
			wantMessage:  "This type is obsolete.",
		},
		{
			name:         "unparseable boolean stays a caution",
			attrs:        obsoleteAttr(docfx.Argument{Type: docfx.BooleanTypeUID, Value: "maybe"}),
			wantSeverity: SeverityCaution,
			wantMessage:  "This type is obsolete.",
		},
		{
			name: "reason is trimmed",
			attrs: obsoleteAttr(
				docfx.Argument{Type: docfx.StringTypeUID, Value: "  Use Gadget instead.  "},
				docfx.Argument{Type: docfx.BooleanTypeUID, Value: "True"},
			),
			wantSeverity: SeverityDanger,
			wantMessage:  "Use Gadget instead.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findObsolete(tt.attrs)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantSeverity, got.Severity)
			assert.Equal(t, tt.wantMessage, got.Message())
		})
	}
}
