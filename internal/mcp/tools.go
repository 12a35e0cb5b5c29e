package mcp

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/docfx2astro/internal/format"
	"github.com/gorewood/docfx2astro/internal/pipeline"
	"github.com/gorewood/docfx2astro/internal/render"
)

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Documents  int                     `json:"documents"  jsonschema:"number of parsed metadata files"`
	Skipped    int                     `json:"skipped"    jsonschema:"number of unparseable files that were skipped"`
	Types      int                     `json:"types"      jsonschema:"number of documented types"`
	References int                     `json:"references" jsonschema:"number of entries in the reference index"`
	Assemblies []pipeline.AssemblyStat `json:"assemblies" jsonschema:"types per assembly, ordered by name"`
}

func handleStatus(corpus *pipeline.Corpus) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		out := StatusOutput{
			Documents:  corpus.Stats.Parsed,
			Skipped:    corpus.Stats.Skipped,
			Types:      len(corpus.Tree.Types),
			References: corpus.Refs.Len(),
			Assemblies: assemblyStats(corpus),
		}
		return nil, out, nil
	}
}

// --- Lookup reference tool ---

// LookupReferenceInput is the input for the lookup_reference tool.
type LookupReferenceInput struct {
	UID string `json:"uid" jsonschema:"uid to resolve, e.g. System.String or MyLib.Widget.Spin*"`
}

// LookupReferenceOutput is the output for the lookup_reference tool.
type LookupReferenceOutput struct {
	Found    bool   `json:"found"              jsonschema:"whether the uid is in the reference index"`
	UID      string `json:"uid"                jsonschema:"the requested uid"`
	Name     string `json:"name,omitempty"     jsonschema:"display name"`
	Href     string `json:"href,omitempty"     jsonschema:"href as recorded in the metadata"`
	Link     string `json:"link,omitempty"     jsonschema:"relative link used on generated pages"`
	External bool   `json:"external,omitempty" jsonschema:"whether the link points outside the site"`
}

func handleLookupReference(corpus *pipeline.Corpus) mcp.ToolHandlerFor[LookupReferenceInput, LookupReferenceOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input LookupReferenceInput) (*mcp.CallToolResult, LookupReferenceOutput, error) {
		uid := strings.TrimSpace(input.UID)
		if uid == "" {
			return nil, LookupReferenceOutput{}, errors.New("uid is required")
		}

		out := LookupReferenceOutput{UID: uid}
		ref, ok := corpus.Refs.Lookup(uid)
		if !ok {
			return nil, out, nil
		}
		out.Found = true
		out.Name = ref.Name
		out.Href = ref.Href
		if ref.Href != "" {
			link := format.LinkFromReference(ref)
			out.Link = link.Path()
			out.External = link.External
		}
		return nil, out, nil
	}
}

// --- Format text tool ---

// FormatTextInput is the input for the format_text tool.
type FormatTextInput struct {
	Text string `json:"text" jsonschema:"raw summary or remarks text from a metadata file"`
}

// FormatTextOutput is the output for the format_text tool.
type FormatTextOutput struct {
	Markdown string `json:"markdown" jsonschema:"the formatted Markdown"`
}

func handleFormatText(corpus *pipeline.Corpus) mcp.ToolHandlerFor[FormatTextInput, FormatTextOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input FormatTextInput) (*mcp.CallToolResult, FormatTextOutput, error) {
		return nil, FormatTextOutput{Markdown: format.FormatSummary(input.Text, corpus.Refs)}, nil
	}
}

// --- List types tool ---

// ListTypesInput is the input for the list_types tool.
type ListTypesInput struct {
	Assembly string `json:"assembly,omitempty" jsonschema:"only list types of this assembly (case-insensitive)"`
	Kind     string `json:"kind,omitempty"     jsonschema:"only list types of this kind (case-insensitive)"`
}

// ListTypesOutput is the output for the list_types tool.
type ListTypesOutput struct {
	Count int           `json:"count" jsonschema:"number of types returned"`
	Types []TypeSummary `json:"types" jsonschema:"matching types, grouped by assembly and kind"`
}

// TypeSummary is a compact description of one documented type.
type TypeSummary struct {
	UID      string `json:"uid"               jsonschema:"type uid"`
	Name     string `json:"name"              jsonschema:"display name"`
	Kind     string `json:"kind"              jsonschema:"type kind"`
	Assembly string `json:"assembly"          jsonschema:"owning assembly"`
	Path     string `json:"path"              jsonschema:"page path relative to the output directory"`
	Summary  string `json:"summary,omitempty" jsonschema:"formatted summary"`
}

func handleListTypes(corpus *pipeline.Corpus) mcp.ToolHandlerFor[ListTypesInput, ListTypesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListTypesInput) (*mcp.CallToolResult, ListTypesOutput, error) {
		kinds, err := parseKindFilter(input.Kind)
		if err != nil {
			return nil, ListTypesOutput{}, err
		}

		types := listTypes(corpus, strings.TrimSpace(input.Assembly), kinds)
		return nil, ListTypesOutput{Count: len(types), Types: types}, nil
	}
}

// --- Render type tool ---

// RenderTypeInput is the input for the render_type tool.
type RenderTypeInput struct {
	UID string `json:"uid" jsonschema:"uid of a documented type"`
}

// RenderTypeOutput is the output for the render_type tool.
type RenderTypeOutput struct {
	UID      string `json:"uid"      jsonschema:"the rendered type uid"`
	Path     string `json:"path"     jsonschema:"page path relative to the output directory"`
	Markdown string `json:"markdown" jsonschema:"the page content including frontmatter"`
}

func handleRenderType(corpus *pipeline.Corpus, baseSlug string) mcp.ToolHandlerFor[RenderTypeInput, RenderTypeOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RenderTypeInput) (*mcp.CallToolResult, RenderTypeOutput, error) {
		uid := strings.TrimSpace(input.UID)
		if uid == "" {
			return nil, RenderTypeOutput{}, errors.New("uid is required")
		}

		node, ok := corpus.Tree.Find(uid)
		if !ok {
			return nil, RenderTypeOutput{}, fmt.Errorf("no documented type with uid %q", uid)
		}

		page, err := render.TypePage(ctx, node, baseSlug)
		if err != nil {
			return nil, RenderTypeOutput{}, fmt.Errorf("rendering %s: %w", uid, err)
		}

		return nil, RenderTypeOutput{UID: node.UID, Path: filepath.ToSlash(render.TypePagePath(node)), Markdown: page}, nil
	}
}
