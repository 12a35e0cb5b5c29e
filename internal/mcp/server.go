// Package mcp provides a Model Context Protocol server for docfx2astro.
// It exposes a loaded metadata corpus as read-only tools so an agent can look
// up references, format docfx text, and preview rendered pages.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/docfx2astro/internal/pipeline"
)

// NewServer creates an MCP server with all docfx2astro tools registered.
func NewServer(version string, corpus *pipeline.Corpus, baseSlug string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "docfx2astro",
		Version: version,
	}, nil)
	registerTools(server, corpus, baseSlug)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all docfx2astro tools to the server.
func registerTools(server *mcp.Server, corpus *pipeline.Corpus, baseSlug string) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show the loaded corpus: document, type and reference counts, and the types per assembly.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(corpus))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "lookup_reference",
		Description: "Resolve a uid against the reference index. Returns its display name, href, and the relative link a generated page would use.",
		Annotations: readOnlyAnnotations(),
	}, handleLookupReference(corpus))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_text",
		Description: "Convert a docfx summary or remarks string (xref tags, code tags, hard line breaks) to the Markdown written to pages.",
		Annotations: readOnlyAnnotations(),
	}, handleFormatText(corpus))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_types",
		Description: "List documented types, optionally filtered by assembly and kind (Class, Struct, Interface, Enum, Delegate).",
		Annotations: readOnlyAnnotations(),
	}, handleListTypes(corpus))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_type",
		Description: "Render the Markdown page for one type uid exactly as generate would write it, without touching the output directory.",
		Annotations: readOnlyAnnotations(),
	}, handleRenderType(corpus, baseSlug))
}
