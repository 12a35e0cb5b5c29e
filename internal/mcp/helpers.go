package mcp

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gorewood/docfx2astro/internal/docfx"
	"github.com/gorewood/docfx2astro/internal/doctree"
	"github.com/gorewood/docfx2astro/internal/pipeline"
	"github.com/gorewood/docfx2astro/internal/render"
)

// assemblyStats counts the types of every assembly in the corpus.
func assemblyStats(corpus *pipeline.Corpus) []pipeline.AssemblyStat {
	result := make([]pipeline.AssemblyStat, 0, len(corpus.Tree.Assemblies))
	for _, asm := range corpus.Tree.Assemblies {
		result = append(result, pipeline.AssemblyStat{Name: asm.Name, Types: len(asm.Types)})
	}
	return result
}

// parseKindFilter maps a kind name to the kinds to list. Empty means all.
func parseKindFilter(kind string) ([]docfx.Kind, error) {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return docfx.TypeKinds, nil
	}
	for _, k := range docfx.TypeKinds {
		if strings.EqualFold(string(k), kind) {
			return []docfx.Kind{k}, nil
		}
	}
	return nil, fmt.Errorf("unknown kind %q (want Class, Struct, Interface, Enum or Delegate)", kind)
}

// listTypes collects matching types in index order.
func listTypes(corpus *pipeline.Corpus, assembly string, kinds []docfx.Kind) []TypeSummary {
	result := []TypeSummary{}
	for _, asm := range corpus.Tree.Assemblies {
		if assembly != "" && !strings.EqualFold(asm.Name, assembly) {
			continue
		}
		for _, kind := range kinds {
			for _, node := range asm.OfKind(kind) {
				result = append(result, toTypeSummary(node))
			}
		}
	}
	return result
}

// toTypeSummary converts a tree node to a TypeSummary.
func toTypeSummary(node *doctree.Node) TypeSummary {
	return TypeSummary{
		UID:      node.UID,
		Name:     node.Name,
		Kind:     string(node.Kind),
		Assembly: node.Assembly,
		Path:     filepath.ToSlash(render.TypePagePath(node)),
		Summary:  node.Summary,
	}
}
