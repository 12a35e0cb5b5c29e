// Package docfx reads the API metadata produced by the docfx extractor.
//
// A docfx metadata run writes one YAML file per documented type (plus a
// toc.yml). Each file holds the type item, its member items, and the
// references those items mention:
//
//	### YamlMime:ManagedReference
//	items:
//	- uid: Demo.Widget
//	  name: Widget
//	  fullName: Demo.Widget
//	  type: Class
//	  assemblies:
//	  - Demo
//	  summary: A widget.
//	references:
//	- uid: System.Object
//	  name: object
//	  href: https://learn.microsoft.com/dotnet/api/system.object
//
// # Discovery
//
// Discover walks an input root and returns every .yml file except toc.yml:
//
//	files, err := docfx.Discover(root) // ErrNoInput when nothing matched
//
// # Loading
//
// LoadAll parses the discovered files in order. By default the first file
// that fails to parse aborts the run with a *ParseError. With SkipInvalid the
// file is logged and skipped instead:
//
//	docs, stats, err := docfx.LoadAll(ctx, files, docfx.LoadOptions{Logger: logger})
//
// Only the fields the generator consumes are decoded; unknown fields are
// ignored.
package docfx
