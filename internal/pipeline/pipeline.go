// Package pipeline runs a generate: discover and load metadata files, build
// the reference index, assemble the documentation tree, then render it.
// Each stage starts only once the previous one has finished.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorewood/docfx2astro/internal/config"
	"github.com/gorewood/docfx2astro/internal/docfx"
	"github.com/gorewood/docfx2astro/internal/doctree"
	"github.com/gorewood/docfx2astro/internal/linkcheck"
	"github.com/gorewood/docfx2astro/internal/logfields"
	"github.com/gorewood/docfx2astro/internal/refindex"
	"github.com/gorewood/docfx2astro/internal/render"
)

// Corpus is a fully loaded input directory.
type Corpus struct {
	Documents []*docfx.Document
	Refs      *refindex.Index
	Tree      *doctree.Tree
	Stats     docfx.LoadStats
}

// AssemblyStat summarizes one assembly of a run.
type AssemblyStat struct {
	Name  string `json:"name"`
	Types int    `json:"types"`
}

// Result describes a finished run.
type Result struct {
	Documents   int                `json:"documents"`
	Skipped     int                `json:"skipped"`
	Types       int                `json:"types"`
	Assemblies  []AssemblyStat     `json:"assemblies"`
	Files       int                `json:"files"`
	BrokenLinks []linkcheck.Broken `json:"broken_links"`
}

// LoadCorpus discovers and parses the metadata under inputDir, indexes every
// reference, and builds the tree. It returns docfx.ErrNoInput when there are
// no files, a *docfx.ParseError for an unparseable file unless skipInvalid is
// set, and doctree.ErrNoContent when no types were found.
func LoadCorpus(ctx context.Context, inputDir string, skipInvalid bool, logger *slog.Logger) (*Corpus, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	files, err := docfx.Discover(inputDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered metadata files", logfields.Count(len(files)), logfields.Path(inputDir))

	docs, stats, err := docfx.LoadAll(ctx, files, docfx.LoadOptions{SkipInvalid: skipInvalid, Logger: logger})
	if err != nil {
		return nil, err
	}

	refs, replaced := refindex.FromDocuments(docs)
	if replaced > 0 {
		logger.Debug("Duplicate reference uids overwritten", logfields.Count(replaced))
	}

	tree, err := doctree.Build(ctx, docfx.Items(docs), refs)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded documents",
		logfields.Count(stats.Parsed),
		slog.Int("types", len(tree.Types)),
		slog.Int("references", refs.Len()))

	return &Corpus{Documents: docs, Refs: refs, Tree: tree, Stats: stats}, nil
}

// Run performs a full generate. Nothing under the output directory is
// touched until the corpus has loaded successfully.
func Run(ctx context.Context, opts config.Options, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	start := time.Now()
	logger.Info("Generating reference", logfields.Path(opts.InputDir))

	corpus, err := LoadCorpus(ctx, opts.InputDir, opts.SkipInvalid, logger)
	if err != nil {
		return nil, err
	}

	if !opts.DontClear {
		if err := render.Clear(opts.OutputDir); err != nil {
			return nil, err
		}
		logger.Debug("Cleared output directory", logfields.Path(opts.OutputDir))
	}

	rendered, err := render.Render(ctx, corpus.Tree, render.Options{
		OutputDir: opts.OutputDir,
		BaseSlug:  opts.BaseSlug,
		Workers:   opts.Workers,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		Documents: corpus.Stats.Parsed,
		Skipped:   corpus.Stats.Skipped,
		Types:     len(corpus.Tree.Types),
		Files:     len(rendered.Files),
	}
	for _, asm := range corpus.Tree.Assemblies {
		result.Assemblies = append(result.Assemblies, AssemblyStat{Name: asm.Name, Types: len(asm.Types)})
	}

	if opts.CheckLinks {
		broken, err := linkcheck.Check(opts.OutputDir, rendered.Files)
		if err != nil {
			return nil, fmt.Errorf("check links: %w", err)
		}
		for _, b := range broken {
			logger.Warn("Broken link", logfields.File(b.File), logfields.Path(b.Target))
		}
		result.BrokenLinks = broken
	}

	logger.Info("Generated reference",
		logfields.Count(result.Files),
		logfields.DurationMS(time.Since(start).Milliseconds()))
	return result, nil
}
