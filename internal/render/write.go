package render

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gorewood/docfx2astro/internal/doctree"
	"github.com/gorewood/docfx2astro/internal/logfields"
)

// IndexFileName is the file name of every index page.
const IndexFileName = "index.md"

// Options controls Render.
type Options struct {
	OutputDir string
	BaseSlug  string
	// Workers bounds concurrent type page rendering. Values <= 0 mean NumCPU.
	Workers int
	Logger  *slog.Logger
}

// Result lists the files Render wrote, relative to the output directory.
type Result struct {
	Files []string
}

// Render writes the whole tree under opts.OutputDir. Index pages are written
// first, then type pages in parallel. Every file is written to a temp file
// and renamed into place, so a cancelled run never leaves a partial page.
func Render(ctx context.Context, tree *doctree.Tree, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	start := time.Now()

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	result := &Result{}
	top, err := TopIndex(tree, opts.BaseSlug)
	if err != nil {
		return nil, err
	}
	if err := writePage(opts.OutputDir, IndexFileName, top, logger); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, IndexFileName)

	for _, asm := range tree.Assemblies {
		if err := os.MkdirAll(filepath.Join(opts.OutputDir, asm.Name), 0o755); err != nil {
			return nil, fmt.Errorf("create assembly directory: %w", err)
		}
		content, err := AssemblyIndex(ctx, asm, opts.BaseSlug)
		if err != nil {
			return nil, err
		}
		rel := filepath.Join(asm.Name, IndexFileName)
		if err := writePage(opts.OutputDir, rel, content, logger); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, rel)
	}

	jobs := planPages(tree.Types, logger)
	pages := make([]string, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			content, err := TypePage(gctx, job.node, opts.BaseSlug)
			if err != nil {
				return err
			}
			rel := job.path
			if err := writePage(opts.OutputDir, rel, content, logger); err != nil {
				return err
			}
			pages[i] = rel
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, pages...)

	logger.Info("Rendered pages",
		logfields.Count(len(result.Files)),
		logfields.DurationMS(time.Since(start).Milliseconds()))
	return result, nil
}

type pageJob struct {
	node *doctree.Node
	path string
}

// planPages assigns every type its page path. When two types map to the same
// path (compared case-insensitively) the first in discovery order keeps it and
// the later one is skipped, so concurrent workers never race on a file.
func planPages(types []*doctree.Node, logger *slog.Logger) []pageJob {
	jobs := make([]pageJob, 0, len(types))
	owners := make(map[string]string, len(types))
	for _, node := range types {
		rel := TypePagePath(node)
		key := strings.ToLower(rel)
		if owner, taken := owners[key]; taken {
			logger.Warn("Duplicate page path, keeping first type",
				logfields.UID(node.UID), logfields.Path(rel), slog.String("kept", owner))
			continue
		}
		owners[key] = node.UID
		jobs = append(jobs, pageJob{node: node, path: rel})
	}
	return jobs
}

// TypePagePath is the output path of a type page relative to the output
// directory: <assembly>/<FullName>.md.
func TypePagePath(node *doctree.Node) string {
	name := node.FullName
	if name == "" {
		name = node.UID
	}
	return filepath.Join(node.Assembly, name+".md")
}

// Clear removes everything inside dir, leaving dir itself. A missing dir is
// not an error.
func Clear(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read output directory: %w", err)
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("clear output directory: %w", err)
		}
	}
	return nil
}

func writePage(root, rel, content string, logger *slog.Logger) error {
	path := filepath.Join(root, rel)
	if err := atomicWrite(path, []byte(content)); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	logger.Debug("Wrote page", logfields.Path(rel))
	return nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.md")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
