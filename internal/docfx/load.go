package docfx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/docfx2astro/internal/logfields"
)

const tocFileName = "toc.yml"

// ErrNoInput is returned by Discover when the input root holds no metadata files.
var ErrNoInput = errors.New("no .yml files found in the input directory")

// ParseError reports a metadata file that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

// Unwrap returns the decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Discover recursively lists the .yml files under root, excluding toc.yml
// (matched case-insensitively). Files are returned in lexical walk order.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".yml") {
			return nil
		}
		if strings.EqualFold(d.Name(), tocFileName) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan input directory %s: %w", root, err)
	}
	if len(files) == 0 {
		return nil, ErrNoInput
	}
	return files, nil
}

// LoadOptions controls LoadAll.
type LoadOptions struct {
	// SkipInvalid logs and skips files that fail to parse instead of aborting.
	SkipInvalid bool
	Logger      *slog.Logger
}

// LoadStats counts what LoadAll did.
type LoadStats struct {
	Total   int
	Parsed  int
	Skipped int
}

// Load parses a single metadata file. An empty file yields an empty Document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes metadata content; path is only used in the error.
func Parse(path string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &doc, nil
}

// LoadAll parses files in order, checking ctx between files.
func LoadAll(ctx context.Context, files []string, opts LoadOptions) ([]*Document, LoadStats, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	stats := LoadStats{Total: len(files)}
	docs := make([]*Document, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		logger.Debug("Reading file", logfields.File(filepath.Base(file)))
		doc, err := Load(file)
		if err != nil {
			var parseErr *ParseError
			if opts.SkipInvalid && errors.As(err, &parseErr) {
				logger.Warn("Skipping invalid file", logfields.File(file), logfields.Error(parseErr.Err))
				stats.Skipped++
				continue
			}
			return nil, stats, err
		}
		docs = append(docs, doc)
		stats.Parsed++
	}
	return docs, stats, nil
}

// Items flattens the items of docs in load order.
func Items(docs []*Document) []Item {
	n := 0
	for _, doc := range docs {
		n += len(doc.Items)
	}
	items := make([]Item, 0, n)
	for _, doc := range docs {
		items = append(items, doc.Items...)
	}
	return items
}
