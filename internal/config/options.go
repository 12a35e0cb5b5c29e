package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Environment variables read by docfx2astro.
const (
	EnvConfigHome = "DOCFX2ASTRO_CONFIG_HOME"
	EnvBaseSlug   = "DOCFX2ASTRO_BASE_SLUG"
	EnvWorkers    = "DOCFX2ASTRO_WORKERS"
)

// DefaultBaseSlug is the slug segment every generated page is placed under.
const DefaultBaseSlug = "reference"

// Options are the settings of a generate run.
type Options struct {
	InputDir  string
	OutputDir string
	BaseSlug  string
	// DontClear keeps existing files in OutputDir.
	DontClear bool
	Verbose   bool
	Workers   int
	// SkipInvalid logs unparseable input files and continues without them.
	SkipInvalid bool
	CheckLinks  bool
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{
		BaseSlug: DefaultBaseSlug,
		Workers:  runtime.NumCPU(),
	}
}

// ApplyEnv overrides the base slug and worker count from the environment.
// lookup is usually os.LookupEnv. Empty values are ignored.
func (o *Options) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBaseSlug); ok && strings.TrimSpace(v) != "" {
		o.BaseSlug = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvWorkers); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", EnvWorkers, v)
		}
		o.Workers = n
	}
	return nil
}

// Validate reports the first problem that would make a run meaningless.
func (o Options) Validate() error {
	if strings.TrimSpace(o.InputDir) == "" {
		return errors.New("an input directory is required (--input)")
	}
	if strings.TrimSpace(o.OutputDir) == "" {
		return errors.New("an output directory is required (--output)")
	}
	if o.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", o.Workers)
	}
	in, err := filepath.Abs(o.InputDir)
	if err != nil {
		return fmt.Errorf("resolve input directory: %w", err)
	}
	out, err := filepath.Abs(o.OutputDir)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}
	if in == out {
		return errors.New("input and output directories must differ")
	}
	return nil
}
