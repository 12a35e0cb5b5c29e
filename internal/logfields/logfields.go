// Package logfields holds the canonical slog attribute keys used across docfx2astro.
package logfields

import "log/slog"

// Canonical log field names.
const (
	KeyFile       = "file"
	KeyUID        = "uid"
	KeyAssembly   = "assembly"
	KeyPath       = "path"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

func File(path string) slog.Attr     { return slog.String(KeyFile, path) }
func UID(uid string) slog.Attr       { return slog.String(KeyUID, uid) }
func Assembly(name string) slog.Attr { return slog.String(KeyAssembly, name) }
func Path(p string) slog.Attr        { return slog.String(KeyPath, p) }
func Count(n int) slog.Attr          { return slog.Int(KeyCount, n) }
func DurationMS(ms int64) slog.Attr  { return slog.Int64(KeyDurationMS, ms) }

// Error returns the error attribute; a nil error yields an empty value.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
