package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ColorMode is the value of the --color flag.
type ColorMode string

// Recognized color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// envNoColor turns color off in auto mode when set to any non-empty value.
const envNoColor = "NO_COLOR"

// ParseColorMode validates a --color value. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return ColorAuto, fmt.Errorf("invalid --color value %q (want auto, always or never)", s)
	}
}

// Enabled reports whether output written to w should be styled.
// Auto styles terminals only, and never when NO_COLOR is set.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		if os.Getenv(envNoColor) != "" {
			return false
		}
		return IsTTY(w)
	}
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
