package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Mode selects between styled and plain output.
type Mode int

const (
	// ModeAuto picks ModeRich or ModePlain from the output stream
	ModeAuto Mode = iota
	// ModeRich renders colors, tables and Markdown previews
	ModeRich
	// ModePlain renders unstyled text
	ModePlain
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeRich:
		return "rich"
	case ModePlain:
		return "plain"
	default:
		return "unknown"
	}
}

// ParseMode parses a --color style flag value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ModeAuto, nil
	case "rich", "always":
		return ModeRich, nil
	case "plain", "never":
		return ModePlain, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

// DetectMode decides whether output to f should be styled.
func DetectMode(f *os.File) Mode {
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	if f == nil || (!isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())) {
		return ModePlain
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return ModePlain
	}

	return ModeRich
}

// Resolve turns ModeAuto into a concrete mode for f.
func (m Mode) Resolve(f *os.File) Mode {
	if m == ModeAuto {
		return DetectMode(f)
	}
	return m
}

// ConfigureOutput sets pterm's process-wide styling for mode. Call it once
// per process, before any printer writes.
func ConfigureOutput(mode Mode) {
	if mode == ModeRich {
		pterm.EnableStyling()
		return
	}
	pterm.DisableStyling()
}
