package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/bilingua/internal/presentation/tui"
	"github.com/aretw0/bilingua/pkg/domain"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Print writes v in the requested format. Text falls back to fmt's default form.
func Print(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		_, err := fmt.Fprintln(w, v)
		return err
	default:
		return fmt.Errorf("unknown output format %q (supported: text, json, yaml)", format)
	}
}

// PrintPair writes a paragraph pair. Text output is rendered as markdown on a
// terminal and as plain text otherwise (pipes, files).
func PrintPair(w io.Writer, format string, index int, pair domain.ParagraphPair) error {
	if format != FormatText && format != "" {
		return Print(w, format, pair)
	}

	if !IsTerminal(w) {
		_, err := io.WriteString(w, tui.PairText(pair))
		return err
	}

	out, err := tui.NewRenderer()(tui.PairMarkdown(index, pair))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
