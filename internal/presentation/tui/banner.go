package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the Bilingua banner.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  ___ _ _ _                     ", "#818cf8"},
		{" | _ |_) (_)_ _  __ _ _  _ __ _ ", "#a78bfa"},
		{" | _ \\ | | | ' \\/ _` | || / _` |", "#c084fc"},
		{" |___/_|_|_|_||_\\__, |\\_,_\\__,_|", "#e879f9"},
		{"                |___/           ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
