package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/bilingua/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// PairMarkdown lays out a paragraph pair for terminal display.
func PairMarkdown(index int, pair domain.ParagraphPair) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Paragraph %d\n\n", index)
	writeSide(&b, domain.Left, pair.Left)
	b.WriteString("\n---\n\n")
	writeSide(&b, domain.Right, pair.Right)
	return b.String()
}

func writeSide(b *strings.Builder, side domain.Side, text string) {
	fmt.Fprintf(b, "**%s**\n\n", side)
	if text == "" {
		b.WriteString("_(no paragraph)_\n")
		return
	}
	b.WriteString(text)
	b.WriteString("\n")
}

// PairText is the plain-text layout used when stdout is not a terminal.
func PairText(pair domain.ParagraphPair) string {
	return pair.Left + "\n" + strings.Repeat("-", 40) + "\n" + pair.Right + "\n"
}
