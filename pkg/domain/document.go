package domain

import (
	"regexp"
	"strings"
)

// paragraphBreak matches a whitespace run holding at least two newlines.
var paragraphBreak = regexp.MustCompile(`\n[ \t\n\x0B\f\r]*\n`)

// Document is an ordered sequence of paragraphs; insertion order is reading order.
type Document []string

// SplitParagraphs segments content into paragraphs.
//
// Content without any paragraph break is a single paragraph (so an empty file
// yields one empty paragraph). Empty paragraphs left by trailing breaks are dropped.
func SplitParagraphs(content string) Document {
	parts := paragraphBreak.Split(content, -1)
	if len(parts) == 1 {
		return Document(parts)
	}
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return Document(parts)
}

// Join renders the document back to file content.
// Runs of blank lines longer than one are normalized to exactly one.
func (d Document) Join() string {
	return strings.Join(d, ParagraphSeparator)
}

// Len returns the number of paragraphs.
func (d Document) Len() int {
	return len(d)
}

// At returns the paragraph at index, or "" when index is out of range.
func (d Document) At(index int) string {
	if index < 0 || index >= len(d) {
		return ""
	}
	return d[index]
}

// Replace sets the paragraph at index to text and reports whether anything changed.
// Out-of-range indexes are a no-op.
func (d Document) Replace(index int, text string) bool {
	if index < 0 || index >= len(d) {
		return false
	}
	if d[index] == text {
		return false
	}
	d[index] = text
	return true
}
