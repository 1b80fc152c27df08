package cli

import (
	"bytes"
	"testing"

	"github.com/aretw0/bilingua/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintPair_Formats(t *testing.T) {
	pair := domain.ParagraphPair{Left: "Hello", Right: "Hola"}

	tests := []struct {
		format string
		want   string
	}{
		{FormatJSON, "{\n  \"left\": \"Hello\",\n  \"right\": \"Hola\"\n}\n"},
		{FormatYAML, "left: Hello\nright: Hola\n"},
		{FormatText, "Hello\n----------------------------------------\nHola\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, PrintPair(&buf, tt.format, 0, pair))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrint_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, "xml", 1)
	assert.Error(t, err)
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
