package cli

import (
	"context"
	"testing"

	"github.com/aretw0/bilingua/internal/testutils"
	"github.com/aretw0/bilingua/pkg/domain"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dir := testutils.SetupDataDir(t, map[string]string{"en.txt": "Hi"})

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Parse([]string{"--log-level", "error"}))

	rt, err := Open(context.Background(), dir, flags)
	require.NoError(t, err)
	defer rt.Close()

	assert.Equal(t, "error", rt.Config.LogLevel)
	assert.Equal(t, domain.ParagraphPair{Left: "Hi"}, rt.Service.Pair(0))
	assert.NotNil(t, rt.Metrics.Handler())
}

func TestOpen_BadLogLevel(t *testing.T) {
	dir := testutils.SetupDataDir(t, map[string]string{"bilingua.yaml": "log_level: loud\n"})

	_, err := Open(context.Background(), dir, nil)
	assert.Error(t, err)
}
