package main

import (
	"bytes"
	"testing"

	"github.com/aretw0/bilingua/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBooks(t *testing.T) string {
	return testutils.SetupDataDir(t, map[string]string{
		"en.txt": "One\n\nTwo",
		"es.txt": "Uno\n\nDos",
	})
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPointerCommand(t *testing.T) {
	dir := setupBooks(t)

	out, err := run(t, "ptr", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	_, err = run(t, "ptr", "--dir", dir, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", testutils.ReadFile(t, dir, "ptr.txt"))

	_, err = run(t, "ptr", "--dir", dir, "--", "-1")
	assert.Error(t, err)
	assert.Equal(t, "1", testutils.ReadFile(t, dir, "ptr.txt"))
}

func TestParsAndSaveCommands(t *testing.T) {
	dir := setupBooks(t)

	out, err := run(t, "pars", "--dir", dir, "--output", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"left":"One","right":"Uno"}`, out)

	_, err = run(t, "save", "--dir", dir, "--right", "Una")
	require.NoError(t, err)

	assert.Equal(t, "Una\n\nDos", testutils.ReadFile(t, dir, "es.txt"))
	assert.Equal(t, "One\n\nTwo", testutils.ReadFile(t, dir, "en.txt"))
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bilingua version ")
}

func TestMissingProperties(t *testing.T) {
	_, err := run(t, "ptr", "--dir", t.TempDir())
	assert.Error(t, err)
}
