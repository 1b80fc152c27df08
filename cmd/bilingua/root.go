package main

import (
	"fmt"
	"os"

	"github.com/aretw0/bilingua/internal/cli"
	"github.com/aretw0/bilingua/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bilingua",
	Short: "Bilingua keeps two parallel books aligned paragraph by paragraph",
	Long: `Bilingua serves a left-language and a right-language book split into paragraphs,
with one shared pointer marking the pair being read or edited.

The data directory holds bi.properties (left_name, right_name), the two books
and ptr.txt. Settings can be overridden by bilingua.yaml in the same directory,
BILINGUA_* environment variables and the flags below.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("dir", "", "Data directory (default $BILINGUA_DIR or ~/Documents/pi/bilingua)")
	flags.String("backend", config.BackendFile, "Storage backend: 'file' or 'redis'")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("redis-addr", "localhost:6379", "Redis address (redis backend)")
	flags.String("redis-password", "", "Redis password (redis backend)")
	flags.Int("redis-db", 0, "Redis database (redis backend)")
	flags.String("redis-prefix", "bilingua:", "Key prefix (redis backend)")
	flags.Duration("lock-ttl", config.DefaultLockTTL, "Expiry of the shared books lock (redis backend)")
}

// openRuntime loads configuration and opens the books for cmd.
func openRuntime(cmd *cobra.Command) (*cli.Runtime, error) {
	dir, _ := cmd.Flags().GetString("dir")
	rt, err := cli.Open(cmd.Context(), dir, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("error initializing bilingua: %w", err)
	}
	return rt, nil
}
