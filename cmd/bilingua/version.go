package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/bilingua"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bilingua",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bilingua version %s\n", strings.TrimSpace(bilingua.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
