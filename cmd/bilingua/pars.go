package main

import (
	"github.com/aretw0/bilingua/internal/cli"
	"github.com/spf13/cobra"
)

var parsCmd = &cobra.Command{
	Use:   "pars",
	Short: "Print the paragraph pair at the pointer",
	RunE: func(cmd *cobra.Command, args []string) error {
		shift, _ := cmd.Flags().GetInt("shift")
		output, _ := cmd.Flags().GetString("output")

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		index := rt.Service.Pointer() + shift
		return cli.PrintPair(cmd.OutOrStdout(), output, index, rt.Service.Pair(shift))
	},
}

func init() {
	rootCmd.AddCommand(parsCmd)
	parsCmd.Flags().Int("shift", 0, "Offset from the pointer")
	parsCmd.Flags().StringP("output", "o", cli.FormatText, "Output format: text, json, yaml")
}
