package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var ptrCmd = &cobra.Command{
	Use:   "ptr [n]",
	Short: "Print the pointer, or move it to n",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		if len(args) == 0 {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), rt.Service.Pointer())
			return err
		}

		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid pointer %q: must be an integer", args[0])
		}
		return rt.Service.SetPointer(cmd.Context(), n)
	},
}

func init() {
	rootCmd.AddCommand(ptrCmd)
}
