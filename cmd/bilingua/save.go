package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the paragraph pair at the pointer",
	Long: `Replaces the paragraphs at the pointer. A side whose flag is not given keeps
its current text, so only that book is left untouched on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("left") && !cmd.Flags().Changed("right") {
			return errors.New("nothing to save: set --left, --right or both")
		}

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		pair := rt.Service.Pair(0)
		if cmd.Flags().Changed("left") {
			pair.Left, _ = cmd.Flags().GetString("left")
		}
		if cmd.Flags().Changed("right") {
			pair.Right, _ = cmd.Flags().GetString("right")
		}
		return rt.Service.Save(cmd.Context(), pair)
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().String("left", "", "New text of the left paragraph")
	saveCmd.Flags().String("right", "", "New text of the right paragraph")
}
