package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/grammar-engine/pkg/types"
)

var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "List the recognized operation names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, op := range types.Operations {
			fmt.Fprintln(cmd.OutOrStdout(), op)
		}
	},
}

func init() {
	rootCmd.AddCommand(operationsCmd)
}
