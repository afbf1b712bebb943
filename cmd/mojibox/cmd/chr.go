package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mojibox/mojibox/pkg/codepoint"
)

// chrCmd represents the chr command
var chrCmd = &cobra.Command{
	Use:   "chr <codepoint>...",
	Short: "Build a string from hex codepoints",
	Long: `Build a string from one or more hexadecimal codepoints. The 0x
prefix is optional; the whole command fails if any token is malformed
or out of range.

Example:
  mojibox chr 0x3042 0x1F363`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := codepoint.Chr(args)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chrCmd)
}
