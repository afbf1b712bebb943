package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mojibox/mojibox/pkg/codepoint"
)

// ordCmd represents the ord command
var ordCmd = &cobra.Command{
	Use:   "ord <text>",
	Short: "List the codepoints of text as hex numbers",
	Long: `List the Unicode codepoints of text as hexadecimal numbers,
one token per codepoint.

Example:
  mojibox ord あ🍣
  mojibox ord --lower --no-0x あ🍣`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lower, _ := cmd.Flags().GetBool("lower")
		noPrefix, _ := cmd.Flags().GetBool("no-0x")

		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(codepoint.Ord(args[0], lower, noPrefix), " "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ordCmd)
	ordCmd.Flags().Bool("lower", false, "Emit lowercase hex digits")
	ordCmd.Flags().Bool("no-0x", false, "Omit the 0x prefix")
}
