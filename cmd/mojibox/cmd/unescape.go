package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mojibox/mojibox/pkg/escape"
)

// unescapeCmd represents the unescape command
var unescapeCmd = &cobra.Command{
	Use:   "unescape <text>",
	Short: "Replace unicode escape sequences with their characters",
	Long: `Replace every \u{HEX} and \uHHHH escape sequence in text with
the character it names. Surrogate pairs are combined; malformed escapes
degrade to U+FFFD instead of failing.

Example:
  mojibox unescape 'sushi \u{1F363}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), escape.Unescape(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unescapeCmd)
}
