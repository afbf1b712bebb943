package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mojibox/mojibox/pkg/escape"
)

// escapeCmd represents the escape command
var escapeCmd = &cobra.Command{
	Use:   "escape <text>",
	Short: "Escape every character as a unicode escape sequence",
	Long: `Escape every character of text as a unicode escape sequence.

The default format writes one \u{HEX} token per codepoint. The json
format writes JSON-compatible \uHHHH units, splitting supplementary
characters into surrogate pairs.

Example:
  mojibox escape 🍣
  mojibox escape --format json 🍣`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		if formatName == "" {
			formatName = cfg.Escape.Format
		}
		format, err := escape.ParseFormat(formatName)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), escape.Escape(args[0], format))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(escapeCmd)
	escapeCmd.Flags().String("format", "", "Escape format: default or json")
}
