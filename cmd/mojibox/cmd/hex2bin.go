package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mojibox/mojibox/pkg/hexcodec"
)

// hex2binCmd represents the hex2bin command
var hex2binCmd = &cobra.Command{
	Use:   "hex2bin <hex>",
	Short: "Decode a hex dump back into text",
	Long: `Decode hexadecimal back into UTF-8 text. The surface format
(plain, spaced, or \x-escaped) is detected automatically.

Example:
  mojibox hex2bin "F0 9F 8D A3"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := hexcodec.Decode(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hex2binCmd)
}
