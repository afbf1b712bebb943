package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mojibox/mojibox/pkg/hexcodec"
)

// bin2hexCmd represents the bin2hex command
var bin2hexCmd = &cobra.Command{
	Use:   "bin2hex <text>",
	Short: "Encode text as a hex dump",
	Long: `Encode the UTF-8 bytes of text as hexadecimal.

Example:
  mojibox bin2hex 🍣
  mojibox bin2hex --format spaced --lower 🍣`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lower, _ := cmd.Flags().GetBool("lower")
		if !cmd.Flags().Changed("lower") {
			lower = cfg.Hex.Lower
		}
		formatName, _ := cmd.Flags().GetString("format")
		if formatName == "" {
			formatName = cfg.Hex.Format
		}
		format, err := hexcodec.ParseFormat(formatName)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), hexcodec.Encode([]byte(args[0]), lower, format))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bin2hexCmd)
	bin2hexCmd.Flags().Bool("lower", false, "Emit lowercase hex digits")
	bin2hexCmd.Flags().String("format", "", "Output format: default, spaced, or escaped")
}
