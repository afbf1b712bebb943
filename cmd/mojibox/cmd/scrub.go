package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mojibox/mojibox/pkg/scrub"
)

// scrubCmd represents the scrub command
var scrubCmd = &cobra.Command{
	Use:   "scrub <input>",
	Short: "Repair broken UTF-8 with replacement characters",
	Long: `Convert possibly-invalid UTF-8 into valid UTF-8, substituting
U+FFFD for each maximal invalid subpart.

With --input-format hex the argument is a hex dump (any surface
format), letting you scrub byte sequences a shell cannot pass.

Example:
  mojibox scrub --input-format hex "61 FF 62"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("input-format")
		if formatName == "" {
			formatName = cfg.Scrub.InputFormat
		}
		format, err := scrub.ParseSourceFormat(formatName)
		if err != nil {
			return err
		}

		text, err := scrub.Scrub(args[0], format)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scrubCmd)
	scrubCmd.Flags().String("input-format", "", "Input format: binary or hex")
}
