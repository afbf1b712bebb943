package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mojibox/mojibox/pkg/segment"
)

// lenCmd represents the len command
var lenCmd = &cobra.Command{
	Use:   "len <text>",
	Short: "Count the segments of text",
	Long: `Count the segments of text. The default mode counts grapheme
clusters, which is usually what a human would call the length.

Example:
  mojibox len "👨‍💻"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, engine, err := segmentFlags(cmd)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), segment.Count(args[0], mode, engine))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lenCmd)
	addSegmentFlags(lenCmd)
}
