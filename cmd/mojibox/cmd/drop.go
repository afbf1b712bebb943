package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mojibox/mojibox/pkg/segment"
)

// dropCmd represents the drop command
var dropCmd = &cobra.Command{
	Use:   "drop <n> <text>",
	Short: "Remove the first n segments of text",
	Long: `Remove the first n segments of text and print the rest as a
string. Dropping more segments than exist returns an empty string.

Example:
  mojibox drop 5 "sushi🍣"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid segment count %q", args[0])
		}
		mode, engine, err := segmentFlags(cmd)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(segment.Drop(args[1], mode, engine, n), ""))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dropCmd)
	addSegmentFlags(dropCmd)
}
