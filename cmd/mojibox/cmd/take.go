package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mojibox/mojibox/pkg/segment"
)

// takeCmd represents the take command
var takeCmd = &cobra.Command{
	Use:   "take <n> <text>",
	Short: "Keep the first n segments of text",
	Long: `Keep the first n segments of text and print them as a string.
Asking for more segments than exist returns the whole text.

Example:
  mojibox take 2 "sushi🍣"`,
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

		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(segment.Take(args[1], mode, engine, n), ""))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(takeCmd)
	addSegmentFlags(takeCmd)
}
