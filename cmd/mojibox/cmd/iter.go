package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mojibox/mojibox/pkg/segment"
)

// segmentFlags resolves the shared --mode and --engine flags against
// the configured defaults.
func segmentFlags(cmd *cobra.Command) (segment.Mode, segment.Engine, error) {
	modeName, _ := cmd.Flags().GetString("mode")
	if modeName == "" {
		modeName = cfg.Segment.Mode
	}
	mode, err := segment.ParseMode(modeName)
	if err != nil {
		return mode, nil, err
	}

	engineName, _ := cmd.Flags().GetString("engine")
	if engineName == "" {
		engineName = cfg.Segment.Engine
	}
	engine, err := segment.ParseEngine(engineName)
	if err != nil {
		return mode, nil, err
	}
	return mode, engine, nil
}

func addSegmentFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", "", "Segmentation mode: grapheme, codepoint, or byte")
	cmd.Flags().String("engine", "", "Grapheme segmentation engine")
}

// iterCmd represents the iter command
var iterCmd = &cobra.Command{
	Use:   "iter <text>",
	Short: "Print the segments of text one per line",
	Long: `Split text into segments and print one per line. The default
mode splits on grapheme cluster boundaries; codepoint and byte modes
split finer.

Example:
  mojibox iter "が🍣"
  mojibox iter --mode codepoint "が🍣"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, engine, err := segmentFlags(cmd)
		if err != nil {
			return err
		}

		for _, seg := range segment.Iter(args[0], mode, engine) {
			fmt.Fprintln(cmd.OutOrStdout(), seg)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(iterCmd)
	addSegmentFlags(iterCmd)
}
