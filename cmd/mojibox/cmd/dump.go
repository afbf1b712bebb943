package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mojibox/mojibox/pkg/dump"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <text>",
	Short: "Inspect text cluster by cluster",
	Long: `Inspect text grapheme cluster by grapheme cluster, showing each
codepoint's number, UTF-8 bytes, and Unicode name.

Example:
  mojibox dump "が🍣"
  mojibox dump --format json "が🍣"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		if formatName == "" {
			formatName = cfg.Dump.Format
		}
		format, err := dump.ParseFormat(formatName)
		if err != nil {
			return err
		}
		_, engine, err := segmentFlags(cmd)
		if err != nil {
			return err
		}

		clusters := dump.Inspect(args[0], engine, dump.RuneNames{})
		out, err := dump.Render(clusters, format)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().String("format", "", "Output format: text, json, or jsonl")
	dumpCmd.Flags().String("engine", "", "Grapheme segmentation engine")
}
