/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mojibox/mojibox/pkg/config"
)

// cfg holds the active configuration. It is populated in
// PersistentPreRunE so every subcommand sees the same defaults.
var cfg = config.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mojibox",
	Short: "mojibox - Unicode text conversion toolbox",
	Long: `mojibox converts text between bytes, hex dumps, escape sequences
and codepoint lists, segments it into grapheme clusters, and repairs
broken UTF-8 with replacement characters.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			defaultPath := config.GetDefaultConfigPath()
			if !config.ConfigExists(defaultPath) {
				cfg = config.DefaultConfig()
				return nil
			}
			path = defaultPath
		}
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default is ~/.config/mojibox/config.yaml)")
}
