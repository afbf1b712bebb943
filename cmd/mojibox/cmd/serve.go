/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mojibox/mojibox/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the mojibox REST API server. Every codec is exposed as a
JSON endpoint under /api/v1, with Prometheus metrics on /metrics.

Examples:
  mojibox serve
  mojibox serve --bind 0.0.0.0 --port 9000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bind, _ := cmd.Flags().GetString("bind")
		if bind == "" {
			bind = cfg.Server.Bind
		}
		port, _ := cmd.Flags().GetInt("port")
		if !cmd.Flags().Changed("port") {
			port = cfg.Server.Port
		}

		return api.StartServer(api.ServerConfig{Bind: bind, Port: port})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("bind", "", "Address to bind to")
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
}
