// Package main provides the fundgraph server entry point.
package main

import (
	"fmt"
	"os"

	"fundgraph/internal/config"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fundgraph",
	Short: "Investment fund similarity graph server",
	Long: `fundgraph collects investment fund records from a web form and connects
funds that share a manager, launch year, fund type or open/closed status.

The browser UI talks to the JSON API and receives live updates over
Server-Sent Events.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: search $FUNDGRAPH_CONFIG, ./fundgraph.yaml, ~/.config/fundgraph, /etc/fundgraph)")
	rootCmd.Version = Version

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "fundgraph", Version)
	},
}

// loadConfig honors --config, falling back to the search order
func loadConfig() (*config.Config, string, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	return config.Load()
}
