// Package cli wires the terma command tree: prompt execution, configuration
// management, and the hidden agent subcommand the launcher re-execs.
package cli

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var logLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "terma",
	Short: "Terma - natural language to shell commands",
	Long: `Terma turns a natural-language request into a single shell command
using a configured AI provider. A background agent keeps the provider
client warm between invocations and shuts itself down when idle.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
}
