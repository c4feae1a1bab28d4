// Package cli provides the Cobra command structure for gomdparse.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdparse/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Persistent flag names.
const (
	flagDebug  = "debug"
	flagConfig = "config"
	flagColor  = "color"
)

// NewRootCommand creates the root gomdparse command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "gomdparse",
		Short: "A configurable CommonMark and GFM parser",
		Long: `gomdparse parses CommonMark and GitHub Flavored Markdown (GFM) into a typed
document tree and renders it back out as HTML or canonical Markdown.

Every block and inline construct can be parsed, ignored (left as text),
skipped (dropped) or rewritten through configuration, so the same parser
serves strict dialects, lenient previews and document normalisation.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, flagDebug, false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, flagConfig, "", "path to config file")
	rootCmd.PersistentFlags().String(flagColor, "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newHTMLCommand())
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newTreeCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	applyHelp(rootCmd)

	return rootCmd
}
