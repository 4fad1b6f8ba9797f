// Package cli provides the Cobra command structure for editkit.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/editkit/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root editkit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "editkit",
		Short: "Markdown editing toolkit: highlight, convert, render, extract",
		Long: `editkit is the command-line face of a rich-text markdown editing toolkit.

It highlights code in the formats the editor renders (JSON, YAML, Bash,
JavaScript, TypeScript, CSS, HTML), validates and converts structured text
between JSON and YAML, renders markdown to editor HTML with interactive
code block wrappers, and extracts edited HTML back to markdown.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newHighlightCommand())
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
