package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/editkit/internal/logging"
	"github.com/yaklabco/editkit/pkg/highlight"
	"github.com/yaklabco/editkit/pkg/langdetect"
)

type highlightFlags struct {
	format        string
	nestedJSON    bool
	colorSwatches bool
	output        string
}

func newHighlightCommand() *cobra.Command {
	flags := &highlightFlags{}

	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Highlight code as editor HTML",
		Long: `Highlight code as the HTML span markup the editor renders.

Reads from a file or stdin. With --format auto the language is detected
from the content.

Examples:
  editkit highlight config.json                 # Highlight a JSON file
  cat app.yaml | editkit highlight              # Detect format from stdin
  editkit highlight --format bash deploy.sh     # Force a format
  editkit highlight --nested-json events.json   # Expandable embedded JSON
  editkit highlight --color-swatches theme.css  # Hex color previews`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto",
		"input format: auto, json, yaml, bash, javascript, typescript, css, html, vue, text")
	cmd.Flags().BoolVar(&flags.nestedJSON, "nested-json", false,
		"wrap embedded JSON strings in expandable toggles")
	cmd.Flags().BoolVar(&flags.colorSwatches, "color-swatches", false,
		"wrap hex colors in swatch preview spans")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to file")

	return cmd
}

func runHighlight(cmd *cobra.Command, args []string, flags *highlightFlags) error {
	logger := logging.Default()

	data, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	format := langdetect.FormatFor(flags.format)
	if flags.format == "auto" || flags.format == "" {
		format = langdetect.FormatFor(langdetect.Detect(data))
	}

	logger.Debug("highlighting input",
		logging.FieldInput, name,
		logging.FieldFormat, string(format),
	)

	html := highlight.Highlight(string(data), highlight.Options{
		Format:        format,
		NestedJSON:    flags.nestedJSON,
		ColorSwatches: flags.colorSwatches,
	})

	return writeOutput(cmd, flags.output, html)
}
