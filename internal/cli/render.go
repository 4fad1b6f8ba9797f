package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/editkit/internal/logging"
	"github.com/yaklabco/editkit/pkg/mdsync"
)

type renderFlags struct {
	output string
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render markdown to editor HTML",
		Long: `Render markdown to the HTML the editing surface loads.

Fenced code blocks become interactive wrapper elements carrying stable
ids; fences without a language tag get one detected from their content.

Examples:
  editkit render README.md
  cat notes.md | editkit render -o notes.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to file")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	logger := logging.Default()

	data, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	renderer := mdsync.NewRenderer(nil, nil)
	html, err := renderer.RenderHTML(string(data))
	if err != nil {
		return err
	}

	logger.Debug("rendered markdown",
		logging.FieldInput, name,
		logging.FieldMarkdownBytes, len(data),
		logging.FieldHTMLBytes, len(html),
		logging.FieldCodeBlocks, renderer.Registry().Len(),
	)

	return writeOutput(cmd, flags.output, html)
}
