package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/editkit/internal/logging"
	"github.com/yaklabco/editkit/pkg/dom"
	"github.com/yaklabco/editkit/pkg/mdsync"
)

type extractFlags struct {
	output string
}

func newExtractCommand() *cobra.Command {
	flags := &extractFlags{}

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract markdown from editor HTML",
		Long: `Extract markdown from editor HTML.

Headings, lists, tables, blockquotes, inline emphasis, and code blocks
serialize back to markdown syntax; cursor anchor characters are
stripped.

Examples:
  editkit extract page.html
  editkit render doc.md | editkit extract    # Round trip`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to file")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string, flags *extractFlags) error {
	logger := logging.Default()

	data, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	container := dom.ParseContainer(string(data))
	markdown := mdsync.NewExtractor(nil, nil).Extract(container)

	logger.Debug("extracted markdown",
		logging.FieldInput, name,
		logging.FieldHTMLBytes, len(data),
		logging.FieldMarkdownBytes, len(markdown),
	)

	return writeOutput(cmd, flags.output, markdown)
}
