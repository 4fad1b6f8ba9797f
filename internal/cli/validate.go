package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/editkit/internal/logging"
	"github.com/yaklabco/editkit/internal/ui/pretty"
	"github.com/yaklabco/editkit/pkg/textfmt"
)

type validateFlags struct {
	format string
}

func newValidateCommand() *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate JSON or YAML text",
		Long: `Validate JSON or YAML text and report the first syntax error with its
line and column.

Examples:
  editkit validate config.json
  cat data.yaml | editkit validate --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "input format: auto, json, yaml")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, flags *validateFlags) error {
	logger := logging.Default()

	data, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	text := string(data)

	format, err := conversionFormat(flags.format, data)
	if err != nil {
		return err
	}

	if verr := textfmt.ValidateWithError(text, format); verr != nil {
		logger.Debug("validation failed",
			logging.FieldInput, name,
			logging.FieldLine, verr.Line,
			logging.FieldColumn, verr.Column,
		)
		printValidationError(cmd, name, text, verr)
		return ErrValidationFailed
	}

	colorMode, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))
	fmt.Fprint(cmd.OutOrStdout(), styles.FormatValid(name, string(format)))
	return nil
}
