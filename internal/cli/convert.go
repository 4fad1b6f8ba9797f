package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/editkit/internal/logging"
	"github.com/yaklabco/editkit/internal/ui/pretty"
	"github.com/yaklabco/editkit/pkg/highlight"
	"github.com/yaklabco/editkit/pkg/langdetect"
	"github.com/yaklabco/editkit/pkg/textfmt"
)

// ErrValidationFailed signals the exit code; the diagnostic has
// already been printed.
var ErrValidationFailed = errors.New("validation failed")

type convertFlags struct {
	from   string
	to     string
	output string
}

func newConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert structured text between JSON and YAML",
		Long: `Convert structured text between JSON and YAML.

The input is validated first; conversion preserves the parsed value and
pretty-prints it in the target format with two-space indentation.

Examples:
  editkit convert --to yaml config.json    # JSON file to YAML
  cat data.yaml | editkit convert --to json
  editkit convert --from yaml --to yaml x.yaml   # Normalize in place`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.from, "from", "auto", "input format: auto, json, yaml")
	cmd.Flags().StringVar(&flags.to, "to", "", "output format: json, yaml (required)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to file")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, flags *convertFlags) error {
	logger := logging.Default()

	data, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	text := string(data)

	from, err := conversionFormat(flags.from, data)
	if err != nil {
		return err
	}
	to, err := conversionFormat(flags.to, nil)
	if err != nil {
		return err
	}

	if verr := textfmt.ValidateWithError(text, from); verr != nil {
		printValidationError(cmd, name, text, verr)
		return ErrValidationFailed
	}

	logger.Debug("converting input",
		logging.FieldInput, name,
		logging.FieldFrom, string(from),
		logging.FieldTo, string(to),
	)

	converted, err := textfmt.Convert(text, from, to)
	if err != nil {
		return fmt.Errorf("convert %s to %s: %w", from, to, err)
	}

	return writeOutput(cmd, flags.output, converted)
}

// conversionFormat resolves a --from/--to flag value. Auto detection
// only applies when content is available.
func conversionFormat(flag string, content []byte) (highlight.Format, error) {
	switch flag {
	case "json":
		return highlight.FormatJSON, nil
	case "yaml", "yml":
		return highlight.FormatYAML, nil
	case "auto", "":
		if content == nil {
			return "", errors.New("format must be json or yaml")
		}
		detected := langdetect.FormatFor(langdetect.Detect(content))
		if detected != highlight.FormatJSON && detected != highlight.FormatYAML {
			return "", fmt.Errorf("cannot detect a convertible format, pass --from")
		}
		return detected, nil
	default:
		return "", fmt.Errorf("unsupported format %q: want json or yaml", flag)
	}
}

// printValidationError renders a positioned validation diagnostic to
// stderr.
func printValidationError(cmd *cobra.Command, name, text string, verr *textfmt.ValidationError) {
	colorMode, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stderr))

	source := sourceLineAt(textfmt.StripFence(text), verr.Line, terminalWidth())
	fmt.Fprint(cmd.ErrOrStderr(), styles.FormatValidationError(name, verr, true, source))
}
