package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/editkit/pkg/fsutil"
)

// readInput returns the content of the file argument, or stdin when no
// argument (or "-") is given, plus a display name for diagnostics.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return data, args[0], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, "", fmt.Errorf("read stdin: %w", err)
	}
	return data, "stdin", nil
}

// writeOutput writes content to the --output path, or the command's
// stdout with a trailing newline. The output path may be the input
// file itself (in-place conversion), so file writes are atomic.
func writeOutput(cmd *cobra.Command, outputPath, content string) error {
	if outputPath != "" {
		if err := fsutil.WriteAtomic(cmd.Context(), outputPath, []byte(content), 0); err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}
		return nil
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), content)
	return err
}

// terminalWidth returns the stdout width, or a sane default when not
// attached to a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 100
}

// sourceLineAt returns the numbered line of text, truncated to width.
func sourceLineAt(text string, line, width int) string {
	if line < 1 {
		return ""
	}
	lines := strings.Split(text, "\n")
	if line > len(lines) {
		return ""
	}
	src := lines[line-1]
	if width > 3 && len(src) > width {
		src = src[:width-3] + "..."
	}
	return src
}
