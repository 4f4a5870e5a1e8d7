package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strattonbrazil/aqsis/internal/ri"
	"github.com/strattonbrazil/aqsis/internal/ribout"
	"github.com/strattonbrazil/aqsis/internal/ribparse"
)

// FmtOptions holds flags for the fmt command.
type FmtOptions struct {
	*RootOptions
	Write bool
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FmtOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fmt <file.rib>...",
		Short: "Reformat RIB files",
		Long: `Parse RIB scene files and print them back in canonical form:
one request per line, nested blocks indented, numbers in their shortest
form. No filter stages run, so the stream content is unchanged.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "rewrite files in place instead of printing")

	return cmd
}

func runFmt(opts *FmtOptions, files []string, cmd *cobra.Command) error {
	streamErrs := 0
	for _, input := range files {
		src, err := os.ReadFile(input)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read input", err)
		}

		var buf bytes.Buffer
		sink := ribout.NewWriter(&buf)
		capture := &ri.CaptureHandler{}
		parseErr := ribparse.Parse(bytes.NewReader(src), sink,
			ribparse.WithErrorHandler(capture),
			ribparse.WithFileName(input))
		if parseErr != nil && capture.Count() == 0 {
			return WrapExitError(ExitCommandError, "failed to parse input", parseErr)
		}
		if err := sink.Err(); err != nil {
			return WrapExitError(ExitCommandError, "failed to format", err)
		}
		for _, e := range capture.Errors() {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d: %s: %s\n", e.File, e.Line, e.Code, e.Message)
		}
		streamErrs += capture.Count()

		if opts.Write {
			// Preserve the file's permission bits where possible.
			mode := os.FileMode(0o644)
			if info, err := os.Stat(input); err == nil {
				mode = info.Mode().Perm()
			}
			if err := os.WriteFile(input, buf.Bytes(), mode); err != nil {
				return WrapExitError(ExitCommandError, "failed to rewrite input", err)
			}
		} else {
			if _, err := buf.WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}
		}
	}

	if streamErrs > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d stream error(s)", streamErrs))
	}
	return nil
}
