package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/strattonbrazil/aqsis/internal/ri"
	"github.com/strattonbrazil/aqsis/internal/ribout"
	"github.com/strattonbrazil/aqsis/internal/ribparse"
	"github.com/strattonbrazil/aqsis/internal/rifilter"
)

// FilterOptions holds flags for the filter command.
type FilterOptions struct {
	*RootOptions
	Output string
	Chain  string
	Watch  bool
}

// FilterResult summarizes one filter run for CLI output.
type FilterResult struct {
	RunID        string       `json:"run_id"`
	Files        []FileResult `json:"files"`
	StreamErrors int          `json:"stream_errors"`
}

// FileResult reports one input file's outcome.
type FileResult struct {
	Input        string `json:"input"`
	Output       string `json:"output"`
	StreamErrors int    `json:"stream_errors"`
}

func (r FilterResult) String() string {
	var b strings.Builder
	for _, f := range r.Files {
		fmt.Fprintf(&b, "%s -> %s", f.Input, f.Output)
		if f.StreamErrors > 0 {
			fmt.Fprintf(&b, " (%d stream errors)", f.StreamErrors)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%d file(s), %d stream error(s)", len(r.Files), r.StreamErrors)
	return b.String()
}

// NewFilterCommand creates the filter command.
func NewFilterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FilterOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "filter <file.rib>...",
		Short: "Run RIB files through the filter pipeline",
		Long: `Run RIB scene files through the filter pipeline and write the
rewritten streams.

By default the pipeline validates block nesting and expands cached
inline archives and retained objects at their reference points. A
custom pipeline can be described in a YAML file passed with --chain:

  stages:
    - kind: validate
    - kind: archive
      maxReplayDepth: 16

A single input with no --output writes to stdout. Otherwise each input
file is rewritten next to itself with a .filtered.rib suffix, or under
the --output directory when one is given. With --watch the command
keeps running and refilters inputs as they change on disk.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (single input) or directory")
	cmd.Flags().StringVar(&opts.Chain, "chain", "", "YAML pipeline description")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "keep running and refilter inputs on change")

	return cmd
}

// runToken returns a UUIDv7 correlating all log lines of one invocation.
func runToken() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func runFilter(opts *FilterOptions, files []string, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	runID := runToken()
	log := slog.Default().With("run", runID)

	cfg := DefaultChainConfig()
	if opts.Chain != "" {
		var err error
		cfg, err = LoadChainConfig(opts.Chain)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load chain config", err)
		}
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Watch {
		return watchAndFilter(cmd.Context(), opts, cfg, files, log)
	}

	// A single input with no explicit output streams to stdout.
	if len(files) == 1 && opts.Output == "" {
		streamErrs, err := filterFile(cfg, files[0], cmd.OutOrStdout(), log)
		if err != nil {
			return WrapExitError(ExitCommandError, "filter failed", err)
		}
		if streamErrs > 0 {
			return NewExitError(ExitFailure, fmt.Sprintf("%s: %d stream error(s)", files[0], streamErrs))
		}
		return nil
	}

	result, err := filterToFiles(opts, cfg, files, log)
	if err != nil {
		return WrapExitError(ExitCommandError, "filter failed", err)
	}
	result.RunID = runID

	if err := formatter.Success(runID, result); err != nil {
		return err
	}
	if result.StreamErrors > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d stream error(s)", result.StreamErrors))
	}
	return nil
}

// outputPath decides where a filtered input lands. An explicit --output
// names the file for a single input and a directory otherwise.
func outputPath(opts *FilterOptions, input string, nfiles int) string {
	if opts.Output != "" {
		if nfiles == 1 {
			return opts.Output
		}
		return filepath.Join(opts.Output, filepath.Base(derivedName(input)))
	}
	return derivedName(input)
}

func derivedName(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".filtered.rib"
}

// filterToFiles rewrites every input to its output path, one goroutine
// per file. Each file gets its own chain, so the workers share nothing.
func filterToFiles(opts *FilterOptions, cfg ChainConfig, files []string, log *slog.Logger) (*FilterResult, error) {
	result := &FilterResult{Files: make([]FileResult, len(files))}

	var g errgroup.Group
	for i, input := range files {
		i, input := i, input
		out := outputPath(opts, input, len(files))
		g.Go(func() error {
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			streamErrs, ferr := filterFile(cfg, input, f, log)
			if cerr := f.Close(); ferr == nil {
				ferr = cerr
			}
			if ferr != nil {
				return fmt.Errorf("%s: %w", input, ferr)
			}
			result.Files[i] = FileResult{Input: input, Output: out, StreamErrors: streamErrs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, f := range result.Files {
		result.StreamErrors += f.StreamErrors
	}
	return result, nil
}

// filterFile runs one RIB file through a freshly built pipeline and
// writes the rewritten stream to w. It returns the number of stream
// errors found; a non-nil error means the run itself failed.
func filterFile(cfg ChainConfig, input string, w io.Writer, log *slog.Logger) (int, error) {
	f, err := os.Open(input)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sink := ribout.NewWriter(w)
	capture := &ri.CaptureHandler{}
	chain, err := BuildChain(cfg, sink, rifilter.WithErrorHandler(capture))
	if err != nil {
		return 0, err
	}

	log.Debug("filtering", "input", input, "stages", len(cfg.Stages))
	parseErr := ribparse.Parse(f, chain.In(),
		ribparse.WithErrorHandler(capture),
		ribparse.WithFileName(input))
	if parseErr != nil && capture.Count() == 0 {
		// Reading failed before any request was seen.
		return 0, parseErr
	}
	if err := sink.Err(); err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}

	for _, e := range capture.Errors() {
		log.Warn("stream error", "code", e.Code, "file", e.File, "line", e.Line, "message", e.Message)
	}
	return capture.Count(), nil
}

// watchAndFilter refilters the inputs whenever one changes on disk. It
// runs until the context is cancelled or an interrupt arrives.
func watchAndFilter(parent context.Context, opts *FilterOptions, cfg ChainConfig, files []string, log *slog.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to start watcher", err)
	}
	defer watcher.Close()

	// Watch the containing directories. Editors often replace files on
	// save, which drops a watch registered on the file itself.
	watched := make(map[string]bool)
	byPath := make(map[string]string)
	for _, input := range files {
		abs, err := filepath.Abs(input)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to resolve input path", err)
		}
		byPath[abs] = input
		dir := filepath.Dir(abs)
		if !watched[dir] {
			if err := watcher.Add(dir); err != nil {
				return WrapExitError(ExitCommandError, "failed to watch "+dir, err)
			}
			watched[dir] = true
		}
	}

	refilter := func(input string) {
		out := outputPath(opts, input, len(files))
		var streamErrs int
		err := withCreated(out, func(w io.Writer) error {
			var ferr error
			streamErrs, ferr = filterFile(cfg, input, w, log)
			return ferr
		})
		if err != nil {
			log.Error("refilter failed", "input", input, "error", err)
			return
		}
		log.Info("refiltered", "input", input, "output", out, "stream_errors", streamErrs)
	}

	// Initial pass before the first change event.
	for _, input := range files {
		refilter(input)
	}

	log.Info("watching for changes", "files", len(files))
	for {
		select {
		case <-ctx.Done():
			log.Info("watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if input, ok := byPath[event.Name]; ok {
				refilter(input)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch error", "error", err)
		}
	}
}

// withCreated opens path for writing, runs fn, and closes it, keeping
// the first error.
func withCreated(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = fn(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
