package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdparse/internal/logging"
	"github.com/yaklabco/gomdparse/pkg/config"
	"github.com/yaklabco/gomdparse/pkg/reporter"
	"github.com/yaklabco/gomdparse/pkg/runner"
)

// runFiles processes the inputs named by args through the runner.
func runFiles(cmd *cobra.Command, cfg *config.Config, args []string, opts runner.Options) (*runner.Result, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("%w: get working directory: %w", ErrIO, err)
	}

	opts.Paths = inputPaths(args)
	opts.WorkingDir = workDir
	opts.Jobs = cfg.Jobs
	opts.Stdin = cmd.InOrStdin()
	opts.Config = cfg

	logger.Debug("starting run",
		logging.FieldPaths, opts.Paths,
		logging.FieldJobs, opts.Jobs,
	)

	start := time.Now()
	result, err := runner.New().Run(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s run: %w", opts.Task, err)
	}

	logger.Debug("run finished",
		logging.FieldFiles, len(result.Files),
		logging.FieldFailed, result.Stats.FilesErrored,
		logging.FieldDuration, time.Since(start),
	)
	return result, nil
}

// report writes result with the reporter selected by format.
func report(cmd *cobra.Command, result *runner.Result, format string, opts reporter.Options) error {
	parsed, err := reporter.ParseFormat(format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("%w: get working directory: %w", ErrIO, err)
	}

	opts.Writer = cmd.OutOrStdout()
	opts.ErrorWriter = cmd.ErrOrStderr()
	opts.Format = parsed
	opts.Color = colorMode(cmd)
	opts.WorkingDir = workDir

	rep, err := reporter.New(opts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if _, err := rep.Report(cmd.Context(), result); err != nil {
		return fmt.Errorf("%w: report results: %w", ErrIO, err)
	}
	return nil
}

// failureError returns the error matching the worst per-file failure.
func failureError(result *runner.Result) error {
	switch {
	case result.Stats.ParseErrors > 0:
		return ErrParseErrors
	case result.HasFailures():
		return fmt.Errorf("%w: %d files could not be processed", ErrIO, result.Stats.FilesErrored)
	default:
		return nil
	}
}

// logFailures logs every file that could not be processed.
func logFailures(cmd *cobra.Command, result *runner.Result) {
	logger := logging.FromContext(cmd.Context())
	for _, file := range result.Files {
		if file.Error != nil {
			logger.Error("failed", logging.FieldPath, file.Path, logging.FieldError, file.Error)
		}
	}
}
