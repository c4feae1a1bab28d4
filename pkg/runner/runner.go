package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/yaklabco/gomdparse/internal/logging"
	"github.com/yaklabco/gomdparse/pkg/ast"
	"github.com/yaklabco/gomdparse/pkg/config"
	"github.com/yaklabco/gomdparse/pkg/crosscheck"
	"github.com/yaklabco/gomdparse/pkg/fsutil"
	"github.com/yaklabco/gomdparse/pkg/parser"
	"github.com/yaklabco/gomdparse/pkg/render/markdown"
)

// Runner processes files with a pool of workers.
type Runner struct{}

// New creates a new Runner.
func New() *Runner {
	return &Runner{}
}

// Run discovers files under opts.Paths and processes them concurrently.
// It returns the outcomes ordered by path together with aggregate stats.
//
// Every worker builds its own parser configuration from opts.Config, so no
// parse shares state with another.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.effectiveConfig()

	// Fail fast on a bad configuration before any file is read.
	if _, err := cfg.ParserOptions(); err != nil {
		return nil, fmt.Errorf("parser options: %w", err)
	}

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := newWorker(cfg, opts, stdin)
			w.run(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker owns the per-goroutine parser state.
type worker struct {
	cfg     *config.Config
	opts    Options
	stdin   io.Reader
	parser  *parser.Config
	checker *crosscheck.Checker
}

func newWorker(cfg *config.Config, opts Options, stdin io.Reader) *worker {
	// The options were validated in Run.
	pcfg, _ := cfg.ParserConfig()
	w := &worker{cfg: cfg, opts: opts, stdin: stdin, parser: pcfg}
	if opts.Task == TaskCheck {
		w.checker = crosscheck.New(pcfg)
	}
	return w
}

func (w *worker) run(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	logger := logging.FromContext(ctx)

	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		start := time.Now()
		outcome := w.process(ctx, path)
		outcome.Duration = time.Since(start)

		if outcome.Error != nil {
			logger.Error("file failed",
				logging.FieldPath, path,
				logging.FieldError, outcome.Error)
		} else {
			logger.Debug("file processed",
				logging.FieldPath, path,
				logging.FieldEvent, w.opts.Task.String(),
				logging.FieldChanged, outcome.Changed,
				logging.FieldDuration, outcome.Duration)
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// process runs the configured task on one file.
func (w *worker) process(ctx context.Context, path string) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadInput(ctx, path, w.stdin)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	if w.opts.Task == TaskCheck {
		outcome.Check, outcome.Error = w.checker.Check(ctx, path, content)
		return outcome
	}

	doc, err := parser.Parse(w.parser, string(content))
	if err != nil {
		outcome.Error = fmt.Errorf("%s: %w", path, err)
		return outcome
	}
	outcome.Document = doc

	if w.opts.Task != TaskFormat {
		return outcome
	}

	outcome.Formatted = Format(doc, w.cfg)
	outcome.Changed = outcome.Formatted != string(content)
	if !outcome.Changed {
		return outcome
	}

	if w.opts.Diff {
		outcome.Diff, err = UnifiedDiff(path, string(content), outcome.Formatted)
		if err != nil {
			outcome.Error = err
			return outcome
		}
	}

	if w.opts.Write && info != nil {
		err := fsutil.Replace(ctx, info, []byte(outcome.Formatted), fsutil.ReplaceOptions{
			Backup: w.cfg.Backups.Enabled,
		})
		if err != nil {
			outcome.Error = err
			return outcome
		}
		outcome.Written = true
	}

	return outcome
}

// Format prints doc as Markdown file content: the printed document followed
// by a single newline, or nothing for an empty document.
func Format(doc *ast.Document, cfg *config.Config) string {
	out := markdown.Render(doc, cfg.MarkdownOptions()...)
	if out == "" {
		return ""
	}
	return out + "\n"
}

// UnifiedDiff returns a unified diff from before to after.
func UnifiedDiff(path, before, after string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path + " (formatted)",
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", path, err)
	}
	return diff, nil
}

func isParseError(err error) bool {
	return errors.Is(err, parser.ErrParse)
}
