package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gomdparse/internal/ui/pretty"
	"github.com/yaklabco/gomdparse/pkg/runner"
)

// jsonSchemaVersion is the version of the JSON output layout.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Task    string           `json:"task"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path       string   `json:"path"`
	Status     string   `json:"status"`
	Blocks     int      `json:"blocks,omitempty"`
	Changed    bool     `json:"changed,omitempty"`
	Written    bool     `json:"written,omitempty"`
	Diff       string   `json:"diff,omitempty"`
	Outline    []string `json:"outline,omitempty"`
	Reference  []string `json:"reference,omitempty"`
	DurationMS float64  `json:"durationMs"`
	Error      string   `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int            `json:"filesDiscovered"`
	FilesProcessed  int            `json:"filesProcessed"`
	FilesErrored    int            `json:"filesErrored"`
	ParseErrors     int            `json:"parseErrors"`
	FilesChanged    int            `json:"filesChanged"`
	FilesWritten    int            `json:"filesWritten"`
	FilesDiverged   int            `json:"filesDiverged"`
	Nodes           map[string]int `json:"nodes"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return countAttention(result), nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Task:    r.opts.Task.String(),
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			Nodes: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:       r.opts.displayPath(file.Path),
			Status:     pretty.OutcomeToTableRow(file).Status,
			Changed:    file.Changed,
			Written:    file.Written,
			Diff:       file.Diff,
			DurationMS: float64(file.Duration.Microseconds()) / 1000,
		}
		if file.Document != nil {
			fileResult.Blocks = len(file.Document.Blocks)
		}
		if file.Check != nil && !file.Check.Equal() {
			fileResult.Diff = file.Check.Diff
			fileResult.Outline = file.Check.Outline
			fileResult.Reference = file.Check.Reference
		}
		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}
		output.Files = append(output.Files, fileResult)
	}

	stats := result.Stats
	output.Summary.FilesDiscovered = stats.FilesDiscovered
	output.Summary.FilesProcessed = stats.FilesProcessed
	output.Summary.FilesErrored = stats.FilesErrored
	output.Summary.ParseErrors = stats.ParseErrors
	output.Summary.FilesChanged = stats.FilesChanged
	output.Summary.FilesWritten = stats.FilesWritten
	output.Summary.FilesDiverged = stats.FilesDiverged
	for kind, n := range stats.Nodes {
		output.Summary.Nodes[kind.String()] = n
	}

	return output
}
