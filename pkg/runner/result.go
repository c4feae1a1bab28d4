package runner

import (
	"time"

	"github.com/yaklabco/gomdparse/pkg/ast"
	"github.com/yaklabco/gomdparse/pkg/crosscheck"
)

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	// Path is the file path that was processed, or "-" for stdin.
	Path string

	// Document is the parsed document (TaskParse and TaskFormat).
	Document *ast.Document

	// Formatted is the printed Markdown (TaskFormat).
	Formatted string

	// Changed is true if Formatted differs from the source.
	Changed bool

	// Diff is a unified diff from the source to Formatted, set when
	// Options.Diff is on and the file changed.
	Diff string

	// Written is true if the file was rewritten.
	Written bool

	// Check is the outline comparison (TaskCheck).
	Check *crosscheck.Result

	// Duration is the time spent on the file.
	Duration time.Duration

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// ParseErrors is the number of errored files that failed to parse.
	ParseErrors int

	// FilesChanged is the number of files whose formatted output differs.
	FilesChanged int

	// FilesWritten is the number of files rewritten.
	FilesWritten int

	// FilesDiverged is the number of files whose outline differs from goldmark's.
	FilesDiverged int

	// Nodes counts parsed nodes by kind across all files.
	Nodes map[ast.Kind]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file could not be processed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// HasChanges reports whether any formatted file differs from its source.
func (r *Result) HasChanges() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesChanged > 0
}

// HasDivergences reports whether any outline differs from goldmark's.
func (r *Result) HasDivergences() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesDiverged > 0
}

func newStats() Stats {
	return Stats{
		Nodes: make(map[ast.Kind]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		if isParseError(outcome.Error) {
			r.Stats.ParseErrors++
		}
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
	if outcome.Check != nil && !outcome.Check.Equal() {
		r.Stats.FilesDiverged++
	}
	if outcome.Document != nil {
		for kind, n := range ast.Count(outcome.Document) {
			r.Stats.Nodes[kind] += n
		}
	}
}
