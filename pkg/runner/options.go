// Package runner parses, formats and cross-checks many Markdown files
// concurrently.
package runner

import (
	"io"

	"github.com/yaklabco/gomdparse/pkg/config"
)

// Task selects the work done for every file.
type Task int

const (
	// TaskParse parses each file and keeps the document.
	TaskParse Task = iota
	// TaskFormat prints each document back to Markdown and compares it
	// with the source.
	TaskFormat
	// TaskCheck compares each document's block outline with goldmark's.
	TaskCheck
)

// String returns the task name used in log output.
func (t Task) String() string {
	switch t {
	case TaskParse:
		return "parse"
	case TaskFormat:
		return "format"
	case TaskCheck:
		return "check"
	default:
		return "unknown"
	}
}

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified paths (files, directories or "-" for
	// stdin) to process. If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered Markdown. Defaults to [".md", ".markdown"] via DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// Config ignore patterns are added to these.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Task is the per-file work.
	Task Task

	// Write rewrites files whose formatted output differs (TaskFormat only).
	Write bool

	// Diff computes a unified diff for files whose formatted output differs.
	Diff bool

	// Stdin is read for the "-" path. Defaults to os.Stdin.
	Stdin io.Reader

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) effectiveConfig() *config.Config {
	if o.Config == nil {
		return config.NewConfig()
	}
	return o.Config
}

// excludeGlobs returns the CLI exclusions followed by the configured ones.
func (o Options) excludeGlobs() []string {
	globs := append([]string(nil), o.ExcludeGlobs...)
	return append(globs, o.effectiveConfig().Ignore...)
}
