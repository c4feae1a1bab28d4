package logging

// Structured logging keys.
const (
	FieldError  = "error"
	FieldPath   = "path"
	FieldPaths  = "paths"
	FieldOutput = "output"
	FieldConfig = "config"

	FieldWidth        = "width"
	FieldJobs         = "jobs"
	FieldAnchorPrefix = "anchor_prefix"
	FieldFormat       = "format"

	FieldFiles     = "files"
	FieldChanged   = "changed"
	FieldFailed    = "failed"
	FieldDiverged  = "diverged"
	FieldDuration  = "duration"
	FieldLine      = "line"
	FieldColumn    = "column"
	FieldEvent     = "event"
	FieldVersion   = "version"
	FieldCommit    = "commit"
	FieldBuildDate = "built"
	FieldGo        = "go"
)
