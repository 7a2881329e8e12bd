package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig    = "config"
	FieldIndent    = "indent"
	FieldLineBreak = "line_break"
	FieldJobs      = "jobs"
	FieldWrite     = "write"

	// Keystroke fields.
	FieldKey      = "key"
	FieldOffset   = "offset"
	FieldCursors  = "cursors"
	FieldReason   = "reason"
	FieldHandled  = "handled"
	FieldLanguage = "language"

	// Replay statistics fields.
	FieldScript            = "script"
	FieldPassed            = "passed"
	FieldScriptsDiscovered = "scripts_discovered"
	FieldScriptsPassed     = "scripts_passed"
	FieldScriptsFailed     = "scripts_failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
