package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfigFiles = "config_files"
	FieldColor       = "color"
	FieldFormat      = "format"
	FieldLogLevel    = "log_level"

	// Conversion fields.
	FieldBytesIn  = "bytes_in"
	FieldBytesOut = "bytes_out"
	FieldBlocks   = "blocks"
	FieldLinks    = "links"
	FieldRule     = "rule"
	FieldLine     = "line"
	FieldColumn   = "column"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
