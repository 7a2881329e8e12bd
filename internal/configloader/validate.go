package configloader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yaklabco/blockcont/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "languages.MyLang.block").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownBackupModes lists valid backup mode values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownBackupModes = map[string]bool{
	"sidecar": true,
	"none":    true,
}

// Validate checks a configuration for errors and warnings.
// Empty enum values are accepted and mean "use the default".
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.LineBreak != "" && !cfg.LineBreak.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "line_break",
			Value:   cfg.LineBreak,
			Message: fmt.Sprintf("invalid line break %q; must be one of: auto, lf, crlf", cfg.LineBreak),
		})
	}

	if cfg.Indent != "" && !cfg.Indent.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "indent",
			Value:   cfg.Indent,
			Message: fmt.Sprintf("invalid indent %q; must be one of: opener, line", cfg.Indent),
		})
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, diff", cfg.Format),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if cfg.Backups.Mode != "" && !knownBackupModes[cfg.Backups.Mode] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "backups.mode",
			Value:   cfg.Backups.Mode,
			Message: fmt.Sprintf("invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode),
		})
	}

	validateLanguages(cfg, result)

	return result
}

// validateLanguages checks language entries in name order.
func validateLanguages(cfg *config.Config, result *ValidationResult) {
	names := make([]string, 0, len(cfg.Languages))
	for name := range cfg.Languages {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		lang := cfg.Languages[name]
		field := "languages." + name

		if strings.TrimSpace(name) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "languages",
				Value:   name,
				Message: "language name must not be empty",
			})
		}

		if lang.Block != nil && (lang.Block.Open == "" || lang.Block.Close == "") {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field + ".block",
				Value:   *lang.Block,
				Message: "block comments need both open and close delimiters",
			})
		}

		for i, ext := range lang.Extensions {
			if !strings.HasPrefix(ext, ".") {
				result.Warnings = append(result.Warnings, ValidationError{
					Field:   fmt.Sprintf("%s.extensions[%d]", field, i),
					Value:   ext,
					Message: fmt.Sprintf("extension %q does not start with a dot; it will never match", ext),
				})
			}
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
