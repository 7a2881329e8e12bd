// Package langdetect provides language detection for source files and snippets.
// It uses go-enry to detect programming languages, returning go-enry's
// canonical language names (e.g. "TypeScript", "C++") so results can be
// looked up in a langdata.Registry.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language could be determined with confidence.
const Unknown = ""

// Language names returned by pattern detection.
const (
	langGo         = "Go"
	langPython     = "Python"
	langJavaScript = "JavaScript"
	langTypeScript = "TypeScript"
	langC          = "C"
	langJava       = "Java"
	langRust       = "Rust"
	langSQL        = "SQL"
	langShell      = "Shell"
)

// classifierCandidates limits the classifier to languages likely to appear
// in editable source.
//
//nolint:gochecknoglobals // Read-only candidate list
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript", "Ruby", "Rust",
	"Java", "C", "C++", "C#", "Kotlin", "Swift", "PHP", "SQL", "CSS",
}

// DetectFile returns the language of a file from its path and content.
//
// Detection order:
//  1. File name and extension (unambiguous matches only).
//  2. Shebang line.
//  3. Content patterns and the go-enry classifier (see Detect).
//
// Returns Unknown if no language could be determined.
func DetectFile(path string, content []byte) string {
	if path != "" {
		if lang, safe := enry.GetLanguageByFilename(path); safe {
			return lang
		}
		if lang, safe := enry.GetLanguageByExtension(path); safe {
			return lang
		}
		// Ambiguous extensions (".h", ".m", ".ts") are resolved by content.
		if candidates := enry.GetLanguagesByExtension(path, content, nil); len(candidates) > 1 {
			if lang, _ := enry.GetLanguageByClassifier(content, candidates); lang != "" {
				return lang
			}
		}
	}

	return Detect(content)
}

// Detect returns the language of a code snippet.
// Returns Unknown if detection fails or confidence is low.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Unknown
	}

	// Strategy 1: Check shebang first (most reliable).
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return lang
	}

	// Strategy 2: Check for language-specific patterns before using classifier.
	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	// Strategy 3: Use classifier with common language candidates.
	// Only use the result if confidence is high (safe == true).
	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return lang
	}

	return Unknown
}

// ByAlias resolves a fence info string or short name ("js", "golang", "c++")
// to a canonical language name.
func ByAlias(alias string) (string, bool) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return Unknown, false
	}
	return enry.GetLanguageByAlias(alias)
}

// detectByPattern checks for language-specific patterns that are highly indicative.
func detectByPattern(content []byte) string {
	contentStr := string(content)
	trimmed := bytes.TrimSpace(content)

	// Check patterns in order of specificity.
	if lang := detectGo(trimmed); lang != "" {
		return lang
	}
	if lang := detectC(contentStr); lang != "" {
		return lang
	}
	if lang := detectJava(contentStr); lang != "" {
		return lang
	}
	if lang := detectPython(contentStr); lang != "" {
		return lang
	}
	if lang := detectSQL(contentStr); lang != "" {
		return lang
	}
	if lang := detectRust(contentStr); lang != "" {
		return lang
	}
	if lang := detectTypeScript(contentStr); lang != "" {
		return lang
	}
	if lang := detectJavaScript(contentStr); lang != "" {
		return lang
	}
	if lang := detectShell(contentStr); lang != "" {
		return lang
	}

	return ""
}

// detectGo checks for Go language patterns.
func detectGo(trimmed []byte) string {
	if bytes.HasPrefix(trimmed, []byte("package ")) && !bytes.Contains(trimmed, []byte(";")) {
		return langGo
	}
	return ""
}

// detectC checks for C preprocessor patterns.
func detectC(contentStr string) string {
	if strings.Contains(contentStr, "#include <") || strings.Contains(contentStr, "#include \"") {
		return langC
	}
	return ""
}

// detectJava checks for Java class declarations.
func detectJava(contentStr string) string {
	if strings.Contains(contentStr, "public class ") ||
		strings.Contains(contentStr, "public static void main(") {
		return langJava
	}
	return ""
}

// detectPython checks for Python language patterns.
func detectPython(contentStr string) string {
	// def/class definitions with colon.
	if strings.Contains(contentStr, "def ") && strings.Contains(contentStr, "):") {
		return langPython
	}
	// Python dunder variables.
	if strings.Contains(contentStr, "__name__") || strings.Contains(contentStr, "__main__") {
		return langPython
	}
	return ""
}

// detectSQL checks for SQL patterns.
func detectSQL(contentStr string) string {
	trimmedUpper := strings.TrimSpace(strings.ToUpper(contentStr))
	for _, keyword := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(trimmedUpper, keyword) {
			return langSQL
		}
	}
	return ""
}

// detectRust checks for Rust language patterns.
func detectRust(contentStr string) string {
	if strings.Contains(contentStr, "fn main()") ||
		strings.Contains(contentStr, "println!") ||
		strings.Contains(contentStr, "let mut ") {
		return langRust
	}
	return ""
}

// detectTypeScript checks for type annotations and declarations.
func detectTypeScript(contentStr string) string {
	if strings.Contains(contentStr, "interface ") && strings.Contains(contentStr, "{") {
		return langTypeScript
	}
	for _, annotation := range []string{": number", ": string", ": boolean"} {
		if strings.Contains(contentStr, annotation) {
			return langTypeScript
		}
	}
	return ""
}

// detectJavaScript checks for JavaScript patterns.
func detectJavaScript(contentStr string) string {
	if strings.Contains(contentStr, "=>") ||
		strings.Contains(contentStr, "const ") ||
		strings.Contains(contentStr, "let ") ||
		strings.Contains(contentStr, "function ") ||
		strings.Contains(contentStr, "console.log") {
		return langJavaScript
	}
	return ""
}

// detectShell checks for common shell builtins at line start.
func detectShell(contentStr string) string {
	for line := range strings.Lines(contentStr) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "echo ") || strings.HasPrefix(line, "export ") {
			return langShell
		}
	}
	return ""
}
