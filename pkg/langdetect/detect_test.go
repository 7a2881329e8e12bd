package langdetect_test

import (
	"testing"

	"github.com/yaklabco/blockcont/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "shebang bash",
			content:  "#!/bin/bash\necho hello",
			expected: "Shell",
		},
		{
			name:     "shebang python",
			content:  "#!/usr/bin/env python3\nprint('hello')",
			expected: "Python",
		},
		{
			name:     "go code",
			content:  "package main\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}",
			expected: "Go",
		},
		{
			name:     "java package is not go",
			content:  "package demo;\n\npublic class Main {}",
			expected: "Java",
		},
		{
			name:     "c include",
			content:  "#include <stdio.h>\n/* entry */\nint main(void) { return 0; }",
			expected: "C",
		},
		{
			name:     "python code",
			content:  "def foo():\n    pass\n\nif __name__ == '__main__':\n    foo()",
			expected: "Python",
		},
		{
			name:     "typescript annotations",
			content:  "function increment(num: number) {\n  return num + 1;\n}",
			expected: "TypeScript",
		},
		{
			name:     "javascript code",
			content:  "const x = () => { return 42; };\nconsole.log(x());",
			expected: "JavaScript",
		},
		{
			name:     "rust code",
			content:  "fn main() {\n    println!(\"Hello, world!\");\n}",
			expected: "Rust",
		},
		{
			name:     "sql query",
			content:  "SELECT * FROM users WHERE id = 1;",
			expected: "SQL",
		},
		{
			name:     "empty content",
			content:  "",
			expected: langdetect.Unknown,
		},
		{
			name:     "whitespace only",
			content:  " \n\t",
			expected: langdetect.Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := langdetect.Detect([]byte(tt.content))

			if result != tt.expected {
				t.Errorf("Detect() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestDetect_ShebangTakesPrecedence(t *testing.T) {
	t.Parallel()

	// Content looks like Python but has bash shebang
	content := []byte("#!/bin/bash\ndef foo():\n    pass")
	result := langdetect.Detect(content)

	if result != "Shell" {
		t.Errorf("Detect() = %q, want %q (shebang should take precedence)", result, "Shell")
	}
}

func TestDetectFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{"go extension", "main.go", "", "Go"},
		{"javascript extension", "src/index.js", "", "JavaScript"},
		{"dockerfile by name", "Dockerfile", "", "Dockerfile"},
		{"no extension falls back to content", "script", "#!/bin/sh\necho hi", "Shell"},
		{"no path", "", "package main\n", "Go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.DetectFile(tt.path, []byte(tt.content)); got != tt.want {
				t.Errorf("DetectFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestByAlias(t *testing.T) {
	t.Parallel()

	tests := []struct {
		alias  string
		want   string
		wantOK bool
	}{
		{"js", "JavaScript", true},
		{"typescript", "TypeScript", true},
		{"golang", "Go", true},
		{"c++", "C++", true},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			t.Parallel()

			got, ok := langdetect.ByAlias(tt.alias)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ByAlias(%q) = %q, %v; want %q, %v", tt.alias, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
