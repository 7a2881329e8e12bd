package config

import "strings"

// Template returns the commented starter configuration written by init.
func Template() []byte {
	var b strings.Builder
	b.WriteString("# blockcont configuration\n")
	b.WriteString("# See: https://github.com/yaklabco/blockcont\n\n")
	b.WriteString("# Line break inserted by Enter: auto, lf or crlf.\n")
	b.WriteString("line_break: " + string(LineBreakAuto) + "\n\n")
	b.WriteString("# Continuation indentation: opener aligns with the comment's \"/*\",\n")
	b.WriteString("# line copies the indentation of the current comment line.\n")
	b.WriteString("indent: " + string(IndentOpener) + "\n\n")
	b.WriteString("# Backups written next to files changed with --write.\n")
	b.WriteString("backups:\n")
	b.WriteString("  enabled: false\n")
	b.WriteString("  mode: sidecar\n\n")
	b.WriteString("# Additional languages, or overrides of built-in ones.\n")
	b.WriteString("# languages:\n")
	b.WriteString("#   MyLang:\n")
	b.WriteString("#     extensions: [\".my\"]\n")
	b.WriteString("#     line: \"//\"\n")
	b.WriteString("#     block: {open: \"/*\", close: \"*/\"}\n")
	return []byte(b.String())
}
