package langdata

import "sync"

// Language names used by the built-in table. They match go-enry naming so
// detection results can be looked up directly.
const (
	NameGo         = "Go"
	NameJavaScript = "JavaScript"
	NameTypeScript = "TypeScript"
	NameTSX        = "TSX"
	NameC          = "C"
	NameCPP        = "C++"
	NameCSharp     = "C#"
	NameJava       = "Java"
	NameKotlin     = "Kotlin"
	NameScala      = "Scala"
	NameSwift      = "Swift"
	NameDart       = "Dart"
	NameRust       = "Rust"
	NamePHP        = "PHP"
	NameObjectiveC = "Objective-C"
	NameGroovy     = "Groovy"
	NameCSS        = "CSS"
	NameSCSS       = "SCSS"
	NameLess       = "Less"
	NameSQL        = "SQL"
	NameProtobuf   = "Protocol Buffer"
	NamePython     = "Python"
	NameShell      = "Shell"
	NameRuby       = "Ruby"
	NameYAML       = "YAML"
	NameHTML       = "HTML"
	NameMarkdown   = "Markdown"
	NameLua        = "Lua"
	NameHaskell    = "Haskell"
	NameText       = "Text"
)

func cStyle(line string) CommentTokens {
	return CommentTokens{Line: line, Block: &BlockTokens{Open: BlockOpenC, Close: BlockCloseC}}
}

func builtinLanguages() []*Language {
	return []*Language{
		{Name: NameGo, Extensions: []string{".go"}, Comments: cStyle("//"), Quotes: `"'`, RawQuotes: "`"},
		{
			Name:            NameJavaScript,
			Extensions:      []string{".js", ".mjs", ".cjs", ".jsx"},
			Comments:        cStyle("//"),
			Quotes:          `"'`,
			MultilineQuotes: "`",
		},
		{
			Name:            NameTypeScript,
			Extensions:      []string{".ts", ".mts", ".cts"},
			Comments:        cStyle("//"),
			Quotes:          `"'`,
			MultilineQuotes: "`",
		},
		{Name: NameTSX, Extensions: []string{".tsx"}, Comments: cStyle("//"), Quotes: `"'`, MultilineQuotes: "`"},
		{Name: NameC, Extensions: []string{".c", ".h"}, Comments: cStyle("//"), Quotes: `"'`},
		{
			Name:       NameCPP,
			Extensions: []string{".cc", ".cpp", ".cxx", ".hpp", ".hh", ".hxx"},
			Comments:   cStyle("//"),
			Quotes:     `"'`,
		},
		{Name: NameCSharp, Extensions: []string{".cs"}, Comments: cStyle("//"), Quotes: `"'`},
		{Name: NameJava, Extensions: []string{".java"}, Comments: cStyle("//"), Quotes: `"'`},
		{Name: NameKotlin, Extensions: []string{".kt", ".kts"}, Comments: cStyle("//"), Quotes: `"'`},
		{Name: NameScala, Extensions: []string{".scala", ".sc"}, Comments: cStyle("//"), Quotes: `"'`},
		{Name: NameSwift, Extensions: []string{".swift"}, Comments: cStyle("//"), Quotes: `"`},
		{Name: NameDart, Extensions: []string{".dart"}, Comments: cStyle("//"), Quotes: `"'`},
		{Name: NameRust, Extensions: []string{".rs"}, Comments: cStyle("//"), Quotes: `"`},
		{Name: NamePHP, Extensions: []string{".php"}, Comments: cStyle("//"), Quotes: `"'`},
		{Name: NameObjectiveC, Extensions: []string{".m", ".mm"}, Comments: cStyle("//"), Quotes: `"'`},
		{Name: NameGroovy, Extensions: []string{".groovy", ".gradle"}, Comments: cStyle("//"), Quotes: `"'`},
		{Name: NameCSS, Extensions: []string{".css"}, Comments: cStyle(""), Quotes: `"'`},
		{Name: NameSCSS, Extensions: []string{".scss"}, Comments: cStyle("//"), Quotes: `"'`},
		{Name: NameLess, Extensions: []string{".less"}, Comments: cStyle("//"), Quotes: `"'`},
		{Name: NameSQL, Extensions: []string{".sql"}, Comments: cStyle("--"), Quotes: `"'`},
		{Name: NameProtobuf, Extensions: []string{".proto"}, Comments: cStyle("//"), Quotes: `"'`},
		{Name: NamePython, Extensions: []string{".py", ".pyi"}, Comments: CommentTokens{Line: "#"}, Quotes: `"'`},
		{Name: NameShell, Extensions: []string{".sh", ".bash", ".zsh"}, Comments: CommentTokens{Line: "#"}, Quotes: `"'`},
		{Name: NameRuby, Extensions: []string{".rb"}, Comments: CommentTokens{Line: "#"}, Quotes: `"'`},
		{Name: NameYAML, Extensions: []string{".yml", ".yaml"}, Comments: CommentTokens{Line: "#"}, Quotes: `"'`},
		{
			Name:       NameHTML,
			Extensions: []string{".html", ".htm"},
			Comments:   CommentTokens{Block: &BlockTokens{Open: "<!--", Close: "-->"}},
		},
		{
			Name:       NameMarkdown,
			Extensions: []string{".md", ".markdown"},
			Comments:   CommentTokens{Block: &BlockTokens{Open: "<!--", Close: "-->"}},
		},
		{
			Name:       NameLua,
			Extensions: []string{".lua"},
			Comments:   CommentTokens{Line: "--", Block: &BlockTokens{Open: "--[[", Close: "]]"}},
			Quotes:     `"'`,
		},
		{
			Name:       NameHaskell,
			Extensions: []string{".hs"},
			Comments:   CommentTokens{Line: "--", Block: &BlockTokens{Open: "{-", Close: "-}"}},
			Quotes:     `"`,
		},
		{Name: NameText, Extensions: []string{".txt"}},
	}
}

//nolint:gochecknoglobals // Built-in registry is initialized once
var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the shared registry of built-in languages.
// Callers that customize languages should Clone it first.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, lang := range builtinLanguages() {
			if err := defaultRegistry.Register(lang); err != nil {
				panic(err)
			}
		}
	})
	return defaultRegistry
}
