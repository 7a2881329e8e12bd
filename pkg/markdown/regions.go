// Package markdown maps the code regions of Markdown documents.
//
// A Markdown document nests other languages inside fenced code blocks. The
// Document returned by Analyzer.Analyze reports, for any offset, the comment
// tokens of the language active there and classifies comments and strings
// inside each code region, so comment editing works inside code fences and
// stays inert in the surrounding prose.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/blockcont/pkg/langdata"
	"github.com/yaklabco/blockcont/pkg/langdetect"
	"github.com/yaklabco/blockcont/pkg/syntax"
)

// Compile-time interface check.
var _ langdata.Provider = (*Document)(nil)

// Region is the content of a fenced code block.
type Region struct {
	// From is the offset of the first content byte.
	From int

	// To is the offset one past the last content byte, including the
	// final line terminator when present.
	To int

	// Info is the first word of the fence info string, if any.
	Info string

	// Language is the resolved language, or nil when unknown.
	Language *langdata.Language
}

// Analyzer parses Markdown documents with goldmark.
type Analyzer struct {
	md       goldmark.Markdown
	registry *langdata.Registry
}

// NewAnalyzer creates an Analyzer resolving fence languages with registry.
// A nil registry uses langdata.Default().
func NewAnalyzer(registry *langdata.Registry) *Analyzer {
	if registry == nil {
		registry = langdata.Default()
	}
	return &Analyzer{
		md:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
		registry: registry,
	}
}

// Analyze locates the fenced code regions of src.
func (a *Analyzer) Analyze(src []byte) *Document {
	root := a.md.Parser().Parse(text.NewReader(src), parser.WithContext(parser.NewContext()))

	doc := &Document{
		src:  string(src),
		host: a.hostLanguage(),
	}

	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fenced, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if region, ok := a.region(fenced, src); ok {
			doc.Regions = append(doc.Regions, region)
		}
		return ast.WalkSkipChildren, nil
	})

	return doc
}

func (a *Analyzer) hostLanguage() *langdata.Language {
	lang, _ := a.registry.Lookup(langdata.NameMarkdown)
	return lang
}

func (a *Analyzer) region(fenced *ast.FencedCodeBlock, src []byte) (Region, bool) {
	lines := fenced.Lines()
	if lines.Len() == 0 {
		return Region{}, false
	}

	region := Region{
		From: lines.At(0).Start,
		To:   lines.At(lines.Len() - 1).Stop,
	}
	region.Info = strings.TrimSpace(string(fenced.Language(src)))
	region.Language = a.resolve(region.Info, src[region.From:region.To])

	return region, true
}

func (a *Analyzer) resolve(info string, content []byte) *langdata.Language {
	if info != "" {
		lang, _ := a.registry.ResolveName(info)
		return lang
	}
	if detected := langdetect.Detect(bytes.TrimSpace(content)); detected != langdetect.Unknown {
		lang, _ := a.registry.Lookup(detected)
		return lang
	}
	return nil
}

// Document is an analyzed Markdown document.
type Document struct {
	// Regions are the fenced code regions in document order.
	Regions []Region

	src  string
	host *langdata.Language
}

// RegionAt returns the code region containing offset.
// A region's end offset belongs to it only at the end of the document.
func (d *Document) RegionAt(offset int) (Region, bool) {
	for _, region := range d.Regions {
		if offset >= region.From && (offset < region.To || (offset == region.To && region.To == len(d.src))) {
			return region, true
		}
	}
	return Region{}, false
}

// LanguageDataAt implements langdata.Provider. Inside a code region it
// reports the region's language; elsewhere the Markdown host language.
func (d *Document) LanguageDataAt(offset int) []langdata.CommentTokens {
	if region, ok := d.RegionAt(offset); ok {
		return langdata.For(region.Language)
	}
	return langdata.For(d.host)
}

// Tree classifies comments and strings inside every code region.
// Prose outside the regions is left unclassified.
func (d *Document) Tree() *syntax.Flat {
	var nodes []syntax.Node
	for _, region := range d.Regions {
		if region.Language == nil {
			continue
		}
		scanned := syntax.Scan(d.src[region.From:region.To], region.Language.Dialect())
		for _, node := range scanned.Nodes() {
			node.From += region.From
			node.To += region.From
			nodes = append(nodes, node)
		}
	}
	return syntax.NewFlat(len(d.src), nodes)
}
