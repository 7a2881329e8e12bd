package langdata

import (
	"fmt"
	"maps"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/yaklabco/blockcont/pkg/syntax"
)

// Language is a registered language with its comment syntax.
type Language struct {
	// Name is the canonical language name, matching go-enry naming.
	Name string

	// Extensions are lowercase file extensions including the leading dot.
	Extensions []string

	// Comments describes the comment delimiters.
	Comments CommentTokens

	// Quotes lists single-line string delimiters.
	Quotes string

	// MultilineQuotes lists escaped string delimiters that may span lines.
	MultilineQuotes string

	// RawQuotes lists unescaped string delimiters that may span lines.
	RawQuotes string
}

// Dialect returns the scanner dialect for the language.
func (l *Language) Dialect() syntax.Dialect {
	dialect := syntax.Dialect{
		LineComment:     l.Comments.Line,
		Quotes:          l.Quotes,
		MultilineQuotes: l.MultilineQuotes,
		RawQuotes:       l.RawQuotes,
	}
	if l.Comments.Block != nil {
		dialect.BlockOpen = l.Comments.Block.Open
		dialect.BlockClose = l.Comments.Block.Close
	}
	return dialect
}

// Registry maps language names and file extensions to languages.
// It is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	byName      map[string]*Language
	byExtension map[string]*Language
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:      make(map[string]*Language),
		byExtension: make(map[string]*Language),
	}
}

// Register adds or replaces a language. Extensions registered later win.
func (r *Registry) Register(lang *Language) error {
	if lang == nil || lang.Name == "" {
		return fmt.Errorf("register language: %w", ErrNoName)
	}
	if block := lang.Comments.Block; block != nil && (block.Open == "" || block.Close == "") {
		return fmt.Errorf("register language %q: %w", lang.Name, ErrIncompleteBlock)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(lang.Name)
	if old, ok := r.byName[key]; ok {
		for _, ext := range old.Extensions {
			if r.byExtension[ext] == old {
				delete(r.byExtension, ext)
			}
		}
	}

	r.byName[key] = lang
	for _, ext := range lang.Extensions {
		r.byExtension[strings.ToLower(ext)] = lang
	}
	return nil
}

// Lookup finds a language by name, case-insensitively.
func (r *Registry) Lookup(name string) (*Language, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lang, ok := r.byName[strings.ToLower(name)]
	return lang, ok
}

// ByPath finds a language by the extension of path.
func (r *Registry) ByPath(path string) (*Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	lang, ok := r.byExtension[ext]
	return lang, ok
}

// Languages returns all registered languages sorted by name.
func (r *Registry) Languages() []*Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	langs := make([]*Language, 0, len(r.byName))
	for _, lang := range r.byName {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].Name < langs[j].Name
	})
	return langs
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clone := NewRegistry()
	maps.Copy(clone.byName, r.byName)
	maps.Copy(clone.byExtension, r.byExtension)
	return clone
}
