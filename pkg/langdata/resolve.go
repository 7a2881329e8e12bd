package langdata

import "github.com/yaklabco/blockcont/pkg/langdetect"

// Resolve determines the language of a document.
//
// Resolution order:
//  1. An explicit name or alias (e.g. from a fence info string or a flag).
//  2. The registered extension of path.
//  3. go-enry detection from path and content.
//
// Returns false if no registered language matches.
func (r *Registry) Resolve(name, path string, content []byte) (*Language, bool) {
	if name != "" {
		return r.ResolveName(name)
	}

	if lang, ok := r.ByPath(path); ok {
		return lang, true
	}

	if detected := langdetect.DetectFile(path, content); detected != langdetect.Unknown {
		return r.Lookup(detected)
	}

	return nil, false
}

// ResolveName finds a language by canonical name or alias.
func (r *Registry) ResolveName(name string) (*Language, bool) {
	if lang, ok := r.Lookup(name); ok {
		return lang, true
	}
	if canonical, ok := langdetect.ByAlias(name); ok {
		return r.Lookup(canonical)
	}
	return nil, false
}
