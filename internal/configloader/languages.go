package configloader

import (
	"fmt"
	"sort"

	"github.com/yaklabco/blockcont/pkg/config"
	"github.com/yaklabco/blockcont/pkg/langdata"
)

// defaultQuotes are the string delimiters of configured languages that
// do not list their own.
const defaultQuotes = `"'`

// BuildRegistry returns a copy of base extended with the languages of cfg.
// A configured language with the name of a registered one replaces its
// comment tokens, keeping its extensions and quotes unless configured.
// A nil base uses langdata.Default().
func BuildRegistry(cfg *config.Config, base *langdata.Registry) (*langdata.Registry, error) {
	if base == nil {
		base = langdata.Default()
	}
	registry := base.Clone()
	if cfg == nil || len(cfg.Languages) == 0 {
		return registry, nil
	}

	names := make([]string, 0, len(cfg.Languages))
	for name := range cfg.Languages {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry := cfg.Languages[name]

		lang := &langdata.Language{Name: name, Quotes: defaultQuotes}
		if existing, ok := registry.Lookup(name); ok {
			copied := *existing
			lang = &copied
		}

		if len(entry.Extensions) > 0 {
			lang.Extensions = entry.Extensions
		}
		if entry.Quotes != "" {
			lang.Quotes = entry.Quotes
		}
		lang.Comments = langdata.CommentTokens{Line: entry.Line}
		if entry.Block != nil {
			lang.Comments.Block = &langdata.BlockTokens{Open: entry.Block.Open, Close: entry.Block.Close}
		}

		if err := registry.Register(lang); err != nil {
			return nil, fmt.Errorf("register language %q: %w", name, err)
		}
	}

	return registry, nil
}
