// Package locale serves the embedded en/ru/am translation bundles.
// Lookup is typed: a missing key reports a miss instead of echoing the
// raw key to the visitor.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/internal/core/port"
)

var _ port.Localizer = (*Bundle)(nil)

//go:embed locales/*.json
var localeFS embed.FS

const fallbackLang = "en"

var languages = []domain.Language{
	{Code: "en", Name: "English", Flag: "🇬🇧"},
	{Code: "ru", Name: "Русский", Flag: "🇷🇺"},
	{Code: "am", Name: "Հայերեն", Flag: "🇦🇲"},
}

type Bundle struct {
	translations map[string]map[string]any
}

func NewBundle() (Bundle, error) {
	const op = "NewBundle"

	translations := make(map[string]map[string]any, len(languages))
	for _, lang := range languages {
		data, err := localeFS.ReadFile("locales/" + lang.Code + ".json")
		if err != nil {
			return Bundle{}, fmt.Errorf("%s: %w", op, err)
		}

		var tree map[string]any
		if err := json.Unmarshal(data, &tree); err != nil {
			return Bundle{}, fmt.Errorf("%s: %q: %w", op, lang.Code, err)
		}
		translations[lang.Code] = tree
	}

	return Bundle{translations}, nil
}

// Lookup resolves a dotted-path key like "shop.filters.title" in the
// given language. An unknown language falls back to English; an unknown
// key reports a miss.
func (b Bundle) Lookup(lang, key string) (string, bool) {
	tree, ok := b.translations[lang]
	if !ok {
		tree = b.translations[fallbackLang]
	}

	var node any = tree
	for _, part := range strings.Split(key, ".") {
		branch, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node, ok = branch[part]
		if !ok {
			return "", false
		}
	}

	s, ok := node.(string)
	return s, ok
}

func (Bundle) Languages() []domain.Language {
	return languages
}
