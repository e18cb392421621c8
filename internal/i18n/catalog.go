// Package i18n loads display-label translations for listing categories and
// other UI keys
package i18n

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog maps a language code to its key -> label table
type Catalog struct {
	languages map[string]map[string]string
}

// defaultCatalog covers the category enum so the service works without a
// translations file
var defaultCatalog = map[string]map[string]string{
	"mr": {
		"All":         "सर्व",
		"Single Room": "सिंगल रूम",
		"Cot Basis":   "कॉट बेसिस",
		"1 RK":        "१ आरके",
		"1 BHK":       "१ बीएचके",
		"2 BHK":       "२ बीएचके",
	},
	"hi": {
		"All":         "सभी",
		"Single Room": "सिंगल कमरा",
		"Cot Basis":   "कॉट आधार",
		"1 RK":        "1 आरके",
		"1 BHK":       "1 बीएचके",
		"2 BHK":       "2 बीएचके",
	},
}

// Default returns the built-in catalog
func Default() *Catalog {
	c := &Catalog{languages: make(map[string]map[string]string, len(defaultCatalog))}
	for lang, table := range defaultCatalog {
		c.merge(lang, table)
	}
	return c
}

// Load reads a YAML catalog of the form {lang: {key: label}} and layers it
// over the built-in defaults
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translations file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML catalog data layered over the built-in defaults
func Parse(data []byte) (*Catalog, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse translations: %w", err)
	}

	c := Default()
	for lang, table := range raw {
		c.merge(lang, table)
	}
	return c, nil
}

// Languages returns the language codes present in the catalog
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.languages))
	for lang := range c.languages {
		langs = append(langs, lang)
	}
	return langs
}

// Translate looks up key for lang, returning key itself on any miss
func (c *Catalog) Translate(lang, key string) string {
	if table, ok := c.languages[normalizeLang(lang)]; ok {
		if label, ok := table[key]; ok && label != "" {
			return label
		}
	}
	return key
}

// Translator binds Translate to a single language
func (c *Catalog) Translator(lang string) func(key string) string {
	lang = normalizeLang(lang)
	return func(key string) string {
		return c.Translate(lang, key)
	}
}

func (c *Catalog) merge(lang string, table map[string]string) {
	lang = normalizeLang(lang)
	dst, ok := c.languages[lang]
	if !ok {
		dst = make(map[string]string, len(table))
		c.languages[lang] = dst
	}
	for k, v := range table {
		dst[k] = v
	}
}

func normalizeLang(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
