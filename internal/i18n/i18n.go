package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/language"
)

const (
	English = "en"
	Arabic  = "ar"
)

//go:embed locales/*.json
var localeFS embed.FS

// Catalog holds the flat key -> message tables of every supported locale.
type Catalog struct {
	fallback string
	messages map[string]map[string]string
	matcher  language.Matcher
	ordered  []string
}

func Load(defaultLocale string) (*Catalog, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}

	c := &Catalog{fallback: English, messages: map[string]map[string]string{}}
	var locales []string
	for _, e := range entries {
		raw, err := localeFS.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, err
		}
		table := map[string]string{}
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("locale %s: %w", e.Name(), err)
		}
		locale := strings.TrimSuffix(e.Name(), ".json")
		c.messages[locale] = table
		locales = append(locales, locale)
	}

	if _, ok := c.messages[defaultLocale]; ok {
		c.fallback = defaultLocale
	}

	// The matcher's first tag wins when nothing matches.
	c.ordered = []string{c.fallback}
	for _, l := range locales {
		if l != c.fallback {
			c.ordered = append(c.ordered, l)
		}
	}
	tags := make([]language.Tag, len(c.ordered))
	for i, l := range c.ordered {
		tags[i] = language.Make(l)
	}
	c.matcher = language.NewMatcher(tags)
	return c, nil
}

func (c *Catalog) Default() string { return c.fallback }

func (c *Catalog) Supported(locale string) bool {
	_, ok := c.messages[locale]
	return ok
}

// T looks up key in locale, then the default locale, then English; the key itself is the
// last resort. Args are applied with fmt.Sprintf.
func (c *Catalog) T(locale, key string, args ...any) string {
	msg, ok := c.messages[locale][key]
	if !ok {
		msg, ok = c.messages[c.fallback][key]
	}
	if !ok {
		msg, ok = c.messages[English][key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Messages returns a copy of the whole table of a locale, for the UI bundle.
func (c *Catalog) Messages(locale string) (map[string]string, bool) {
	table, ok := c.messages[locale]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out, true
}

// Match picks the best supported locale for an Accept-Language header.
func (c *Catalog) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.fallback
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.fallback
	}
	if idx < 0 || idx >= len(c.ordered) {
		return c.fallback
	}
	return c.ordered[idx]
}

// Dir is the text direction of a locale.
func Dir(locale string) string {
	if locale == Arabic {
		return "rtl"
	}
	return "ltr"
}
