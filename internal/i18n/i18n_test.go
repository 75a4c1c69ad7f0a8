package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sooquk/sooquk-dashboard/internal/i18n"
)

func load(t *testing.T, def string) *i18n.Catalog {
	t.Helper()
	c, err := i18n.Load(def)
	require.NoError(t, err)
	return c
}

func TestCatalogsHaveTheSameKeys(t *testing.T) {
	c := load(t, i18n.English)

	en, ok := c.Messages(i18n.English)
	require.True(t, ok)
	ar, ok := c.Messages(i18n.Arabic)
	require.True(t, ok)

	for key := range en {
		assert.Contains(t, ar, key, "missing Arabic message")
	}
	for key := range ar {
		assert.Contains(t, en, key, "missing English message")
	}
}

func TestT(t *testing.T) {
	c := load(t, i18n.English)

	assert.Equal(t, "Cities", c.T(i18n.English, "resource.cities"))
	assert.Equal(t, "المدن", c.T(i18n.Arabic, "resource.cities"))
	assert.Equal(t, "City created successfully", c.T(i18n.English, "toast.created", c.T(i18n.English, "entity.cities")))
	assert.Equal(t, "Must be at least 3", c.T(i18n.English, "validation.min", "3"))

	// Unknown locales fall back to the default, unknown keys to themselves.
	assert.Equal(t, "Cities", c.T("fr", "resource.cities"))
	assert.Equal(t, "no.such.key", c.T(i18n.Arabic, "no.such.key"))
}

func TestLoad_DefaultLocale(t *testing.T) {
	assert.Equal(t, i18n.Arabic, load(t, i18n.Arabic).Default())
	assert.Equal(t, i18n.English, load(t, "de").Default())
}

func TestMatch(t *testing.T) {
	c := load(t, i18n.English)

	tests := []struct {
		header string
		want   string
	}{
		{"ar-SA,en;q=0.8", i18n.Arabic},
		{"en-US,en;q=0.9", i18n.English},
		{"fr-FR", i18n.English},
		{"", i18n.English},
		{"de;q=0.9,ar;q=0.5", i18n.Arabic},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Match(tt.header))
		})
	}
}

func TestMessagesReturnsCopy(t *testing.T) {
	c := load(t, i18n.English)

	m, ok := c.Messages(i18n.English)
	require.True(t, ok)
	m["resource.cities"] = "changed"
	assert.Equal(t, "Cities", c.T(i18n.English, "resource.cities"))

	_, ok = c.Messages("fr")
	assert.False(t, ok)
}

func TestDir(t *testing.T) {
	assert.Equal(t, "rtl", i18n.Dir(i18n.Arabic))
	assert.Equal(t, "ltr", i18n.Dir(i18n.English))
}
