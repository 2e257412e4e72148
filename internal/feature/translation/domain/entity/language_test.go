package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglish_HasNoEmptyValues(t *testing.T) {
	b, err := json.Marshal(English())
	require.NoError(t, err)
	var table map[string]string
	require.NoError(t, json.Unmarshal(b, &table))

	assert.Greater(t, len(table), 100)
	for k, v := range table {
		assert.NotEmpty(t, v, k)
	}
}

func TestMerge(t *testing.T) {
	base := English()
	raw := []byte(`{
		"loginTitle": "वापसी पर स्वागत है",
		"logout": "लॉग आउट",
		"unknownKey": "ignored",
		"views": 42,
		"earnings": null
	}`)

	got, n, err := Merge(base, raw)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "वापसी पर स्वागत है", got.LoginTitle)
	assert.Equal(t, "लॉग आउट", got.Logout)
	assert.Equal(t, base.Views, got.Views, "non-string values are ignored")
	assert.Equal(t, base.Earnings, got.Earnings)
	assert.Equal(t, base.MenuHome, got.MenuHome, "missing keys keep the English text")
}

func TestMerge_NotAnObject(t *testing.T) {
	base := English()

	for _, raw := range []string{`not json`, `["a","b"]`, `"text"`} {
		got, n, err := Merge(base, []byte(raw))

		assert.Error(t, err, raw)
		assert.Zero(t, n)
		assert.Equal(t, base, got)
	}
}

func TestLookupLanguage(t *testing.T) {
	l, ok := LookupLanguage("kn")
	assert.True(t, ok)
	assert.Equal(t, "Kannada", l.Name)

	_, ok = LookupLanguage("fr")
	assert.False(t, ok)
}
