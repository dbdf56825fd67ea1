package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sanakirja/internal/infrastructure/i18n"
	"sanakirja/internal/testutil"
)

func TestTranslator_T(t *testing.T) {
	tr := i18n.NewTranslator("en", testutil.NewTestLogger(t))

	tests := []struct {
		name   string
		locale string
		key    string
		data   map[string]any
		want   string
	}{
		{
			name: "default locale",
			key:  "error.dictionary_not_found",
			want: "Dictionary file does not exists.",
		},
		{
			name:   "finnish",
			locale: "fi",
			key:    "result.no_results",
			want:   "Ei tuloksia",
		},
		{
			name:   "accept-language header",
			locale: "fi-FI,fi;q=0.9,en;q=0.8",
			key:    "error.word_pair_exists",
			want:   "Sanapari on jo sanakirjassa.",
		},
		{
			name:   "unsupported locale falls back",
			locale: "sv",
			key:    "result.no_results",
			want:   "No results",
		},
		{
			name: "template data",
			key:  "discord.add.done",
			data: map[string]any{"Fin": "koira", "Eng": "dog"},
			want: "Added: koira = dog",
		},
		{
			name: "unknown key",
			key:  "no.such.key",
			want: "no.such.key",
		},
		{
			name: "empty key",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.locale, tt.key, tt.data))
		})
	}
}

func TestNewTranslator_BadDefaultLocale(t *testing.T) {
	tr := i18n.NewTranslator("???", testutil.NewTestLogger(t))
	assert.Equal(t, "No results", tr.T("", "result.no_results", nil))
}
