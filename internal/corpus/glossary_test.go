package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGlossary_TwoEntriesWithTransliteration(t *testing.T) {
	// Given: a glossary with two well-formed entries
	text := "Aleph (Alef): first letter; Bet (Vet): second letter"

	// When: parsing
	entries := ParseGlossary(text)

	// Then: both entries are split into term, transliteration and definition
	require.Len(t, entries, 2)
	assert.Equal(t, GlossaryEntry{HebrewTerm: "Aleph", Transliteration: "Alef", EnglishDefinition: "first letter"}, entries[0])
	assert.Equal(t, GlossaryEntry{HebrewTerm: "Bet", Transliteration: "Vet", EnglishDefinition: "second letter"}, entries[1])
}

func TestParseGlossary_EntryWithoutColonIsSkipped(t *testing.T) {
	// Given: a malformed entry between two valid ones
	text := "|אור (Or): light; malformed entry; חכמה (Chochmah): wisdom"

	// When: parsing
	entries := ParseGlossary(text)

	// Then: siblings survive and the malformed entry is dropped
	require.Len(t, entries, 2)
	assert.Equal(t, "אור", entries[0].HebrewTerm)
	assert.Equal(t, "Or", entries[0].Transliteration)
	assert.Equal(t, "חכמה", entries[1].HebrewTerm)
	assert.Equal(t, "wisdom", entries[1].EnglishDefinition)
}

func TestParseGlossary_SplitsOnFirstColonOnly(t *testing.T) {
	entries := ParseGlossary("Zohar: the book: of splendor")

	require.Len(t, entries, 1)
	assert.Equal(t, "Zohar", entries[0].HebrewTerm)
	assert.Equal(t, "", entries[0].Transliteration)
	assert.Equal(t, "the book: of splendor", entries[0].EnglishDefinition)
}

func TestParseGlossary_EdgeCases(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []GlossaryEntry
	}{
		{name: "empty", text: "", want: nil},
		{name: "only pipes", text: "||", want: nil},
		{name: "only separators", text: " ; ;; ", want: nil},
		{
			name: "leading pipe stripped",
			text: "|Tzimtzum (tzimtzum): contraction",
			want: []GlossaryEntry{{HebrewTerm: "Tzimtzum", Transliteration: "tzimtzum", EnglishDefinition: "contraction"}},
		},
		{
			name: "missing closing paren",
			text: "Ohr (ohr : light",
			want: []GlossaryEntry{{HebrewTerm: "Ohr", Transliteration: "ohr", EnglishDefinition: "light"}},
		},
		{
			name: "empty definition",
			text: "Kav (kav):",
			want: []GlossaryEntry{{HebrewTerm: "Kav", Transliteration: "kav", EnglishDefinition: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGlossary(tt.text))
		})
	}
}

func TestGlossaryEntry_Terms_DropsEmpty(t *testing.T) {
	assert.Equal(t, []string{"Aleph", "Alef"}, GlossaryEntry{HebrewTerm: "Aleph", Transliteration: "Alef"}.Terms())
	assert.Equal(t, []string{"Aleph"}, GlossaryEntry{HebrewTerm: "Aleph"}.Terms())
	assert.Equal(t, []string{"Alef"}, GlossaryEntry{Transliteration: "Alef"}.Terms())
	assert.Empty(t, GlossaryEntry{}.Terms())
}

func TestGlossaryEntry_Keywords(t *testing.T) {
	tests := []struct {
		name       string
		definition string
		want       []string
	}{
		{name: "short words skipped", definition: "first letter", want: []string{"first", "letter"}},
		{name: "only first three tokens", definition: "Divine light emanation from above", want: []string{"divine", "light", "emanation"}},
		{name: "trailing punctuation stripped", definition: "Wisdom, Understanding; Knowledge.", want: []string{"wisdom", "understanding", "knowledge"}},
		{name: "stop word after stripping", definition: "The. vessel", want: []string{"vessel"}},
		{name: "three letter words skipped", definition: "the act of", want: nil},
		{name: "empty", definition: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GlossaryEntry{EnglishDefinition: tt.definition}.Keywords())
		})
	}
}
