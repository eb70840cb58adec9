package corpus

import (
	"strings"
	"unicode/utf8"
)

// GlossaryEntry is one parsed glossary term.
type GlossaryEntry struct {
	HebrewTerm        string `json:"hebrew_term"`
	Transliteration   string `json:"transliteration"`
	EnglishDefinition string `json:"english_definition"`
}

// keywordStopWords are skipped when expanding definitions into keywords.
var keywordStopWords = map[string]struct{}{
	"the": {}, "and": {}, "of": {}, "in": {}, "to": {}, "a": {}, "an": {},
}

// maxKeywordTokens bounds how many leading definition tokens are considered.
const maxKeywordTokens = 3

// ParseGlossary parses a glossary field of the form
//
//	|Hebrew (Translit): definition; Hebrew2: definition2
//
// Entries without a colon are skipped. Only the first colon separates the
// term from its definition, and only the first "(" separates the Hebrew term
// from its transliteration.
func ParseGlossary(text string) []GlossaryEntry {
	text = strings.TrimLeft(text, "|")
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var entries []GlossaryEntry
	for _, segment := range strings.Split(text, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		hebrewPart, englishPart, ok := strings.Cut(segment, ":")
		if !ok {
			continue
		}
		hebrewPart = strings.TrimSpace(hebrewPart)

		entry := GlossaryEntry{
			HebrewTerm:        hebrewPart,
			EnglishDefinition: strings.TrimSpace(englishPart),
		}
		if term, translit, found := strings.Cut(hebrewPart, "("); found {
			entry.HebrewTerm = strings.TrimSpace(term)
			entry.Transliteration = strings.TrimSpace(strings.TrimRight(translit, ")"))
		}

		entries = append(entries, entry)
	}

	return entries
}

// Terms returns the non-empty lookup keys of the entry: the Hebrew term and
// then the transliteration.
func (e GlossaryEntry) Terms() []string {
	terms := make([]string, 0, 2)
	if e.HebrewTerm != "" {
		terms = append(terms, e.HebrewTerm)
	}
	if e.Transliteration != "" {
		terms = append(terms, e.Transliteration)
	}
	return terms
}

// Keywords expands the first three tokens of the English definition into
// lowercase keywords. Tokens of three characters or fewer are skipped, as
// are stop words once trailing ".,;:" is removed.
func (e GlossaryEntry) Keywords() []string {
	tokens := strings.Fields(e.EnglishDefinition)
	if len(tokens) > maxKeywordTokens {
		tokens = tokens[:maxKeywordTokens]
	}

	var keywords []string
	for _, token := range tokens {
		if utf8.RuneCountInString(token) <= 3 {
			continue
		}
		word := strings.TrimRight(strings.ToLower(token), ".,;:")
		if word == "" {
			continue
		}
		if _, stop := keywordStopWords[word]; stop {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}
