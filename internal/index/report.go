package index

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Aman-CERP/maamarim/internal/ui"
)

const (
	openingDisplayRunes = 50
	maxTopicsShown      = 10
	topN                = 15
)

// RenderQuickReference renders the plain-text quick reference report.
func (ix *SearchIndex) RenderQuickReference() []byte {
	var b strings.Builder

	b.WriteString("MAAMARIM COLLECTION - QUICK REFERENCE\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	fmt.Fprintf(&b, "Total Documents: %d\n", len(ix.Documents))
	fmt.Fprintf(&b, "Total Unique Topics: %d\n", ix.Topics.Len())
	fmt.Fprintf(&b, "Total Unique Concepts: %d\n", ix.Concepts.Len())
	fmt.Fprintf(&b, "Date Range: %s\n\n", ix.DateRange)

	b.WriteString("DOCUMENT SUMMARY:\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	for i := range ix.Documents {
		writeSummary(&b, &ix.Documents[i])
	}

	b.WriteString("TOP TOPICS:\n")
	b.WriteString(strings.Repeat("-", 15) + "\n")
	for _, c := range ix.Topics.Top(topN) {
		if concept, _ := ix.TopicConcepts.Get(c.Key); concept != "" {
			fmt.Fprintf(&b, "%s (%s): %d documents\n", c.Key, concept, c.N)
		} else {
			fmt.Fprintf(&b, "%s: %d documents\n", c.Key, c.N)
		}
	}

	b.WriteString("\nTOP CONCEPTS:\n")
	b.WriteString(strings.Repeat("-", 15) + "\n")
	for _, c := range ix.Concepts.Top(topN) {
		fmt.Fprintf(&b, "%s: %d documents\n", c.Key, c.N)
	}

	return []byte(b.String())
}

func writeSummary(b *strings.Builder, s *DocumentSummary) {
	fmt.Fprintf(b, "ID: %s\n", s.ID)
	fmt.Fprintf(b, "Date: %s\n", dateLine(s.HebrewDate, s.GregorianDate))
	fmt.Fprintf(b, "Opening: %s\n", openingLine(s.OpeningPhrase))
	fmt.Fprintf(b, "Topics: %s\n", topicsLine(s.Topics, s.KeyConcepts))
	fmt.Fprintf(b, "Words: %d, Chunks: %d\n\n", s.WordCount, s.ChunkCount)
}

func dateLine(hebrew, gregorian string) string {
	switch {
	case hebrew != "" && gregorian != "":
		return fmt.Sprintf("%s (%s)", hebrew, gregorian)
	case hebrew != "":
		return hebrew
	case gregorian != "":
		return "(" + gregorian + ")"
	default:
		return "N/A"
	}
}

// openingLine truncates to 50 characters (runes, not bytes) plus "...".
func openingLine(phrase string) string {
	if phrase == "" {
		return "N/A"
	}
	if utf8.RuneCountInString(phrase) <= openingDisplayRunes {
		return phrase
	}
	return string([]rune(phrase)[:openingDisplayRunes]) + "..."
}

// topicsLine pairs each of the first ten topics with the concept at the
// same position, when there is one.
func topicsLine(topics, concepts []string) string {
	if len(topics) == 0 {
		return "N/A"
	}

	shown := topics[:min(len(topics), maxTopicsShown)]
	pairs := make([]string, len(shown))
	for i, topic := range shown {
		if i < len(concepts) && concepts[i] != "" {
			pairs[i] = fmt.Sprintf("%s (%s)", topic, concepts[i])
		} else {
			pairs[i] = topic
		}
	}

	line := strings.Join(pairs, ", ")
	if extra := len(topics) - len(shown); extra > 0 {
		line += fmt.Sprintf(" (+%d more)", extra)
	}
	return line
}

// Report returns the run statistics printed after an index run.
func (ix *SearchIndex) Report(indexFile, reportFile string) ui.IndexReport {
	return ui.IndexReport{
		IndexFile:      indexFile,
		ReportFile:     reportFile,
		Documents:      len(ix.Documents),
		Topics:         ix.Topics.Len(),
		Concepts:       ix.Concepts.Len(),
		Dates:          ix.Dates.Len(),
		References:     ix.References.Len(),
		OpeningPhrases: ix.OpeningPhrases.Len(),
		GlossaryTerms:  ix.Glossary.Len(),
	}
}
