//go:build ignore

// Package main generates a synthetic maamarim_structured.json for benchmarking.
// Usage: go run scripts/generate-test-corpus.go -docs 500 -output testdata/bench/maamarim_structured.json
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aman-CERP/maamarim/internal/corpus"
)

var (
	numDocs = flag.Int("docs", 500, "Number of documents to generate")
	output  = flag.String("output", "testdata/bench/maamarim_structured.json", "Output file")
	seed    = flag.Int64("seed", 42, "Random seed for reproducibility")
)

// topicPairs pairs Hebrew topics with their English key concepts.
var topicPairs = [][2]string{
	{"גאולה", "Redemption"},
	{"תורה", "Torah"},
	{"תפילה", "Prayer"},
	{"אהבת ישראל", "Love of a fellow Jew"},
	{"שבת", "Shabbat"},
	{"תשובה", "Repentance"},
	{"אמונה", "Faith"},
	{"שכינה", "Divine Presence"},
	{"משיח", "Moshiach"},
	{"מצוות", "Commandments"},
}

var glossaryTerms = []string{
	"שכינה (Shechinah): Divine Presence dwelling below",
	"ביטול (Bittul): self nullification before G-d",
	"אור אין סוף (Or Ein Sof): infinite light",
	"דירה בתחתונים (Dirah Betachtonim): dwelling place in the lower realms",
	"עבודה (Avodah): divine service",
	"צמצום (Tzimtzum): contraction of the Divine light",
}

var openings = []string{
	"באתי לגני אחותי כלה",
	"ויהי ביום כלות משה",
	"להבין ענין התפילה",
	"החודש הזה לכם",
	"ועתה יגדל נא כח ה'",
	"",
}

var months = []string{"תשרי", "חשון", "כסלו", "טבת", "שבט", "אדר", "ניסן", "אייר", "סיון", "תמוז", "אב", "אלול"}

var words = []string{"אור", "נשמה", "עולם", "אלקות", "גילוי", "כח", "פנימיות", "חיות", "מדות", "שכל"}

// document mirrors the record layout of the collection.
type document struct {
	ID       string   `json:"id"`
	Metadata metadata `json:"metadata"`
	Content  content  `json:"content"`
}

type metadata struct {
	HebrewDate    string   `json:"hebrew_date"`
	GregorianDate string   `json:"gregorian_date"`
	OpeningPhrase string   `json:"opening_phrase"`
	Topics        []string `json:"topics"`
	KeyConcepts   []string `json:"key_concepts"`
	Biblical      []string `json:"biblical_references"`
	Chassidic     []string `json:"chassidic_references"`
	WordCount     int      `json:"word_count"`
	ChunkCount    int      `json:"chunk_count"`
}

type content struct {
	MainText string `json:"main_text"`
	Glossary string `json:"glossary"`
}

type collection struct {
	CollectionMetadata map[string]any `json:"collection_metadata"`
	Documents          []document     `json:"documents"`
}

func main() {
	flag.Parse()
	rand.Seed(*seed)

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generating %d documents to %s (seed=%d)...\n", *numDocs, *output, *seed)

	c := collection{
		CollectionMetadata: map[string]any{
			"title":           "Maamarim (synthetic)",
			"total_documents": *numDocs,
			"date_range":      "5711-5752",
		},
		Documents: make([]document, 0, *numDocs),
	}
	for i := 1; i <= *numDocs; i++ {
		c.Documents = append(c.Documents, generateDocument(i))
	}

	data, err := corpus.EncodeJSON(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode collection: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", *output, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d documents (%d bytes) successfully.\n", *numDocs, len(data))
}

func generateDocument(index int) document {
	year := 5711 + rand.Intn(42)
	d := document{
		ID: fmt.Sprintf("maamar-%04d", index),
		Metadata: metadata{
			HebrewDate:    fmt.Sprintf("%d %s %d", 1+rand.Intn(29), months[rand.Intn(len(months))], year),
			OpeningPhrase: openings[rand.Intn(len(openings))],
		},
	}
	if rand.Intn(3) > 0 {
		d.Metadata.GregorianDate = fmt.Sprintf("%d-%02d-%02d", year-3761, 1+rand.Intn(12), 1+rand.Intn(28))
	}

	for _, j := range rand.Perm(len(topicPairs))[:1+rand.Intn(4)] {
		d.Metadata.Topics = append(d.Metadata.Topics, topicPairs[j][0])
		d.Metadata.KeyConcepts = append(d.Metadata.KeyConcepts, topicPairs[j][1])
	}
	for r := rand.Intn(3); r > 0; r-- {
		d.Metadata.Biblical = append(d.Metadata.Biblical, fmt.Sprintf("Shir HaShirim %d:%d", 1+rand.Intn(8), 1+rand.Intn(17)))
	}
	if rand.Intn(2) == 0 {
		d.Metadata.Chassidic = append(d.Metadata.Chassidic, fmt.Sprintf("Likkutei Torah %d:%d", 1+rand.Intn(5), 1+rand.Intn(90)))
	}

	text := make([]string, 200+rand.Intn(2000))
	for k := range text {
		text[k] = words[rand.Intn(len(words))]
	}
	d.Content.MainText = strings.Join(text, " ")
	d.Metadata.WordCount = len(text)
	d.Metadata.ChunkCount = 1 + len(text)/500

	var entries []string
	for _, j := range rand.Perm(len(glossaryTerms))[:rand.Intn(4)] {
		entries = append(entries, glossaryTerms[j])
	}
	if len(entries) > 0 {
		d.Content.Glossary = "|" + strings.Join(entries, "; ")
	}

	return d
}
