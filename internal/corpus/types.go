package corpus

import (
	"encoding/json"
	"math"
	"strings"
)

// UnknownID is reported for documents that carry no id.
const UnknownID = "unknown"

// Collection is the decoded input file.
type Collection struct {
	// Metadata is the collection_metadata object exactly as read.
	Metadata json.RawMessage

	// Documents in input order.
	Documents []Document
}

// Document is one maamar.
type Document struct {
	ID        string   `json:"id"`
	Reference string   `json:"reference"`
	Metadata  Metadata `json:"metadata"`
	Content   Content  `json:"content"`

	raw json.RawMessage
}

// Metadata holds the per-document facets.
// Topics[i] is expected to pair with KeyConcepts[i]; the arrays are not
// guaranteed to have the same length.
type Metadata struct {
	HebrewDate          string   `json:"hebrew_date"`
	GregorianDate       string   `json:"gregorian_date"`
	OpeningPhrase       string   `json:"opening_phrase"`
	Topics              []string `json:"topics"`
	KeyConcepts         []string `json:"key_concepts"`
	BiblicalReferences  []string `json:"biblical_references"`
	TalmudicReferences  []string `json:"talmudic_references"`
	ChassidicReferences []string `json:"chassidic_references"`
	WordCount           Count    `json:"word_count"`
	ChunkCount          Count    `json:"chunk_count"`
}

// Count is a stored per-document count. Integral JSON numbers, including
// 12.0, decode to their value. Anything else decodes as 0 so the document
// falls back to counting its content instead of failing the load.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	*c = 0
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		*c = Count(f)
	}
	return nil
}

// Content holds the document text and its glossary string.
type Content struct {
	MainText       string   `json:"main_text"`
	MainTextChunks []string `json:"main_text_chunks"`
	Glossary       string   `json:"glossary"`
}

// UnmarshalJSON decodes the typed view and retains the original bytes.
func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = Document(p)
	d.Metadata.normalize()
	if d.Content.MainTextChunks == nil {
		d.Content.MainTextChunks = []string{}
	}
	d.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes the document back with every field it was read with,
// in the original key order. Documents built in code (no original bytes)
// are encoded from their typed fields.
func (d Document) MarshalJSON() ([]byte, error) {
	if len(d.raw) > 0 {
		return Normalize(d.raw)
	}
	type plain Document
	return json.Marshal(plain(d))
}

// DocID returns the document id, or UnknownID when it is missing.
func (d *Document) DocID() string {
	if d.ID == "" {
		return UnknownID
	}
	return d.ID
}

// WordCount returns the stored word count, or the whitespace-token count of
// the main text when none is stored.
func (d *Document) WordCount() int {
	if d.Metadata.WordCount != 0 {
		return int(d.Metadata.WordCount)
	}
	return len(strings.Fields(d.Content.MainText))
}

// ChunkCount returns the stored chunk count, or the number of main text
// chunks when none is stored.
func (d *Document) ChunkCount() int {
	if d.Metadata.ChunkCount != 0 {
		return int(d.Metadata.ChunkCount)
	}
	return len(d.Content.MainTextChunks)
}

// References concatenates biblical, talmudic and chassidic references in
// that order. Duplicates across categories are kept.
func (m *Metadata) References() []string {
	refs := make([]string, 0, len(m.BiblicalReferences)+len(m.TalmudicReferences)+len(m.ChassidicReferences))
	refs = append(refs, m.BiblicalReferences...)
	refs = append(refs, m.TalmudicReferences...)
	refs = append(refs, m.ChassidicReferences...)
	return refs
}

// ConceptAt returns the concept paired with topic position i, or "" when
// the concepts array is shorter.
func (m *Metadata) ConceptAt(i int) (string, bool) {
	if i < 0 || i >= len(m.KeyConcepts) {
		return "", false
	}
	return m.KeyConcepts[i], true
}

func (m *Metadata) normalize() {
	for _, s := range []*[]string{
		&m.Topics,
		&m.KeyConcepts,
		&m.BiblicalReferences,
		&m.TalmudicReferences,
		&m.ChassidicReferences,
	} {
		if *s == nil {
			*s = []string{}
		}
	}
}

// DateRange returns collection_metadata.date_range for display. String
// values are returned as-is, other JSON values as their JSON text, and a
// missing value as "Unknown".
func (c *Collection) DateRange() string {
	if len(c.Metadata) == 0 {
		return "Unknown"
	}
	var meta map[string]json.RawMessage
	if err := json.Unmarshal(c.Metadata, &meta); err != nil {
		return "Unknown"
	}
	raw, ok := meta["date_range"]
	if !ok {
		return "Unknown"
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// MetadataJSON returns collection_metadata for embedding in exports, with
// an empty object when the input had none.
func (c *Collection) MetadataJSON() json.RawMessage {
	if len(c.Metadata) == 0 || string(c.Metadata) == "null" {
		return json.RawMessage("{}")
	}
	if norm, err := Normalize(c.Metadata); err == nil {
		return norm
	}
	return c.Metadata
}
