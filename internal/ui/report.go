package ui

import (
	"encoding/json"
	"fmt"
	"io"
)

// IndexReport summarizes an index run.
type IndexReport struct {
	IndexFile      string `json:"index_file"`
	ReportFile     string `json:"report_file"`
	Documents      int    `json:"documents"`
	Topics         int    `json:"unique_topics"`
	Concepts       int    `json:"unique_concepts"`
	Dates          int    `json:"unique_dates"`
	References     int    `json:"unique_references"`
	OpeningPhrases int    `json:"unique_opening_phrases"`
	GlossaryTerms  int    `json:"unique_glossary_terms"`
}

// FileSize is the size of one written artifact.
type FileSize struct {
	Name  string `json:"name"`
	Bytes int64  `json:"bytes"`
}

// SplitReport summarizes a split run.
type SplitReport struct {
	Chunks       int        `json:"chunks"`
	Documents    int        `json:"documents"`
	DocsPerChunk int        `json:"docs_per_chunk"`
	ChunkFiles   []FileSize `json:"chunk_files"`
	MasterIndex  FileSize   `json:"master_index"`
}

// ChunkSizeSummary returns the average, largest and smallest chunk file
// size. All are zero when there are no chunks.
func (r SplitReport) ChunkSizeSummary() (avg float64, largest, smallest int64) {
	if len(r.ChunkFiles) == 0 {
		return 0, 0, 0
	}
	var total int64
	largest, smallest = r.ChunkFiles[0].Bytes, r.ChunkFiles[0].Bytes
	for _, f := range r.ChunkFiles {
		total += f.Bytes
		largest = max(largest, f.Bytes)
		smallest = min(smallest, f.Bytes)
	}
	return float64(total) / float64(len(r.ChunkFiles)), largest, smallest
}

// ReportRenderer prints run statistics.
type ReportRenderer struct {
	out    io.Writer
	styles Styles
}

// NewReportRenderer creates a report renderer.
func NewReportRenderer(out io.Writer, noColor bool) *ReportRenderer {
	return &ReportRenderer{
		out:    out,
		styles: GetStyles(noColor),
	}
}

// RenderIndex prints index statistics.
func (r *ReportRenderer) RenderIndex(rep IndexReport) error {
	_, _ = fmt.Fprintf(r.out, "\n%s\n", r.styles.Header.Render("Search optimization complete!"))
	_, _ = fmt.Fprintln(r.out, "Created files:")
	_, _ = fmt.Fprintf(r.out, "- %s (comprehensive search indexes)\n", rep.IndexFile)
	_, _ = fmt.Fprintf(r.out, "- %s (human-readable quick reference)\n", rep.ReportFile)

	_, _ = fmt.Fprintf(r.out, "\n%s\n", r.styles.Header.Render("Index Statistics:"))
	_, _ = fmt.Fprintf(r.out, "- Documents: %d\n", rep.Documents)
	_, _ = fmt.Fprintf(r.out, "- Unique topics: %d\n", rep.Topics)
	_, _ = fmt.Fprintf(r.out, "- Unique concepts: %d\n", rep.Concepts)
	_, _ = fmt.Fprintf(r.out, "- Unique dates: %d\n", rep.Dates)
	_, _ = fmt.Fprintf(r.out, "- Unique references: %d\n", rep.References)
	_, _ = fmt.Fprintf(r.out, "- Unique opening phrases: %d\n", rep.OpeningPhrases)
	_, err := fmt.Fprintf(r.out, "- Unique glossary terms: %d\n", rep.GlossaryTerms)
	return err
}

// RenderSplit prints split statistics and file sizes.
func (r *ReportRenderer) RenderSplit(rep SplitReport) error {
	_, _ = fmt.Fprintf(r.out, "\n%s\n", r.styles.Header.Render("Split complete!"))
	_, _ = fmt.Fprintf(r.out, "- Created %d chunk files\n", rep.Chunks)
	_, _ = fmt.Fprintf(r.out, "- Created %d individual document files\n", rep.Documents)
	_, _ = fmt.Fprintln(r.out, "- Created master index")

	_, _ = fmt.Fprintf(r.out, "\n%s\n", r.styles.Header.Render("File sizes:"))
	for _, f := range rep.ChunkFiles {
		_, _ = fmt.Fprintf(r.out, "  %s: %s\n", f.Name, FormatMB(f.Bytes))
	}
	if len(rep.ChunkFiles) > 0 {
		avg, largest, smallest := rep.ChunkSizeSummary()
		_, _ = fmt.Fprintf(r.out, "\nAverage chunk size: %.2f MB\n", avg/1024/1024)
		_, _ = fmt.Fprintf(r.out, "Max chunk size: %s\n", FormatMB(largest))
		_, _ = fmt.Fprintf(r.out, "Min chunk size: %s\n", FormatMB(smallest))
	}

	_, err := fmt.Fprintf(r.out, "\nMaster index size: %s\n", FormatMB(rep.MasterIndex.Bytes))
	return err
}

// RenderJSON outputs a report as JSON.
func (r *ReportRenderer) RenderJSON(report any) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// FormatMB formats a size in megabytes with two decimals.
func FormatMB(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/1024/1024)
}

// FormatBytes formats bytes to human-readable format.
func FormatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
