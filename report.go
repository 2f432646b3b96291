package importfreq

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Entry is one row of the frequency table.
type Entry struct {
	Path  string
	Count int
}

// Rank sorts counts into report order: count descending, path ascending on
// ties. The tie-break makes the ordering total, so output never depends on
// map iteration order. A non-negative limit truncates the sorted sequence;
// a negative limit returns all entries.
func Rank(counts map[string]int, limit int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for path, n := range counts {
		entries = append(entries, Entry{Path: path, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Path < entries[j].Path
	})
	if limit >= 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}

// countWidth is the minimum width of the left-justified count column in
// plain output.
const countWidth = 7

// RenderPlain writes one line per entry: a left-justified count field of
// fixed minimum width followed by the import path.
func RenderPlain(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%-*d%s\n", countWidth, e.Count, e.Path); err != nil {
			return err
		}
	}
	return nil
}

// RenderTable writes the entries as a bordered table.
func RenderTable(w io.Writer, entries []Entry) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Count", "Import Path"})
	for _, e := range entries {
		tbl.AppendRow(table.Row{e.Count, e.Path})
	}
	tbl.Render()
	return nil
}

var warnColor = color.New(color.FgYellow)

// RenderWarnings writes each warning on its own line, followed by one blank
// separator line when any warnings were written. Returns the number of
// warnings written.
func RenderWarnings(w io.Writer, warnings []string) int {
	for _, warning := range warnings {
		warnColor.Fprintf(w, "warning: %s\n", warning)
	}
	if len(warnings) > 0 {
		fmt.Fprintln(w)
	}
	return len(warnings)
}
