// Package report renders roll tables and statistics as aligned text.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/montecarlo/internal/analyzer"
)

// Table is anything with a header and formatted records
type Table interface {
	// Header returns the row label name followed by the column names
	Header() []string

	// Records returns one formatted record per row, aligned with Header
	Records() [][]string

	// Len returns the number of rows
	Len() int
}

// WriteTable renders t under a title. limit > 0 caps the rows shown.
func WriteTable(w io.Writer, title string, t Table, limit int) error {
	if _, err := fmt.Fprintf(w, "%s (%d rows)\n", title, t.Len()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Header(), "\t"))

	records := t.Records()
	shown := records
	if limit > 0 && len(records) > limit {
		shown = records[:limit]
	}
	for _, rec := range shown {
		fmt.Fprintln(tw, strings.Join(rec, "\t"))
	}
	if len(shown) < len(records) {
		fmt.Fprintf(tw, "... %d more\n", len(records)-len(shown))
	}
	return tw.Flush()
}

// WriteSummary renders the headline numbers of a play
func WriteSummary(w io.Writer, name string, s analyzer.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "game\t%s (%s)\n", name, s.GameID)
	fmt.Fprintf(tw, "dice\t%d\n", s.Dice)
	fmt.Fprintf(tw, "rolls\t%d\n", s.Rolls)
	fmt.Fprintf(tw, "jackpots\t%d (%.2f%%)\n", s.Jackpots, s.JackpotRate*100)
	fmt.Fprintf(tw, "combinations\t%d\n", s.DistinctCombinations)
	fmt.Fprintf(tw, "permutations\t%d\n", s.DistinctPermutations)
	return tw.Flush()
}
