package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/riftdata/internal/card"
)

// Stats counts cards by domain and by primary type
type Stats struct {
	Total   int
	Domains map[string]int
	Types   map[string]int
}

// Distribution tallies records by domain and primary type
func Distribution(records []*card.Record) Stats {
	s := Stats{
		Total:   len(records),
		Domains: make(map[string]int),
		Types:   make(map[string]int),
	}
	for _, r := range records {
		s.Domains[r.Domain]++
		s.Types[r.PrimaryType()]++
	}
	return s
}

// Print writes both distributions to w, sorted by key. Headers are colored
// only when w is a terminal.
func Print(w io.Writer, s Stats) {
	header := colorize.New(colorize.FgCyan, colorize.Bold)
	if !isTerminal(w) {
		header.DisableColor()
	}

	fmt.Fprintf(w, "Total cards: %d\n", s.Total)

	fmt.Fprintln(w)
	header.Fprintln(w, "Domain distribution:")
	printCounts(w, s.Domains)

	fmt.Fprintln(w)
	header.Fprintln(w, "Type distribution:")
	printCounts(w, s.Types)
}

// PrintAdded lists the cards that were filled in from legacy data
func PrintAdded(w io.Writer, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(w, "Added %d cards from legacy data:\n", len(names))
	for _, name := range names {
		fmt.Fprintf(w, "  - %s\n", name)
	}
}

func printCounts(w io.Writer, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %d\n", k, counts[k])
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) && !colorize.NoColor
}
