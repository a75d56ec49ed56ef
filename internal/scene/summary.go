package scene

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/litescript/starfield/internal/catalog"
	"github.com/litescript/starfield/internal/palette"
)

// ClassCount aggregates per-spectral-class statistics for one class letter.
type ClassCount struct {
	Class     string
	Count     int
	Brightest float64 // lowest magnitude seen
	Faintest  float64 // highest magnitude seen
}

// SummarizeClasses buckets records by spectral class in palette order, with
// a trailing "?" bucket for classes outside the palette.
func SummarizeClasses(records []catalog.StarRecord) []ClassCount {
	counts := make([]ClassCount, len(palette.Classes)+1)
	for i := 0; i < len(palette.Classes); i++ {
		counts[i] = ClassCount{Class: string(palette.Classes[i]), Brightest: math.Inf(1), Faintest: math.Inf(-1)}
	}
	counts[len(palette.Classes)] = ClassCount{Class: "?", Brightest: math.Inf(1), Faintest: math.Inf(-1)}

	for _, rec := range records {
		idx := palette.ClassIndex(rec.SpectralClass)
		if idx < 0 {
			idx = len(palette.Classes)
		}
		c := &counts[idx]
		c.Count++
		if rec.Mag < c.Brightest {
			c.Brightest = rec.Mag
		}
		if rec.Mag > c.Faintest {
			c.Faintest = rec.Mag
		}
	}
	return counts
}

// WriteSummary writes a per-class text table to the given writer.
func WriteSummary(w io.Writer, records []catalog.StarRecord) {
	counts := SummarizeClasses(records)

	fmt.Fprintf(w, "Catalog: %d stars\n", len(records))
	fmt.Fprintln(w, strings.Repeat("─", 40))
	fmt.Fprintf(w, "%-6s %8s %10s %10s\n", "Class", "Count", "Brightest", "Faintest")
	fmt.Fprintln(w, strings.Repeat("─", 40))

	for _, c := range counts {
		if c.Count == 0 {
			continue
		}
		fmt.Fprintf(w, "%-6s %8d %10.2f %10.2f\n", c.Class, c.Count, c.Brightest, c.Faintest)
	}
}
