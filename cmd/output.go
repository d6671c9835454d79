package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"lanka-finance/format"
)

// table writes label/amount rows with aligned columns.
type table struct {
	tw *tabwriter.Writer
}

func newTable(w io.Writer) *table {
	return &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)}
}

func (t *table) money(label string, value float64) {
	fmt.Fprintf(t.tw, "%s\t%s\t\n", label, format.Currency(value))
}

func (t *table) row(cells ...string) {
	for _, c := range cells {
		fmt.Fprintf(t.tw, "%s\t", c)
	}
	fmt.Fprintln(t.tw)
}

func (t *table) flush() error {
	return t.tw.Flush()
}
