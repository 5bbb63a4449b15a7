package shoply

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// this file handles the export format. It must stay compatible with
// spreadsheet tools, so the layout is fixed: the seven table columns with
// unformatted numeric values.

// ExportFilename is the name under which the CSV artifact is offered.
const ExportFilename = "shoply-stock.csv"

var csvHeader = []string{"Item", "Category", "Price", "Quantity", "Sold", "Remaining", "Total Value"}

// ExportCSV writes the ledger to 'w' as CSV, header first then one row per
// item in ledger order. It reads the ledger at call time; nothing is cached.
func ExportCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write export header: %w", err)
	}
	for _, item := range l.Items() {
		record := []string{
			item.Name,
			item.Category,
			item.Price.Plain(),
			strconv.Itoa(item.Quantity),
			strconv.Itoa(item.Sold),
			strconv.Itoa(item.Remaining()),
			item.Value().Plain(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write export row for %q: %w", item.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
