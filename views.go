package shoply

import (
	"fmt"
	"strconv"
)

// This file contains the view projection: pure, order-preserving mappings
// from a ledger snapshot to the view-models the presentation layer consumes.
// None of them mutate the ledger, and each one fully replaces any previous
// projection rather than patching it.

// Stats is the view-model for the four headline numbers.
type Stats struct {
	TotalStock     int
	StockSold      int
	StockRemaining int
	TotalValue     string // formatted, e.g. "₦250,000"
}

// TableRow is one line of the stock table. Price and Value are formatted for
// display; the raw numbers live in the ledger.
type TableRow struct {
	Name      string
	Category  string
	Price     string
	Quantity  int
	Sold      int
	Remaining int
	Value     string
}

// Table is the view-model for the stock listing. With no rows the
// Placeholder text is displayed instead.
type Table struct {
	Rows        []TableRow
	Placeholder string
}

// noStockPlaceholder replaces the table rows while the ledger is empty.
const noStockPlaceholder = "No stock added yet"

// SaleTarget is one entry of the sale-target selector. Only selectable
// entries address a real ledger position through their ID.
type SaleTarget struct {
	ID         string
	Label      string
	Selectable bool
}

// While the ledger is empty the selector is filled with synthetic,
// non-selectable entries so the sale form still has rows to display. Their
// ids carry the placeholder prefix so a sale against one is recognizable.
const (
	placeholderTargets = 20
	placeholderPrefix  = "d-"
)

// ChartPoint is one item of the comparison chart.
type ChartPoint struct {
	Label     string
	Sold      int
	Remaining int
}

// Charts groups the two chart series: the sold/remaining totals feed the
// proportion display, Items feeds the per-item comparison display.
type Charts struct {
	TotalSold      int
	TotalRemaining int
	Items          []ChartPoint
}

// Views groups the four view-models that together make up the dashboard.
type Views struct {
	Stats   Stats
	Table   Table
	Targets []SaleTarget
	Charts  Charts
}

// Project computes all four view-models from the current ledger state. It is
// the single re-projection entry point: after every mutation the caller
// replaces the previous Views wholesale, so the views can never drift apart.
func Project(l *Ledger) *Views {
	return &Views{
		Stats:   ProjectStats(l),
		Table:   ProjectTable(l),
		Targets: ProjectSaleTargets(l),
		Charts:  ProjectCharts(l),
	}
}

// ProjectStats maps the ledger aggregates to the stats view-model.
func ProjectStats(l *Ledger) Stats {
	a := l.Aggregate()
	return Stats{
		TotalStock:     a.TotalStock,
		StockSold:      a.StockSold,
		StockRemaining: a.StockRemaining,
		TotalValue:     a.TotalValue.String(),
	}
}

// ProjectTable maps the ledger to the table view-model, one row per item in
// ledger order.
func ProjectTable(l *Ledger) Table {
	if l.Len() == 0 {
		return Table{Placeholder: noStockPlaceholder}
	}
	rows := make([]TableRow, 0, l.Len())
	for _, item := range l.Items() {
		rows = append(rows, TableRow{
			Name:      item.Name,
			Category:  item.Category,
			Price:     item.Price.String(),
			Quantity:  item.Quantity,
			Sold:      item.Sold,
			Remaining: item.Remaining(),
			Value:     item.Value().String(),
		})
	}
	return Table{Rows: rows}
}

// ProjectSaleTargets maps the ledger to the sale-target selector. A leading
// unselectable "Select item" entry is always first. An empty ledger yields
// the synthetic placeholder entries instead of real targets.
func ProjectSaleTargets(l *Ledger) []SaleTarget {
	targets := make([]SaleTarget, 0, l.Len()+1)
	targets = append(targets, SaleTarget{Label: "Select item"})

	if l.Len() == 0 {
		for i := 1; i <= placeholderTargets; i++ {
			targets = append(targets, SaleTarget{
				ID:    fmt.Sprintf("%s%d", placeholderPrefix, i),
				Label: fmt.Sprintf("Item %d", i),
			})
		}
		return targets
	}

	for index, item := range l.Items() {
		targets = append(targets, SaleTarget{
			ID:         strconv.Itoa(index),
			Label:      item.Name,
			Selectable: true,
		})
	}
	return targets
}

// ProjectCharts maps the ledger to the two chart series.
func ProjectCharts(l *Ledger) Charts {
	charts := Charts{Items: make([]ChartPoint, 0, l.Len())}
	for _, item := range l.Items() {
		charts.TotalSold += item.Sold
		charts.TotalRemaining += item.Remaining()
		charts.Items = append(charts.Items, ChartPoint{
			Label:     item.Name,
			Sold:      item.Sold,
			Remaining: item.Remaining(),
		})
	}
	return charts
}
