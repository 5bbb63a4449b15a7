// Package renderer turns the shoply view-models into markdown documents. It
// never reads the ledger itself: every function consumes an already computed
// view-model, so rendering can change without touching the core.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/shoply/shoply"
)

// barWidth caps the text bars of the comparison chart.
const barWidth = 20

// DashboardMarkdown renders the whole dashboard: stats, stock table, sale
// targets and charts, in that order.
func DashboardMarkdown(v *shoply.Views) string {
	var b strings.Builder
	b.WriteString("# Shoply\n\n")
	b.WriteString(StatsMarkdown(v.Stats))
	b.WriteString("\n")
	b.WriteString(TableMarkdown(v.Table))
	b.WriteString("\n")
	b.WriteString(TargetsMarkdown(v.Targets))
	b.WriteString("\n")
	b.WriteString(ChartsMarkdown(v.Charts))
	return b.String()
}

// StatsMarkdown renders the four headline numbers.
func StatsMarkdown(s shoply.Stats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Overview")
	doc.Table(md.TableSet{
		Header: []string{"Total Stock", "Stock Sold", "Stock Remaining", "Total Value"},
		Rows: [][]string{{
			strconv.Itoa(s.TotalStock),
			strconv.Itoa(s.StockSold),
			strconv.Itoa(s.StockRemaining),
			s.TotalValue,
		}},
	})

	return doc.String()
}

// TableMarkdown renders the stock listing, or the placeholder text when
// there is no stock yet.
func TableMarkdown(t shoply.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Stock")
	if len(t.Rows) == 0 {
		doc.PlainText(t.Placeholder)
		return doc.String()
	}

	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, []string{
			r.Name,
			r.Category,
			r.Price,
			strconv.Itoa(r.Quantity),
			strconv.Itoa(r.Sold),
			strconv.Itoa(r.Remaining),
			r.Value,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Item", "Category", "Price", "Quantity", "Sold", "Remaining", "Total Value"},
		Rows:   rows,
	})

	return doc.String()
}

// TargetsMarkdown renders the sale-target selector. Placeholder entries are
// listed too, marked as not sellable, mirroring the selector the sale form
// shows.
func TargetsMarkdown(targets []shoply.SaleTarget) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Sale Targets")
	rows := make([][]string, 0, len(targets))
	for _, t := range targets {
		state := "placeholder"
		if t.Selectable {
			state = "sellable"
		}
		if t.ID == "" {
			state = "-"
		}
		rows = append(rows, []string{t.ID, t.Label, state})
	}
	doc.Table(md.TableSet{
		Header: []string{"Id", "Item", "State"},
		Rows:   rows,
	})

	return doc.String()
}

// ChartsMarkdown renders the two chart series as tables, with text bars
// standing in for the bar chart.
func ChartsMarkdown(c shoply.Charts) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Sold vs Remaining")
	total := c.TotalSold + c.TotalRemaining
	doc.Table(md.TableSet{
		Header: []string{"Series", "Units", "Share"},
		Rows: [][]string{
			{"Sold", strconv.Itoa(c.TotalSold), share(c.TotalSold, total)},
			{"Remaining", strconv.Itoa(c.TotalRemaining), share(c.TotalRemaining, total)},
		},
	})

	if len(c.Items) == 0 {
		return doc.String()
	}

	scale := 0
	for _, p := range c.Items {
		if p.Sold > scale {
			scale = p.Sold
		}
		if p.Remaining > scale {
			scale = p.Remaining
		}
	}

	doc.H3("By Item")
	rows := make([][]string, 0, len(c.Items))
	for _, p := range c.Items {
		rows = append(rows, []string{p.Label, strconv.Itoa(p.Sold), bar(p.Sold, scale), strconv.Itoa(p.Remaining), bar(p.Remaining, scale)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Item", "Sold", "", "Remaining", ""},
		Rows:   rows,
	})

	return doc.String()
}

func share(part, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(part)/float64(total))
}

func bar(value, scale int) string {
	if scale == 0 {
		return ""
	}
	return strings.Repeat("█", value*barWidth/scale)
}
