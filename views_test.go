package shoply

import (
	"fmt"
	"testing"
)

// seedLedger builds the two-item ledger used across the projection tests:
// Rice Bag 10 units (3 sold) and Beans 4 units (0 sold).
func seedLedger(t *testing.T) *Ledger {
	t.Helper()
	ledger := NewLedger()
	if _, err := ledger.AddItem("Rice Bag", "Grains", M(25000), 10); err != nil {
		t.Fatal(err)
	}
	if _, err := ledger.AddItem("Beans", "", M(1500), 4); err != nil {
		t.Fatal(err)
	}
	if err := ledger.RecordSale(0, 3); err != nil {
		t.Fatal(err)
	}
	return ledger
}

func TestProjectStats(t *testing.T) {
	stats := ProjectStats(seedLedger(t))

	want := Stats{TotalStock: 14, StockSold: 3, StockRemaining: 11, TotalValue: "₦181,000"}
	if stats != want {
		t.Errorf("ProjectStats() = %+v, want %+v", stats, want)
	}
}

func TestProjectTable(t *testing.T) {
	table := ProjectTable(seedLedger(t))

	if table.Placeholder != "" {
		t.Errorf("Placeholder = %q, want empty for a non-empty ledger", table.Placeholder)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(table.Rows))
	}

	want := TableRow{
		Name:      "Rice Bag",
		Category:  "Grains",
		Price:     "₦25,000",
		Quantity:  10,
		Sold:      3,
		Remaining: 7,
		Value:     "₦175,000",
	}
	if table.Rows[0] != want {
		t.Errorf("Rows[0] = %+v, want %+v", table.Rows[0], want)
	}
}

func TestProjectTable_Empty(t *testing.T) {
	table := ProjectTable(NewLedger())

	if len(table.Rows) != 0 {
		t.Errorf("len(Rows) = %d, want 0", len(table.Rows))
	}
	if table.Placeholder != "No stock added yet" {
		t.Errorf("Placeholder = %q, want %q", table.Placeholder, "No stock added yet")
	}
}

func TestProjectSaleTargets_Empty(t *testing.T) {
	targets := ProjectSaleTargets(NewLedger())

	// One leading blank entry plus 20 placeholders.
	if len(targets) != 21 {
		t.Fatalf("len(targets) = %d, want 21", len(targets))
	}

	lead := targets[0]
	if lead.ID != "" || lead.Label != "Select item" || lead.Selectable {
		t.Errorf("leading entry = %+v, want unselectable blank \"Select item\"", lead)
	}

	for i := 1; i <= 20; i++ {
		got := targets[i]
		wantID := fmt.Sprintf("d-%d", i)
		wantLabel := fmt.Sprintf("Item %d", i)
		if got.ID != wantID || got.Label != wantLabel || got.Selectable {
			t.Errorf("targets[%d] = %+v, want {%s %s false}", i, got, wantID, wantLabel)
		}
	}
}

func TestProjectSaleTargets(t *testing.T) {
	targets := ProjectSaleTargets(seedLedger(t))

	if len(targets) != 3 {
		t.Fatalf("len(targets) = %d, want 3", len(targets))
	}
	if targets[0].Selectable {
		t.Error("leading entry must not be selectable")
	}

	want := []SaleTarget{
		{ID: "0", Label: "Rice Bag", Selectable: true},
		{ID: "1", Label: "Beans", Selectable: true},
	}
	for i, w := range want {
		if targets[i+1] != w {
			t.Errorf("targets[%d] = %+v, want %+v", i+1, targets[i+1], w)
		}
	}
}

func TestProjectCharts(t *testing.T) {
	charts := ProjectCharts(seedLedger(t))

	if charts.TotalSold != 3 || charts.TotalRemaining != 11 {
		t.Errorf("totals = %d/%d, want 3/11", charts.TotalSold, charts.TotalRemaining)
	}
	if len(charts.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(charts.Items))
	}
	if charts.Items[0] != (ChartPoint{Label: "Rice Bag", Sold: 3, Remaining: 7}) {
		t.Errorf("Items[0] = %+v", charts.Items[0])
	}
	if charts.Items[1] != (ChartPoint{Label: "Beans", Sold: 0, Remaining: 4}) {
		t.Errorf("Items[1] = %+v", charts.Items[1])
	}
}

// TestProject checks that the four views of one projection agree with each
// other: they are all derived from the same snapshot.
func TestProject(t *testing.T) {
	ledger := seedLedger(t)
	v := Project(ledger)

	if v.Stats.StockSold != v.Charts.TotalSold {
		t.Errorf("stats sold %d != charts sold %d", v.Stats.StockSold, v.Charts.TotalSold)
	}
	if v.Stats.StockRemaining != v.Charts.TotalRemaining {
		t.Errorf("stats remaining %d != charts remaining %d", v.Stats.StockRemaining, v.Charts.TotalRemaining)
	}
	if len(v.Table.Rows) != ledger.Len() {
		t.Errorf("table rows %d != ledger items %d", len(v.Table.Rows), ledger.Len())
	}
	if len(v.Targets) != ledger.Len()+1 {
		t.Errorf("targets %d != ledger items+1 %d", len(v.Targets), ledger.Len()+1)
	}
	if len(v.Charts.Items) != ledger.Len() {
		t.Errorf("chart points %d != ledger items %d", len(v.Charts.Items), ledger.Len())
	}
}
