package shoply

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// The ways a command can be refused. Callers match with errors.Is to pick the
// right message for the user.
var (
	// ErrValidation rejects malformed add-stock input (empty name,
	// non-positive price or quantity, unparseable numbers).
	ErrValidation = errors.New("invalid input")
	// ErrInvalidTarget rejects a sale against a position that holds no item.
	ErrInvalidTarget = errors.New("no stock item at the selected position")
	// ErrInvalidQuantity rejects a non-positive or unparseable sale quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInsufficientStock rejects a sale of more units than remain.
	ErrInsufficientStock = errors.New("quantity exceeds remaining stock")
)

// StockItem is one inventory line: units received at a unit price, and how
// many of them have been sold so far.
type StockItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    Money  `json:"price"`
	Quantity int    `json:"quantity"`
	Sold     int    `json:"sold"`
}

// Remaining returns the units still in stock.
func (s StockItem) Remaining() int { return s.Quantity - s.Sold }

// Value returns the value of the remaining units at the unit price.
func (s StockItem) Value() Money { return s.Price.Mul(s.Remaining()) }

// check verifies the item invariants. Items built through AddItem always
// pass; the decoder uses it to spot corrupt persisted state.
func (s StockItem) check() error {
	switch {
	case strings.TrimSpace(s.Name) == "":
		return errors.New("name must not be empty")
	case !s.Price.IsPositive():
		return errors.New("price must be positive")
	case s.Quantity <= 0:
		return errors.New("quantity must be positive")
	case s.Sold < 0 || s.Sold > s.Quantity:
		return fmt.Errorf("sold %d out of range 0..%d", s.Sold, s.Quantity)
	}
	return nil
}

// Ledger is the ordered collection of stock items and the sole source of
// truth for inventory state.
//
// The collection only grows by append, so the position of an item is stable
// and doubles as its address in the sale-target selector.
type Ledger struct {
	items []StockItem
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{items: make([]StockItem, 0)}
}

// Len returns the number of items in the ledger.
func (l *Ledger) Len() int { return len(l.items) }

// Item returns the item at the given position, or false if the position is
// not occupied.
func (l *Ledger) Item(index int) (StockItem, bool) {
	if index < 0 || index >= len(l.items) {
		return StockItem{}, false
	}
	return l.items[index], true
}

// Items iterates over the items in ledger order with their positions.
func (l *Ledger) Items() iter.Seq2[int, StockItem] {
	return slices.All(l.items)
}

// AddItem appends a new item with no sales recorded yet. The name and
// category are trimmed; an empty trimmed name, a non-positive price or a
// non-positive quantity are rejected with ErrValidation and no mutation.
func (l *Ledger) AddItem(name, category string, price Money, quantity int) (StockItem, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return StockItem{}, fmt.Errorf("%w: name must not be empty", ErrValidation)
	case !price.IsPositive():
		return StockItem{}, fmt.Errorf("%w: price must be positive, got %s", ErrValidation, price.Plain())
	case quantity <= 0:
		return StockItem{}, fmt.Errorf("%w: quantity must be positive, got %d", ErrValidation, quantity)
	}
	item := StockItem{
		Name:     name,
		Category: strings.TrimSpace(category),
		Price:    price,
		Quantity: quantity,
	}
	l.items = append(l.items, item)
	return item, nil
}

// RecordSale adds qty units to the sold count of the item at index. On
// failure the ledger is untouched and the error tells the two cases apart:
// ErrInvalidTarget for an unoccupied position, ErrInvalidQuantity or
// ErrInsufficientStock for a bad quantity.
func (l *Ledger) RecordSale(index, qty int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: index %d", ErrInvalidTarget, index)
	}
	item := &l.items[index]
	if qty <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, qty)
	}
	if qty > item.Remaining() {
		return fmt.Errorf("%w: want %d, have %d", ErrInsufficientStock, qty, item.Remaining())
	}
	item.Sold += qty
	return nil
}

// Reset clears the ledger. It is idempotent.
func (l *Ledger) Reset() {
	l.items = make([]StockItem, 0)
}

// Aggregate holds the headline totals derived from the ledger.
type Aggregate struct {
	TotalStock     int
	StockSold      int
	StockRemaining int
	TotalValue     Money
}

// Aggregate folds the ledger into its totals. It has no side effects and is
// safe to call any number of times.
func (l *Ledger) Aggregate() Aggregate {
	var a Aggregate
	for _, item := range l.items {
		a.TotalStock += item.Quantity
		a.StockSold += item.Sold
		a.TotalValue = a.TotalValue.Add(item.Value())
	}
	a.StockRemaining = a.TotalStock - a.StockSold
	return a
}
