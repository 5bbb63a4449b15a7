package shoply

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Sink is the presentation surface the session renders into. The core never
// depends on it for correctness: it only pushes computed view-models and
// messages through it.
type Sink interface {
	// Render replaces whatever the sink displayed before with these views.
	Render(v *Views)
	// Confirm asks the user to approve an irreversible action.
	Confirm(prompt string) bool
	// Notify surfaces a non-fatal message to the user.
	Notify(message string)
}

// resetPrompt is shown before wiping all data.
const resetPrompt = "Are you sure you want to reset all data?"

// Session owns the ledger for the lifetime of one run and funnels every
// command through the same sequence: validate, mutate, persist, re-project.
// Commands run strictly one after the other, so no locking is involved.
type Session struct {
	ledger *Ledger
	store  Store
	sink   Sink
	log    *logrus.Logger
}

// Open loads the persisted ledger from the store into a new session. Missing
// or corrupt persisted state degrades to an empty ledger, never to a failure.
func Open(store Store, sink Sink) *Session {
	s := &Session{store: store, sink: sink, log: logrus.StandardLogger()}
	s.ledger = s.loadLedger()
	return s
}

func (s *Session) loadLedger() *Ledger {
	blob, err := s.store.Get(LedgerKey)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger()
	}
	if err != nil {
		s.log.WithError(err).Warn("cannot load stock ledger, starting empty")
		return NewLedger()
	}
	ledger, err := DecodeLedger(bytes.NewReader(blob))
	if err != nil {
		s.log.WithError(err).Warn("stored stock ledger is corrupt, starting empty")
		return NewLedger()
	}
	return ledger
}

// Ledger exposes the session's ledger for reports.
func (s *Session) Ledger() *Ledger { return s.ledger }

// Views recomputes the four view-models from the current ledger.
func (s *Session) Views() *Views { return Project(s.ledger) }

// AddStock parses and validates raw form input, appends the item and runs the
// persist/re-project cycle. Rejected input leaves ledger, store and views
// untouched.
func (s *Session) AddStock(name, category, price, quantity string) (StockItem, error) {
	p, err := ParseMoney(strings.TrimSpace(price))
	if err != nil {
		return StockItem{}, fmt.Errorf("%w: price %q is not a number", ErrValidation, price)
	}
	q, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil {
		return StockItem{}, fmt.Errorf("%w: quantity %q is not an integer", ErrValidation, quantity)
	}
	item, err := s.ledger.AddItem(name, category, p, q)
	if err != nil {
		return StockItem{}, err
	}
	s.refreshAll()
	return item, nil
}

// RecordSale resolves the selected target and quantity and records the sale.
// A placeholder or out-of-range target yields ErrInvalidTarget; a bad
// quantity yields ErrInvalidQuantity or ErrInsufficientStock.
func (s *Session) RecordSale(target, quantity string) error {
	index, err := s.resolveTarget(target)
	if err != nil {
		return err
	}
	qty, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", ErrInvalidQuantity, quantity)
	}
	if err := s.ledger.RecordSale(index, qty); err != nil {
		return err
	}
	s.refreshAll()
	return nil
}

func (s *Session) resolveTarget(target string) (int, error) {
	target = strings.TrimSpace(target)
	if strings.HasPrefix(target, placeholderPrefix) {
		return 0, fmt.Errorf("%w: %q is a placeholder, add stock for this item first", ErrInvalidTarget, target)
	}
	index, err := strconv.Atoi(target)
	if err != nil || index < 0 || index >= s.ledger.Len() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	return index, nil
}

// Reset clears the ledger and the persisted blob, then re-projects. The sink
// is asked to confirm first; a declined confirmation is a no-op.
func (s *Session) Reset() {
	if !s.sink.Confirm(resetPrompt) {
		return
	}
	s.ledger.Reset()
	if err := s.store.Delete(LedgerKey); err != nil {
		s.warnPersistence(err)
	}
	s.render()
}

// ExportCSV writes the spreadsheet artifact for the current ledger.
func (s *Session) ExportCSV(w io.Writer) error {
	return ExportCSV(w, s.ledger)
}

// refreshAll is the single post-mutation path: persist first, then recompute
// every view and hand them to the sink in one piece.
func (s *Session) refreshAll() {
	if err := s.saveLedger(); err != nil {
		s.warnPersistence(err)
	}
	s.render()
}

func (s *Session) saveLedger() error {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, s.ledger); err != nil {
		return err
	}
	return s.store.Set(LedgerKey, buf.Bytes())
}

func (s *Session) render() {
	s.sink.Render(Project(s.ledger))
}

// warnPersistence keeps the session going on storage trouble: the in-memory
// ledger stays authoritative for the rest of the run, the user is told.
func (s *Session) warnPersistence(err error) {
	s.log.WithError(err).Warn("cannot persist stock ledger")
	s.sink.Notify(fmt.Sprintf("Warning: could not save stock data: %v", err))
}
