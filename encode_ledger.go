package shoply

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes stock items from a stream of JSONL data, one item per
// line, and returns them as a ledger in stream order. Lines that do not parse
// or that violate the item invariants make the whole stream invalid.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue // Skip empty lines
		}

		var item StockItem
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, fmt.Errorf("cannot parse stock item line %q: %w", string(line), err)
		}
		if err := item.check(); err != nil {
			return nil, fmt.Errorf("invalid stock item line %q: %w", string(line), err)
		}
		ledger.items = append(ledger.items, item)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// EncodeItem marshals a single stock item to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeItem(w io.Writer, item StockItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal stock item %q: %w", item.Name, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write stock item %q: %w", item.Name, err)
	}
	return nil
}

// EncodeLedger persists the ledger to an io.Writer in JSONL format, one item
// per line in ledger order, so the blob round-trips through DecodeLedger.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, item := range ledger.items {
		if err := EncodeItem(w, item); err != nil {
			return err
		}
	}
	return nil
}
