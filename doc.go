// Package shoply provides the types and functions behind the shoply stock
// tracker. It is designed to be local-first: all state lives in a single
// ledger persisted to a local key-value store.
//
// The core functionalities include:
//   - Ledger Management: Recording stock items and the sales made against
//     them in an ordered, append-only collection.
//   - View Projection: Pure functions mapping the ledger to the four
//     view-models of the dashboard (stats, table, sale targets, charts).
//   - Data Persistence: Encoding and decoding the ledger to and from a
//     human-readable JSONL blob stored under a fixed key.
//   - Export: Producing a spreadsheet-compatible CSV of the current stock.
//
// This package serves as the foundational logic for the `spl` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package shoply
