// Package finbook is the ledger core of a single-user personal finance
// tracker. It records income, expense, and transfer transactions across
// named accounts, keeps the category and account registries consistent
// with the transaction collection, and derives read-side views from the
// current ledger state.
//
// The core functionalities include:
//   - Ledger Store: the canonical ordered transaction collection plus the
//     category and account registries, mutated only through validated
//     operations with cascading rename and delete.
//   - Transfer Coordination: a transfer between two accounts is a linked
//     pair of ledger entries (an expense leg and an income leg) that the
//     ledger creates, edits, and deletes as one logical operation.
//   - Aggregation: account balances, monthly income/expense summaries, and
//     top-category breakdowns computed on demand without mutating state.
//   - Query: case-insensitive full-text filtering and the canonical sort
//     order used for every presented list.
//   - Import/Export: a CSV codec that round-trips the ledger and reconciles
//     imported rows against the registries.
//   - Persistence: one snapshot encode/decode boundary against a durable
//     key-value store (see the kvstore subpackage).
//
// The package is an embedded, in-process library: it has no CLI, no network
// endpoints, and leaves presentation (forms, currency localization, file
// pickers) to its caller.
package finbook
