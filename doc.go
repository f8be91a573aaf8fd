// Package cashie implements the ledger and recurrence engine behind the
// Cashie personal finance application.
//
// The engine owns the versioned data model (profiles, transactions,
// categories, budgets, savings goals), materializes recurring transaction
// templates up to a cutoff date, answers month/search/aggregation queries,
// and imports/exports portable documents under replace and merge policies.
// Persistence is a single local JSON document; older documents are upgraded
// through a chain of schema migrations on load.
//
// The engine is strictly single-writer and synchronous: every operation runs
// to completion with exclusive access to the Store. User interfaces are thin
// collaborators that call the exported entry points and render the results.
package cashie
