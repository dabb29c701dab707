// Package paginate turns documents into bounded page sequences and keeps
// those sequences consistent through edits.
//
// The Paginator carves a document into pages sized by word and character
// budgets, delegating boundary choice to the split selector. It also
// implements the incremental path: after a localized edit, only the
// document suffix past the last known-good page is re-split, bounding
// cost to the size of the changed tail.
//
// All operations are pure functions over their inputs; the Paginator
// itself carries only configuration and is safe for concurrent use.
package paginate
