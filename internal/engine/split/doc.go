// Package split chooses page boundary offsets within a document suffix.
//
// The selector prefers boundaries a reader would consider natural. It
// first sizes a candidate offset by word and character budgets, then
// searches a small window around the candidate for a paragraph break,
// falling back to a sentence boundary, then to plain whitespace. A page
// may exceed the character budget only by the lookahead window, and only
// when no closer boundary exists.
//
// All offsets are UTF-8 byte offsets. Scanning decodes runes, so a
// returned boundary never lands inside a multi-byte sequence.
package split
