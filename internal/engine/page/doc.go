// Package page defines the page data model for the pagination engine.
//
// A Page owns a contiguous, non-overlapping byte range of the source
// document together with derived word/character counts and position
// metadata. A Sequence is an ordered set of pages covering a document
// exactly; concatenating its contents in page-number order reproduces
// the document byte for byte.
//
// Position Units:
//
// All offsets (StartIndex, EndIndex) and CharacterCount are measured in
// UTF-8 bytes. The engine uses a single indexing unit throughout so that
// slicing the document with page offsets is exact. Boundary selection
// upstream guarantees offsets never land inside a multi-byte sequence.
//
// Pages are immutable values. Mutation is expressed by constructing a
// replacement page (see WithContent); sequences are copied, never edited
// in place.
package page
