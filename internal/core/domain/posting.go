// Package domain holds the core types shared across ports and services:
// postings, documents, and the sentinel errors the rest of the module wraps.
package domain

// Posting locates one occurrence of a word in a document.
//
// CharOffset is the byte index of the token's first byte within the
// document; WordOffset is the token's 0-based rank among all tokens
// emitted for that document. Both increase monotonically in emission
// order for a given (word, path) pair.
type Posting struct {
	CharOffset uint32
	WordOffset uint32
}

// Document is a unit of indexing work: a path paired with the text
// read from it. Content may be dropped by the caller once indexing of
// this document has completed; only Path is needed to answer queries.
type Document struct {
	ID      uint32
	Path    string
	Content string
}
