// Package document holds the DocumentTextBlock record (spec.md §3,
// cs_<tenant>.document): one full-text-indexed, customer-key-encrypted
// block of a file's extracted text.
package document

import "context"

// TextBlock is one cs_<tenant>.document row, ready for insert_document.
// DocText and Tsv are already encrypted/lexeme-encrypted by the caller;
// this layer only persists them.
type TextBlock struct {
	FileRef string
	PartNo  int
	DocText string // customer-key-encrypted, base64url-no-pad
	Tsv     string // tsvector source text, one lexeme-encrypted per entry
	Lang    string // ISO-639-1
}

// Repository inserts text blocks via the insert_document stored procedure
// and removes a file's blocks on delete_text_indexing.
type Repository interface {
	// InsertDocument calls schema.insert_document(file_ref, part_no, doc_text,
	// tsv, lang); the procedure casts tsv (supplied as varchar) to tsvector.
	InsertDocument(ctx context.Context, schema string, block TextBlock) error
	// DeleteByFileRef removes every block belonging to fileRef.
	DeleteByFileRef(ctx context.Context, schema string, fileRef string) error
	// ComputeTsvector round-trips text through
	// to_tsvector(lang, unaccent_lower(text)) and returns its varchar cast,
	// one lexeme:pos[,pos...] entry per token.
	ComputeTsvector(ctx context.Context, lang string, text string) (string, error)
}
