package storage

import (
	sent "github.com/revelaction/conllu/sentence"
)

// Cursor for paginated lemma-based queries
type Cursor int64

// SentenceResult is a sentence found by FindCandidates, with its position.
type SentenceResult struct {
	RowID    int64
	DocID    int
	DocTitle string
	Index    int
	Sentence *sent.Sentence
}

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the Id and Title of all documents, without sentences.
	List() ([]sent.Doc, error)

	// Read returns a document by ID
	Read(id int) (sent.Doc, error)

	// FindCandidates returns sentences containing ALL given lemmas,
	// resuming after the given cursor. Returns the new cursor.
	FindCandidates(lemmas []string, after Cursor, limit int) ([]SentenceResult, Cursor, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a new document and its sentences
	Write(doc sent.Doc) error

	// WriteSentence replaces the sentence at index of document docID.
	WriteSentence(docID, index int, s *sent.Sentence) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// Preloader is implemented by repositories that load documents into memory.
type Preloader interface {
	LoadAll(cb func(total int, name string)) error
}

// HasLemmas reports whether s contains every lemma.
func HasLemmas(s *sent.Sentence, lemmas []string) bool {
	have := make(map[string]bool)
	for _, l := range s.Lemmas() {
		have[l] = true
	}

	for _, l := range lemmas {
		if !have[l] {
			return false
		}
	}

	return true
}
