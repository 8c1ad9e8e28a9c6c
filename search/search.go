package search

import (
	"errors"
	"fmt"

	"github.com/revelaction/conllu/storage"
)

var ErrNoLemmas = errors.New("at least one lemma is needed")

// Search finds the sentences of a repository that contain all of a set
// of lemmas.
type Search struct {
	repo  storage.DocReader
	docID *int
	limit int
}

const DefaultLimit = 100

func New(dr storage.DocReader) *Search {
	return &Search{
		repo:  dr,
		limit: DefaultLimit,
	}
}

// WithDocID restricts the search to a single document. The document is
// read and scanned instead of using FindCandidates.
func (s *Search) WithDocID(id int) *Search {
	s.docID = &id
	return s
}

// WithLimit sets the page size of the indexed search.
func (s *Search) WithLimit(limit int) *Search {
	if limit > 0 {
		s.limit = limit
	}
	return s
}

// Sentences calls onMatch for every matching sentence, in repository order.
func (s *Search) Sentences(lemmas []string, onMatch func(storage.SentenceResult) error) error {
	if len(lemmas) == 0 {
		return ErrNoLemmas
	}

	// Strategy 1: Single Document (No Index)
	if s.docID != nil {
		doc, err := s.repo.Read(*s.docID)
		if err != nil {
			return err
		}

		for i, sentence := range doc.Sentences {
			if !storage.HasLemmas(sentence, lemmas) {
				continue
			}

			err := onMatch(storage.SentenceResult{
				DocID:    *s.docID,
				DocTitle: doc.Title,
				Index:    i,
				Sentence: sentence,
			})
			if err != nil {
				return err
			}
		}
		return nil
	}

	// Strategy 2: FindCandidates, page by page
	var cursor storage.Cursor
	for {
		results, next, err := s.repo.FindCandidates(lemmas, cursor, s.limit)
		if err != nil {
			return fmt.Errorf("failed to find candidates after %d: %w", cursor, err)
		}

		if len(results) == 0 {
			return nil
		}

		for _, res := range results {
			if err := onMatch(res); err != nil {
				return err
			}
		}

		cursor = next
	}
}
