package stat

import (
	sent "github.com/revelaction/conllu/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences         int
	NumWords             int
	NumMultiwordTokens   int
	WordsPerSentenceMean float64
	WordsPerSentenceDis  map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{WordsPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the sentences of doc to the running totals.
func (h *Handler) Aggregate(doc sent.Doc) {
	for _, s := range doc.Sentences {
		h.AggregateSentence(s)
	}
}

func (h *Handler) AggregateSentence(s *sent.Sentence) {
	n := s.Len()

	h.stats.NumSentences++
	h.stats.NumWords += n
	h.stats.WordsPerSentenceDis[n]++

	for _, e := range s.Tokens {
		if _, ok := e.(*sent.MultiwordToken); ok {
			h.stats.NumMultiwordTokens++
		}
	}

	h.stats.WordsPerSentenceMean = float64(h.stats.NumWords) / float64(h.stats.NumSentences)
}
