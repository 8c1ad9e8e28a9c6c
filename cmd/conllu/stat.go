package main

import (
	"fmt"
	"sort"

	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/stat"
	"github.com/revelaction/conllu/storage"
)

func statCommand(repo storage.DocReader, docId int, sentId *int, ui UI) error {
	doc, err := repo.Read(docId)
	if err != nil {
		return err
	}

	if sentId != nil {
		if *sentId < 0 || *sentId >= len(doc.Sentences) {
			return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", *sentId, len(doc.Sentences))
		}
		doc = sent.Doc{Id: doc.Id, Title: doc.Title, Sentences: []*sent.Sentence{doc.Sentences[*sentId]}}
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(doc)

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num sentences %d, num words %d, num multiword tokens %d, words per sentence %.2f\n",
		stats.NumSentences, stats.NumWords, stats.NumMultiwordTokens, stats.WordsPerSentenceMean)

	lengths := make([]int, 0, len(stats.WordsPerSentenceDis))
	for l := range stats.WordsPerSentenceDis {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	for _, l := range lengths {
		fmt.Fprintf(ui.Out, "%4d words: %d\n", l, stats.WordsPerSentenceDis[l])
	}

	return nil
}
