package main

import (
	"fmt"

	"github.com/revelaction/conllu/render"
	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/storage"
)

func jsonCommand(repo storage.DocReader, docId int, sentId *int, ui UI) error {
	doc, err := repo.Read(docId)
	if err != nil {
		return err
	}

	sentences := doc.Sentences
	if sentId != nil {
		if *sentId < 0 || *sentId >= len(doc.Sentences) {
			return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", *sentId, len(doc.Sentences))
		}
		sentences = []*sent.Sentence{doc.Sentences[*sentId]}
	}

	return render.NewJSONRenderer(ui.Out).Render(sentences)
}
