package main

import (
	"fmt"

	"github.com/revelaction/conllu/render"
	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/storage"
)

func sentenceCommand(repo storage.DocReader, color bool, docId int, sentId int, ui UI) error {
	s, err := readSentence(repo, docId, sentId)
	if err != nil {
		return err
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = color
	r.Sentence(s, fmt.Sprintf("✍  %d ", sentId))
	fmt.Fprintln(ui.Out)
	r.Table(s)

	return nil
}

func readSentence(repo storage.DocReader, docId int, sentId int) (*sent.Sentence, error) {
	doc, err := repo.Read(docId)
	if err != nil {
		return nil, err
	}

	if sentId < 0 || sentId >= len(doc.Sentences) {
		return nil, fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", sentId, len(doc.Sentences))
	}

	return doc.Sentences[sentId], nil
}
