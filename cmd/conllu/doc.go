package main

import (
	"fmt"

	"github.com/revelaction/conllu/render"
	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/storage"
)

func docCommand(repo storage.DocReader, opts DocOptions, docId int, ui UI) error {
	doc, err := repo.Read(docId)
	if err != nil {
		return err
	}

	renderDoc(doc, opts, ui)
	return nil
}

func renderDoc(doc sent.Doc, opts DocOptions, ui UI) {
	start := opts.Start
	if start < 0 {
		start = 0
	}
	if start >= len(doc.Sentences) {
		return
	}

	sentences := doc.Sentences[start:]
	if opts.Count >= 0 && opts.Count < len(sentences) {
		sentences = sentences[:opts.Count]
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = opts.Color
	if opts.Format != "" {
		r.Format = opts.Format
	}

	for i, s := range sentences {
		prefix := fmt.Sprintf("✍  %d ", start+i)
		r.Sentence(s, prefix)
	}
}

func listDocs(repo storage.DocReader, ui UI) error {
	docs, err := repo.List()
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Fprintf(ui.Out, "📖 %d %s\n", doc.Id, doc.Title)
	}
	return nil
}
