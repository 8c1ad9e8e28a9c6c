package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/conllu/render"
	"github.com/revelaction/conllu/search"
	"github.com/revelaction/conllu/storage"
)

func lemmaCommand(repo storage.DocReader, opts LemmaOptions, lemmas []string, ui UI) error {
	if opts.Limit <= 0 {
		return fmt.Errorf("invalid limit %d", opts.Limit)
	}

	if p, ok := repo.(storage.Preloader); ok && opts.Doc == nil {
		if err := preload(p, ui); err != nil {
			return err
		}
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = opts.Color
	r.HasPrefix = !opts.NoPrefix
	if opts.Format != "" {
		r.Format = opts.Format
	}

	srch := search.New(repo).WithLimit(opts.Limit)
	if opts.Doc != nil {
		srch = srch.WithDocID(*opts.Doc)
	}

	return srch.Sentences(lemmas, func(res storage.SentenceResult) error {
		r.Results([]storage.SentenceResult{res}, lemmas)
		return nil
	})
}

// preload loads the docs into memory with a progress bar on ui.Err.
func preload(p storage.Preloader, ui UI) error {
	progress := uiprogress.New()
	progress.SetOut(ui.Err)
	progress.Start()
	defer progress.Stop()

	var bar *uiprogress.Bar

	return p.LoadAll(func(total int, name string) {
		if bar == nil {
			bar = progress.AddBar(total)
			bar.AppendCompleted()
			bar.PrependElapsed()
		}

		bar.Incr()
	})
}
