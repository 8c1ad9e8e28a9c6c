package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/rs/zerolog"

	"github.com/revelaction/conllu/storage/filesystem"
	"github.com/revelaction/conllu/storage/sqlite/zombiezen"
)

func importDocCommand(opts ImportDocOptions, logger zerolog.Logger, ui UI) error {
	src, err := filesystem.NewDocStore(opts.From)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(opts.To)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateSchemas(pool, zombiezen.DocsSchema); err != nil {
		return fmt.Errorf("failed to create docs table: %w", err)
	}

	dst := zombiezen.NewDocStore(pool)

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", opts.From)
	docs, err := src.List()
	if err != nil {
		return err
	}

	progress := uiprogress.New()
	progress.SetOut(ui.Err)
	progress.Start()
	bar := progress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, docMeta := range docs {
		doc, err := src.Read(docMeta.Id)
		if err != nil {
			progress.Stop()
			return fmt.Errorf("failed to read doc %s: %w", docMeta.Title, err)
		}

		if err := dst.Write(doc); err != nil {
			progress.Stop()
			return fmt.Errorf("failed to write doc %s: %w", docMeta.Title, err)
		}

		logger.Debug().Str("doc", doc.Title).Int("sentences", len(doc.Sentences)).Msg("imported")
		count++
		bar.Incr()
	}
	progress.Stop()

	logger.Info().Int("docs", count).Str("from", opts.From).Str("to", opts.To).Msg("import done")
	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", count, opts.From, opts.To)
	return nil
}
