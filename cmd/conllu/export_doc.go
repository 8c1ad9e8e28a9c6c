package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/rs/zerolog"

	"github.com/revelaction/conllu/storage/filesystem"
	"github.com/revelaction/conllu/storage/sqlite/zombiezen"
)

func exportDocCommand(opts ExportDocOptions, logger zerolog.Logger, ui UI) error {
	if _, err := os.Stat(opts.From); err != nil {
		return fmt.Errorf("repository not found: %s", opts.From)
	}

	pool, err := zombiezen.NewPool(opts.From)
	if err != nil {
		return err
	}
	defer pool.Close()
	src := zombiezen.NewDocStore(pool)

	// Ensure target directory exists
	if err := os.MkdirAll(opts.To, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	dst, err := filesystem.NewDocStore(opts.To)
	if err != nil {
		return err
	}

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
			return fmt.Errorf("failed to read doc %s (id %d): %w", docMeta.Title, docMeta.Id, err)
		}

		if err := dst.Write(doc); err != nil {
			progress.Stop()
			return fmt.Errorf("failed to write doc %s: %w", docMeta.Title, err)
		}

		logger.Debug().Str("doc", doc.Title).Msg("exported")
		count++
		bar.Incr()
	}
	progress.Stop()

	logger.Info().Int("docs", count).Str("from", opts.From).Str("to", opts.To).Msg("export done")
	fmt.Fprintf(ui.Out, "Successfully exported %d docs from %s to %s\n", count, opts.From, opts.To)
	return nil
}
