package main

import (
	"github.com/rs/zerolog"

	"github.com/revelaction/conllu/edit"
	"github.com/revelaction/conllu/file"
	"github.com/revelaction/conllu/render"
	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/storage"
)

func editCommand(repo storage.DocRepository, color bool, logger zerolog.Logger, docId int, ui UI) error {
	doc, err := repo.Read(docId)
	if err != nil {
		return err
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = color

	hdl := edit.NewHandler(doc, repo, r, ui.Out, logger)
	return hdl.Run()
}

func expandCommand(repo storage.DocRepository, logger zerolog.Logger, docId, sentId, tokenId, index int, ui UI) error {
	s, err := readSentence(repo, docId, sentId)
	if err != nil {
		return err
	}

	if _, err := s.Expand(tokenId, index); err != nil {
		return err
	}

	if err := repo.WriteSentence(docId, sentId, s); err != nil {
		return err
	}

	logger.Info().Int("doc", docId).Int("sentence", sentId).Int("id", tokenId).Int("index", index).Msg("expanded")
	return file.WriteDoc(ui.Out, []*sent.Sentence{s})
}

func collapseCommand(repo storage.DocRepository, logger zerolog.Logger, docId, sentId, tokenId int, ui UI) error {
	s, err := readSentence(repo, docId, sentId)
	if err != nil {
		return err
	}

	if _, err := s.Collapse(tokenId); err != nil {
		return err
	}

	if err := repo.WriteSentence(docId, sentId, s); err != nil {
		return err
	}

	logger.Info().Int("doc", docId).Int("sentence", sentId).Int("id", tokenId).Msg("collapsed")
	return file.WriteDoc(ui.Out, []*sent.Sentence{s})
}
