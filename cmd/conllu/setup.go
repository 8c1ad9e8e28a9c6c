package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/revelaction/conllu/storage"
	"github.com/revelaction/conllu/storage/filesystem"
	"github.com/revelaction/conllu/storage/sqlite/zombiezen"
)

var errNoDocPath = errors.New("no doc path: use --doc-path or CONLLU_DOC_PATH")

// NewDocRepository opens a directory of .conllu files or a SQLite file.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	if path == "" {
		return nil, errNoDocPath
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}
