package main

import (
	"fmt"
	"path/filepath"

	"github.com/revelaction/conllu/file"
)

func fmtCommand(path string, ui UI) error {
	doc, err := file.ReadDoc(path)
	if err != nil {
		absPath, _ := filepath.Abs(path)
		return fmt.Errorf("filesystem document %q: %w", absPath, err)
	}

	return file.WriteDoc(ui.Out, doc.Sentences)
}
