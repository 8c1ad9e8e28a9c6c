package file

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	sent "github.com/revelaction/conllu/sentence"
)

const (
	Ext = ".conllu"

	maxLine = 1024 * 1024
)

// Split cuts a document into sentence blocks at blank lines. Each block
// keeps its lines in order and ends with a newline.
func Split(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	var blocks []string
	var b strings.Builder

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			if b.Len() > 0 {
				blocks = append(blocks, b.String())
				b.Reset()
			}
			continue
		}

		b.WriteString(line)
		b.WriteByte('\n')
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	if b.Len() > 0 {
		blocks = append(blocks, b.String())
	}

	return blocks, nil
}

// ParseDoc splits and parses every sentence of a document.
func ParseDoc(r io.Reader) ([]*sent.Sentence, error) {
	blocks, err := Split(r)
	if err != nil {
		return nil, err
	}

	sentences := make([]*sent.Sentence, 0, len(blocks))
	for i, block := range blocks {
		s, err := sent.Parse(block)
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i+1, err)
		}
		sentences = append(sentences, s)
	}

	return sentences, nil
}

// WriteDoc writes the sentences in order, each followed by its blank line.
func WriteDoc(w io.Writer, sentences []*sent.Sentence) error {
	for _, s := range sentences {
		if _, err := io.WriteString(w, s.Serialize()); err != nil {
			return err
		}
	}

	return nil
}

// ReadDoc reads a Doc from the given path. The title is the file name.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.Open(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	sentences, err := ParseDoc(f)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return sent.Doc{Title: filepath.Base(path), Sentences: sentences}, nil
}

// WriteDocFile replaces the file at path with the serialized doc.
func WriteDocFile(path string, doc sent.Doc) error {
	var buf bytes.Buffer
	if err := WriteDoc(&buf, doc.Sentences); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	return nil
}
