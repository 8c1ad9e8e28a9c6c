package filesystem

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"

	"github.com/revelaction/conllu/file"
	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/storage"
)

// lockName is the file locked in the doc dir while a doc is written.
const lockName = ".conllu.lock"

// DocStore serves the .conllu files of one directory. Doc IDs follow the
// sorted file names.
type DocStore struct {
	docDir string

	// In-memory cache; Sentences is nil until a doc is loaded
	docs []sent.Doc
}

var _ storage.DocRepository = (*DocStore)(nil)
var _ storage.Preloader = (*DocStore)(nil)

// NewDocStore creates a filesystem document store.
func NewDocStore(docDir string) (*DocStore, error) {
	entries, err := os.ReadDir(docDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read doc dir %s", docDir)
	}

	docs := make([]sent.Doc, 0, len(entries))

	idx := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != file.Ext {
			continue
		}

		docs = append(docs, sent.Doc{
			Id:    idx,
			Title: e.Name(),
		})
		idx++
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
	}, nil
}

// LoadAll preloads all docs into memory.
func (h *DocStore) LoadAll(cb func(total int, name string)) error {
	total := len(h.docs)
	for i := range h.docs {
		if cb != nil {
			cb(total, h.docs[i].Title)
		}

		if err := h.load(i); err != nil {
			return err
		}
	}

	return nil
}

func (h *DocStore) load(id int) error {
	doc := &h.docs[id]
	if doc.Sentences != nil {
		return nil
	}

	full, err := file.ReadDoc(filepath.Join(h.docDir, doc.Title))
	if err != nil {
		return errors.Wrapf(err, "failed to load doc %d", id)
	}

	doc.Sentences = full.Sentences
	if doc.Sentences == nil {
		doc.Sentences = []*sent.Sentence{}
	}

	return nil
}

func (h *DocStore) List() ([]sent.Doc, error) {
	docs := make([]sent.Doc, len(h.docs))
	for i, d := range h.docs {
		docs[i] = sent.Doc{Id: d.Id, Title: d.Title}
	}

	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, &sent.NotFoundError{Kind: "doc", ID: id}
	}

	if err := h.load(id); err != nil {
		return sent.Doc{}, err
	}

	return h.docs[id], nil
}

// FindCandidates scans every doc in memory and returns all matches in a
// single page. A cursor > 0 means the scan is over.
func (h *DocStore) FindCandidates(lemmas []string, after storage.Cursor, limit int) ([]storage.SentenceResult, storage.Cursor, error) {
	if after > 0 || len(lemmas) == 0 {
		return nil, after, nil
	}

	var results []storage.SentenceResult
	for i := range h.docs {
		if err := h.load(i); err != nil {
			return nil, after, err
		}

		doc := h.docs[i]
		for j, s := range doc.Sentences {
			if !storage.HasLemmas(s, lemmas) {
				continue
			}

			results = append(results, storage.SentenceResult{
				DocID:    doc.Id,
				DocTitle: doc.Title,
				Index:    j,
				Sentence: s,
			})
		}
	}

	return results, 1, nil
}

// Write creates a new file named after the doc title.
func (h *DocStore) Write(doc sent.Doc) error {
	title := filepath.Base(doc.Title)
	if title == "." || title == string(filepath.Separator) || title == "" {
		return errors.Errorf("invalid doc title %q", doc.Title)
	}

	if !strings.HasSuffix(title, file.Ext) {
		title += file.Ext
	}

	path := filepath.Join(h.docDir, title)
	doc.Id = len(h.docs)
	doc.Title = title

	err := h.withLock(func() error {
		if _, err := os.Stat(path); err == nil {
			return errors.Errorf("doc %s already exists", title)
		}
		return file.WriteDocFile(path, doc)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to write doc %s", title)
	}

	h.docs = append(h.docs, doc)
	return nil
}

// WriteSentence replaces one sentence and rewrites the whole file.
func (h *DocStore) WriteSentence(docID, index int, s *sent.Sentence) error {
	doc, err := h.Read(docID)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(doc.Sentences) {
		return &sent.NotFoundError{Kind: "sentence", ID: index}
	}

	doc.Sentences[index] = s

	path := filepath.Join(h.docDir, doc.Title)
	err = h.withLock(func() error {
		return file.WriteDocFile(path, doc)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to rewrite doc %s", doc.Title)
	}

	return nil
}

// withLock runs fn holding the lock file of the doc dir.
func (h *DocStore) withLock(fn func() error) (err error) {
	lockPath := filepath.Join(h.docDir, lockName)
	fileLock := flock.New(lockPath)

	if err := fileLock.Lock(); err != nil {
		return errors.Wrapf(err, "while locking %q", lockPath)
	}

	defer func() {
		if unlockErr := fileLock.Unlock(); unlockErr != nil && err == nil {
			err = errors.Wrapf(unlockErr, "unlocking file %q", lockPath)
		}
	}()

	return fn()
}
