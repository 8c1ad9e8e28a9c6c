package zombiezen

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/twmb/murmur3"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/storage"
)

type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

// Fingerprint is the murmur3 hash of a serialized sentence.
func Fingerprint(data string) int64 {
	h := murmur3.New64()
	// hash.Hash never returns an error
	_, _ = h.Write([]byte(data))
	return int64(h.Sum64())
}

func (h *DocStore) List() ([]sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []sent.Doc
	err = sqlitex.Execute(conn, "SELECT id, title FROM docs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			docs = append(docs, sent.Doc{
				Id:    stmt.ColumnInt(0),
				Title: stmt.ColumnText(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list docs")
	}

	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return sent.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := sent.Doc{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT title FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Title = stmt.ColumnText(0)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, errors.Wrapf(err, "failed to read doc %d", id)
	}
	if !found {
		return sent.Doc{}, &sent.NotFoundError{Kind: "doc", ID: id}
	}

	doc.Sentences = []*sent.Sentence{}
	err = sqlitex.Execute(conn, "SELECT idx, data FROM sentences WHERE doc_id = ? ORDER BY idx", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			s, err := sent.Parse(stmt.ColumnText(1))
			if err != nil {
				return errors.Wrapf(err, "sentence %d", stmt.ColumnInt(0))
			}
			doc.Sentences = append(doc.Sentences, s)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, errors.Wrapf(err, "failed to read sentences of doc %d", id)
	}

	return doc, nil
}

// FindCandidates intersects the lemma postings and returns up to limit
// sentences with a rowid greater than after.
func (h *DocStore) FindCandidates(lemmas []string, after storage.Cursor, limit int) ([]storage.SentenceResult, storage.Cursor, error) {
	if len(lemmas) == 0 {
		return nil, after, nil
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, after, err
	}
	defer h.pool.Put(conn)

	// INTERSECT keeps sentence_rowids that carry ALL lemmas, each once.
	var queryBuilder strings.Builder
	var args []interface{}

	for i, lemma := range lemmas {
		if i > 0 {
			queryBuilder.WriteString(" INTERSECT ")
		}
		queryBuilder.WriteString("SELECT sentence_rowid FROM sentence_lemmas WHERE lemma = ? AND sentence_rowid > ?")
		args = append(args, lemma, int64(after))
	}
	queryBuilder.WriteString(" ORDER BY 1 LIMIT ?")
	args = append(args, limit)

	var rowIDs []int64
	err = sqlitex.Execute(conn, queryBuilder.String(), &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowIDs = append(rowIDs, stmt.ColumnInt64(0))
			return nil
		},
	})
	if err != nil {
		return nil, after, errors.Wrap(err, "failed to query lemmas")
	}

	if len(rowIDs) == 0 {
		return nil, after, nil
	}

	idStrings := make([]string, len(rowIDs))
	for i, id := range rowIDs {
		idStrings[i] = strconv.FormatInt(id, 10)
	}

	query := fmt.Sprintf(`SELECT s.id, s.doc_id, d.title, s.idx, s.data
		FROM sentences s JOIN docs d ON d.id = s.doc_id
		WHERE s.id IN (%s) ORDER BY s.id`, strings.Join(idStrings, ","))

	results := make([]storage.SentenceResult, 0, len(rowIDs))
	newCursor := after
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowID := stmt.ColumnInt64(0)
			if storage.Cursor(rowID) > newCursor {
				newCursor = storage.Cursor(rowID)
			}

			s, err := sent.Parse(stmt.ColumnText(4))
			if err != nil {
				return errors.Wrapf(err, "sentence row %d", rowID)
			}

			results = append(results, storage.SentenceResult{
				RowID:    rowID,
				DocID:    stmt.ColumnInt(1),
				DocTitle: stmt.ColumnText(2),
				Index:    stmt.ColumnInt(3),
				Sentence: s,
			})
			return nil
		},
	})
	if err != nil {
		return nil, after, errors.Wrap(err, "failed to fetch sentences")
	}

	return results, newCursor, nil
}

func (h *DocStore) Write(doc sent.Doc) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO docs (title) VALUES (?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Title},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to insert doc %s", doc.Title)
	}
	docID := conn.LastInsertRowID()

	for i, s := range doc.Sentences {
		data := s.Serialize()

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, idx, data, fingerprint) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docID, i, data, Fingerprint(data)},
		})
		if err != nil {
			return errors.Wrapf(err, "failed to insert sentence %d", i)
		}

		if err = insertLemmas(conn, conn.LastInsertRowID(), s); err != nil {
			return err
		}
	}

	return nil
}

// WriteSentence replaces a stored sentence. Nothing is written when the
// fingerprint of the new text equals the stored one.
func (h *DocStore) WriteSentence(docID, index int, s *sent.Sentence) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	var rowID, stored int64
	found := false
	err = sqlitex.Execute(conn, "SELECT id, fingerprint FROM sentences WHERE doc_id = ? AND idx = ?", &sqlitex.ExecOptions{
		Args: []interface{}{docID, index},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			rowID = stmt.ColumnInt64(0)
			stored = stmt.ColumnInt64(1)
			return nil
		},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to read sentence %d of doc %d", index, docID)
	}
	if !found {
		return &sent.NotFoundError{Kind: "sentence", ID: index}
	}

	data := s.Serialize()
	fp := Fingerprint(data)
	if fp == stored {
		return nil
	}

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "UPDATE sentences SET data = ?, fingerprint = ? WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{data, fp, rowID},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to update sentence %d of doc %d", index, docID)
	}

	err = sqlitex.Execute(conn, "DELETE FROM sentence_lemmas WHERE sentence_rowid = ?", &sqlitex.ExecOptions{
		Args: []interface{}{rowID},
	})
	if err != nil {
		return errors.Wrap(err, "failed to clear lemmas")
	}

	return insertLemmas(conn, rowID, s)
}

func insertLemmas(conn *sqlite.Conn, rowID int64, s *sent.Sentence) error {
	for _, lemma := range s.Lemmas() {
		err := sqlitex.Execute(conn, "INSERT INTO sentence_lemmas (lemma, sentence_rowid) VALUES (?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{lemma, rowID},
		})
		if err != nil {
			return errors.Wrapf(err, "failed to insert lemma %s", lemma)
		}
	}

	return nil
}
