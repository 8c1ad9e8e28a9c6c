package sentence

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertContiguous checks that the word IDs are exactly 1..n.
func assertContiguous(t *testing.T, s *Sentence) {
	t.Helper()

	for i, w := range s.Words() {
		require.Equal(t, i+1, w.ID.Num, "word %q", w.Form)
	}
}

func ids(s *Sentence) []string {
	var out []string
	for _, e := range s.Tokens {
		switch v := e.(type) {
		case *Token:
			out = append(out, v.ID.String())
		case *MultiwordToken:
			for _, c := range v.Tokens {
				out = append(out, c.ID.String())
			}
		}
	}
	return out
}

func mustParse(t *testing.T, text string) *Sentence {
	t.Helper()

	s, err := Parse(text)
	require.NoError(t, err)
	return s
}

func TestExpand(t *testing.T) {
	s := mustParse(t, row("1", "ab", "ab", "X", "_", "_", "0", "root", "_", "_")+"\n"+
		row("2", "c", "c", "X", "_", "_", "1", "dep", "_", "_")+"\n")

	group, err := s.Expand(1, 1)
	require.NoError(t, err)

	require.Len(t, s.Tokens, 2)
	assert.Same(t, group, s.Tokens[0])
	assert.Equal(t, "ab", group.Form)
	require.Len(t, group.Tokens, 2)
	assert.Equal(t, &Token{ID: WordID(1), Form: "a"}, group.Tokens[0])
	assert.Equal(t, &Token{ID: WordID(2), Form: "b"}, group.Tokens[1])

	c := s.Tokens[1].(*Token)
	assert.Equal(t, WordID(3), c.ID)
	require.NotNil(t, c.Head)
	assert.Equal(t, "1", *c.Head)

	assertContiguous(t, s)

	want := strings.Join([]string{
		row("1-2", "ab", "_", "_", "_", "_", "_", "_", "_", "_"),
		row("1", "a", "_", "_", "_", "_", "_", "_", "_", "_"),
		row("2", "b", "_", "_", "_", "_", "_", "_", "_", "_"),
		row("3", "c", "c", "X", "_", "_", "1", "dep", "_", "_"),
		"", "",
	}, "\n")
	assert.Equal(t, want, s.Serialize())
}

func TestCollapse(t *testing.T) {
	s := mustParse(t, row("1", "ab", "ab", "X", "_", "_", "0", "root", "_", "_")+"\n"+
		row("2", "c", "c", "X", "_", "_", "1", "dep", "_", "_")+"\n")

	_, err := s.Expand(1, 1)
	require.NoError(t, err)

	tok, err := s.Collapse(1)
	require.NoError(t, err)

	assert.Equal(t, &Token{ID: WordID(1), Form: "ab"}, tok)
	assert.Same(t, tok, s.Tokens[0])
	assert.Equal(t, WordID(2), s.Tokens[1].(*Token).ID)
	assertContiguous(t, s)
}

func TestCollapseParsedGroup(t *testing.T) {
	s := mustParse(t, haventSentence)

	tok, err := s.Collapse(2)
	require.NoError(t, err)

	assert.Equal(t, "haven't", tok.Form)
	assert.Nil(t, tok.Lemma)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(s))
	assertContiguous(t, s)
	assert.Equal(t, "I haven't slept.", s.Text())
}

func TestExpandAfterGroup(t *testing.T) {
	s := mustParse(t, haventSentence)

	_, err := s.Expand(4, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(s))
	assertContiguous(t, s)

	group := s.Tokens[2].(*MultiwordToken)
	assert.Equal(t, "sl", group.Tokens[0].Form)
	assert.Equal(t, "ept", group.Tokens[1].Form)
	assert.Nil(t, group.Tokens[1].Misc)

	// the earlier group is untouched
	first, last := s.Tokens[1].(*MultiwordToken).Span()
	assert.Equal(t, 2, first)
	assert.Equal(t, 3, last)
}

func TestExpandBeforeGroup(t *testing.T) {
	s := mustParse(t, haventSentence)

	_, err := s.Expand(1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSplit))

	s = mustParse(t, strings.Replace(haventSentence, "1\tI\tI", "1\tWe\twe", 1))
	_, err = s.Expand(1, 1)
	require.NoError(t, err)

	first, last := s.Tokens[1].(*MultiwordToken).Span()
	assert.Equal(t, 3, first)
	assert.Equal(t, 4, last)
	assert.True(t, strings.Contains(s.Serialize(), "\n3-4\thaven't\t"))
	assertContiguous(t, s)
}

func TestExpandRunes(t *testing.T) {
	s := mustParse(t, row("1", "añb", "_", "_", "_", "_", "_", "_", "_", "_"))

	group, err := s.Expand(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "añ", group.Tokens[0].Form)
	assert.Equal(t, "b", group.Tokens[1].Form)
}

func TestExpandShiftsEmptyNodes(t *testing.T) {
	s := mustParse(t, strings.Join([]string{
		row("1", "ab", "_", "_", "_", "_", "_", "_", "_", "_"),
		row("1.1", "e", "_", "_", "_", "_", "_", "_", "_", "_"),
		row("2", "c", "_", "_", "_", "_", "_", "_", "_", "_"),
	}, "\n"))

	_, err := s.Expand(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "2.1", "3"}, ids(s))
	assertContiguous(t, s)

	_, err = s.Collapse(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1.1", "2"}, ids(s))
}

func TestExpandErrors(t *testing.T) {
	cases := []struct {
		name   string
		id     int
		index  int
		target error
	}{
		{"absent", 9, 1, ErrNotFound},
		{"inside group", 2, 1, ErrNotFound},
		{"zero offset", 4, 0, ErrInvalidSplit},
		{"offset at end", 4, 5, ErrInvalidSplit},
		{"negative offset", 4, -1, ErrInvalidSplit},
		{"single character", 5, 1, ErrInvalidSplit},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := mustParse(t, haventSentence)

			_, err := s.Expand(c.id, c.index)
			require.Error(t, err)
			assert.True(t, errors.Is(err, c.target), "got %v", err)
			assert.Equal(t, haventSentence, s.Serialize())
		})
	}
}

func TestCollapseErrors(t *testing.T) {
	for _, id := range []int{1, 3, 9} {
		s := mustParse(t, haventSentence)

		_, err := s.Collapse(id)

		var nf *NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, id, nf.ID)
		assert.Equal(t, haventSentence, s.Serialize())
	}
}

func TestExpandCollapseInverse(t *testing.T) {
	orig := mustParse(t, haventSentence)

	for _, w := range orig.Words() {
		s := mustParse(t, haventSentence)
		if s.indexOfToken(w.ID.Num) < 0 || len([]rune(w.Form)) < 2 {
			continue
		}

		group, err := s.Expand(w.ID.Num, 1)
		require.NoError(t, err)
		assertContiguous(t, s)

		_, err = s.Collapse(group.ID().Num)
		require.NoError(t, err)

		assert.Equal(t, len(orig.Tokens), len(s.Tokens))
		assert.Equal(t, ids(orig), ids(s))
	}
}

func TestEditSequenceKeepsContiguity(t *testing.T) {
	s := mustParse(t, haventSentence)

	steps := []func() error{
		func() error { _, err := s.Expand(4, 3); return err },
		func() error { _, err := s.Collapse(2); return err },
		func() error { _, err := s.Expand(2, 4); return err },
		func() error { _, err := s.Collapse(2); return err },
		func() error { _, err := s.Collapse(3); return err },
	}

	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		assertContiguous(t, s)
	}

	// SpaceAfter=No of "slept" went with its annotations
	assert.Equal(t, "I haven't slept .", s.Text())
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(s))
}
