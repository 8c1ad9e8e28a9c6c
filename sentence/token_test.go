package sentence

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row joins fields with the field separator.
func row(fields ...string) string {
	return strings.Join(fields, FieldSeparator)
}

func TestParseTokenFields(t *testing.T) {
	tok, err := ParseToken(row("1", "I", "I", "PRON", "PRP", "Case=Nom", "2", "nsubj", "2:nsubj", "_"))
	require.NoError(t, err)

	assert.Equal(t, WordID(1), tok.ID)
	assert.Equal(t, "I", tok.Form)
	require.NotNil(t, tok.Lemma)
	assert.Equal(t, "I", *tok.Lemma)
	assert.Equal(t, "PRON", *tok.UPosTag)
	assert.Equal(t, "PRP", *tok.XPosTag)
	assert.Equal(t, "Case=Nom", *tok.Feats)
	assert.Equal(t, "2", *tok.Head)
	assert.Equal(t, "nsubj", *tok.DepRel)
	assert.Equal(t, "2:nsubj", *tok.Deps)
	assert.Nil(t, tok.Misc)
}

func TestParseTokenFieldCount(t *testing.T) {
	_, err := ParseToken(row("1", "I", "I", "PRON"))
	require.Error(t, err)

	var le *MalformedLineError
	require.True(t, errors.As(err, &le))
	assert.True(t, errors.Is(err, ErrMalformedLine))
	assert.Contains(t, le.Reason, "got 4")
}

func TestParseTokenTrailingEmptyField(t *testing.T) {
	tok, err := ParseToken(row("3", "slept", "sleep", "VERB", "_", "_", "0", "root", "_", ""))
	require.NoError(t, err)
	assert.Nil(t, tok.Misc)
	assert.Equal(t, row("3", "slept", "sleep", "VERB", "_", "_", "0", "root", "_", "_"), tok.Serialize())
}

func TestParseTokenRawID(t *testing.T) {
	cases := []string{"x", "01", "0", "2-3", ""}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			tok, err := ParseToken(row(c, "a", "_", "_", "_", "_", "_", "_", "_", "_"))
			require.NoError(t, err)
			assert.False(t, tok.ID.IsWord())
			assert.Equal(t, orPlaceholder(c), strings.Split(tok.Serialize(), FieldSeparator)[0])
		})
	}
}

func TestTokenSerializeRoundTrip(t *testing.T) {
	lines := []string{
		row("1", "I", "I", "PRON", "PRP", "_", "2", "nsubj", "_", "_"),
		row("2", "am", "be", "AUX", "VBP", "Mood=Ind|Tense=Pres", "0", "root", "0:root", "SpaceAfter=No"),
		row("8.1", "go", "go", "VERB", "_", "_", "_", "_", "5:conj", "CopyOf=5"),
		row("4", "_", "_", "PUNCT", "_", "_", "3", "punct", "_", "_"),
	}

	for _, l := range lines {
		tok, err := ParseToken(l)
		require.NoError(t, err)
		assert.Equal(t, l, tok.Serialize())
	}
}

func TestTokenSerializeUnset(t *testing.T) {
	empty := ""
	tok := &Token{ID: WordID(7), Form: "run", Lemma: &empty, DepRel: Field("obj")}
	assert.Equal(t, row("7", "run", "_", "_", "_", "_", "_", "obj", "_", "_"), tok.Serialize())

	blank := &Token{}
	assert.Equal(t, row("_", "_", "_", "_", "_", "_", "_", "_", "_", "_"), blank.Serialize())
}

func TestTokenSpaceAfter(t *testing.T) {
	tok := &Token{ID: WordID(1), Form: "a"}
	assert.True(t, tok.SpaceAfter())

	tok.Misc = Field("Gloss=x|SpaceAfter=No")
	assert.False(t, tok.SpaceAfter())
}

func TestParseIDField(t *testing.T) {
	cases := []struct {
		in   string
		id   ID
		last int
	}{
		{"1", ID{Num: 1}, 0},
		{"12", ID{Num: 12}, 0},
		{"2-3", ID{Num: 2}, 3},
		{"8.1", ID{Num: 8, Sub: 1}, 0},
		{"0.1", ID{Num: 0, Sub: 1}, 0},
		{"0", ID{raw: "0"}, 0},
		{"007", ID{raw: "007"}, 0},
		{"a", ID{raw: "a"}, 0},
		{"2-", ID{raw: "2-"}, 0},
		{" 1", ID{raw: " 1"}, 0},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			id, last := parseIDField(c.in)
			assert.Equal(t, c.id, id)
			assert.Equal(t, c.last, last)
		})
	}
}
