package sentence

import (
	"fmt"
	"strings"
)

const (
	FieldSeparator = "\t"
	NumFields      = 10

	// Placeholder is written for every unset or empty field.
	Placeholder = "_"
)

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	ID ID

	// The unmodified word
	Form string

	// Optional columns, nil when unset.
	Lemma   *string
	UPosTag *string
	XPosTag *string
	Feats   *string
	Head    *string
	DepRel  *string
	Deps    *string
	Misc    *string
}

var _ Entry = (*Token)(nil)

// Field returns an optional column value. The empty string and the
// placeholder are both unset.
func Field(s string) *string {
	if s == "" || s == Placeholder {
		return nil
	}
	return &s
}

// ParseToken parses one token line. A range marker found here is kept as a
// raw ID; Parse intercepts range lines before they reach this function.
func ParseToken(line string) (*Token, error) {
	fields := strings.Split(line, FieldSeparator)
	if len(fields) != NumFields {
		return nil, &MalformedLineError{
			Text:   line,
			Reason: fmt.Sprintf("expected %d fields, got %d", NumFields, len(fields)),
		}
	}

	id, last := parseIDField(fields[0])
	if last > 0 {
		id = ID{raw: fields[0]}
	}

	return newToken(id, fields), nil
}

func newToken(id ID, fields []string) *Token {
	return &Token{
		ID:      id,
		Form:    fields[1],
		Lemma:   Field(fields[2]),
		UPosTag: Field(fields[3]),
		XPosTag: Field(fields[4]),
		Feats:   Field(fields[5]),
		Head:    Field(fields[6]),
		DepRel:  Field(fields[7]),
		Deps:    Field(fields[8]),
		Misc:    Field(fields[9]),
	}
}

// Serialize returns the token line, without line terminator.
func (t *Token) Serialize() string {
	fields := []string{
		orPlaceholder(t.ID.String()),
		orPlaceholder(t.Form),
		value(t.Lemma),
		value(t.UPosTag),
		value(t.XPosTag),
		value(t.Feats),
		value(t.Head),
		value(t.DepRel),
		value(t.Deps),
		value(t.Misc),
	}

	return strings.Join(fields, FieldSeparator)
}

func (t *Token) String() string {
	return t.Serialize()
}

// Words returns the token itself when it is a word. Empty nodes are not
// words.
func (t *Token) Words() []*Token {
	if !t.ID.IsWord() {
		return nil
	}
	return []*Token{t}
}

// SpaceAfter reports whether the token is followed by a space in the
// original text, according to its MISC column.
func (t *Token) SpaceAfter() bool {
	if t.Misc == nil {
		return true
	}

	for _, item := range strings.Split(*t.Misc, "|") {
		if item == "SpaceAfter=No" {
			return false
		}
	}

	return true
}

func (t *Token) shift(delta int) {
	t.ID = t.ID.shift(delta)
}

func value(p *string) string {
	if p == nil {
		return Placeholder
	}
	return orPlaceholder(*p)
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
