package sentence

import (
	"fmt"
	"strings"
)

// MultiwordToken is a contracted surface form (haven't, del) spanning the
// contiguous run of words in Tokens. The span is always read from the
// children, so renumbering can never leave a stale range line behind.
type MultiwordToken struct {
	Form   string
	Tokens []*Token
}

var (
	_ Entry          = (*MultiwordToken)(nil)
	_ TokenAggregate = (*MultiwordToken)(nil)
)

// ParseMultiwordToken parses a range line followed by exactly one line per
// word of its span.
func ParseMultiwordToken(block string) (*MultiwordToken, error) {
	lines := splitLines(strings.TrimRight(block, "\r\n"))
	if len(lines) == 0 || lines[0] == "" {
		return nil, &MalformedGroupError{Reason: "empty block"}
	}

	return parseGroup(lines[0], lines[1:], 1)
}

// parseGroup builds a group from its range line and the lines that follow
// it. line is the 1-based position of the range line.
func parseGroup(header string, children []string, line int) (*MultiwordToken, error) {
	fields := strings.Split(header, FieldSeparator)
	if len(fields) != NumFields {
		return nil, &MalformedLineError{
			Line:   line,
			Text:   header,
			Reason: fmt.Sprintf("expected %d fields, got %d", NumFields, len(fields)),
		}
	}

	span := fields[0]
	id, last := parseIDField(span)
	if last == 0 {
		return nil, &MalformedGroupError{Line: line, Span: span, Reason: "not a range"}
	}

	if id.Num >= last {
		return nil, &MalformedGroupError{Line: line, Span: span, Reason: "span must ascend"}
	}

	for _, f := range fields[2:] {
		if Field(f) != nil {
			return nil, &MalformedGroupError{Line: line, Span: span, Reason: fmt.Sprintf("range line carries annotation %q", f)}
		}
	}

	count := last - id.Num + 1
	if len(children) != count {
		return nil, &MalformedGroupError{
			Line:   line,
			Span:   span,
			Reason: fmt.Sprintf("expected %d child lines, got %d", count, len(children)),
		}
	}

	group := &MultiwordToken{Form: fields[1], Tokens: make([]*Token, 0, count)}
	for i, l := range children {
		t, err := ParseToken(l)
		if err != nil {
			return nil, atLine(err, line+i+1)
		}

		if !t.ID.IsWord() || t.ID.Num != id.Num+i {
			return nil, &MalformedGroupError{
				Line:   line + i + 1,
				Span:   span,
				Reason: fmt.Sprintf("child %q outside span or out of order", t.ID.String()),
			}
		}

		group.Tokens = append(group.Tokens, t)
	}

	return group, nil
}

// ID returns the nominal ID of the group, the ID of its first child.
func (m *MultiwordToken) ID() ID {
	if len(m.Tokens) == 0 {
		return ID{}
	}
	return m.Tokens[0].ID
}

// Span returns the first and last word index covered by the group.
func (m *MultiwordToken) Span() (first, last int) {
	if len(m.Tokens) == 0 {
		return 0, 0
	}
	return m.Tokens[0].ID.Num, m.Tokens[len(m.Tokens)-1].ID.Num
}

func (m *MultiwordToken) Len() int {
	return len(m.Tokens)
}

func (m *MultiwordToken) Words() []*Token {
	return m.Tokens
}

func (m *MultiwordToken) Word(id int) (*Token, bool) {
	return findWord(m.Tokens, id)
}

// RangeID is the ID column of the range line, e.g. "2-3".
func (m *MultiwordToken) RangeID() string {
	first, last := m.Span()
	return fmt.Sprintf("%d-%d", first, last)
}

// Serialize returns the range line followed by the child lines, without a
// trailing line terminator.
func (m *MultiwordToken) Serialize() string {
	fields := make([]string, NumFields)
	fields[0] = m.RangeID()
	fields[1] = orPlaceholder(m.Form)
	for i := 2; i < NumFields; i++ {
		fields[i] = Placeholder
	}

	lines := make([]string, 0, len(m.Tokens)+1)
	lines = append(lines, strings.Join(fields, FieldSeparator))
	for _, t := range m.Tokens {
		lines = append(lines, t.Serialize())
	}

	return strings.Join(lines, "\n")
}

func (m *MultiwordToken) String() string {
	return m.Serialize()
}

// SpaceAfter follows the last child of the group.
func (m *MultiwordToken) SpaceAfter() bool {
	if len(m.Tokens) == 0 {
		return true
	}
	return m.Tokens[len(m.Tokens)-1].SpaceAfter()
}

func (m *MultiwordToken) shift(delta int) {
	for _, t := range m.Tokens {
		t.shift(delta)
	}
}
