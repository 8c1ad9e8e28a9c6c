package sentence

import (
	"fmt"
	"regexp"
	"strings"
)

type Doc struct {
	Id int

	Title string

	Sentences []*Sentence
}

// Library is a collection of Doc
type Library []Doc

// Sentence is the metadata and the ordered entries of one sentence block.
// The order of Tokens is the display order; IDs are addresses, not
// positions.
type Sentence struct {
	Metadata *Metadata
	Tokens   []Entry
}

var _ TokenAggregate = (*Sentence)(nil)

var metadataPattern = regexp.MustCompile(`^# (.+?) = (.*)$`)

func New() *Sentence {
	return &Sentence{Metadata: NewMetadata()}
}

// Parse builds a Sentence from one sentence block.
//
// Range lines must be followed immediately by the lines of their words.
// Comment lines that are not "# key = value" are dropped.
func Parse(text string) (*Sentence, error) {
	s := New()
	lines := splitLines(text)

	for _, l := range lines {
		if m := metadataPattern.FindStringSubmatch(l); m != nil {
			s.Metadata.Set(m[1], m[2])
		}
	}

	seen := map[int]bool{}
	for i := 0; i < len(lines); i++ {
		l := lines[i]
		if !isTokenLine(l) {
			continue
		}

		fields := strings.Split(l, FieldSeparator)
		if len(fields) != NumFields {
			return nil, &MalformedLineError{
				Line:   i + 1,
				Text:   l,
				Reason: fmt.Sprintf("expected %d fields, got %d", NumFields, len(fields)),
			}
		}

		id, last := parseIDField(fields[0])

		if last > 0 {
			// children are the token lines right below the range line,
			// at most as many as the span declares
			count := max(last-id.Num+1, 0)
			end := i + 1
			for end < len(lines) && end-i-1 < count && isTokenLine(lines[end]) {
				end++
			}

			group, err := parseGroup(l, lines[i+1:end], i+1)
			if err != nil {
				return nil, err
			}

			for k, t := range group.Tokens {
				if seen[t.ID.Num] {
					return nil, duplicate(i+k+2, lines[i+k+1])
				}
				seen[t.ID.Num] = true
			}

			s.Tokens = append(s.Tokens, group)
			i = end - 1
			continue
		}

		if !id.IsWord() && !id.IsEmptyNode() {
			return nil, &MalformedLineError{Line: i + 1, Text: l, Reason: fmt.Sprintf("invalid id %q", fields[0])}
		}

		if id.IsWord() {
			if seen[id.Num] {
				return nil, duplicate(i+1, l)
			}
			seen[id.Num] = true
		}

		s.Tokens = append(s.Tokens, newToken(id, fields))
	}

	return s, nil
}

func duplicate(line int, text string) error {
	return &MalformedLineError{Line: line, Text: text, Reason: "duplicate id"}
}

func isTokenLine(l string) bool {
	return l != "" && !strings.HasPrefix(l, "#")
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Serialize returns the metadata comments, the entry lines and the blank
// line that ends the sentence.
func (s *Sentence) Serialize() string {
	var b strings.Builder

	if s.Metadata != nil {
		for k, v := range s.Metadata.All() {
			fmt.Fprintf(&b, "# %s = %s\n", k, v)
		}
	}

	for _, e := range s.Tokens {
		b.WriteString(e.Serialize())
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	return b.String()
}

func (s *Sentence) String() string {
	return s.Serialize()
}

// Words returns all words in display order, multiword children flattened.
// Empty nodes are left out.
func (s *Sentence) Words() []*Token {
	var words []*Token
	for _, e := range s.Tokens {
		words = append(words, e.Words()...)
	}
	return words
}

func (s *Sentence) Word(id int) (*Token, bool) {
	return findWord(s.Words(), id)
}

// Len returns the number of words.
func (s *Sentence) Len() int {
	return len(s.Words())
}

// Text rebuilds the surface text from the top-level forms.
func (s *Sentence) Text() string {
	var b strings.Builder

	space := false
	for _, e := range s.Tokens {
		var form string
		switch v := e.(type) {
		case *Token:
			if !v.ID.IsWord() {
				continue
			}
			form = v.Form
		case *MultiwordToken:
			form = v.Form
		}

		if space {
			b.WriteByte(' ')
		}
		b.WriteString(form)
		space = e.SpaceAfter()
	}

	return b.String()
}

// Lemmas returns the distinct lemmas of the words, in first-seen order.
func (s *Sentence) Lemmas() []string {
	seen := map[string]bool{}
	var lemmas []string
	for _, t := range s.Words() {
		if t.Lemma == nil || seen[*t.Lemma] {
			continue
		}
		seen[*t.Lemma] = true
		lemmas = append(lemmas, *t.Lemma)
	}
	return lemmas
}
