package sentence

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ID is the identifier column of a token line.
//
// A word has Num > 0 and Sub == 0. An empty node (8.1) has Sub > 0 and
// shares the word part Num with the word it follows. Anything that does not
// convert cleanly (leading zeros, 0, letters) keeps its raw text and takes
// no part in renumbering.
type ID struct {
	Num int
	Sub int
	raw string
}

// WordID returns the ID of the n-th word of a sentence.
func WordID(n int) ID {
	return ID{Num: n}
}

// IsWord reports whether the ID is a plain word index.
func (id ID) IsWord() bool {
	return id.raw == "" && id.Num > 0 && id.Sub == 0
}

// IsEmptyNode reports whether the ID is a decimal empty node index.
func (id ID) IsEmptyNode() bool {
	return id.raw == "" && id.Sub > 0
}

// IsRaw reports whether the ID kept its text because it was not numeric.
func (id ID) IsRaw() bool {
	return id.raw != ""
}

func (id ID) String() string {
	switch {
	case id.raw != "":
		return id.raw
	case id.Sub > 0:
		return strconv.Itoa(id.Num) + "." + strconv.Itoa(id.Sub)
	case id.Num > 0:
		return strconv.Itoa(id.Num)
	}

	return ""
}

func (id ID) shift(delta int) ID {
	if id.raw != "" {
		return id
	}

	id.Num += delta
	return id
}

// idGrammar covers the three numeric shapes of the first column:
// "3", "2-3" and "8.1".
//
//nolint:govet // participle grammar tags are not standard struct tags
type idGrammar struct {
	Num  string  `@Int`
	Tail *idTail `@@?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type idTail struct {
	Last *string `  "-" @Int`
	Sub  *string `| "." @Int`
}

var idLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[-.]`},
})

var idParser = participle.MustBuild[idGrammar](
	participle.Lexer(idLexer),
)

// parseIDField classifies the first column of a line. For a range marker
// it returns the first index as a word ID and the last index of the span;
// last is 0 for anything else.
func parseIDField(s string) (id ID, last int) {
	raw := ID{raw: s}

	g, err := idParser.ParseString("", s)
	if err != nil {
		return raw, 0
	}

	if g.Tail != nil && g.Tail.Sub != nil {
		n, ok := canonicalInt(g.Num, 0)
		if !ok {
			return raw, 0
		}

		sub, ok := canonicalInt(*g.Tail.Sub, 1)
		if !ok {
			return raw, 0
		}

		return ID{Num: n, Sub: sub}, 0
	}

	n, ok := canonicalInt(g.Num, 1)
	if !ok {
		return raw, 0
	}

	if g.Tail == nil {
		return ID{Num: n}, 0
	}

	l, ok := canonicalInt(*g.Tail.Last, 1)
	if !ok {
		return raw, 0
	}

	return ID{Num: n}, l
}

// canonicalInt converts s when it is written the way strconv.Itoa would
// write it and is at least min.
func canonicalInt(s string, min int) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < min || strconv.Itoa(n) != s {
		return 0, false
	}

	return n, true
}
