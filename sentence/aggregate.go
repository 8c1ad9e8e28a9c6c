package sentence

// Entry is an element of the top-level token list of a Sentence: either a
// *Token or a *MultiwordToken. The set is closed; shift keeps other
// packages from adding variants.
type Entry interface {
	// Serialize returns the lines of the entry without trailing newline.
	Serialize() string

	// Words returns the words of the entry in order.
	Words() []*Token

	// SpaceAfter reports whether the surface form is followed by a space.
	SpaceAfter() bool

	shift(delta int)
}

// TokenAggregate is an ordered collection of words. Both a Sentence and a
// MultiwordToken are one.
type TokenAggregate interface {
	// Words returns the words in display order, multiword children
	// flattened.
	Words() []*Token

	// Word returns the word with the given index.
	Word(id int) (*Token, bool)
}

func findWord(words []*Token, id int) (*Token, bool) {
	for _, t := range words {
		if t.ID.IsWord() && t.ID.Num == id {
			return t, true
		}
	}

	return nil, false
}
