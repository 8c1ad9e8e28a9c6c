package sentence

// Expand splits the standalone word tokenID into a multiword token of two
// words at rune offset index of its form. The group keeps the full form.
//
// Only ID and form survive: lemma, tags, features, head, relations and
// MISC of the original word are dropped, the two halves start unannotated.
// Heads elsewhere in the sentence are not rewritten. Every entry after the
// new group moves one ID up.
func (s *Sentence) Expand(tokenID, index int) (*MultiwordToken, error) {
	pos := s.indexOfToken(tokenID)
	if pos < 0 {
		return nil, &NotFoundError{Kind: "token", ID: tokenID}
	}

	t := s.Tokens[pos].(*Token)
	runes := []rune(t.Form)
	if index <= 0 || index >= len(runes) {
		return nil, &SplitError{ID: tokenID, Index: index, Length: len(runes)}
	}

	group := &MultiwordToken{
		Form: t.Form,
		Tokens: []*Token{
			{ID: t.ID, Form: string(runes[:index])},
			{ID: t.ID.shift(1), Form: string(runes[index:])},
		},
	}

	s.Tokens[pos] = group
	s.renumber(pos+1, 1)

	return group, nil
}

// Collapse replaces the multiword token whose first word is tokenID with a
// single word carrying the group form and the first word's ID. The
// annotations of the children are dropped. Every entry after it moves down
// by the number of words removed.
func (s *Sentence) Collapse(tokenID int) (*Token, error) {
	pos := s.indexOfGroup(tokenID)
	if pos < 0 {
		return nil, &NotFoundError{Kind: "multiword token", ID: tokenID}
	}

	group := s.Tokens[pos].(*MultiwordToken)
	t := &Token{ID: group.ID(), Form: group.Form}

	s.Tokens[pos] = t
	s.renumber(pos+1, -(group.Len() - 1))

	return t, nil
}

// renumber shifts the IDs of every entry from position from to the end.
func (s *Sentence) renumber(from, delta int) {
	if delta == 0 {
		return
	}

	for i := from; i < len(s.Tokens); i++ {
		s.Tokens[i].shift(delta)
	}
}

func (s *Sentence) indexOfToken(id int) int {
	for i, e := range s.Tokens {
		t, ok := e.(*Token)
		if ok && t.ID.IsWord() && t.ID.Num == id {
			return i
		}
	}

	return -1
}

func (s *Sentence) indexOfGroup(id int) int {
	for i, e := range s.Tokens {
		g, ok := e.(*MultiwordToken)
		if ok && g.Len() > 0 && g.ID().IsWord() && g.ID().Num == id {
			return i
		}
	}

	return -1
}
