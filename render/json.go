package render

import (
	"encoding/json"
	"io"

	sent "github.com/revelaction/conllu/sentence"
)

// JSONRenderer writes sentences as a JSON array to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

type jsonMeta struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type jsonToken struct {
	ID      string      `json:"id"`
	Form    string      `json:"form"`
	Lemma   *string     `json:"lemma,omitempty"`
	UPosTag *string     `json:"upos,omitempty"`
	XPosTag *string     `json:"xpos,omitempty"`
	Feats   *string     `json:"feats,omitempty"`
	Head    *string     `json:"head,omitempty"`
	DepRel  *string     `json:"deprel,omitempty"`
	Deps    *string     `json:"deps,omitempty"`
	Misc    *string     `json:"misc,omitempty"`
	Tokens  []jsonToken `json:"tokens,omitempty"`
}

type jsonSentence struct {
	Metadata []jsonMeta `json:"metadata"`
	Tokens   []jsonToken `json:"tokens"`
}

// Render serializes the sentences as a JSON array. Metadata keeps its
// order; multiword tokens carry their words under "tokens".
func (r *JSONRenderer) Render(sentences []*sent.Sentence) error {
	out := make([]jsonSentence, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, toJSON(s))
	}

	return json.NewEncoder(r.W).Encode(out)
}

func toJSON(s *sent.Sentence) jsonSentence {
	js := jsonSentence{
		Metadata: []jsonMeta{},
		Tokens:   make([]jsonToken, 0, len(s.Tokens)),
	}

	if s.Metadata != nil {
		for k, v := range s.Metadata.All() {
			js.Metadata = append(js.Metadata, jsonMeta{Key: k, Value: v})
		}
	}

	for _, e := range s.Tokens {
		switch t := e.(type) {
		case *sent.MultiwordToken:
			group := jsonToken{ID: t.RangeID(), Form: t.Form}
			for _, c := range t.Tokens {
				group.Tokens = append(group.Tokens, tokenJSON(c))
			}
			js.Tokens = append(js.Tokens, group)
		case *sent.Token:
			js.Tokens = append(js.Tokens, tokenJSON(t))
		}
	}

	return js
}

func tokenJSON(t *sent.Token) jsonToken {
	return jsonToken{
		ID:      t.ID.String(),
		Form:    t.Form,
		Lemma:   t.Lemma,
		UPosTag: t.UPosTag,
		XPosTag: t.XPosTag,
		Feats:   t.Feats,
		Head:    t.Head,
		DepRel:  t.DepRel,
		Deps:    t.Deps,
		Misc:    t.Misc,
	}
}
