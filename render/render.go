package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/storage"
)

const Defaultformat = "text"

var (
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"text", "lemma", "table", "conllu"}
}

type Renderer struct {
	HasColor bool

	HasPrefix bool

	// Format determines how a sentence is printed
	//
	// text: the surface text, multiword tokens highlighted
	// lemma: the lemmas of the words
	// table: one row per word
	// conllu: the serialized block
	Format string

	DocNames map[int]string

	out io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		Format:   Defaultformat,
		DocNames: map[int]string{},
		out:      w,
	}
}

func (r *Renderer) AddDocName(docId int, name string) {
	r.DocNames[docId] = name
}

// Sentence prints s in the current format.
func (r *Renderer) Sentence(s *sent.Sentence, prefix string) {
	switch r.Format {
	case "lemma":
		fmt.Fprintf(r.out, "%s%s\n", prefix, r.lemma(s))
	case "table":
		if prefix != "" {
			fmt.Fprintln(r.out, prefix)
		}
		r.Table(s)
	case "conllu":
		fmt.Fprint(r.out, s.Serialize())
	default:
		fmt.Fprintf(r.out, "%s%s\n", prefix, r.SentenceString(s, nil))
	}
}

// SentenceString returns the surface text of s. Words whose lemma is in
// lemmas are highlighted, as are multiword tokens.
func (r *Renderer) SentenceString(s *sent.Sentence, lemmas []string) string {
	var str strings.Builder

	space := false
	for _, e := range s.Tokens {
		var form string
		switch t := e.(type) {
		case *sent.MultiwordToken:
			form = r.color(t.Form, Yellow256, t.Words(), lemmas)
		case *sent.Token:
			if !t.ID.IsWord() {
				continue
			}
			form = r.color(t.Form, "", t.Words(), lemmas)
		}

		if space {
			str.WriteByte(' ')
		}
		str.WriteString(form)
		space = e.SpaceAfter()
	}

	return str.String()
}

// Table prints one row per word. Multiword tokens get their own row
// before their words.
func (r *Renderer) Table(s *sent.Sentence) {
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFORM\tLEMMA\tUPOS\tXPOS\tHEAD\tDEPREL")

	for _, e := range s.Tokens {
		switch t := e.(type) {
		case *sent.MultiwordToken:
			id := t.RangeID()
			if r.HasColor {
				id = Yellow256 + id + Off
			}
			fmt.Fprintf(w, "%s\t%s\t\t\t\t\t\n", id, t.Form)
			for _, c := range t.Tokens {
				r.row(w, c, "  ")
			}
		case *sent.Token:
			r.row(w, t, "")
		}
	}

	w.Flush()
}

func (r *Renderer) row(w io.Writer, t *sent.Token, indent string) {
	fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		indent, t.ID, t.Form, field(t.Lemma), field(t.UPosTag), field(t.XPosTag), field(t.Head), field(t.DepRel))
}

// Results prints the sentences found by a lemma search.
func (r *Renderer) Results(results []storage.SentenceResult, lemmas []string) {
	for _, res := range results {
		if _, ok := r.DocNames[res.DocID]; !ok {
			r.AddDocName(res.DocID, res.DocTitle)
		}

		prefix := r.buildPrefix(res.DocID, res.Index)
		switch r.Format {
		case "text":
			fmt.Fprintf(r.out, "%s%s\n", prefix, r.SentenceString(res.Sentence, lemmas))
		default:
			r.Sentence(res.Sentence, prefix)
		}
	}
}

// lemma renders the lemmas of the words
func (r *Renderer) lemma(s *sent.Sentence) string {
	words := s.Words()
	lemmas := make([]string, 0, len(words))
	for _, t := range words {
		lemmas = append(lemmas, field(t.Lemma))
	}

	return strings.Join(lemmas, " ")
}

func (r *Renderer) color(form, base string, words []*sent.Token, lemmas []string) string {
	if !r.HasColor {
		return form
	}

	for _, t := range words {
		if t.Lemma == nil {
			continue
		}
		for _, l := range lemmas {
			if *t.Lemma == l {
				return Green256 + form + Off
			}
		}
	}

	if base == "" {
		return form
	}

	return base + form + Off
}

func (r *Renderer) buildPrefix(docId, index int) string {
	if !r.HasPrefix {
		return ""
	}

	return fmt.Sprintf("[%s %2d %5d] ✍  ", r.title(docId), docId, index)
}

func (r *Renderer) title(docId int) string {
	title := r.DocNames[docId]
	runes := []rune(title)
	var part string
	if len(runes) <= 20 {
		part = fmt.Sprintf("%-20s", title)
	} else {
		part = string(runes[:20])
	}

	if !r.HasColor {
		return part
	}

	return Grey256 + part + Off
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			r.Format = supported[(i+1)%len(supported)]
			return
		}
	}

	r.Format = Defaultformat
}

func (r *Renderer) NextPrefix() {
	// toggle
	r.HasPrefix = !r.HasPrefix
}

func field(p *string) string {
	if p == nil {
		return sent.Placeholder
	}
	return *p
}
