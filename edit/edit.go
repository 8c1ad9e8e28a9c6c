package edit

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/rs/zerolog"

	"github.com/revelaction/conllu/render"
	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/storage"
)

var errQuit = errors.New("quit")

var commands = []prompt.Suggest{
	{Text: "sent", Description: "select a sentence: sent <n>"},
	{Text: "show", Description: "print the selected sentence"},
	{Text: "expand", Description: "split a word: expand <id> <index>"},
	{Text: "collapse", Description: "merge a multiword token: collapse <id>"},
	{Text: "format", Description: "switch the show format"},
	{Text: "save", Description: "write the edited sentences"},
	{Text: "quit", Description: "leave the editor"},
}

// Handler edits the sentences of one doc in a prompt loop. Edited
// sentences are written back on save.
type Handler struct {
	Doc    sent.Doc
	Writer storage.DocWriter

	renderer *render.Renderer
	out      io.Writer
	logger   zerolog.Logger

	current int
	dirty   map[int]bool
}

func NewHandler(doc sent.Doc, w storage.DocWriter, r *render.Renderer, out io.Writer, logger zerolog.Logger) *Handler {
	return &Handler{
		Doc:      doc,
		Writer:   w,
		renderer: r,
		out:      out,
		logger:   logger,
		dirty:    map[int]bool{},
	}
}

func (h *Handler) Run() error {
	fmt.Fprintf(h.out, "📄 %s, %d sentences. 🔧 quit\n", h.Doc.Title, len(h.Doc.Sentences))

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input(fmt.Sprintf("  ✍  %d ", h.current), h.completer(),
			prompt.OptionTitle("conllu edit"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
		)

		history = append(history, in)

		err := h.Exec(in)
		if errors.Is(err, errQuit) {
			return nil
		}

		if err != nil {
			fmt.Fprintf(h.out, "❌ %s\n", err)
		}
	}
}

// Exec runs one command line. It returns errQuit for quit.
func (h *Handler) Exec(in string) error {
	fields := strings.Fields(in)
	if len(fields) == 0 {
		return nil
	}

	args := fields[1:]

	switch fields[0] {
	case "quit":
		if n := len(h.dirty); n > 0 {
			fmt.Fprintf(h.out, "⚠️  %d unsaved sentences\n", n)
		}
		return errQuit

	case "sent":
		n, err := intArgs(args, 1)
		if err != nil {
			return err
		}
		if n[0] < 0 || n[0] >= len(h.Doc.Sentences) {
			return fmt.Errorf("sentence index %d out of bounds (0-%d)", n[0], len(h.Doc.Sentences)-1)
		}
		h.current = n[0]
		h.show()
		return nil

	case "show":
		h.show()
		return nil

	case "format":
		h.renderer.NextFormat()
		fmt.Fprintf(h.out, "format: %s\n", h.renderer.Format)
		return nil

	case "expand":
		n, err := intArgs(args, 2)
		if err != nil {
			return err
		}
		s, err := h.sentence()
		if err != nil {
			return err
		}
		if _, err := s.Expand(n[0], n[1]); err != nil {
			return err
		}
		h.logger.Debug().Int("sentence", h.current).Int("id", n[0]).Int("index", n[1]).Msg("expand")
		h.dirty[h.current] = true
		h.show()
		return nil

	case "collapse":
		n, err := intArgs(args, 1)
		if err != nil {
			return err
		}
		s, err := h.sentence()
		if err != nil {
			return err
		}
		if _, err := s.Collapse(n[0]); err != nil {
			return err
		}
		h.logger.Debug().Int("sentence", h.current).Int("id", n[0]).Msg("collapse")
		h.dirty[h.current] = true
		h.show()
		return nil

	case "save":
		return h.save()
	}

	return fmt.Errorf("unknown command: %s", fields[0])
}

func (h *Handler) save() error {
	indexes := make([]int, 0, len(h.dirty))
	for i := range h.dirty {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	for _, i := range indexes {
		if err := h.Writer.WriteSentence(h.Doc.Id, i, h.Doc.Sentences[i]); err != nil {
			return err
		}
		delete(h.dirty, i)
	}

	h.logger.Info().Str("doc", h.Doc.Title).Int("sentences", len(indexes)).Msg("saved")
	fmt.Fprintf(h.out, "💾 %d sentences saved\n", len(indexes))
	return nil
}

func (h *Handler) sentence() (*sent.Sentence, error) {
	if h.current < 0 || h.current >= len(h.Doc.Sentences) {
		return nil, errors.New("no sentence selected")
	}
	return h.Doc.Sentences[h.current], nil
}

func (h *Handler) show() {
	s, err := h.sentence()
	if err != nil {
		fmt.Fprintf(h.out, "❌ %s\n", err)
		return
	}
	h.renderer.Sentence(s, fmt.Sprintf("✍  %d ", h.current))
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		return h.suggest(in.TextBeforeCursor())
	}
}

func (h *Handler) suggest(befCursor string) []prompt.Suggest {
	s := []prompt.Suggest{}

	if befCursor == "" {
		return s
	}

	tokens := strings.Split(befCursor, " ")
	if len(tokens) == 1 {
		return prompt.FilterHasPrefix(commands, befCursor, false)
	}

	// only the first argument of expand and collapse is completed
	if len(tokens) != 2 {
		return s
	}

	sentence, err := h.sentence()
	if err != nil {
		return s
	}

	switch tokens[0] {
	case "expand":
		for _, e := range sentence.Tokens {
			if t, ok := e.(*sent.Token); ok && t.ID.IsWord() {
				s = append(s, prompt.Suggest{Text: t.ID.String(), Description: t.Form})
			}
		}
	case "collapse":
		for _, e := range sentence.Tokens {
			if m, ok := e.(*sent.MultiwordToken); ok {
				s = append(s, prompt.Suggest{Text: m.ID().String(), Description: m.Form})
			}
		}
	}

	return prompt.FilterHasPrefix(s, tokens[1], false)
}

func intArgs(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d numeric arguments, got %d", n, len(args))
	}

	nums := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", a)
		}
		nums[i] = v
	}

	return nums, nil
}
