package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllu/config"
	"github.com/revelaction/conllu/logger"
	"github.com/revelaction/conllu/render"
	"github.com/revelaction/conllu/search"
	"github.com/revelaction/conllu/storage"
)

// appEnv is the state shared by the commands of one invocation.
type appEnv struct {
	ui     UI
	cfg    config.Config
	logger zerolog.Logger
	pool   *Pool
}

func (e *appEnv) repository() (storage.DocRepository, error) {
	e.logger.Debug().Str("path", e.cfg.DocPath).Msg("opening repository")
	return NewDocRepository(e.pool, e.cfg.DocPath)
}

func newApp(ui UI) *cli.App {
	env := &appEnv{ui: ui, pool: &Pool{}, logger: zerolog.Nop()}

	return &cli.App{
		Name:                 "conllu",
		Usage:                "inspect and edit CoNLL-U treebanks",
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file",
			},
			&cli.StringFlag{
				Name:    "doc-path",
				Aliases: []string{"d"},
				Usage:   "directory of .conllu files or SQLite file",
				EnvVars: []string{"CONLLU_DOC_PATH"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "DEBUG, INFO, WARN or ERROR",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "plain output",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			if c.IsSet("doc-path") {
				cfg.DocPath = c.String("doc-path")
			}
			if c.IsSet("log-level") {
				cfg.LogLevel = c.String("log-level")
			}
			if c.Bool("no-color") {
				cfg.Color = false
			}

			env.cfg = cfg
			env.logger = logger.New(ui.Err, "cli", cfg.LogLevel)
			return nil
		},
		After: func(c *cli.Context) error {
			return env.pool.Close()
		},
		Commands: []*cli.Command{
			{
				Name:      "fmt",
				Usage:     "parse a .conllu file and print it back normalized",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("fmt: expected one file")
					}
					return fmtCommand(c.Args().First(), ui)
				},
			},
			{
				Name:      "doc",
				Usage:     "list the docs, or print the sentences of one doc",
				ArgsUsage: "[doc]",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "start", Usage: "first sentence"},
					&cli.IntFlag{Name: "count", Value: -1, Usage: "number of sentences, -1 for all"},
					formatFlag(),
				},
				Action: func(c *cli.Context) error {
					repo, err := env.repository()
					if err != nil {
						return err
					}

					if c.NArg() == 0 {
						return listDocs(repo, ui)
					}

					ids, err := intArgs(c, "doc")
					if err != nil {
						return err
					}

					opts := DocOptions{Start: c.Int("start"), Count: c.Int("count"), Format: c.String("format"), Color: env.cfg.Color}
					return docCommand(repo, opts, ids[0], ui)
				},
			},
			{
				Name:      "sentence",
				Usage:     "print one sentence and its words",
				ArgsUsage: "<doc> <sent>",
				Action: func(c *cli.Context) error {
					ids, err := intArgs(c, "doc", "sent")
					if err != nil {
						return err
					}
					repo, err := env.repository()
					if err != nil {
						return err
					}
					return sentenceCommand(repo, env.cfg.Color, ids[0], ids[1], ui)
				},
			},
			{
				Name:      "stat",
				Usage:     "word and sentence counts of a doc or sentence",
				ArgsUsage: "<doc> [sent]",
				Action: func(c *cli.Context) error {
					var sentId *int
					if c.NArg() == 2 {
						n, err := strconv.Atoi(c.Args().Get(1))
						if err != nil {
							return fmt.Errorf("invalid sent: %q", c.Args().Get(1))
						}
						sentId = &n
					}

					docId, err := strconv.Atoi(c.Args().First())
					if err != nil {
						return fmt.Errorf("invalid doc: %q", c.Args().First())
					}

					repo, err := env.repository()
					if err != nil {
						return err
					}
					return statCommand(repo, docId, sentId, ui)
				},
			},
			{
				Name:      "expand",
				Usage:     "split a word into a multiword token and save",
				ArgsUsage: "<doc> <sent> <id> <index>",
				Action: func(c *cli.Context) error {
					ids, err := intArgs(c, "doc", "sent", "id", "index")
					if err != nil {
						return err
					}
					repo, err := env.repository()
					if err != nil {
						return err
					}
					return expandCommand(repo, env.logger, ids[0], ids[1], ids[2], ids[3], ui)
				},
			},
			{
				Name:      "collapse",
				Usage:     "merge a multiword token into one word and save",
				ArgsUsage: "<doc> <sent> <id>",
				Action: func(c *cli.Context) error {
					ids, err := intArgs(c, "doc", "sent", "id")
					if err != nil {
						return err
					}
					repo, err := env.repository()
					if err != nil {
						return err
					}
					return collapseCommand(repo, env.logger, ids[0], ids[1], ids[2], ui)
				},
			},
			{
				Name:      "edit",
				Usage:     "edit the multiword tokens of a doc interactively",
				ArgsUsage: "<doc>",
				Action: func(c *cli.Context) error {
					ids, err := intArgs(c, "doc")
					if err != nil {
						return err
					}
					repo, err := env.repository()
					if err != nil {
						return err
					}
					return editCommand(repo, env.cfg.Color, env.logger, ids[0], ui)
				},
			},
			{
				Name:      "lemma",
				Usage:     "find the sentences containing all the given lemmas",
				ArgsUsage: "<lemma>...",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: search.DefaultLimit, Usage: "page size of the search"},
					&cli.IntFlag{Name: "doc", Usage: "search only this doc"},
					&cli.BoolFlag{Name: "no-prefix", Usage: "do not print doc and sentence"},
					formatFlag(),
				},
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return fmt.Errorf("lemma: no lemmas given")
					}
					repo, err := env.repository()
					if err != nil {
						return err
					}
					opts := LemmaOptions{
						Limit:    c.Int("limit"),
						NoPrefix: c.Bool("no-prefix"),
						Format:   c.String("format"),
						Color:    env.cfg.Color,
					}
					if c.IsSet("doc") {
						doc := c.Int("doc")
						opts.Doc = &doc
					}
					return lemmaCommand(repo, opts, c.Args().Slice(), ui)
				},
			},
			{
				Name:  "import",
				Usage: "copy a directory of .conllu files into a SQLite file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Required: true, Usage: "source directory"},
					&cli.StringFlag{Name: "to", Required: true, Usage: "target SQLite file"},
				},
				Action: func(c *cli.Context) error {
					opts := ImportDocOptions{From: c.String("from"), To: c.String("to")}
					return importDocCommand(opts, env.logger, ui)
				},
			},
			{
				Name:  "export",
				Usage: "write the docs of a SQLite file as .conllu files",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Required: true, Usage: "source SQLite file"},
					&cli.StringFlag{Name: "to", Required: true, Usage: "target directory"},
				},
				Action: func(c *cli.Context) error {
					opts := ExportDocOptions{From: c.String("from"), To: c.String("to")}
					return exportDocCommand(opts, env.logger, ui)
				},
			},
			{
				Name:      "json",
				Usage:     "print a doc or sentence as JSON",
				ArgsUsage: "<doc> [sent]",
				Action: func(c *cli.Context) error {
					var sentId *int
					if c.NArg() == 2 {
						n, err := strconv.Atoi(c.Args().Get(1))
						if err != nil {
							return fmt.Errorf("invalid sent: %q", c.Args().Get(1))
						}
						sentId = &n
					}

					docId, err := strconv.Atoi(c.Args().First())
					if err != nil {
						return fmt.Errorf("invalid doc: %q", c.Args().First())
					}

					repo, err := env.repository()
					if err != nil {
						return err
					}
					return jsonCommand(repo, docId, sentId, ui)
				},
			},
			{
				Name:  "bash",
				Usage: "print the bash completion script",
				Action: func(c *cli.Context) error {
					return bashCommand(ui)
				},
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   render.Defaultformat,
		Usage:   fmt.Sprintf("one of %v", render.SupportedFormats()),
	}
}

// intArgs converts the positional arguments, one per name.
func intArgs(c *cli.Context, names ...string) ([]int, error) {
	if c.NArg() != len(names) {
		return nil, fmt.Errorf("%s: expected arguments %v", c.Command.Name, names)
	}

	nums := make([]int, len(names))
	for i, name := range names {
		n, err := strconv.Atoi(c.Args().Get(i))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %q", name, c.Args().Get(i))
		}
		nums[i] = n
	}

	return nums, nil
}
