package main

// Option structs for subcommands that have flags
type DocOptions struct {
	Start  int
	Count  int
	Format string
	Color  bool
}

type LemmaOptions struct {
	Doc      *int // nil = all docs
	Limit    int
	NoPrefix bool
	Format   string
	Color    bool
}

type ImportDocOptions struct {
	From string
	To   string
}

type ExportDocOptions struct {
	From string
	To   string
}
