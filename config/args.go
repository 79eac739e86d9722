package config

// Args is the flat option table produced by the argument surface. By the time
// a value of this type exists, required-ness, flag conflicts and dependencies
// have already been enforced; resolvers only read it.
type Args struct {
	// Command is the sub-command name, empty for the root command.
	Command string

	// Root and to-ascii positionals.
	Expression  string
	Replacement string
	Paths       []string

	// from-file positionals and flags.
	DumpFile string
	Undo     bool

	Force       bool
	Backup      bool
	Silent      bool
	Dump        bool
	NoDump      bool
	Recursive   bool
	IncludeDirs bool
	Hidden      bool

	ReplaceLimit int
	MaxDepth     int
	MaxDepthSet  bool
	Color        string
}
