package config

// Sub-command names recognized by the argument surface.
const (
	FromFileSubcommand = "from-file"
	ToASCIISubcommand  = "to-ascii"
)

// AppCommand identifies which entry point was invoked. It is derived once
// from the sub-command name and governs which resolvers apply.
type AppCommand int

const (
	Root AppCommand = iota
	FromFile
	ToASCII
)

func (c AppCommand) String() string {
	switch c {
	case FromFile:
		return FromFileSubcommand
	case ToASCII:
		return ToASCIISubcommand
	default:
		return "root"
	}
}

// CommandFromName maps a sub-command name to its AppCommand. An empty name
// selects Root. Any other unrecognized name is rejected; with a correctly
// wired argument surface that path is unreachable.
func CommandFromName(name string) (AppCommand, error) {
	switch name {
	case "":
		return Root, nil
	case FromFileSubcommand:
		return FromFile, nil
	case ToASCIISubcommand:
		return ToASCII, nil
	default:
		return Root, &UnknownCommandError{Name: name}
	}
}
