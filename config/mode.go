package config

import "regexp"

// RunMode selects how rename targets are gathered. Exactly one variant is
// produced per invocation.
type RunMode interface{ runMode() }

// SimpleMode targets the given paths as-is.
type SimpleMode struct {
	Paths []string
}

// RecursiveMode walks the given paths. A nil MaxDepth means unbounded
// descent; zero means the given paths themselves and nothing below.
type RecursiveMode struct {
	Paths    []string
	MaxDepth *int
	Hidden   bool
}

// FromFileMode replays operations recorded in a dump file, reversed when
// Undo is set.
type FromFileMode struct {
	Path string
	Undo bool
}

func (SimpleMode) runMode()    {}
func (RecursiveMode) runMode() {}
func (FromFileMode) runMode()  {}

// ReplaceMode selects how matched names are transformed.
type ReplaceMode interface{ replaceMode() }

// RegexpMode substitutes matches of Expression with Replacement. Limit caps
// substitutions per name; zero replaces every match.
type RegexpMode struct {
	Expression  *regexp.Regexp
	Replacement string
	Limit       int
}

// ToASCIIMode transliterates name characters to their ASCII representation.
type ToASCIIMode struct{}

func (RegexpMode) replaceMode()  {}
func (ToASCIIMode) replaceMode() {}

// resolveRunMode picks the run mode for the invocation. The from-file
// command always replays a dump; otherwise the paths are taken either
// directly or through a recursive walk.
func resolveRunMode(command AppCommand, a Args) RunMode {
	if command == FromFile {
		return FromFileMode{Path: a.DumpFile, Undo: a.Undo}
	}

	if a.Recursive {
		var maxDepth *int
		if a.MaxDepthSet {
			depth := a.MaxDepth
			maxDepth = &depth
		}
		return RecursiveMode{Paths: a.Paths, MaxDepth: maxDepth, Hidden: a.Hidden}
	}

	return SimpleMode{Paths: a.Paths}
}

// resolveReplaceMode picks the transformation for the invocation. The
// to-ascii command never reads a pattern; for every other command the
// expression must compile.
func resolveReplaceMode(command AppCommand, a Args) (ReplaceMode, error) {
	if command == ToASCII {
		return ToASCIIMode{}, nil
	}

	expression, err := regexp.Compile(a.Expression)
	if err != nil {
		return nil, &InvalidPatternError{Expression: a.Expression, Err: err}
	}

	return RegexpMode{
		Expression:  expression,
		Replacement: a.Replacement,
		Limit:       a.ReplaceLimit,
	}, nil
}
