// Package config turns the parsed command line into one immutable execution
// plan. Resolution runs once at startup, before any filesystem work; the
// resulting Config is shared by pointer across every later stage and is never
// mutated after assembly, so concurrent readers need no synchronization.
package config

import "github.com/rnrdev/rnr/printer"

// Config is the resolved plan for a single invocation.
type Config struct {
	Force       bool
	Backup      bool
	IncludeDirs bool
	Dump        bool
	RunMode     RunMode
	ReplaceMode ReplaceMode
	Printer     *printer.Printer
}

// Assemble builds the Config from a resolved argument table. The terminal is
// only consulted for the auto color policy. The first resolver failure aborts
// assembly; no partial Config is ever returned.
func Assemble(a Args, t printer.Terminal) (*Config, error) {
	command, err := CommandFromName(a.Command)
	if err != nil {
		return nil, err
	}

	p := printer.Resolve(a.Silent, a.Color, t)

	replaceMode, err := resolveReplaceMode(command, a)
	if err != nil {
		return nil, err
	}

	return &Config{
		Force:       a.Force,
		Backup:      a.Backup,
		IncludeDirs: a.IncludeDirs,
		Dump:        resolveDump(a.Force, a.NoDump, a.Dump),
		RunMode:     resolveRunMode(command, a),
		ReplaceMode: replaceMode,
		Printer:     p,
	}, nil
}

// resolveDump decides whether the operation dump is written: force mode dumps
// unless --no-dump, dry-run mode dumps only on explicit --dump.
func resolveDump(force, noDump, dump bool) bool {
	if force {
		return !noDump
	}
	return dump
}
