package config

import "fmt"

// UnknownCommandError reports a sub-command name the selector does not
// recognize.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("non-registered subcommand %q", e.Name)
}

// InvalidPatternError reports a match expression that failed to compile. The
// compiler diagnostic is carried verbatim.
type InvalidPatternError struct {
	Expression string
	Err        error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("bad expression provided: %v", e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }
