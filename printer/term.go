package printer

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Stdout is the Terminal backed by the real process stdout.
var Stdout Terminal = &stdoutTerminal{}

type stdoutTerminal struct {
	once sync.Once
	err  error
}

func (t *stdoutTerminal) IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// EnableANSI switches the console to escape-sequence processing. termenv only
// does real work on Windows; elsewhere it reports success immediately. The
// console is left switched for the rest of the process.
func (t *stdoutTerminal) EnableANSI() error {
	t.once.Do(func() {
		_, t.err = termenv.EnableVirtualTerminalProcessing(termenv.DefaultOutput())
	})
	return t.err
}
