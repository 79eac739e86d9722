package printer

import (
	"errors"
	"testing"
)

// recordingTerminal counts probe calls so tests can verify what the policy
// actually consults.
type recordingTerminal struct {
	tty         bool
	ansiErr     error
	enableCalls int
}

func (r *recordingTerminal) IsTerminal() bool { return r.tty }

func (r *recordingTerminal) EnableANSI() error {
	r.enableCalls++
	return r.ansiErr
}

func TestResolveSilentWins(t *testing.T) {
	term := &recordingTerminal{tty: true}
	p := Resolve(true, "always", term)
	if !p.IsSilent() {
		t.Error("silent flag must win over any color choice")
	}
	if term.enableCalls != 0 {
		t.Error("silent printer should not probe the terminal")
	}
}

func TestResolveAlways(t *testing.T) {
	p := Resolve(false, "always", &recordingTerminal{tty: false})
	if !p.IsColored() {
		t.Error("always must force color even without a terminal")
	}
	if p.IsSilent() {
		t.Error("printer should not be silent")
	}
}

func TestResolveNever(t *testing.T) {
	p := Resolve(false, "never", &recordingTerminal{tty: true})
	if p.IsColored() {
		t.Error("never must disable color even on a terminal")
	}
}

func TestResolveAuto(t *testing.T) {
	tests := []struct {
		name    string
		tty     bool
		ansiErr error
		want    bool
	}{
		{"terminal with ansi", true, nil, true},
		{"terminal without ansi", true, errors.New("no escape processing"), false},
		{"not a terminal", false, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := &recordingTerminal{tty: tt.tty, ansiErr: tt.ansiErr}
			p := Resolve(false, "auto", term)
			if p.IsColored() != tt.want {
				t.Errorf("colored = %v, want %v", p.IsColored(), tt.want)
			}
			if !tt.tty && term.enableCalls != 0 {
				t.Error("escape enablement should not be attempted off-terminal")
			}
		})
	}
}

func TestResolveUnrecognizedValueIsAuto(t *testing.T) {
	term := &recordingTerminal{tty: true}
	p := Resolve(false, "sometimes", term)
	if !p.IsColored() {
		t.Error("unrecognized value should fall back to auto")
	}
	if term.enableCalls != 1 {
		t.Errorf("enable probe called %d times, want 1", term.enableCalls)
	}
}

func TestSilentPrinterDiscards(t *testing.T) {
	// Silent printing must be safe to call; output suppression is the
	// contract, not panics.
	p := Silent()
	p.Printf("should not appear %d\n", 1)
	p.Println("should not appear")
	p.Detail("should not appear")
	p.SuccessMsg("should not appear")
	p.WarnMsg("should not appear")
	p.ErrorMsg("should not appear", errors.New("hidden"))
}
