package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rnrdev/rnr/config"
)

// Runner consumes the assembled configuration. The rename engine installs
// itself here; without one the tool previews the resolved plan.
type Runner func(ctx context.Context, cfg *config.Config) error

var runner Runner = previewPlan

// SetRunner installs the downstream engine invoked after assembly.
func SetRunner(r Runner) { runner = r }

// previewPlan prints what the invocation resolved to without touching the
// filesystem.
func previewPlan(_ context.Context, cfg *config.Config) error {
	p := cfg.Printer

	switch m := cfg.ReplaceMode.(type) {
	case config.RegexpMode:
		p.Printf("%s %s -> %s (%s)\n", p.Dim.Render("replace"),
			p.Primary.Render(m.Expression.String()), p.Primary.Render(m.Replacement),
			limitLabel(m.Limit))
	case config.ToASCIIMode:
		p.Printf("%s transliterate names to ASCII\n", p.Dim.Render("replace"))
	}

	switch m := cfg.RunMode.(type) {
	case config.SimpleMode:
		p.Printf("%s %s\n", p.Dim.Render("targets"), strings.Join(m.Paths, ", "))
	case config.RecursiveMode:
		depth := "unbounded"
		if m.MaxDepth != nil {
			depth = fmt.Sprintf("%d", *m.MaxDepth)
		}
		p.Printf("%s %s (recursive, depth %s, hidden %v)\n", p.Dim.Render("targets"),
			strings.Join(m.Paths, ", "), depth, m.Hidden)
	case config.FromFileMode:
		verb := "replay"
		if m.Undo {
			verb = "undo"
		}
		p.Printf("%s %s operations from %s\n", p.Dim.Render("targets"), verb, m.Path)
	}

	if !cfg.Force {
		p.WarnMsg("dry run, no changes will be made")
	}
	return nil
}

// limitLabel describes a replace limit: zero replaces every match per name.
func limitLabel(limit int) string {
	switch {
	case limit == 0:
		return "all matches"
	case limit > 1:
		return fmt.Sprintf("first %d matches", limit)
	default:
		return "first match"
	}
}
