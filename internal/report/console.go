package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/awesomekyle/unit-test/internal/check"
	"github.com/awesomekyle/unit-test/internal/engine"
	"github.com/awesomekyle/unit-test/internal/outcome"
)

// Console layout defaults.
const (
	DefaultWrap  = 64
	DividerWidth = 64
)

// Console prints run progress as it happens: a divider, one glyph per
// passed or ignored test, failure diagnostics on their own lines and the
// summary. It satisfies outcome.Observer, check.Reporter and
// engine.Reporter.
type Console struct {
	w      io.Writer
	theme  Theme
	wrap   int
	column int
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithTheme sets the console theme. The default is PlainTheme.
func WithTheme(t Theme) ConsoleOption {
	return func(c *Console) { c.theme = t }
}

// WithWrap sets how many glyphs are printed before a line break. Zero or
// less disables wrapping.
func WithWrap(n int) ConsoleOption {
	return func(c *Console) { c.wrap = n }
}

// NewConsole creates a console writing to w.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{w: w, theme: PlainTheme(), wrap: DefaultWrap}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Begin prints the leading divider.
func (c *Console) Begin(engine.Run) {
	c.divider()
}

// Classified prints the glyph for a finished test. Failed tests print
// nothing; their diagnostics are already on screen.
func (c *Console) Classified(s outcome.State) {
	switch s {
	case outcome.Pass:
		fmt.Fprint(c.w, c.theme.render(c.theme.Pass, "."))
	case outcome.Ignore:
		fmt.Fprint(c.w, c.theme.render(c.theme.Ignore, "!"))
	default:
		return
	}
	c.column++
	if c.wrap > 0 && c.column >= c.wrap {
		c.breakLine()
	}
}

// Failure prints an assertion diagnostic as <file>:<line>: error: <message>.
func (c *Console) Failure(loc check.Location, message string) {
	c.breakLine()
	fmt.Fprintf(c.w, "%s: %s %s\n", loc, c.theme.render(c.theme.Error, "error:"), message)
}

// Problem prints a run-level diagnostic such as a script that failed to load.
func (c *Console) Problem(phase string, err error) {
	c.breakLine()
	fmt.Fprintf(c.w, "%s %s: %v\n", c.theme.render(c.theme.Error, "error:"), phase, err)
}

// Summary prints the counters and the trailing divider.
func (c *Console) Summary(_ engine.Run, counters outcome.Counters) {
	c.breakLine()
	fmt.Fprintln(c.w, c.theme.render(c.theme.Bold, counters.String()))
	c.divider()
}

func (c *Console) breakLine() {
	if c.column > 0 {
		fmt.Fprintln(c.w)
		c.column = 0
	}
}

func (c *Console) divider() {
	fmt.Fprintln(c.w, c.theme.render(c.theme.Muted, strings.Repeat("-", DividerWidth)))
}
