// Package trace prints what the front end is doing: the grammar rules the
// parser enters, the lexemes the lexer matches and a numbered source listing.
// Tracing is presentation only and never changes a parse result.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Tracer interface {
	// Rule is called when the parser enters a grammar rule. depth is the
	// nesting level and preview holds the texts of the next few tokens.
	Rule(depth int, rule string, preview []string)
	Lexeme(text string)
	Listing(src string)
}

var (
	colorRule   = lipgloss.Color("2")
	colorLexeme = lipgloss.Color("6")
	colorGutter = lipgloss.Color("8")
)

type Console struct {
	w io.Writer

	ruleStyle   lipgloss.Style
	lexemeStyle lipgloss.Style
	gutterStyle lipgloss.Style
}

// NewConsole styles output for w. Colors are dropped when w is not a terminal.
func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)

	return &Console{
		w: w,

		ruleStyle:   r.NewStyle().Foreground(colorRule),
		lexemeStyle: r.NewStyle().Foreground(colorLexeme),
		gutterStyle: r.NewStyle().Foreground(colorGutter),
	}
}

func (c *Console) Rule(depth int, rule string, preview []string) {
	fmt.Fprintf(c.w, "%s%s : %s...\n",
		strings.Repeat(" ", depth),
		c.ruleStyle.Render(rule),
		strings.Join(preview, " "))
}

func (c *Console) Lexeme(text string) {
	fmt.Fprintf(c.w, "matched %s\n", c.lexemeStyle.Render(fmt.Sprintf("%q", text)))
}

func (c *Console) Listing(src string) {
	sc := bufio.NewScanner(strings.NewReader(src))
	for lineno := 1; sc.Scan(); lineno++ {
		gutter := c.gutterStyle.Render(fmt.Sprintf("%3d |", lineno))
		fmt.Fprintf(c.w, "%s %s\n", gutter, sc.Text())
	}
}

type Nop struct{}

func (Nop) Rule(int, string, []string) {}
func (Nop) Lexeme(string)              {}
func (Nop) Listing(string)             {}
