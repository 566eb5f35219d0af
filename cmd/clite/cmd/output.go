package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/sanity-io/litter"
	"gopkg.in/yaml.v3"

	"github.com/JC-LL/clite/internal/ast"
)

var (
	colorOK    = lipgloss.Color("2")
	colorError = lipgloss.Color("1")
)

type styles struct {
	ok     lipgloss.Style
	failed lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		ok:     r.NewStyle().Foreground(colorOK).Bold(true),
		failed: r.NewStyle().Foreground(colorError).Bold(true),
	}
}

var dumper = litter.Options{
	HidePrivateFields: true,
}

func dump(w io.Writer, program *ast.Program, format string) error {
	switch format {
	case "litter":
		fmt.Fprintln(w, dumper.Sdump(program))
	case "sexpr":
		fmt.Fprintln(w, ast.String(program))
	case "yaml":
		out, err := yaml.Marshal(program)
		if err != nil {
			return fmt.Errorf("failed to encode AST: %w", err)
		}
		fmt.Fprint(w, string(out))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	return nil
}

// banner centers title in a line of '=', e.g. ====parse src_1====.
func banner(title string) string {
	return lipgloss.PlaceHorizontal(40, lipgloss.Center, title, lipgloss.WithWhitespaceChars("="))
}
