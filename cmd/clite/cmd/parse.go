package cmd

import (
	"github.com/spf13/cobra"

	"github.com/JC-LL/clite/internal/compiler"
	"github.com/JC-LL/clite/internal/compiler_errors"
	"github.com/JC-LL/clite/internal/trace"
)

type parseFlags struct {
	inline  string
	format  string
	trace   bool
	listing bool
}

func (a *app) newParseCmd() *cobra.Command {
	var f parseFlags

	parseCmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse CLite sources and dump their AST",
		Long: `Parse each file (stdin when none is given) and dump the AST.

Examples:
  clite parse prog.cl
  clite parse --format sexpr -e "int main(){ a = 1 + 2 * 3; }"
  clite parse --trace --listing prog.cl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Output.Format = f.format
			}
			if cmd.Flags().Changed("trace") {
				a.cfg.Trace.Enabled = f.trace
			}
			if cmd.Flags().Changed("listing") {
				a.cfg.Trace.Listing = f.listing
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			sources, err := readSources(cmd, f.inline, args)
			if err != nil {
				return err
			}

			failed := false
			for _, src := range sources {
				c := a.newCompiler(cmd, src.name)

				program, err := c.Compile(src.text)
				if err != nil {
					compiler_errors.Report(cmd.ErrOrStderr(), err, src.text)
					failed = true
					continue
				}

				if err := dump(cmd.OutOrStdout(), program, a.cfg.Output.Format); err != nil {
					return err
				}
			}

			if failed {
				return errBuildFailed
			}
			return nil
		},
	}

	parseCmd.Flags().StringVarP(&f.inline, "expr", "e", "", "parse this source text instead of files")
	parseCmd.Flags().StringVar(&f.format, "format", "litter", "AST dump format: litter, sexpr, yaml")
	parseCmd.Flags().BoolVar(&f.trace, "trace", false, "print the grammar rules as they are entered")
	parseCmd.Flags().BoolVar(&f.listing, "listing", false, "print a numbered source listing")

	return parseCmd
}

func (a *app) newCompiler(cmd *cobra.Command, name string) *compiler.Compiler {
	opts := compiler.Options{
		Logger:  a.logger.With("source", name),
		Listing: a.cfg.Trace.Listing,
		Preview: a.cfg.Trace.Preview,
	}

	if a.cfg.Trace.Enabled || a.cfg.Trace.Listing {
		opts.Tracer = a.tracer(cmd)
	}

	return compiler.New(opts)
}

// tracer prints the listing always but rule and lexeme lines only when
// tracing is on.
func (a *app) tracer(cmd *cobra.Command) trace.Tracer {
	console := trace.NewConsole(cmd.OutOrStdout())
	if a.cfg.Trace.Enabled {
		return console
	}

	return listingOnly{console}
}

type listingOnly struct {
	*trace.Console
}

func (listingOnly) Rule(int, string, []string) {}
func (listingOnly) Lexeme(string)              {}
