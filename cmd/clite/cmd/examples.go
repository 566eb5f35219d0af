package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JC-LL/clite/internal/ast"
	"github.com/JC-LL/clite/internal/compiler_errors"
	"github.com/JC-LL/clite/internal/examples"
)

func (a *app) newExamplesCmd() *cobra.Command {
	var traceOn bool

	examplesCmd := &cobra.Command{
		Use:   "examples [name...]",
		Short: "Parse the built-in sample programs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("trace") {
				a.cfg.Trace.Enabled = traceOn
			}

			selected := examples.All
			if len(args) > 0 {
				selected = make([]examples.Example, 0, len(args))
				for _, name := range args {
					ex, ok := examples.Lookup(name)
					if !ok {
						return fmt.Errorf("unknown example %q", name)
					}
					selected = append(selected, ex)
				}
			}

			w := cmd.OutOrStdout()
			st := newStyles(w)

			failed := 0
			for _, ex := range selected {
				fmt.Fprintln(w, banner("parse "+ex.Name))

				program, err := a.newCompiler(cmd, ex.Name).Compile(ex.Source)
				if err != nil {
					compiler_errors.Report(cmd.ErrOrStderr(), err, ex.Source)
					fmt.Fprintln(w, st.failed.Render("FAILED"))
					failed++
					continue
				}

				fmt.Fprintln(w, ast.String(program))
				fmt.Fprintln(w, st.ok.Render("program parsed successfully."))
			}

			if failed > 0 {
				return errBuildFailed
			}
			return nil
		},
	}

	examplesCmd.Flags().BoolVar(&traceOn, "trace", false, "print the grammar rules as they are entered")

	return examplesCmd
}
