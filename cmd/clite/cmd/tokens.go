package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JC-LL/clite/internal/compiler_errors"
	"github.com/JC-LL/clite/internal/lexer"
)

func (a *app) newTokensCmd() *cobra.Command {
	var inline string

	tokensCmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a CLite source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := readSources(cmd, inline, args)
			if err != nil {
				return err
			}
			src := sources[0]

			tokens, err := lexer.Tokenize(src.text)
			if err != nil {
				compiler_errors.Report(cmd.ErrOrStderr(), err, src.text)
				return errBuildFailed
			}
			a.logger.Debug("tokenized", "source", src.name, "tokens", len(tokens))

			for _, token := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), token.String())
			}
			return nil
		},
	}

	tokensCmd.Flags().StringVarP(&inline, "expr", "e", "", "tokenize this source text instead of a file")

	return tokensCmd
}
