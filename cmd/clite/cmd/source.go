package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type source struct {
	name string
	text string
}

// readSources resolves what to work on: the inline -e text, the files named
// in args, or stdin when there are neither.
func readSources(cmd *cobra.Command, inline string, args []string) ([]source, error) {
	if inline != "" {
		return []source{{name: "<inline>", text: inline}}, nil
	}

	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []source{{name: "<stdin>", text: string(data)}}, nil
	}

	sources := make([]source, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read source: %w", err)
		}
		sources = append(sources, source{name: path, text: string(data)})
	}

	return sources, nil
}
