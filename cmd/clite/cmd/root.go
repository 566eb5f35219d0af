package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/JC-LL/clite/internal/config"
)

// errBuildFailed is returned once the failure has already been reported.
var errBuildFailed = errors.New("build failed")

type app struct {
	cfgFile  string
	logLevel string
	verbose  bool

	cfg    *config.Config
	logger *log.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "clite",
		Short: "CLite front end",
		Long: `clite tokenizes and parses CLite programs, a single
int main() { ... } body of declarations and statements.

Commands:
  parse     - parse sources and dump the AST
  tokens    - print the token stream
  examples  - parse the built-in sample programs`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file, TOML or YAML (default: $"+config.EnvVar+")")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")

	rootCmd.AddCommand(
		a.newParseCmd(),
		a.newTokensCmd(),
		a.newExamplesCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil && !errors.Is(err, errBuildFailed) {
		printError("clite", err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if a.verbose {
		a.cfg.Log.Level = "debug"
	}

	level, err := log.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:  level,
		Prefix: "clite",
	}).With("run", uuid.NewString())

	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
