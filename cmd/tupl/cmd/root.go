package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/tuplang/foundation/core/log"
	"github.com/msto63/tuplang/internal/tui"
	"github.com/msto63/tuplang/pkg/core/logging"
	"github.com/msto63/tuplang/tupl"
)

var (
	cfgFile  string
	verbose  bool
	noColor  bool
	rootFile string
)

// Set up by setup before any subcommand runs
var (
	settings *appSettings
	logger   *mdwlog.Logger
	renderer *tui.Renderer
	engine   *tupl.Engine
)

// errCheckFailed signals that output was already printed and only the
// exit status is left to report.
var errCheckFailed = errors.New("check failed")

var rootCmd = &cobra.Command{
	Use:   "tupl",
	Short: "TUPL - Tuple pipeline language tools",
	Long: `tupl checks programs written in TUPL, a small language for
building and transforming tuples through pipelines.

Commands:
  check    - lexical, syntax and semantic check
  tree     - print the syntax tree
  tokens   - print the token stream
  history  - list recorded check runs`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if rootFile == "" {
			return cmd.Help()
		}
		return checkFiles(cmd, []string{rootFile}, true, false)
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errCheckFailed) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./tupl.toml, ./tupl.yaml, ~/.config/tupl/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVarP(&rootFile, "file", "f", "", "check FILE and print its syntax tree")
}

// setup loads the configuration and builds the logger, renderer and engine
// shared by all subcommands.
func setup(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		s.LogLevel = "debug"
	}
	if noColor {
		s.Color = false
	}
	settings = s

	logger = logging.NewLogger(logging.LoggerConfig{
		Name:    "tupl",
		Level:   s.LogLevel,
		Format:  s.LogFormat,
		Output:  cmd.ErrOrStderr(),
		NoColor: !s.Color,
	})
	mdwlog.SetDefault(logger)
	renderer = tui.NewRenderer(!s.Color)

	engine, err = tupl.NewEngine(tupl.Options{
		Logger:          logger,
		MaxSourceLength: s.MaxSourceLength,
		MaxTokens:       s.MaxTokens,
	})
	if err != nil {
		return err
	}

	logger.Debug("tupl configured", mdwlog.Fields{
		"config": s.ConfigPath,
		"level":  s.LogLevel,
		"format": s.LogFormat,
	})
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
