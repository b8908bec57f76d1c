// Package cli implements the dcjcycles command-line interface.
//
// # Commands
//
//   - cycles: read an adjacency graph, enumerate its consistent cycles of one
//     length and write their conflict graph
//   - simulate: sample a random bipartite adjacency graph and run the same
//     pipeline on it
//
// Inputs and outputs are opened with xopen, so "-" means stdin/stdout and a
// ".gz" suffix is (de)compressed transparently.
//
// # Logging
//
// Commands log through go-logging to stderr. --verbose (-v) enables debug
// output; a config file may set log_level instead.
package cli

import (
	"io"

	logging "github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("cli")

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05} %{shortfunc} | %{level:.6s} %{color:reset} %{message}`,
)

// Log levels exported for use in main.go.
const (
	LogDebug = logging.DEBUG
	LogInfo  = logging.INFO
)

const (
	// stdio names stdin or stdout for xopen.
	stdio = "-"

	// defaultLength is the cycle length when neither flag nor config sets one.
	defaultLength = 4
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) { version = v }

// CLI holds shared state for all commands.
type CLI struct {
	backend logging.LeveledBackend
	config  Config
}

// New creates a CLI that logs to w at the given level and installs its
// backend as the process-wide go-logging backend.
func New(w io.Writer, level logging.Level) *CLI {
	backend := logging.SetBackend(logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format))
	backend.SetLevel(level, "")
	return &CLI{backend: backend}
}

// SetLogLevel updates the level of every module.
func (c *CLI) SetLogLevel(level logging.Level) {
	c.backend.SetLevel(level, "")
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:          "dcjcycles",
		Short:        "dcjcycles builds conflict graphs of short consistent cycles",
		Long:         `dcjcycles enumerates the consistent cycles of one length in an adjacency graph of two genomes and writes the graph of conflicts between them, the input of a cycle packing solver.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				c.config = cfg
				if cfg.LogLevel != "" {
					level, err := logging.LogLevel(cfg.LogLevel)
					if err != nil {
						return errors.Wrapf(err, "config %s", configPath)
					}
					c.SetLogLevel(level)
				}
			}
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.cyclesCommand())
	root.AddCommand(c.simulateCommand())

	return root
}
