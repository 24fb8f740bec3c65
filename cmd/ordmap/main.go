// Command ordmap loads text files of key/value records into ordered maps
// and inspects them.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// version is set by the linker.
var version = "devel"

func main() {
	gtrace.CoreTracer = gologadapter.New()
	err := newRootCommand(os.Stdout).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries state shared by all sub-commands.
type app struct {
	out io.Writer
	cfg *Config
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}
	rootCmd := &cobra.Command{
		Use:   "ordmap",
		Short: "Ordmap - inspect ordered maps built from record files",
		Long: `Ordmap loads text files of key/value records into an ordered map.

Commands:
  load    load a file and report its records
  dump    print the map, its tree, or a DOT/HTML rendering of it
  stats   print shape metrics of the map's tree
  get     look up keys
  top     print the records with the greatest values
  check   validate the tree invariants`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if gtrace.CoreTracer != nil {
				level, _ := traceLevel(cfg.TraceLevel)
				gtrace.CoreTracer.SetTraceLevel(level)
			}
			return nil
		},
	}
	rootCmd.SetOut(out)
	registerConfigFlags(rootCmd)

	rootCmd.AddCommand(a.loadCmd())
	rootCmd.AddCommand(a.dumpCmd())
	rootCmd.AddCommand(a.statsCmd())
	rootCmd.AddCommand(a.getCmd())
	rootCmd.AddCommand(a.topCmd())
	rootCmd.AddCommand(a.checkCmd())
	rootCmd.AddCommand(a.versionCmd())
	return rootCmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "ordmap %s\n", version)
		},
	}
}
