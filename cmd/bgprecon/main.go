// bgprecon - BGP neighbor migration reconciliation
//
// Correlates a router's pre-migration BGP neighbor summary with its
// interface and VRF tables, and optionally with a post-migration neighbor
// summary, then appends a colour-coded sheet to a workbook.
//
// Inputs, read from the working directory (-C):
//
//	oldneighbors.txt    show bgp summary rows:  <ip> <v> <as> ... <up/down> <state/pfxrcd>
//	oldinterfaces.txt   <interface> <ip>
//	oldvrfs.txt         BGP neighbor is <ip>,  vrf <name>
//
// The optional positional argument names the post-migration summary. Without
// it every neighbor reports "Not Migrated", which is the pre-migration
// baseline report.
//
// Examples:
//
//	bgprecon                          # baseline report into output.xlsx
//	bgprecon newneighbors.txt         # reconcile against post-migration state
//	bgprecon -C /srv/mig/pe1 after.txt -v
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/newtron-network/bgprecon/pkg/version"
)

type options struct {
	dir        string
	configPath string
	verbose    bool
	jsonLog    bool
	quiet      bool
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:               "bgprecon [new-neighbors-file]",
		Short:             "Reconcile BGP neighbor state across a migration",
		Version:           version.Info(),
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Long: `bgprecon joins the pre-migration BGP neighbor export with the interface
and VRF exports, compares each neighbor against the post-migration export,
and appends one timestamp-named sheet to the output workbook.

  bgprecon [new-neighbors-file] [-C dir]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var newNeighbors string
			if len(args) == 1 {
				newNeighbors = args[0]
			}
			return runReconcile(cmd.OutOrStdout(), opts, newNeighbors)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "C", ".", "directory holding the input exports and the workbook")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default <dir>/bgprecon.yaml if present)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().BoolVar(&opts.jsonLog, "log-json", false, "log in JSON format")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the run summary")

	return cmd
}
