package main

import (
	"fmt"
	"io"

	"github.com/newtron-network/bgprecon/pkg/cli"
	"github.com/newtron-network/bgprecon/pkg/recon"
	"github.com/newtron-network/bgprecon/pkg/report"
)

// printSummary reports where the sheet went, the status tally, and every
// neighbor in the red band.
func printSummary(out io.Writer, path string, result *recon.Result, threshold int) {
	fmt.Fprintf(out, "Sheet %s appended to %s\n", cli.Bold(result.Timestamp), path)
	fmt.Fprintln(out, recon.Summarize(result.Neighbors))

	flagged := report.Flagged(result.Neighbors, threshold)
	if len(flagged) == 0 {
		fmt.Fprintln(out, cli.Green("No neighbors need attention."))
		return
	}

	fmt.Fprintf(out, "\n%d neighbor(s) need attention:\n", len(flagged))
	tbl := cli.NewTable(out, "NEIGHBOR", "AS", "INTERFACE", "VRF", "BEFORE", "AFTER", "STATUS").WithPrefix("  ")
	for _, n := range flagged {
		tbl.Row(n.IP, n.AS, n.Interface, n.VRF, n.StateOrCount, n.NewStateOrCount, colorStatus(n.Status, threshold))
	}
	tbl.Flush()
}

func colorStatus(status string, threshold int) string {
	switch report.StatusSeverity(status, threshold) {
	case report.SeverityRed:
		return cli.Red(status)
	case report.SeverityYellow:
		return cli.Yellow(status)
	default:
		return cli.Green(status)
	}
}
