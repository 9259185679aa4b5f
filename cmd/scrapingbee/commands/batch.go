package commands

import (
	"fmt"
	"io"

	"scrapingbee-cli/lib/batch"
	"scrapingbee-cli/lib/scrapingbee"
	"scrapingbee-cli/lib/telemetry"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// runBatch executes call for every line of inputFile and writes the results
// to the batch output directory.
func runBatch(cmd *cobra.Command, s settings, client *scrapingbee.Client, inputFile string, call scrapingbee.Call) error {
	ctx := cmd.Context()
	tel := telemetry.NewScopedAPI("cli", telemetry.SlogAPI{})

	inputs, err := batch.LoadInputs(inputFile)
	if err != nil {
		return err
	}

	usage, err := batch.FetchUsage(ctx, client.UsageStatus)
	if err != nil {
		return err
	}
	if !usage.CreditsKnown {
		tel.ReportWarning("batch-usage", "usage response has no remaining credits field, skipping credit check")
	}

	err = batch.Validate(s.concurrency, len(inputs), usage)
	if err != nil {
		return err
	}
	concurrency := batch.ResolveConcurrency(s.concurrency, usage)
	tel.ReportDebug("starting batch", len(inputs), concurrency)

	pool := batch.NewPool(concurrency, len(inputs), telemetry.SlogAPI{})
	results := pool.Run(ctx, inputs, scrapingbee.BatchWorker(call))

	writer := batch.Writer{Verbose: s.verbose, Stderr: cmd.ErrOrStderr()}
	dir, err := writer.Write(results, s.batchOutputDir)
	if s.verbose {
		printSummary(cmd.ErrOrStderr(), results)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Batch complete. Output written to %s\n", dir)
	return nil
}

func printSummary(w io.Writer, results []batch.Result) {
	summary := batch.Summarize(results)

	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Input", "Status", "Error"})
	for _, r := range results {
		if !r.Failed() {
			continue
		}
		status := "-"
		if r.StatusCode != 0 {
			status = fmt.Sprint(r.StatusCode)
		}
		t.AppendRow(table.Row{r.Index + 1, r.Input, status, r.Err.Error()})
	}
	t.AppendFooter(table.Row{
		"",
		fmt.Sprintf("%d items", summary.Total),
		fmt.Sprintf("%d ok", summary.Succeeded),
		fmt.Sprintf("%d failed", summary.Failed),
	})
	t.Render()
}
