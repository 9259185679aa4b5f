package commands

import (
	"context"
	"errors"
	"fmt"

	"scrapingbee-cli/lib/scrapingbee"
	"scrapingbee-cli/lib/telemetry"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	apiKey         string
	output         string
	verbose        bool
	batchOutputDir string
	concurrency    int
	configPath     string
	dumpHttp       string
}

var flags globalFlags

var rootCmd = &cobra.Command{
	Use:   "scrapingbee",
	Short: "scrapingbee is a CLI for the ScrapingBee web scraping API.",
	Long: `scrapingbee is a CLI for the ScrapingBee web scraping API.

Supports HTML scraping, Google Search, Fast Search, Amazon, Walmart,
YouTube, and ChatGPT endpoints. Every endpoint accepts --input-file
to run one request per line of the file concurrently.

Set your API key via --api-key or SCRAPINGBEE_API_KEY.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(flags.verbose)
	},
}

func init() {
	rootCmd.Version = scrapingbee.Version

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.apiKey, "api-key", "", "ScrapingBee API key (or set SCRAPINGBEE_API_KEY)")
	pf.StringVarP(&flags.output, "output", "o", "", "Write output to file instead of stdout")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Show response headers and status code")
	pf.StringVar(&flags.batchOutputDir, "batch-output-dir", "", "Batch mode: folder for output files (default: batch_<timestamp>)")
	pf.IntVar(&flags.concurrency, "concurrency", 0, "Batch mode: max concurrent requests (0 = use limit from usage API)")
	pf.StringVar(&flags.configPath, "config", "", "Path to a scrapingbee.json5 config file")
	pf.StringVar(&flags.dumpHttp, "dump-http", "", "Write a transcript of every HTTP exchange to this directory")
}

// exitError ends the process with code after its message (if any) has
// already been written.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// ExecuteContext runs the CLI with the process arguments and returns the
// exit code.
func ExecuteContext(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var exit exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	fmt.Fprintln(rootCmd.ErrOrStderr(), err)
	return 1
}
