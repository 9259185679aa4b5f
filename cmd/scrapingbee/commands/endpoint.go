package commands

import (
	"context"
	"fmt"

	"scrapingbee-cli/lib/scrapingbee"

	"github.com/spf13/cobra"
)

type callFunc func(ctx context.Context, client *scrapingbee.Client, input string) (scrapingbee.Response, error)

// request is one invocation of an endpoint command, either a single input
// from the positional arguments or a batch from an input file.
type request struct {
	// what a single input is called in messages, ex. "URL", "ASIN"
	noun      string
	input     string
	inputFile string
	call      callFunc
}

func runEndpoint(cmd *cobra.Command, req request) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	if req.inputFile != "" && req.input != "" {
		return fmt.Errorf("cannot use both --input-file and positional %s", req.noun)
	}
	if req.inputFile == "" && req.input == "" {
		return fmt.Errorf("expected one %s, or use --input-file for batch", req.noun)
	}

	client, err := newClient(s)
	if err != nil {
		return err
	}

	if req.inputFile != "" {
		return runBatch(cmd, s, client, req.inputFile, func(ctx context.Context, input string) (scrapingbee.Response, error) {
			return req.call(ctx, client, input)
		})
	}

	res, err := req.call(cmd.Context(), client, req.input)
	if err != nil {
		return err
	}
	if res.StatusCode >= 400 {
		stderr := cmd.ErrOrStderr()
		fmt.Fprintf(stderr, "Error: HTTP %d\n", res.StatusCode)
		fmt.Fprintln(stderr, prettyJson(res.Body))
		return exitError{code: 1}
	}
	return writeResponse(cmd.OutOrStdout(), cmd.ErrOrStderr(), res, s.output, s.verbose)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
