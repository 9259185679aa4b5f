package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"scrapingbee-cli/lib/scrapingbee"

	"github.com/jedib0t/go-pretty/v6/table"
)

// response headers echoed in verbose mode, in order
var verboseHeaders = []struct {
	name  string
	label string
}{
	{name: scrapingbee.HeaderCost, label: "Credit Cost"},
	{name: scrapingbee.HeaderResolvedUrl, label: "Resolved URL"},
	{name: scrapingbee.HeaderInitialStatusCode, label: "Initial Status Code"},
}

// writeResponse prints a single-shot response body to stdout or the output
// file, with a status header block on stderr when verbose.
func writeResponse(stdout, stderr io.Writer, res scrapingbee.Response, outputPath string, verbose bool) error {
	if verbose {
		fmt.Fprintf(stderr, "HTTP Status: %d\n", res.StatusCode)
		for _, h := range verboseHeaders {
			if value := res.Header.Get(h.name); value != "" {
				fmt.Fprintf(stderr, "%s: %s\n", h.label, value)
			}
		}
		fmt.Fprintln(stderr, "---")
	}

	if outputPath != "" {
		err := os.WriteFile(outputPath, res.Body, 0o644)
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	_, err := stdout.Write(res.Body)
	if err != nil {
		return err
	}
	if !bytes.HasSuffix(res.Body, []byte("\n")) {
		fmt.Fprintln(stdout)
	}
	return nil
}

// prettyJson indents a JSON document, anything else is returned as is.
func prettyJson(data []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return string(data)
	}
	return out.String()
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}
