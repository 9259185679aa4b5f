package commands

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var usageTable bool

func init() {
	usageCmd.Flags().BoolVar(&usageTable, "table", false, "Print the usage as a table")
	rootCmd.AddCommand(usageCmd)
}

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Check API credit usage and concurrency.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		client, err := newClient(s)
		if err != nil {
			return err
		}

		res, err := client.Usage(cmd.Context())
		if err != nil {
			return err
		}
		if res.StatusCode != 200 {
			fmt.Fprintf(cmd.ErrOrStderr(), "API returned status %d: %s\n", res.StatusCode, res.Body)
			return exitError{code: 1}
		}

		if usageTable {
			var doc map[string]any
			if err := json.Unmarshal(res.Body, &doc); err == nil {
				printUsageTable(cmd, doc)
				return nil
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), prettyJson(res.Body))
		return nil
	},
}

func printUsageTable(cmd *cobra.Command, doc map[string]any) {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	t := newTable(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Field", "Value"})
	for _, k := range keys {
		t.AppendRow(table.Row{k, formatUsageValue(doc[k])})
	}
	t.Render()
}

func formatUsageValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "-"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(encoded)
}
