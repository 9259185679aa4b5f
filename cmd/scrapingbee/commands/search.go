package commands

import (
	"context"
	"strings"

	"scrapingbee-cli/lib/scrapingbee"

	"github.com/spf13/cobra"
)

var (
	googleParams    scrapingbee.GoogleParams
	googleInputFile string

	fastSearchParams    scrapingbee.FastSearchParams
	fastSearchInputFile string

	chatGptInputFile string
)

func init() {
	f := googleCmd.Flags()
	f.StringVar(&googleInputFile, "input-file", "", "Batch: one query per line")
	f.StringVar(&googleParams.SearchType, "search-type", "", "classic, news, maps, lens, shopping, images or ai_mode")
	f.StringVar(&googleParams.CountryCode, "country-code", "", "Country code of the search")
	f.StringVar(&googleParams.Device, "device", "", "desktop or mobile")
	f.IntVar(&googleParams.Page, "page", 0, "Result page")
	f.StringVar(&googleParams.Language, "language", "", "Language of the results")
	boolFlag(f, &googleParams.Nfpr, "nfpr", "Disable autocorrection")
	f.StringVar(&googleParams.ExtraParams, "extra-params", "", "Extra Google URL parameters")
	boolFlag(f, &googleParams.AddHtml, "add-html", "Include the full HTML")
	boolFlag(f, &googleParams.LightRequest, "light-request", "Use a light request")
	rootCmd.AddCommand(googleCmd)

	f = fastSearchCmd.Flags()
	f.StringVar(&fastSearchInputFile, "input-file", "", "Batch: one query per line")
	f.IntVar(&fastSearchParams.Page, "page", 0, "Result page")
	f.StringVar(&fastSearchParams.CountryCode, "country-code", "", "Country code of the search")
	f.StringVar(&fastSearchParams.Language, "language", "", "Language of the results")
	rootCmd.AddCommand(fastSearchCmd)

	chatGptCmd.Flags().StringVar(&chatGptInputFile, "input-file", "", "Batch: one prompt per line")
	rootCmd.AddCommand(chatGptCmd)
}

var googleCmd = &cobra.Command{
	Use:   "google [query]",
	Short: "Search Google.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := googleParams
		return runEndpoint(cmd, request{
			noun:      "search query",
			input:     firstArg(args),
			inputFile: googleInputFile,
			call: func(ctx context.Context, client *scrapingbee.Client, input string) (scrapingbee.Response, error) {
				return client.GoogleSearch(ctx, input, params)
			},
		})
	},
}

var fastSearchCmd = &cobra.Command{
	Use:   "fast-search [query]",
	Short: "Run a fast search.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := fastSearchParams
		return runEndpoint(cmd, request{
			noun:      "search query",
			input:     firstArg(args),
			inputFile: fastSearchInputFile,
			call: func(ctx context.Context, client *scrapingbee.Client, input string) (scrapingbee.Response, error) {
				return client.FastSearch(ctx, input, params)
			},
		})
	},
}

var chatGptCmd = &cobra.Command{
	Use:   "chatgpt [prompt...]",
	Short: "Send a prompt to ChatGPT.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEndpoint(cmd, request{
			noun:      "prompt",
			input:     strings.Join(args, " "),
			inputFile: chatGptInputFile,
			call: func(ctx context.Context, client *scrapingbee.Client, input string) (scrapingbee.Response, error) {
				return client.ChatGpt(ctx, input)
			},
		})
	},
}
