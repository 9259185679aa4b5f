package commands

import (
	"context"

	"scrapingbee-cli/lib/scrapingbee"

	"github.com/spf13/cobra"
)

var (
	scrapeParams    scrapingbee.ScrapeParams
	scrapeHeaders   []string
	scrapeData      string
	scrapeInputFile string
)

func init() {
	f := scrapeCmd.Flags()
	p := &scrapeParams

	f.StringVar(&scrapeInputFile, "input-file", "", "Batch: one URL per line")
	boolFlag(f, &p.RenderJs, "render-js", "Render JavaScript with a headless browser")
	f.StringVar(&p.JsScenario, "js-scenario", "", "JavaScript scenario to run, as JSON")
	f.IntVar(&p.Wait, "wait", 0, "Milliseconds to wait before returning")
	f.StringVar(&p.WaitFor, "wait-for", "", "CSS selector to wait for")
	f.StringVar(&p.WaitBrowser, "wait-browser", "", "Browser event to wait for")
	boolFlag(f, &p.BlockAds, "block-ads", "Block ads")
	boolFlag(f, &p.BlockResources, "block-resources", "Block images and CSS")
	f.IntVar(&p.WindowWidth, "window-width", 0, "Viewport width in pixels")
	f.IntVar(&p.WindowHeight, "window-height", 0, "Viewport height in pixels")
	boolFlag(f, &p.PremiumProxy, "premium-proxy", "Use premium proxies")
	boolFlag(f, &p.StealthProxy, "stealth-proxy", "Use stealth proxies")
	f.StringVar(&p.CountryCode, "country-code", "", "Proxy country code")
	f.StringVar(&p.OwnProxy, "own-proxy", "", "Your own proxy, as user:pass@host:port")
	boolFlag(f, &p.ForwardHeaders, "forward-headers", "Forward custom headers to the target")
	boolFlag(f, &p.ForwardHeadersPure, "forward-headers-pure", "Forward only custom headers to the target")
	f.StringArrayVarP(&scrapeHeaders, "header", "H", nil, "Custom header Key:Value (repeatable)")
	boolFlag(f, &p.JsonResponse, "json-response", "Wrap the response in JSON")
	boolFlag(f, &p.Screenshot, "screenshot", "Return a screenshot of the page")
	f.StringVar(&p.ScreenshotSelector, "screenshot-selector", "", "CSS selector to screenshot")
	boolFlag(f, &p.ScreenshotFullPage, "screenshot-full-page", "Screenshot the full page")
	boolFlag(f, &p.ReturnPageSource, "return-page-source", "Return the unaltered page source")
	boolFlag(f, &p.ReturnPageMarkdown, "return-markdown", "Return the page as markdown")
	boolFlag(f, &p.ReturnPageText, "return-text", "Return the page as plain text")
	f.StringVar(&p.ExtractRules, "extract-rules", "", "Extraction rules, as JSON")
	f.StringVar(&p.AiQuery, "ai-query", "", "Natural language extraction query")
	f.StringVar(&p.AiSelector, "ai-selector", "", "CSS selector to restrict the AI query to")
	f.StringVar(&p.AiExtractRules, "ai-extract-rules", "", "AI extraction rules, as JSON")
	f.IntVar(&p.SessionId, "session-id", 0, "Reuse the same proxy IP across requests")
	f.IntVar(&p.Timeout, "timeout", 0, "Request timeout in milliseconds")
	f.StringVar(&p.Cookies, "cookies", "", "Cookies to send, as name=value;name2=value2")
	f.StringVar(&p.Device, "device", "", "desktop or mobile")
	boolFlag(f, &p.CustomGoogle, "custom-google", "Allow scraping Google domains")
	boolFlag(f, &p.TransparentStatusCode, "transparent-status-code", "Return the target's status code")
	f.StringVar(&p.ScrapingConfig, "scraping-config", "", "Name of a saved scraping configuration")
	f.StringVarP(&p.Method, "method", "X", "GET", "HTTP method used against the target")
	f.StringVarP(&scrapeData, "data", "d", "", "Request body for POST/PUT")
	f.StringVar(&p.ContentType, "content-type", "", "Content-Type of the request body")

	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [url]",
	Short: "Scrape a web page using the HTML API.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		headers, err := parseHeaders(scrapeHeaders)
		if err != nil {
			return err
		}
		params := scrapeParams
		params.CustomHeaders = headers
		if cmd.Flags().Changed("data") {
			body := scrapeData
			params.Body = &body
		}

		return runEndpoint(cmd, request{
			noun:      "URL",
			input:     firstArg(args),
			inputFile: scrapeInputFile,
			call: func(ctx context.Context, client *scrapingbee.Client, input string) (scrapingbee.Response, error) {
				return client.Scrape(ctx, input, params)
			},
		})
	},
}
