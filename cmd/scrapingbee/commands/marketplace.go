package commands

import (
	"context"

	"scrapingbee-cli/lib/scrapingbee"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	amazonProductParams    scrapingbee.AmazonProductParams
	amazonProductInputFile string

	amazonSearchParams    scrapingbee.AmazonSearchParams
	amazonSearchInputFile string

	walmartSearchParams    scrapingbee.WalmartSearchParams
	walmartSearchInputFile string

	walmartProductParams    scrapingbee.WalmartProductParams
	walmartProductInputFile string
)

func marketFlags(f *pflag.FlagSet, p *scrapingbee.MarketParams) {
	boolFlag(f, &p.AddHtml, "add-html", "Include the full HTML")
	boolFlag(f, &p.LightRequest, "light-request", "Use a light request")
	boolFlag(f, &p.Screenshot, "screenshot", "Include a screenshot")
}

func init() {
	f := amazonProductCmd.Flags()
	ap := &amazonProductParams
	f.StringVar(&amazonProductInputFile, "input-file", "", "Batch: one ASIN per line")
	f.StringVar(&ap.Device, "device", "", "desktop, mobile or tablet")
	f.StringVar(&ap.Domain, "domain", "", "Amazon domain, ex. com, co.uk")
	f.StringVar(&ap.Country, "country", "", "Country code")
	f.StringVar(&ap.ZipCode, "zip-code", "", "Delivery zip code")
	f.StringVar(&ap.Language, "language", "", "Language of the results")
	f.StringVar(&ap.Currency, "currency", "", "Currency of the prices")
	marketFlags(f, &ap.MarketParams)
	rootCmd.AddCommand(amazonProductCmd)

	f = amazonSearchCmd.Flags()
	as := &amazonSearchParams
	f.StringVar(&amazonSearchInputFile, "input-file", "", "Batch: one query per line")
	f.IntVar(&as.StartPage, "start-page", 0, "First result page")
	f.IntVar(&as.Pages, "pages", 0, "Number of result pages")
	f.StringVar(&as.SortBy, "sort-by", "", "Sort order")
	f.StringVar(&as.Device, "device", "", "desktop, mobile or tablet")
	f.StringVar(&as.Domain, "domain", "", "Amazon domain, ex. com, co.uk")
	f.StringVar(&as.Country, "country", "", "Country code")
	f.StringVar(&as.ZipCode, "zip-code", "", "Delivery zip code")
	f.StringVar(&as.Language, "language", "", "Language of the results")
	f.StringVar(&as.Currency, "currency", "", "Currency of the prices")
	f.StringVar(&as.CategoryId, "category-id", "", "Restrict to a category")
	f.StringVar(&as.MerchantId, "merchant-id", "", "Restrict to a merchant")
	boolFlag(f, &as.AutoselectVariant, "autoselect-variant", "Pick a product variant automatically")
	marketFlags(f, &as.MarketParams)
	rootCmd.AddCommand(amazonSearchCmd)

	f = walmartSearchCmd.Flags()
	ws := &walmartSearchParams
	f.StringVar(&walmartSearchInputFile, "input-file", "", "Batch: one query per line")
	f.IntVar(&ws.MinPrice, "min-price", 0, "Minimum price")
	f.IntVar(&ws.MaxPrice, "max-price", 0, "Maximum price")
	f.StringVar(&ws.SortBy, "sort-by", "", "Sort order")
	f.StringVar(&ws.Device, "device", "", "desktop, mobile or tablet")
	f.StringVar(&ws.Domain, "domain", "", "Walmart domain")
	f.StringVar(&ws.FulfillmentSpeed, "fulfillment-speed", "", "Fulfillment speed filter")
	f.StringVar(&ws.FulfillmentType, "fulfillment-type", "", "Fulfillment type filter")
	f.StringVar(&ws.DeliveryZip, "delivery-zip", "", "Delivery zip code")
	f.StringVar(&ws.StoreId, "store-id", "", "Store id")
	marketFlags(f, &ws.MarketParams)
	rootCmd.AddCommand(walmartSearchCmd)

	f = walmartProductCmd.Flags()
	wp := &walmartProductParams
	f.StringVar(&walmartProductInputFile, "input-file", "", "Batch: one product ID per line")
	f.StringVar(&wp.Domain, "domain", "", "Walmart domain")
	f.StringVar(&wp.DeliveryZip, "delivery-zip", "", "Delivery zip code")
	f.StringVar(&wp.StoreId, "store-id", "", "Store id")
	marketFlags(f, &wp.MarketParams)
	rootCmd.AddCommand(walmartProductCmd)
}

var amazonProductCmd = &cobra.Command{
	Use:   "amazon-product [asin]",
	Short: "Fetch an Amazon product by ASIN.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := amazonProductParams
		return runEndpoint(cmd, request{
			noun:      "ASIN",
			input:     firstArg(args),
			inputFile: amazonProductInputFile,
			call: func(ctx context.Context, client *scrapingbee.Client, input string) (scrapingbee.Response, error) {
				return client.AmazonProduct(ctx, input, params)
			},
		})
	},
}

var amazonSearchCmd = &cobra.Command{
	Use:   "amazon-search [query]",
	Short: "Search Amazon.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := amazonSearchParams
		return runEndpoint(cmd, request{
			noun:      "search query",
			input:     firstArg(args),
			inputFile: amazonSearchInputFile,
			call: func(ctx context.Context, client *scrapingbee.Client, input string) (scrapingbee.Response, error) {
				return client.AmazonSearch(ctx, input, params)
			},
		})
	},
}

var walmartSearchCmd = &cobra.Command{
	Use:   "walmart-search [query]",
	Short: "Search Walmart.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := walmartSearchParams
		return runEndpoint(cmd, request{
			noun:      "search query",
			input:     firstArg(args),
			inputFile: walmartSearchInputFile,
			call: func(ctx context.Context, client *scrapingbee.Client, input string) (scrapingbee.Response, error) {
				return client.WalmartSearch(ctx, input, params)
			},
		})
	},
}

var walmartProductCmd = &cobra.Command{
	Use:   "walmart-product [product-id]",
	Short: "Fetch a Walmart product by id.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := walmartProductParams
		return runEndpoint(cmd, request{
			noun:      "product ID",
			input:     firstArg(args),
			inputFile: walmartProductInputFile,
			call: func(ctx context.Context, client *scrapingbee.Client, input string) (scrapingbee.Response, error) {
				return client.WalmartProduct(ctx, input, params)
			},
		})
	},
}
