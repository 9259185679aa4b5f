package scrapingbee

import "context"

// MarketParams are the output options shared by the Amazon and Walmart
// endpoints.
type MarketParams struct {
	AddHtml      *bool
	LightRequest *bool
	Screenshot   *bool
}

func (p MarketParams) apply(q query) {
	q.setBool("add_html", p.AddHtml)
	q.setBool("light_request", p.LightRequest)
	q.setBool("screenshot", p.Screenshot)
}

type AmazonProductParams struct {
	Device   string
	Domain   string
	Country  string
	ZipCode  string
	Language string
	Currency string
	MarketParams
}

func (c *Client) AmazonProduct(ctx context.Context, asin string, p AmazonProductParams) (Response, error) {
	q := query{}
	q.setStr("query", asin)
	q.setStr("device", p.Device)
	q.setStr("domain", p.Domain)
	q.setStr("country", p.Country)
	q.setStr("zip_code", p.ZipCode)
	q.setStr("language", p.Language)
	q.setStr("currency", p.Currency)
	p.apply(q)
	return c.get(ctx, "/amazon/product", q)
}

type AmazonSearchParams struct {
	StartPage         int
	Pages             int
	SortBy            string
	Device            string
	Domain            string
	Country           string
	ZipCode           string
	Language          string
	Currency          string
	CategoryId        string
	MerchantId        string
	AutoselectVariant *bool
	MarketParams
}

func (c *Client) AmazonSearch(ctx context.Context, search string, p AmazonSearchParams) (Response, error) {
	q := query{}
	q.setStr("query", search)
	q.setInt("start_page", p.StartPage)
	q.setInt("pages", p.Pages)
	q.setStr("sort_by", p.SortBy)
	q.setStr("device", p.Device)
	q.setStr("domain", p.Domain)
	q.setStr("country", p.Country)
	q.setStr("zip_code", p.ZipCode)
	q.setStr("language", p.Language)
	q.setStr("currency", p.Currency)
	q.setStr("category_id", p.CategoryId)
	q.setStr("merchant_id", p.MerchantId)
	q.setBool("autoselect_variant", p.AutoselectVariant)
	p.apply(q)
	return c.get(ctx, "/amazon/search", q)
}

type WalmartSearchParams struct {
	MinPrice         int
	MaxPrice         int
	SortBy           string
	Device           string
	Domain           string
	FulfillmentSpeed string
	FulfillmentType  string
	DeliveryZip      string
	StoreId          string
	MarketParams
}

func (c *Client) WalmartSearch(ctx context.Context, search string, p WalmartSearchParams) (Response, error) {
	q := query{}
	q.setStr("query", search)
	q.setInt("min_price", p.MinPrice)
	q.setInt("max_price", p.MaxPrice)
	q.setStr("sort_by", p.SortBy)
	q.setStr("device", p.Device)
	q.setStr("domain", p.Domain)
	q.setStr("fulfillment_speed", p.FulfillmentSpeed)
	q.setStr("fulfillment_type", p.FulfillmentType)
	q.setStr("delivery_zip", p.DeliveryZip)
	q.setStr("store_id", p.StoreId)
	p.apply(q)
	return c.get(ctx, "/walmart/search", q)
}

type WalmartProductParams struct {
	Domain      string
	DeliveryZip string
	StoreId     string
	MarketParams
}

func (c *Client) WalmartProduct(ctx context.Context, productId string, p WalmartProductParams) (Response, error) {
	q := query{}
	q.setStr("product_id", productId)
	q.setStr("domain", p.Domain)
	q.setStr("delivery_zip", p.DeliveryZip)
	q.setStr("store_id", p.StoreId)
	p.apply(q)
	return c.get(ctx, "/walmart/product", q)
}
