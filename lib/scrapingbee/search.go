package scrapingbee

import "context"

type GoogleParams struct {
	SearchType   string
	CountryCode  string
	Device       string
	Page         int
	Language     string
	Nfpr         *bool
	ExtraParams  string
	AddHtml      *bool
	LightRequest *bool
}

func (c *Client) GoogleSearch(ctx context.Context, search string, p GoogleParams) (Response, error) {
	q := query{}
	q.setStr("search", search)
	q.setStr("search_type", p.SearchType)
	q.setStr("country_code", p.CountryCode)
	q.setStr("device", p.Device)
	q.setInt("page", p.Page)
	q.setStr("language", p.Language)
	q.setBool("nfpr", p.Nfpr)
	q.setStr("extra_params", p.ExtraParams)
	q.setBool("add_html", p.AddHtml)
	q.setBool("light_request", p.LightRequest)
	return c.get(ctx, "/google", q)
}

type FastSearchParams struct {
	Page        int
	CountryCode string
	Language    string
}

func (c *Client) FastSearch(ctx context.Context, search string, p FastSearchParams) (Response, error) {
	q := query{}
	q.setStr("search", search)
	q.setInt("page", p.Page)
	q.setStr("country_code", p.CountryCode)
	q.setStr("language", p.Language)
	return c.get(ctx, "/fast_search", q)
}

func (c *Client) ChatGpt(ctx context.Context, prompt string) (Response, error) {
	q := query{}
	q.setStr("prompt", prompt)
	return c.get(ctx, "/chatgpt", q)
}
