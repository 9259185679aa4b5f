package scrapingbee

import (
	"context"
	"net/http"
	"strings"
)

// ScrapeParams are the optional parameters of the HTML API.
type ScrapeParams struct {
	// HTTP method used against the target, defaults to GET
	Method string
	// request body forwarded to the target for non-GET methods
	Body        *string
	ContentType string

	RenderJs              *bool
	JsScenario            string
	Wait                  int
	WaitFor               string
	WaitBrowser           string
	BlockAds              *bool
	BlockResources        *bool
	WindowWidth           int
	WindowHeight          int
	PremiumProxy          *bool
	StealthProxy          *bool
	CountryCode           string
	OwnProxy              string
	ForwardHeaders        *bool
	ForwardHeadersPure    *bool
	JsonResponse          *bool
	Screenshot            *bool
	ScreenshotSelector    string
	ScreenshotFullPage    *bool
	ReturnPageSource      *bool
	ReturnPageMarkdown    *bool
	ReturnPageText        *bool
	ExtractRules          string
	AiQuery               string
	AiSelector            string
	AiExtractRules        string
	SessionId             int
	Timeout               int
	Cookies               string
	Device                string
	CustomGoogle          *bool
	TransparentStatusCode *bool
	ScrapingConfig        string

	// forwarded to the target as Spb-<name> parameters
	CustomHeaders map[string]string
}

func (p ScrapeParams) method() string {
	if p.Method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(p.Method)
}

func (p ScrapeParams) query(targetUrl string) query {
	q := query{}
	q.setStr("url", targetUrl)
	if method := p.method(); method != http.MethodGet {
		q.setStr("method", method)
	}

	q.setBool("render_js", p.RenderJs)
	q.setStr("js_scenario", p.JsScenario)
	q.setInt("wait", p.Wait)
	q.setStr("wait_for", p.WaitFor)
	q.setStr("wait_browser", p.WaitBrowser)
	q.setBool("block_ads", p.BlockAds)
	q.setBool("block_resources", p.BlockResources)
	q.setInt("window_width", p.WindowWidth)
	q.setInt("window_height", p.WindowHeight)
	q.setBool("premium_proxy", p.PremiumProxy)
	q.setBool("stealth_proxy", p.StealthProxy)
	q.setStr("country_code", p.CountryCode)
	q.setStr("own_proxy", p.OwnProxy)
	q.setBool("forward_headers", p.ForwardHeaders)
	q.setBool("forward_headers_pure", p.ForwardHeadersPure)
	q.setBool("json_response", p.JsonResponse)
	q.setBool("screenshot", p.Screenshot)
	q.setStr("screenshot_selector", p.ScreenshotSelector)
	q.setBool("screenshot_full_page", p.ScreenshotFullPage)
	q.setBool("return_page_source", p.ReturnPageSource)
	q.setBool("return_page_markdown", p.ReturnPageMarkdown)
	q.setBool("return_page_text", p.ReturnPageText)
	q.setStr("extract_rules", p.ExtractRules)
	q.setStr("ai_query", p.AiQuery)
	q.setStr("ai_selector", p.AiSelector)
	q.setStr("ai_extract_rules", p.AiExtractRules)
	q.setInt("session_id", p.SessionId)
	q.setInt("timeout", p.Timeout)
	q.setStr("cookies", p.Cookies)
	q.setStr("device", p.Device)
	q.setBool("custom_google", p.CustomGoogle)
	q.setBool("transparent_status_code", p.TransparentStatusCode)
	q.setStr("scraping_config", p.ScrapingConfig)

	for name, value := range p.CustomHeaders {
		q.setStr("Spb-"+name, value)
	}
	return q
}

// Scrape fetches targetUrl through the HTML API.
func (c *Client) Scrape(ctx context.Context, targetUrl string, p ScrapeParams) (Response, error) {
	method := p.method()
	if method == http.MethodGet {
		return c.get(ctx, "", p.query(targetUrl))
	}
	return c.do(ctx, method, "", p.query(targetUrl), p.Body, p.ContentType)
}
