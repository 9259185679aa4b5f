package scrapingbee

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"scrapingbee-cli/lib/restyutil"
	"scrapingbee-cli/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseUrl = "https://app.scrapingbee.com/api/v1"
	DefaultTimeout = 150 * time.Second
)

// set at build time with -ldflags "-X scrapingbee-cli/lib/scrapingbee.Version=..."
var Version = "dev"

// response headers set by the API
const (
	HeaderCost              = "Spb-Cost"
	HeaderResolvedUrl       = "Spb-Resolved-Url"
	HeaderInitialStatusCode = "Spb-Initial-Status-Code"
)

type ClientOptions struct {
	ApiKey string
	// defaults to DefaultBaseUrl
	BaseUrl string
	// per request timeout, defaults to DefaultTimeout
	Timeout time.Duration
	// can be nil
	Telemetry telemetry.API
	// receives a transcript of every request/response, can be nil
	Transcripts restyutil.InstrumentOutput
}

// Client talks to the ScrapingBee API. It is safe for concurrent use.
type Client struct {
	apiKey string
	http   *resty.Client
}

// Response is a raw API response, non-2xx statuses are not errors.
type Response struct {
	Body       []byte
	Header     http.Header
	StatusCode int
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.ApiKey == "" {
		return nil, ErrMissingApiKey
	}

	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	parsed, err := url.Parse(baseUrl)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: expected an http(s) url", baseUrl)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	tel := opts.Telemetry
	if tel == nil {
		tel = telemetry.NoopAPI{}
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseUrl, "/"))
	client.SetTimeout(timeout)
	client.SetHeader("user-agent", "scrapingbee-cli/"+Version)
	restyutil.InstrumentClient(client, telemetry.NewScopedAPI("http", tel), opts.Transcripts)

	return &Client{apiKey: opts.ApiKey, http: client}, nil
}

func (c *Client) get(ctx context.Context, path string, q query) (Response, error) {
	return c.do(ctx, http.MethodGet, path, q, nil, "")
}

func (c *Client) do(ctx context.Context, method, path string, q query, body *string, contentType string) (Response, error) {
	values := url.Values(q)
	if !values.Has("api_key") {
		values.Set("api_key", c.apiKey)
	}

	req := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(values)
	if body != nil {
		req.SetBody(*body)
		if contentType != "" {
			req.SetHeader("Content-Type", contentType)
		}
	}

	res, err := req.Execute(method, path)
	if err != nil {
		return Response{}, err
	}
	return Response{
		Body:       res.Body(),
		Header:     res.Header(),
		StatusCode: res.StatusCode(),
	}, nil
}

// Usage fetches the account usage document (credits, concurrency).
func (c *Client) Usage(ctx context.Context) (Response, error) {
	return c.get(ctx, "/usage", query{})
}

// UsageStatus is Usage in the shape expected by batch.FetchUsage.
func (c *Client) UsageStatus(ctx context.Context) ([]byte, int, error) {
	res, err := c.Usage(ctx)
	if err != nil {
		return nil, 0, err
	}
	return res.Body, res.StatusCode, nil
}
