package scrapingbee

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method      string
	Path        string
	Query       url.Values
	Body        string
	ContentType string
}

// fakeApi records every request and answers with a fixed status and body.
type fakeApi struct {
	mutex    sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (f *fakeApi) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mutex.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		Query:       r.URL.Query(),
		Body:        string(body),
		ContentType: r.Header.Get("Content-Type"),
	})
	status := f.status
	f.mutex.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set(HeaderCost, "5")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(f.body))
}

func (f *fakeApi) last(t testing.TB) recordedRequest {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

// newTestServer starts a server for api and returns its url.
func newTestServer(t testing.TB, api *fakeApi) string {
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)
	return server.URL
}

func newTestClient(t testing.TB, api *fakeApi) *Client {
	client, err := NewClient(ClientOptions{
		ApiKey:  "secret",
		BaseUrl: newTestServer(t, api) + "/api/v1",
	})
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(ClientOptions{})
	require.ErrorIs(t, err, ErrMissingApiKey)

	_, err = NewClient(ClientOptions{ApiKey: "k", BaseUrl: "ftp://example.com"})
	require.Error(t, err)

	client, err := NewClient(ClientOptions{ApiKey: "k"})
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestEndpoints(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		call     func(c *Client) (Response, error)
		path     string
		expected url.Values
	}{
		{
			name: "scrape",
			call: func(c *Client) (Response, error) {
				return c.Scrape(ctx, "https://example.com", ScrapeParams{
					RenderJs:      Bool(false),
					Wait:          1000,
					CountryCode:   "us",
					CustomHeaders: map[string]string{"Accept-Language": "en"},
				})
			},
			path: "/api/v1",
			expected: url.Values{
				"api_key":             {"secret"},
				"url":                 {"https://example.com"},
				"render_js":           {"false"},
				"wait":                {"1000"},
				"country_code":        {"us"},
				"Spb-Accept-Language": {"en"},
			},
		},
		{
			name: "google",
			call: func(c *Client) (Response, error) {
				return c.GoogleSearch(ctx, "pizza new york", GoogleParams{
					SearchType: "news",
					Page:       2,
					Nfpr:       Bool(true),
				})
			},
			path: "/api/v1/google",
			expected: url.Values{
				"api_key":     {"secret"},
				"search":      {"pizza new york"},
				"search_type": {"news"},
				"page":        {"2"},
				"nfpr":        {"true"},
			},
		},
		{
			name: "fast search",
			call: func(c *Client) (Response, error) {
				return c.FastSearch(ctx, "golang", FastSearchParams{Language: "en"})
			},
			path: "/api/v1/fast_search",
			expected: url.Values{
				"api_key":  {"secret"},
				"search":   {"golang"},
				"language": {"en"},
			},
		},
		{
			name: "amazon product",
			call: func(c *Client) (Response, error) {
				return c.AmazonProduct(ctx, "B0DPDRNSXV", AmazonProductParams{
					Domain:       "com",
					MarketParams: MarketParams{LightRequest: Bool(true)},
				})
			},
			path: "/api/v1/amazon/product",
			expected: url.Values{
				"api_key":       {"secret"},
				"query":         {"B0DPDRNSXV"},
				"domain":        {"com"},
				"light_request": {"true"},
			},
		},
		{
			name: "amazon search",
			call: func(c *Client) (Response, error) {
				return c.AmazonSearch(ctx, "laptop", AmazonSearchParams{
					StartPage:         1,
					Pages:             3,
					SortBy:            "price_low_to_high",
					AutoselectVariant: Bool(false),
				})
			},
			path: "/api/v1/amazon/search",
			expected: url.Values{
				"api_key":            {"secret"},
				"query":              {"laptop"},
				"start_page":         {"1"},
				"pages":              {"3"},
				"sort_by":            {"price_low_to_high"},
				"autoselect_variant": {"false"},
			},
		},
		{
			name: "walmart search",
			call: func(c *Client) (Response, error) {
				return c.WalmartSearch(ctx, "tv", WalmartSearchParams{MinPrice: 100, MaxPrice: 500})
			},
			path: "/api/v1/walmart/search",
			expected: url.Values{
				"api_key":   {"secret"},
				"query":     {"tv"},
				"min_price": {"100"},
				"max_price": {"500"},
			},
		},
		{
			name: "walmart product",
			call: func(c *Client) (Response, error) {
				return c.WalmartProduct(ctx, "123456", WalmartProductParams{StoreId: "42"})
			},
			path: "/api/v1/walmart/product",
			expected: url.Values{
				"api_key":    {"secret"},
				"product_id": {"123456"},
				"store_id":   {"42"},
			},
		},
		{
			name: "youtube search",
			call: func(c *Client) (Response, error) {
				return c.YoutubeSearch(ctx, "cats", YoutubeSearchParams{
					Is4k:  Bool(true),
					Is360: Bool(false),
					Type:  "video",
				})
			},
			path: "/api/v1/youtube/search",
			expected: url.Values{
				"api_key": {"secret"},
				"search":  {"cats"},
				"type":    {"video"},
				"4k":      {"true"},
				"360":     {"false"},
			},
		},
		{
			name: "youtube metadata",
			call: func(c *Client) (Response, error) {
				return c.YoutubeMetadata(ctx, "dQw4w9WgXcQ")
			},
			path: "/api/v1/youtube/metadata",
			expected: url.Values{
				"api_key":  {"secret"},
				"video_id": {"dQw4w9WgXcQ"},
			},
		},
		{
			name: "youtube transcript",
			call: func(c *Client) (Response, error) {
				return c.YoutubeTranscript(ctx, "dQw4w9WgXcQ", YoutubeTranscriptParams{Language: "en"})
			},
			path: "/api/v1/youtube/transcript",
			expected: url.Values{
				"api_key":  {"secret"},
				"video_id": {"dQw4w9WgXcQ"},
				"language": {"en"},
			},
		},
		{
			name: "youtube trainability",
			call: func(c *Client) (Response, error) {
				return c.YoutubeTrainability(ctx, "dQw4w9WgXcQ")
			},
			path: "/api/v1/youtube/trainability",
			expected: url.Values{
				"api_key":  {"secret"},
				"video_id": {"dQw4w9WgXcQ"},
			},
		},
		{
			name: "chatgpt",
			call: func(c *Client) (Response, error) {
				return c.ChatGpt(ctx, "hello there")
			},
			path: "/api/v1/chatgpt",
			expected: url.Values{
				"api_key": {"secret"},
				"prompt":  {"hello there"},
			},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			api := &fakeApi{body: `{"ok":true}`}
			client := newTestClient(t, api)

			res, err := test.call(client)
			require.NoError(t, err)
			require.Equal(t, http.StatusOK, res.StatusCode)
			require.Equal(t, `{"ok":true}`, string(res.Body))
			require.Equal(t, "5", res.Header.Get(HeaderCost))

			req := api.last(t)
			require.Equal(t, http.MethodGet, req.Method)
			require.Equal(t, test.path, req.Path)
			if diff := cmp.Diff(test.expected, req.Query); diff != "" {
				t.Fatalf("unexpected query (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScrapePost(t *testing.T) {
	api := &fakeApi{}
	client := newTestClient(t, api)

	body := "a=1&b=2"
	_, err := client.Scrape(context.Background(), "https://httpbin.org/post", ScrapeParams{
		Method:      "post",
		Body:        &body,
		ContentType: "application/x-www-form-urlencoded",
	})
	require.NoError(t, err)

	req := api.last(t)
	require.Equal(t, http.MethodPost, req.Method)
	require.Equal(t, body, req.Body)
	require.Equal(t, "application/x-www-form-urlencoded", req.ContentType)
	require.Equal(t, "POST", req.Query.Get("method"))
	require.Equal(t, "https://httpbin.org/post", req.Query.Get("url"))
}

func TestNonSuccessIsNotAnError(t *testing.T) {
	api := &fakeApi{status: http.StatusUnauthorized, body: `{"message":"Invalid api key"}`}
	client := newTestClient(t, api)

	res, err := client.Usage(context.Background())
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "/api/v1/usage", api.last(t).Path)

	body, status, err := client.UsageStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, `{"message":"Invalid api key"}`, string(body))
}
