package scrapingbee

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"scrapingbee-cli/lib/batch"
	"scrapingbee-cli/lib/restyutil"

	"github.com/stretchr/testify/require"
)

func TestBatchWithTranscripts(t *testing.T) {
	api := &fakeApi{body: `{"max_concurrency": 5}`}
	server := newTestServer(t, api)

	dir := filepath.Join(t.TempDir(), "http")
	output, err := restyutil.NewFilesystemOutput(dir)
	require.NoError(t, err)

	client, err := NewClient(ClientOptions{
		ApiKey:      "secret",
		BaseUrl:     server + "/api/v1",
		Transcripts: output,
	})
	require.NoError(t, err)

	inputs := []string{"https://a.test", "https://b.test", "https://c.test"}
	results := batch.Run(context.Background(), inputs, 2, BatchWorker(func(ctx context.Context, input string) (Response, error) {
		return client.Scrape(ctx, input, ScrapeParams{})
	}))

	require.Len(t, results, len(inputs))
	for i, r := range results {
		require.False(t, r.Failed(), "item %d: %v", i, r.Err)
		require.Equal(t, 200, r.StatusCode)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, len(inputs))

	contents, err := os.ReadFile(filepath.Join(dir, "1.http"))
	require.NoError(t, err)
	require.Contains(t, string(contents), "<NO BODY>")
	require.Contains(t, string(contents), "api_key=REDACTED")
	require.NotContains(t, string(contents), "secret")
}
