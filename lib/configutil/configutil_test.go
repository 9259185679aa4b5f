package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	ApiKey      string `json:"api_key"`
	BaseUrl     string `json:"base_url"`
	Concurrency int    `json:"concurrency"`
}

func writeFile(t testing.TB, path, contents string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, "dir/scrapingbee.local.json5", LocalPath("dir/scrapingbee.json5"))
	require.Equal(t, "telemetry.local.json5", LocalPath("telemetry.json5"))
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scrapingbee.json5")

	_, err := ReadConfig[testConfig](path)
	require.ErrorIs(t, err, os.ErrNotExist)

	writeFile(t, path, `{
		// defaults for every machine
		"api_key": "from-file",
		"base_url": "https://app.scrapingbee.com/api/v1",
		"concurrency": 5
	}`)
	config, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, testConfig{
		ApiKey:      "from-file",
		BaseUrl:     "https://app.scrapingbee.com/api/v1",
		Concurrency: 5,
	}, config)

	writeFile(t, LocalPath(path), `{"api_key": "from-local"}`)
	config, err = ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "from-local", config.ApiKey)
	require.Equal(t, 5, config.Concurrency)
}

func TestReadConfigOnlyLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scrapingbee.json5")
	writeFile(t, LocalPath(path), `{"concurrency": 2}`)

	config, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, 2, config.Concurrency)
}

func TestReadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrapingbee.json5")
	writeFile(t, path, `{"api_key": `)

	_, err := ReadConfig[testConfig](path)
	require.Error(t, err)
	require.NotErrorIs(t, err, os.ErrNotExist)
}

func TestReadRecursively(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "telemetry.json5"), `{"base_url": "http://collector"}`)
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	defer os.Chdir(cwd)

	config, err := ReadRecursively[testConfig]("telemetry.json5")
	require.NoError(t, err)
	require.Equal(t, "http://collector", config.BaseUrl)

	_, err = ReadRecursively[testConfig]("does-not-exist.json5")
	require.ErrorIs(t, err, os.ErrNotExist)
}
