package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"scrapingbee-cli/lib/configutil"
	"scrapingbee-cli/lib/restyutil"
	"scrapingbee-cli/lib/scrapingbee"
	"scrapingbee-cli/lib/telemetry"
)

const ConfigFile = "scrapingbee.json5"

type Config struct {
	ApiKey         string `json:"api_key"`
	BaseUrl        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	Concurrency    int    `json:"concurrency"`
	BatchOutputDir string `json:"batch_output_dir"`
}

// defaultConfigPath is $XDG_CONFIG_HOME/scrapingbee/scrapingbee.json5 (or
// the platform equivalent).
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "scrapingbee", ConfigFile)
}

// readConfig reads the config file at path, or the default location when
// path is empty. A missing default config is not an error.
func readConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return Config{}, nil
		}
	}

	config, err := configutil.ReadConfig[Config](path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return config, nil
}

// settings are the effective global options after merging flags, the
// environment and the config file.
type settings struct {
	apiKey         string
	baseUrl        string
	timeout        time.Duration
	concurrency    int
	batchOutputDir string
	output         string
	verbose        bool
	dumpHttp       string
}

func resolveSettings(f globalFlags, config Config) (settings, error) {
	apiKey, err := scrapingbee.ResolveApiKey(f.apiKey, config.ApiKey)
	if err != nil {
		return settings{}, err
	}

	s := settings{
		apiKey:         apiKey,
		baseUrl:        config.BaseUrl,
		timeout:        time.Duration(config.TimeoutSeconds) * time.Second,
		concurrency:    config.Concurrency,
		batchOutputDir: config.BatchOutputDir,
		output:         f.output,
		verbose:        f.verbose,
		dumpHttp:       f.dumpHttp,
	}
	if f.concurrency != 0 {
		s.concurrency = f.concurrency
	}
	if f.batchOutputDir != "" {
		s.batchOutputDir = f.batchOutputDir
	}
	return s, nil
}

func loadSettings() (settings, error) {
	config, err := readConfig(flags.configPath)
	if err != nil {
		return settings{}, err
	}
	return resolveSettings(flags, config)
}

func newClient(s settings) (*scrapingbee.Client, error) {
	opts := scrapingbee.ClientOptions{
		ApiKey:    s.apiKey,
		BaseUrl:   s.baseUrl,
		Timeout:   s.timeout,
		Telemetry: telemetry.SlogAPI{},
	}
	if s.dumpHttp != "" {
		output, err := restyutil.NewFilesystemOutput(s.dumpHttp)
		if err != nil {
			return nil, fmt.Errorf("create --dump-http directory: %w", err)
		}
		opts.Transcripts = output
	}
	return scrapingbee.NewClient(opts)
}
