package scrapingbee

import (
	"fmt"
	"os"
)

const EnvApiKey = "SCRAPINGBEE_API_KEY"

var ErrMissingApiKey = fmt.Errorf(
	"API key not provided. Use --api-key flag or set %s environment variable",
	EnvApiKey,
)

// ResolveApiKey picks the API key from, in order, the flag, the environment
// and the config file.
func ResolveApiKey(flagValue, configValue string) (string, error) {
	return resolveApiKey(flagValue, configValue, os.Getenv)
}

func resolveApiKey(flagValue, configValue string, getenv func(string) string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if key := getenv(EnvApiKey); key != "" {
		return key, nil
	}
	if configValue != "" {
		return configValue, nil
	}
	return "", ErrMissingApiKey
}
