package commands

import (
	"fmt"
	"strconv"
	"strings"

	"scrapingbee-cli/lib/scrapingbee"

	"github.com/spf13/pflag"
)

// parseBool reads an optional boolean option: empty is unset, "true", "1"
// and "yes" (any case) are true, anything else is false.
func parseBool(v string) *bool {
	if v == "" {
		return nil
	}
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return scrapingbee.Bool(true)
	}
	return scrapingbee.Bool(false)
}

// optionalBool is a flag value that leaves its target nil until set.
type optionalBool struct {
	target **bool
}

func (b optionalBool) String() string {
	if b.target == nil || *b.target == nil {
		return ""
	}
	return strconv.FormatBool(**b.target)
}

func (b optionalBool) Set(v string) error {
	*b.target = parseBool(v)
	return nil
}

func (b optionalBool) Type() string {
	return "true|false"
}

func boolFlag(fs *pflag.FlagSet, target **bool, name, usage string) {
	fs.Var(optionalBool{target: target}, name, usage)
}

// parseHeaders turns repeated Key:Value options into a map, keys and values
// are trimmed.
func parseHeaders(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	headers := make(map[string]string, len(raw))
	for _, h := range raw {
		key, value, ok := strings.Cut(h, ":")
		if !ok {
			return nil, fmt.Errorf("invalid header format %q, expected Key:Value", h)
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return headers, nil
}
