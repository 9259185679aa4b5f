package scrapingbee

import (
	"net/url"
	"strconv"
)

// query collects request parameters, leaving out unset values the same way
// for every endpoint: empty strings, zero ints and nil bools are omitted.
type query url.Values

func (q query) setStr(key, value string) {
	if value == "" {
		return
	}
	url.Values(q).Set(key, value)
}

func (q query) setInt(key string, value int) {
	if value == 0 {
		return
	}
	url.Values(q).Set(key, strconv.Itoa(value))
}

func (q query) setBool(key string, value *bool) {
	if value == nil {
		return
	}
	url.Values(q).Set(key, strconv.FormatBool(*value))
}

// Bool returns a pointer to v, for optional parameters.
func Bool(v bool) *bool {
	return &v
}
