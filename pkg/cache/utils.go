package cache

import (
	"fmt"
	"strings"
)

// SeriesKey builds the cache key for a series request:
// seriesID:frequency:start:end[:transform].
func SeriesKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// GenerateKeyWithParams creates a cache key with arbitrary parameters.
func GenerateKeyWithParams(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key = fmt.Sprintf("%s:%v", key, param)
	}
	return key
}
