package utils

import "strings"

// NormalizeURL canonicalizes a raw URL for storage and lookup: the http or
// https scheme prefix is stripped, at most one trailing slash is removed and
// the remainder is lower-cased. Pure transform with no error conditions; an
// empty string stays empty, callers validate non-emptiness before storing.
func NormalizeURL(raw string) string {
	url := raw

	lower := strings.ToLower(url)

	if strings.HasPrefix(lower, "https://") {
		url = url[len("https://"):]
	} else if strings.HasPrefix(lower, "http://") {
		url = url[len("http://"):]
	}

	url = strings.TrimSuffix(url, "/")

	return strings.ToLower(url)
}
