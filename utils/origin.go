package utils

import (
	"net/http"
	"net/url"
)

// RequestSourceHost derives the web host that issued a request: the Origin
// header is consulted first, then Referer. A header that is missing or does
// not parse to a URL with a host falls through to the next source; if
// neither yields a host the result is "" (source unknown).
func RequestSourceHost(r *http.Request) string {
	if origin := r.Header.Get("Origin"); origin != "" {
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			return u.Host
		}
	}

	if referer := r.Header.Get("Referer"); referer != "" {
		if u, err := url.Parse(referer); err == nil && u.Host != "" {
			return u.Host
		}
	}

	return ""
}
