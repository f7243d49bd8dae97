package helper

import (
	"net/url"
	"strings"
)

// MapsSearchURL → <base>?api=1&query=<tempat ter-encode>
// Spasi di-encode sebagai %20 (bukan '+'), seperti encodeURIComponent.
func MapsSearchURL(base, tempat string) string {
	q := strings.ReplaceAll(url.QueryEscape(tempat), "+", "%20")
	return base + "?api=1&query=" + q
}
