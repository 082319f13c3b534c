package urlcanon

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// normalizeHost rewrites host so its public-suffix portion matches the
// canonical form x/net/publicsuffix's compiled table knows about, leaving
// any subdomain prefix untouched.
func normalizeHost(host string) string {
	lower := strings.ToLower(host)
	suffix, _ := publicsuffix.PublicSuffix(lower)
	if suffix == "" || len(suffix) > len(host) {
		return host
	}
	prefix := host[:len(host)-len(suffix)]
	return prefix + suffix
}

// RefreshPublicSuffixList is a documented no-op. golang.org/x/net/publicsuffix
// ships a suffix table compiled in at build time from the same
// publicsuffix.org list the original hand-rolled fetcher downloaded at
// runtime; there is no supported way to swap that table at runtime, so a
// live refresh isn't possible here. Callers that need a fresher list
// should vendor a newer golang.org/x/net release.
func RefreshPublicSuffixList() error {
	return nil
}
