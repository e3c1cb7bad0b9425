package heuristics

import (
	"net"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/publicsuffix"
)

// DefaultURLLengthLimit is the length above which a URL counts as excessively long
const DefaultURLLengthLimit = 150

var urlPattern = regexp.MustCompile(`(https?://[^\s]+|www\.[^\s]+)`)

// suspiciousTLDs is a list of TLDs commonly abused for throwaway phishing domains
var suspiciousTLDs = map[string]struct{}{
	"xyz":     {},
	"top":     {},
	"click":   {},
	"support": {},
	"online":  {},
	"info":    {},
	"icu":     {},
	"cyou":    {},
	"monster": {},
	"live":    {},
	"shop":    {},
	"work":    {},
}

// ExtractURLs returns http, https and www. tokens up to the next whitespace,
// in order of appearance with duplicates retained
func ExtractURLs(text string) []string {
	if text == "" {
		return nil
	}
	return urlPattern.FindAllString(text, -1)
}

// normalizeURL defaults the scheme for parsing purposes only
func normalizeURL(rawURL string) string {
	if !strings.Contains(rawURL, "://") {
		return "http://" + rawURL
	}
	return rawURL
}

// hostname returns the lowercase host of rawURL, or "" if it cannot be parsed.
// A malformed path, query or port does not hide an otherwise valid host.
func hostname(rawURL string) string {
	normalized := normalizeURL(rawURL)
	if parsed, err := url.Parse(normalized); err == nil {
		return strings.ToLower(parsed.Hostname())
	}

	authority := normalized[strings.Index(normalized, "://")+len("://"):]
	if end := strings.IndexAny(authority, "/?#"); end >= 0 {
		authority = authority[:end]
	}
	if at := strings.LastIndex(authority, "@"); at >= 0 {
		authority = authority[at+1:]
	}

	parsed, err := url.Parse("http://" + authority)
	if err == nil {
		return strings.ToLower(parsed.Hostname())
	}

	// Bad port: drop it and keep the host
	if !strings.HasPrefix(authority, "[") {
		if colon := strings.LastIndex(authority, ":"); colon >= 0 {
			authority = authority[:colon]
		}
	} else if end := strings.Index(authority, "]"); end >= 0 {
		authority = authority[:end+1]
	}
	parsed, err = url.Parse("http://" + authority)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}

// IsRawIP reports whether the URL host is a literal IPv4 or IPv6 address
func IsRawIP(rawURL string) bool {
	host := hostname(rawURL)
	if host == "" {
		return false
	}
	return net.ParseIP(host) != nil
}

// HasSuspiciousTLD reports whether the final label of the URL host is on the suspicious list
func HasSuspiciousTLD(rawURL string) bool {
	host := hostname(rawURL)
	if host == "" || !strings.Contains(host, ".") {
		return false
	}
	tld := host[strings.LastIndex(host, ".")+1:]
	_, ok := suspiciousTLDs[tld]
	return ok
}

// IsExcessivelyLong reports whether the URL is longer than limit characters
func IsExcessivelyLong(rawURL string, limit int) bool {
	return utf8.RuneCountInString(rawURL) > limit
}

// RegistrableDomain returns the eTLD+1 of the URL host, or "" for IP hosts
// and hosts without a registrable part
func RegistrableDomain(rawURL string) string {
	host := hostname(rawURL)
	if host == "" || net.ParseIP(host) != nil {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(strings.TrimSuffix(host, "."))
	if err != nil {
		return ""
	}
	return domain
}
