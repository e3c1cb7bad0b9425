// Package heuristics holds the individual detectors run against an extracted
// message. Every detector is a pure function over its input and never fails:
// malformed input simply does not trigger the rule.
package heuristics

import (
	"net/netip"
	"regexp"

	"github.com/mikey/eml-analyzer/internal/core"
)

// hopIPPattern does not range-check octets; ClassifyHop rejects out-of-range values.
var hopIPPattern = regexp.MustCompile(`\[(\d{1,3}(?:\.\d{1,3}){3})\]`)

// nonGlobalPrefixes are the IANA special-purpose blocks treated as private use
var nonGlobalPrefixes = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("169.254.0.0/16"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.0.0.0/29"),
	netip.MustParsePrefix("192.0.0.170/31"),
	netip.MustParsePrefix("192.0.2.0/24"),
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("198.51.100.0/24"),
	netip.MustParsePrefix("203.0.113.0/24"),
	netip.MustParsePrefix("240.0.0.0/4"),
	netip.MustParsePrefix("255.255.255.255/32"),
	netip.MustParsePrefix("::/128"),
	netip.MustParsePrefix("100::/64"),
	netip.MustParsePrefix("2001::/23"),
	netip.MustParsePrefix("2001:db8::/32"),
	netip.MustParsePrefix("fc00::/7"),
	netip.MustParsePrefix("fe80::/10"),
}

// ExtractHopIPs returns every bracketed IPv4 address found in the Received
// headers, in header order and then in order of appearance within a header.
func ExtractHopIPs(hops []string) []string {
	var ips []string
	for _, hop := range hops {
		for _, m := range hopIPPattern.FindAllStringSubmatch(hop, -1) {
			ips = append(ips, m[1])
		}
	}
	return ips
}

// ClassifyHop returns the address class of ip
func ClassifyHop(ip string) core.HopClassification {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return core.HopInvalid
	}
	addr = addr.Unmap().WithZone("")

	if addr.IsLoopback() {
		return core.HopLoopback
	}
	for _, prefix := range nonGlobalPrefixes {
		if prefix.Contains(addr) {
			return core.HopPrivate
		}
	}
	return core.HopPublic
}
