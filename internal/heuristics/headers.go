package heuristics

import (
	"strings"

	"golang.org/x/net/idna"

	"github.com/mikey/eml-analyzer/internal/core"
)

// HasFromReplyToMismatch reports whether replies would go to a different
// domain than the visible sender. Without a Reply-To there is nothing to
// compare. A From or Reply-To without an "@" is treated as a mismatch.
func HasFromReplyToMismatch(from, replyTo core.OptionalString) bool {
	reply, ok := replyTo.Get()
	if !ok {
		return false
	}
	sender, _ := from.Get()

	if !strings.Contains(sender, "@") || !strings.Contains(reply, "@") {
		return true
	}
	return addressDomain(sender) != addressDomain(reply)
}

// addressDomain returns the normalized domain after the final "@"
func addressDomain(addr string) string {
	domain := addr[strings.LastIndex(addr, "@")+1:]
	domain = strings.ToLower(strings.TrimSpace(strings.TrimRight(strings.TrimSpace(domain), ">")))

	if ascii, err := idna.Lookup.ToASCII(domain); err == nil {
		return ascii
	}
	return domain
}
