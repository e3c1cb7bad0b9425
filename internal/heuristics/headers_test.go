package heuristics

import (
	"testing"

	"github.com/mikey/eml-analyzer/internal/core"
)

func TestHasFromReplyToMismatch(t *testing.T) {
	tests := []struct {
		name    string
		from    core.OptionalString
		replyTo core.OptionalString
		want    bool
	}{
		{"reply-to absent", core.Some("a@x.com"), core.None(), false},
		{"different domains", core.Some("a@x.com"), core.Some("b@y.com"), true},
		{"same domain", core.Some("a@x.com"), core.Some("b@x.com"), false},
		{"from without at", core.Some("postmaster"), core.Some("b@x.com"), true},
		{"from absent", core.None(), core.Some("b@x.com"), true},
		{"display names", core.Some("Alice <a@X.com>"), core.Some("\"Bob\" <b@x.com>"), false},
		{"idna", core.Some("a@bücher.example"), core.Some("b@xn--bcher-kva.example"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasFromReplyToMismatch(tt.from, tt.replyTo); got != tt.want {
				t.Errorf("HasFromReplyToMismatch() = %v, want %v", got, tt.want)
			}
		})
	}
}
