package heuristics

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Vocabulary is a fixed set of phrases matched case-insensitively against body text
type Vocabulary struct {
	phrases []string
}

func newVocabulary(phrases ...string) Vocabulary {
	folder := cases.Fold()
	folded := make([]string, 0, len(phrases))
	seen := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		p = folder.String(p)
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		folded = append(folded, p)
	}
	sort.Strings(folded)
	return Vocabulary{phrases: folded}
}

// Len is the number of distinct phrases
func (v Vocabulary) Len() int {
	return len(v.phrases)
}

// Match returns the distinct phrases that occur anywhere in text, sorted.
// Each phrase counts once regardless of how often it occurs.
func (v Vocabulary) Match(text string) []string {
	if text == "" {
		return nil
	}
	folded := cases.Fold().String(text)

	var matches []string
	for _, phrase := range v.phrases {
		if strings.Contains(folded, phrase) {
			matches = append(matches, phrase)
		}
	}
	return matches
}

// UrgentLanguage pressures the reader into acting without thinking
var UrgentLanguage = newVocabulary(
	"immediately",
	"urgent",
	"asap",
	"right away",
	"act now",
	"final notice",
	"last warning",
	"attention required",
	"your account will close",
	"your account will be closed",
	"suspicious activity",
	"unusual activity",
	"verify now",
	"update now",
	"expires soon",
	"limited time",
	"time sensitive",
	"emergency",
)

// CredentialLanguage asks the reader to hand over or re-enter credentials
var CredentialLanguage = newVocabulary(
	"verify your account",
	"verify account",
	"confirm your identity",
	"confirm your account",
	"reset your password",
	"enter your password",
	"login to continue",
	"log in to continue",
	"update your credentials",
	"account locked",
	"account disabled",
	"password required",
	"security check",
	"authentication required",
)

// FinancialLanguage covers payment, gift card and crypto fraud
var FinancialLanguage = newVocabulary(
	"payment correction",
	"bank transfer",
	"wire fee",
	"overdue balance",
	"invoice attached",
	"pending invoice",
	"outstanding payment",
	"billing error",
	"payment issue",
	"transaction problem",
	"funds needed",
	"payment needed",
	"send payment",
	"gift card",
	"gift cards",
	"amazon card",
	"steam card",
	"itunes card",
	"google play card",
	"bitcoin",
	"crypto",
	"cryptocurrency",
	"btc",
	"ethereum",
	"western union",
	"moneygram",
	"wire transfer",
	"urgent transfer",
	"bank details",
	"routing number",
	"account number",
	"rent",
)
