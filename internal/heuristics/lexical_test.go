package heuristics

import (
	"reflect"
	"testing"
)

func TestVocabularyMatch(t *testing.T) {
	body := "URGENT: please buy a Gift Card and send payment. Buy another gift card immediately!"

	if got, want := FinancialLanguage.Match(body), []string{"gift card", "send payment"}; !reflect.DeepEqual(got, want) {
		t.Errorf("FinancialLanguage.Match() = %v, want %v", got, want)
	}
	if got, want := UrgentLanguage.Match(body), []string{"immediately", "urgent"}; !reflect.DeepEqual(got, want) {
		t.Errorf("UrgentLanguage.Match() = %v, want %v", got, want)
	}
	if got := CredentialLanguage.Match(body); len(got) != 0 {
		t.Errorf("CredentialLanguage.Match() = %v, want none", got)
	}
}

func TestVocabularyMatchEmpty(t *testing.T) {
	if got := UrgentLanguage.Match(""); got != nil {
		t.Errorf("expected nil for empty text, got %v", got)
	}
}

func TestVocabularyPhrasesOverlap(t *testing.T) {
	// "gift cards" also contains "gift card"; both are distinct phrases
	got := FinancialLanguage.Match("we accept gift cards only")
	want := []string{"gift card", "gift cards"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestVocabularySize(t *testing.T) {
	if FinancialLanguage.Len() != 32 {
		t.Errorf("expected 32 financial phrases, got %d", FinancialLanguage.Len())
	}
}
