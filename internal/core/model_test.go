package core

import "testing"

func TestOptionalString(t *testing.T) {
	absent := None()
	if absent.IsPresent() || absent.String() != NotAvailable {
		t.Errorf("absent value should print %q, got %q", NotAvailable, absent.String())
	}

	// A header whose value happens to be "N/A" is still present
	literal := Some(NotAvailable)
	if !literal.IsPresent() {
		t.Errorf("expected literal N/A to be present")
	}

	empty := Some("")
	if v, ok := empty.Get(); !ok || v != "" {
		t.Errorf("expected present empty value, got %q %v", v, ok)
	}
}

func TestHopClassificationString(t *testing.T) {
	tests := map[HopClassification]string{
		HopInvalid:  "Invalid",
		HopLoopback: "Loopback",
		HopPrivate:  "Private",
		HopPublic:   "Public",
	}
	for c, want := range tests {
		if c.String() != want {
			t.Errorf("String() = %q, want %q", c.String(), want)
		}
	}

	if !HopPrivate.IsInternal() || !HopLoopback.IsInternal() || HopPublic.IsInternal() {
		t.Errorf("unexpected IsInternal results")
	}
}

func TestPlaceholderLocation(t *testing.T) {
	loc := PlaceholderLocation("8.8.8.8")
	if loc.IP != "8.8.8.8" || loc.City != NotAvailable || loc.Region != NotAvailable || loc.Country != NotAvailable {
		t.Errorf("unexpected placeholder %+v", loc)
	}
}
