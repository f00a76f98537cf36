package interaction

import "testing"

func TestParseSeverity(t *testing.T) {
	cases := map[string]Severity{
		"Major":    SeverityMajor,
		"major":    SeverityMajor,
		" MAJOR ":  SeverityMajor,
		"Moderate": SeverityModerate,
		"Minor":    SeverityMinor,
		"Unknown":  SeverityUnknown,
		"":         SeverityUnknown,
		"N/A":      SeverityUnknown,
	}
	for in, want := range cases {
		if got := ParseSeverity(in); got != want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSeverity_RankOrdering(t *testing.T) {
	if !(SeverityMajor.Rank() < SeverityModerate.Rank() &&
		SeverityModerate.Rank() < SeverityMinor.Rank() &&
		SeverityMinor.Rank() < SeverityUnknown.Rank()) {
		t.Error("severity ranks must order Major < Moderate < Minor < Unknown")
	}
}

func TestSeverity_String(t *testing.T) {
	cases := map[Severity]string{
		SeverityMajor:    "Major",
		SeverityModerate: "Moderate",
		SeverityMinor:    "Minor",
		SeverityUnknown:  "Unknown",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestRecord_DedupeKey_Unordered(t *testing.T) {
	a := &Record{DrugA: "Aspirin", DrugB: "Warfarin", Level: "Major"}
	b := &Record{DrugA: "WARFARIN", DrugB: "aspirin", Level: "major"}
	if a.dedupeKey() != b.dedupeKey() {
		t.Errorf("swapped-order records should share a dedupe key: %q vs %q", a.dedupeKey(), b.dedupeKey())
	}

	c := &Record{DrugA: "Aspirin", DrugB: "Warfarin", Level: "Minor"}
	if a.dedupeKey() == c.dedupeKey() {
		t.Error("records with different severities must not collapse")
	}
}
