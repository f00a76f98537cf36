package interaction

import "strings"

// Severity is the clinical risk classification of a documented interaction.
type Severity int

const (
	SeverityMajor Severity = iota
	SeverityModerate
	SeverityMinor
	SeverityUnknown
)

// ParseSeverity maps a reference-dataset level string to a Severity.
// Anything that is not Major/Moderate/Minor (case-insensitive) is Unknown,
// including blank values.
func ParseSeverity(level string) Severity {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "major":
		return SeverityMajor
	case "moderate":
		return SeverityModerate
	case "minor":
		return SeverityMinor
	default:
		return SeverityUnknown
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityMajor:
		return "Major"
	case SeverityModerate:
		return "Moderate"
	case SeverityMinor:
		return "Minor"
	default:
		return "Unknown"
	}
}

// Rank returns the sort rank of the severity; lower sorts first.
func (s Severity) Rank() int { return int(s) }

// Record is one documented pairwise interaction from the reference corpus.
// The JSON field names are the stable wire format consumed by the UI and
// match the imported DDInter column names.
type Record struct {
	DrugA     string  `db:"drug_a" json:"Drug_A"`
	DrugB     string  `db:"drug_b" json:"Drug_B"`
	Level     string  `db:"level" json:"Level"`
	SourceIDA *string `db:"source_id_a" json:"DDInterID_A"`
	SourceIDB *string `db:"source_id_b" json:"DDInterID_B"`
}

// Severity derives the parsed severity from the record's raw level.
func (r *Record) Severity() Severity { return ParseSeverity(r.Level) }

// dedupeKey identifies records that describe the same interaction: the
// unordered drug pair plus severity, compared case-insensitively. The corpus
// does not guarantee pair uniqueness, so near-duplicate rows (swapped order,
// different casing) collapse to one key.
func (r *Record) dedupeKey() string {
	a := strings.ToLower(strings.TrimSpace(r.DrugA))
	b := strings.ToLower(strings.TrimSpace(r.DrugB))
	if b < a {
		a, b = b, a
	}
	return a + "|" + b + "|" + r.Severity().String()
}

// Diagnostics is the per-request metadata returned alongside a successful
// interaction check. An empty result with all drugs found means a safe
// combination; an empty result with NotFound entries means the corpus does
// not know those drugs at all.
type Diagnostics struct {
	TotalInDB     int      `json:"totalInDB"`
	DrugsSearched []string `json:"drugsSearched"`
	NotFound      []string `json:"notFound"`
	Found         int      `json:"found"`
	Unique        int      `json:"unique"`
}
