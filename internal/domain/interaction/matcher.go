package interaction

import "strings"

// Matcher decides whether a corpus drug name and a user-supplied query refer
// to the same substance. It is an explicit capability so the containment
// strategy can be swapped (token or edit-distance matching) without touching
// the resolver.
type Matcher interface {
	// Normalize produces the canonical form of a raw user-supplied name.
	Normalize(raw string) string
	// Matches reports whether query refers to candidate.
	Matches(candidate, query string) bool
}

// SubstringMatcher matches a query as a case-insensitive substring of the
// candidate, mirroring the regex-contains semantics of the reference
// dataset queries: "warfarin" matches "Warfarin sodium". Very short queries
// (1–2 characters) are deliberately permissive; no minimum-length filter is
// applied.
type SubstringMatcher struct{}

// Normalize trims surrounding whitespace. No stemming and no synonym
// resolution — the canonical form is intentionally permissive.
func (SubstringMatcher) Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

// Matches reports whether the normalized query occurs case-insensitively
// within candidate. An empty query never matches; the resolver rejects
// empty names before lookup, this is a defensive backstop.
func (m SubstringMatcher) Matches(candidate, query string) bool {
	q := m.Normalize(query)
	if q == "" {
		return false
	}
	return strings.Contains(strings.ToLower(candidate), strings.ToLower(q))
}
