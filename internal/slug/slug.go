package slug

import "strings"

// Normalize converts a raw slug or title into its canonical form:
// lower-case, only [a-z0-9_] kept, whitespace runs collapsed to a single
// underscore. The result is stable: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	lowered := strings.ToLower(raw)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteRune(r)
		}
	}

	// Collapse whitespace runs into single underscores
	fields := strings.Fields(b.String())
	return strings.Join(fields, "_")
}

// Derive builds a slug for a product that was created without an explicit
// slug, starting from its title.
func Derive(title string) string {
	return Normalize(title)
}
