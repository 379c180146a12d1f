package slug

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"title with apostrophe and hyphen", "Men's Red T-Shirt", "mens_red_tshirt"},
		{"already canonical", "mens_red_tshirt", "mens_red_tshirt"},
		{"upper case", "LOGO BEANIE", "logo_beanie"},
		{"multiple spaces collapse", "a   b", "a_b"},
		{"tabs and newlines collapse", "a\t\nb", "a_b"},
		{"leading and trailing whitespace", "  padded title  ", "padded_title"},
		{"special characters stripped", "50% Off! (Today)", "50_off_today"},
		{"underscores preserved", "keep_under_scores", "keep_under_scores"},
		{"digits preserved", "Model 3 Tee 2024", "model_3_tee_2024"},
		{"only invalid characters", "!!!", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDeriveMatchesNormalize(t *testing.T) {
	title := "Women's Cropped Puffer Jacket"
	if Derive(title) != Normalize(title) {
		t.Errorf("Derive(%q) = %q, expected it to equal Normalize", title, Derive(title))
	}
}

func TestProperty_NormalizedSlugsAreCanonical(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("slugs are lower-case, within [a-z0-9_] and have no spaces", prop.ForAll(
		func(title string) bool {
			slug := Derive(title)

			if slug != strings.ToLower(slug) {
				t.Logf("FAIL: slug %q is not lower-case", slug)
				return false
			}
			if strings.Contains(slug, " ") {
				t.Logf("FAIL: slug %q contains a space", slug)
				return false
			}
			for _, r := range slug {
				valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
				if !valid {
					t.Logf("FAIL: slug %q contains invalid rune %q", slug, r)
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("normalization is idempotent", prop.ForAll(
		func(raw string) bool {
			once := Normalize(raw)
			twice := Normalize(once)
			if once != twice {
				t.Logf("FAIL: Normalize not idempotent: %q -> %q -> %q", raw, once, twice)
				return false
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
