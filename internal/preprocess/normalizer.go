package preprocess

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize strips non-substantive lines from a case packet before it is
// forwarded to the model. A line is dropped when any of the following holds:
//
//   - its trimmed, lowercased form is shorter than Policy.MinLineChars
//     (headers, page numbers, formatting artifacts);
//   - it contains any policy marker as a case-insensitive substring;
//   - it is entirely uppercase and longer than Policy.UppercaseMinChars
//     (section headers like "WITNESS STATEMENT OF JOHN DOE").
//
// Surviving lines are kept byte for byte and in order. Runs of three or more
// consecutive newlines collapse to two, and the whole result is trimmed.
// Normalize is pure and total: it never fails, and re-running it on its own
// output returns the same output. Lengths are measured in runes, not bytes.
func Normalize(text string, p Policy) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if utf8.RuneCountInString(lower) < p.MinLineChars {
			continue
		}
		if containsMarker(lower, p.Markers) {
			continue
		}
		if utf8.RuneCountInString(trimmed) > p.UppercaseMinChars && isAllUpper(trimmed) {
			continue
		}

		kept = append(kept, line)
	}

	out := strings.Join(kept, "\n")
	for strings.Contains(out, "\n\n\n") {
		out = strings.ReplaceAll(out, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(out)
}

func containsMarker(lower string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// isAllUpper reports whether s contains at least one cased rune and no
// lowercase runes.
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			return false
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			cased = true
		}
	}
	return cased
}
