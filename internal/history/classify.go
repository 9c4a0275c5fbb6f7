package history

import "strings"

// Kind is a derived, display-only classification of an entry. It is
// computed on read and never stored.
type Kind string

const (
	KindLink      Kind = "link"
	KindNumber    Kind = "number"
	KindMultiline Kind = "multiline"
	KindText      Kind = "text"
)

// Classify buckets an entry for display. Links win over everything,
// then purely numeric content, then anything spanning multiple lines.
func Classify(text string) Kind {
	switch {
	case strings.HasPrefix(text, "http://"), strings.HasPrefix(text, "https://"):
		return KindLink
	case isNumeric(text):
		return KindNumber
	case strings.Contains(text, "\n"):
		return KindMultiline
	default:
		return KindText
	}
}

// isNumeric reports whether text is digits once '.' and '-' separators
// are stripped, so "3.14", "-40" and "2026-08-29" all count as numbers.
func isNumeric(text string) bool {
	stripped := strings.NewReplacer(".", "", "-", "").Replace(text)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Preview flattens an entry to a single trimmed line of at most width
// runes, with a trailing ellipsis when truncated.
func Preview(text string, width int) string {
	flat := strings.TrimSpace(strings.NewReplacer("\n", " ", "\t", " ").Replace(text))
	runes := []rune(flat)
	if width <= 0 || len(runes) <= width {
		return flat
	}
	if width <= 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
