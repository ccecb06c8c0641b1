package textdiff

import "strings"

// Normalize splits text into lines and drops every line that is empty or
// consists solely of whitespace, preserving the order of the remaining lines.
// Comparison always happens on normalized lines, so blank-line-only
// differences between expected and actual output never fail a test.
func Normalize(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	normalized := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		normalized = append(normalized, line)
	}
	return normalized
}
