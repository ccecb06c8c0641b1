package textdiff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff computes a line-level diff between expected and actual lines and
// renders it in classic normal format: "NcM" / "NdM" / "NaM" headers with
// "< " for expected lines and "> " for actual lines. The result is empty
// if and only if the two sequences are identical.
func Diff(expected, actual []string) string {
	matcher := difflib.NewMatcher(expected, actual)

	var b strings.Builder
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'r':
			fmt.Fprintf(&b, "%sc%s\n", span(op.I1, op.I2), span(op.J1, op.J2))
			writeLines(&b, "< ", expected[op.I1:op.I2])
			b.WriteString("---\n")
			writeLines(&b, "> ", actual[op.J1:op.J2])
		case 'd':
			fmt.Fprintf(&b, "%sd%d\n", span(op.I1, op.I2), op.J1)
			writeLines(&b, "< ", expected[op.I1:op.I2])
		case 'i':
			fmt.Fprintf(&b, "%da%s\n", op.I1, span(op.J1, op.J2))
			writeLines(&b, "> ", actual[op.J1:op.J2])
		}
	}
	return b.String()
}

// Equal reports whether the two line sequences are identical
func Equal(expected, actual []string) bool {
	if len(expected) != len(actual) {
		return false
	}
	for i := range expected {
		if expected[i] != actual[i] {
			return false
		}
	}
	return true
}

// span renders a half-open zero-based range as 1-based normal diff notation
func span(lo, hi int) string {
	if hi-lo <= 1 {
		return fmt.Sprintf("%d", lo+1)
	}
	return fmt.Sprintf("%d,%d", lo+1, hi)
}

func writeLines(b *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
