package textdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "empty text",
			text:     "",
			expected: []string{},
		},
		{
			name:     "only blank lines",
			text:     "\n\n  \n\t\n",
			expected: []string{},
		},
		{
			name:     "trailing newline",
			text:     "1 2 3\n",
			expected: []string{"1 2 3"},
		},
		{
			name:     "trailing blank line",
			text:     "1 2 3\n\n",
			expected: []string{"1 2 3"},
		},
		{
			name:     "interior blank and whitespace-only lines",
			text:     "a\n\nb\n   \nc\n",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "order preserved",
			text:     "c\nb\na\n",
			expected: []string{"c", "b", "a"},
		},
		{
			name:     "windows line endings",
			text:     "a\r\n\r\nb\r\n",
			expected: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.text)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
