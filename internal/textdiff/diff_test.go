package textdiff

import "testing"

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		expected []string
		actual   []string
		want     string
	}{
		{
			name:     "identical",
			expected: []string{"1 2 3"},
			actual:   []string{"1 2 3"},
			want:     "",
		},
		{
			name:     "both empty",
			expected: []string{},
			actual:   []string{},
			want:     "",
		},
		{
			name:     "single changed line",
			expected: []string{"5"},
			actual:   []string{"4"},
			want:     "1c1\n< 5\n---\n> 4\n",
		},
		{
			name:     "deleted line",
			expected: []string{"a", "b", "c"},
			actual:   []string{"a", "c"},
			want:     "2d1\n< b\n",
		},
		{
			name:     "added line",
			expected: []string{"a", "c"},
			actual:   []string{"a", "b", "c"},
			want:     "1a2\n> b\n",
		},
		{
			name:     "multi-line change",
			expected: []string{"1", "2"},
			actual:   []string{"x"},
			want:     "1,2c1\n< 1\n< 2\n---\n> x\n",
		},
		{
			name:     "actual empty",
			expected: []string{"only"},
			actual:   []string{},
			want:     "1d0\n< only\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.expected, tt.actual)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDiff_EmptyOnlyWhenEqual(t *testing.T) {
	t.Run("equal sequences produce no diff", func(t *testing.T) {
		lines := []string{"a", "b", "c"}
		if diff := Diff(lines, lines); diff != "" {
			t.Errorf("expected empty diff, got %q", diff)
		}
	})

	t.Run("unequal sequences always produce a diff", func(t *testing.T) {
		if diff := Diff([]string{"a"}, []string{"a", "a"}); diff == "" {
			t.Error("expected non-empty diff")
		}
	})
}

func TestEqual(t *testing.T) {
	if !Equal([]string{"a", "b"}, []string{"a", "b"}) {
		t.Error("expected equal sequences to compare equal")
	}
	if Equal([]string{"a"}, []string{"b"}) {
		t.Error("expected different sequences to compare unequal")
	}
	if Equal([]string{"a"}, []string{"a", "b"}) {
		t.Error("expected different lengths to compare unequal")
	}
}
