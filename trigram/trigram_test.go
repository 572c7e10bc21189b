package trigram

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		val  string
		want []string
	}{
		{
			name: "splits a word into overlapping windows",
			val:  "trigram",
			want: []string{"tri", "rig", "igr", "gra", "ram"},
		},
		{
			name: "exactly three characters",
			val:  "abc",
			want: []string{"abc"},
		},
		{
			name: "windows over characters not bytes",
			val:  "абвгд",
			want: []string{"абв", "бвг", "вгд"},
		},
		{
			name: "exactly three multi-byte characters",
			val:  "абв",
			want: []string{"абв"},
		},
		{
			name: "two multi-byte characters",
			val:  "аб",
			want: nil,
		},
		{
			name: "shorter than three characters",
			val:  "ab",
			want: nil,
		},
		{
			name: "empty string",
			val:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.val)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.val, diff)
			}
		})
	}
}

func TestSet(t *testing.T) {
	set := Set("aaaa")
	if len(set) != 1 {
		t.Fatalf("Set(%q) has %d entries, want 1", "aaaa", len(set))
	}
	if _, ok := set["aaa"]; !ok {
		t.Errorf("Set(%q) missing %q", "aaaa", "aaa")
	}

	if Set("ab") != nil {
		t.Errorf("Set(%q) = %v, want nil", "ab", Set("ab"))
	}
}
