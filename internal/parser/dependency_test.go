package parser

import "testing"

func TestFormatVersion(t *testing.T) {
	tests := []struct{ in, want string }{
		{"~>1.0", "~> 1.0"},
		{">=1.5", ">= 1.5"},
		{"1.0", "1.0"},
		{">= 2.0", ">= 2.0"},
		{"=1.0", "= 1.0"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := formatVersion(tt.in); got != tt.want {
			t.Errorf("formatVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConcatLabels(t *testing.T) {
	got := concatLabels([]string{"a"}, []string{"b", "c"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestConcatLabelsEmptyInputsYieldNonNilEmptySlice(t *testing.T) {
	got := concatLabels(nil, nil)
	if got == nil {
		t.Fatal("expected a non-nil empty slice")
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}
