package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"Tags", "x"},
		{"Címkék", "y"},
		{"URL", "z"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	want := []string{
		"Tags    x",
		"Címkék  y",
		"URL     z",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatRightAlign(t *testing.T) {
	got := Format([][]string{{"a", "1"}, {"bbb", "22"}}, []Alignment{AlignRight, AlignRight})
	if got[0] != "  a   1" || got[1] != "bbb  22" {
		t.Fatalf("unexpected right alignment %#v", got)
	}
}

func TestFormatWideRunes(t *testing.T) {
	got := Format([][]string{{"日本", "x"}, {"abcd", "y"}}, nil)
	if got[0] != "日本  x" || got[1] != "abcd  y" {
		t.Fatalf("expected wide runes to count as two columns, got %#v", got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
