package importer

import (
	"testing"
)

func TestParseNameRow(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   nameRow
		wantOK bool
	}{
		{"Three Tab Fields", "Ahmet\tYılmaz\t8/A", nameRow{"Ahmet", "Yılmaz", "8/A"}, true},
		{"Two Tab Fields Merged Name", "Ahmet Yılmaz\t8/A", nameRow{"Ahmet", "Yılmaz", "8/A"}, true},
		{"Whitespace Only", "Ali Veli 8/A", nameRow{"Ali", "Veli", "8/A"}, true},
		{"Multi Word Given Name", "Ahmet Can Yılmaz 8/A", nameRow{"Ahmet Can", "Yılmaz", "8/A"}, true},
		{"No Surname", "Ali 8/A", nameRow{"Ali", "", "8/A"}, true},
		{"Padded Tabs", "  Ahmet \t\t Yılmaz \t 8/A ", nameRow{"Ahmet", "Yılmaz", "8/A"}, true},
		{"Single Token", "Ahmet", nameRow{}, false},
		{"Empty", "   ", nameRow{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseNameRow(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("parseNameRow(%q) ok = %v, expected %v", tt.line, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("parseNameRow(%q) = %+v, expected %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseResultRow(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   resultRow
		wantOK bool
	}{
		{
			"Four Tab Fields",
			"LGS Deneme 1\tAhmet Yılmaz\t8\t2",
			resultRow{Exam: "LGS Deneme 1", Student: "Ahmet Yılmaz", Correct: "8", Incorrect: "2"},
			true,
		},
		{
			"Three Tab Fields Merged",
			"LGS Deneme 1 Ahmet Yılmaz\t8\t2",
			resultRow{Merged: "LGS Deneme 1 Ahmet Yılmaz", Correct: "8", Incorrect: "2"},
			true,
		},
		{
			"Whitespace Fallback",
			"LGS Deneme 1 Ahmet Yılmaz 8 2",
			resultRow{Merged: "LGS Deneme 1 Ahmet Yılmaz", Correct: "8", Incorrect: "2"},
			true,
		},
		{
			"Tab Count Below Minimum Falls Back",
			"LGS Deneme 1\t8",
			resultRow{Merged: "LGS Deneme", Correct: "1", Incorrect: "8"},
			true,
		},
		{"Too Few Tokens", "Ahmet 8 2", resultRow{}, false},
		{"Empty", "", resultRow{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseResultRow(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("parseResultRow(%q) ok = %v, expected %v", tt.line, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("parseResultRow(%q) = %+v, expected %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	got := splitLines("a\r\n\r\n b \nc\n\n")
	want := []string{"a", " b ", "c"}
	if len(got) != len(want) {
		t.Fatalf("splitLines returned %d lines, expected %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, expected %q", i, got[i], want[i])
		}
	}
}
