package service

import (
	"testing"
)

func TestParseBedrooms(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "plain number", text: "3", want: 3},
		{name: "plus suffix", text: "4+", want: 4},
		{name: "leading number with words", text: "3 bedrooms", want: 3},
		{name: "no number defaults to one", text: "a few", want: 1},
		{name: "empty defaults to one", text: "", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseBedrooms(tt.text); got != tt.want {
				t.Errorf("parseBedrooms(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseBudget(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{name: "currency and separators", text: "£1,200/month", want: intPtr(1200)},
		{name: "plain number", text: "1500", want: intPtr(1500)},
		{name: "no digits means no constraint", text: "no limit", want: nil},
		{name: "empty means no constraint", text: "", want: nil},
		{name: "scattered digits concatenate", text: "1k5", want: intPtr(15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseBudget(tt.text)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("parseBudget(%q) = %v, want %v", tt.text, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("parseBudget(%q) = %d, want %d", tt.text, *got, *tt.want)
			}
		})
	}
}

func TestParseFurnished(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *bool
	}{
		{name: "furnished", text: "furnished", want: boolPtr(true)},
		{name: "unfurnished wins over substring", text: "Unfurnished please", want: boolPtr(false)},
		{name: "mixed case furnished", text: "FURNISHED", want: boolPtr(true)},
		{name: "no preference", text: "none", want: nil},
		{name: "doesn't matter", text: "doesn't matter", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFurnished(tt.text)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("parseFurnished(%q) = %v, want %v", tt.text, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("parseFurnished(%q) = %v, want %v", tt.text, *got, *tt.want)
			}
		})
	}
}

func TestParseYes(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{text: "yes", want: true},
		{text: "Yes please", want: true},
		{text: "no", want: false},
		{text: "maybe", want: false},
	}

	for _, tt := range tests {
		if got := parseYes(tt.text); got != tt.want {
			t.Errorf("parseYes(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
