package catalog

import (
	"testing"
)

func testProviders() []Provider {
	return []Provider{
		{Category: "Bathroom and Toilet", Name: "AquaFix Plumbing", Rating: 4.8},
		{Category: "Bathroom and Toilet", Name: "South London Bathrooms", Rating: 4.6},
		{Category: "Heating and boiler", Name: "WarmHome Gas Services", Rating: 4.9},
		{Category: "Electricity", Name: "Volt & Spark Electrical", Rating: 4.7},
		{Category: "Roof", Name: "Apex Roofcare", Rating: 4.5},
		{Category: "Pests/Vermin", Name: "ClearOut Pest Solutions", Rating: 4.6},
		{Category: "Other", Name: "FixItAll Handyman Services", Rating: 4.3},
	}
}

func TestFindMatchingExactCategory(t *testing.T) {
	d := NewProviderDirectory(testProviders())

	got := d.FindMatching("Bathroom and Toilet")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "AquaFix Plumbing" || got[1].Name != "South London Bathrooms" {
		t.Errorf("unexpected providers: %v", got)
	}
}

func TestFindMatchingCaseInsensitive(t *testing.T) {
	d := NewProviderDirectory(testProviders())

	got := d.FindMatching("heating AND BOILER")
	if len(got) != 1 || got[0].Name != "WarmHome Gas Services" {
		t.Errorf("unexpected providers: %v", got)
	}
}

func TestFindMatchingFallbackFirstFive(t *testing.T) {
	d := NewProviderDirectory(testProviders())

	got := d.FindMatching("Unknown Category")
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	want := []string{
		"AquaFix Plumbing",
		"South London Bathrooms",
		"WarmHome Gas Services",
		"Volt & Spark Electrical",
		"Apex Roofcare",
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("fallback[%d] = %s, want %s", i, got[i].Name, name)
		}
	}
}

func TestFindMatchingFallbackSmallCatalog(t *testing.T) {
	d := NewProviderDirectory(testProviders()[:3])

	got := d.FindMatching("Unknown Category")
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestFindMatchingEmptyCatalog(t *testing.T) {
	d := NewProviderDirectory(nil)

	if got := d.FindMatching("Roof"); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
