package services

import (
	"testing"

	"travelmore/models"
)

func TestNormalizeQuery(t *testing.T) {
	if got := NormalizeQuery("  Côte d'Azur  "); got != "cote d'azur" {
		t.Fatalf("expected cote d'azur, got %q", got)
	}
	if got := NormalizeQuery("HÀ NỘI"); got != "ha noi" {
		t.Fatalf("expected ha noi, got %q", got)
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("hotel", "hotel"); got != 1.0 {
		t.Fatalf("identical strings should score 1.0, got %f", got)
	}
	if got := Similarity("", ""); got != 1.0 {
		t.Fatalf("empty strings should score 1.0, got %f", got)
	}
	if got := Similarity("hotel", "hôtel"); got <= 0 {
		t.Fatalf("near match should score above 0, got %f", got)
	}
	if a, b := Similarity("grand hotel", "grand hote"), Similarity("grand hotel", "xyz"); a <= b {
		t.Fatalf("closer string should score higher: %f vs %f", a, b)
	}
}

func TestUniqueCountries(t *testing.T) {
	destinations := []models.Destination{
		{Name: "Paris", Country: "France"},
		{Name: "Nice", Country: "France"},
		{Name: "Rome", Country: "Italy"},
		{Name: "Nowhere", Country: ""},
	}

	countries := UniqueCountries(destinations)
	if len(countries) != 2 {
		t.Fatalf("expected 2 distinct countries, got %v", countries)
	}
}

func TestSearchStays_RanksNameMatchFirst(t *testing.T) {
	destinations := []models.Destination{
		{ID: 1, Name: "Paris", Country: "France"},
		{ID: 2, Name: "Rome", Country: "Italy"},
	}
	stays := []models.Stay{
		{ID: 1, Name: "Grand Palace", Destination: destinations[0]},
		{ID: 2, Name: "Roman Holiday Inn", Destination: destinations[1]},
		{ID: 3, Name: "Palace of Dreams", Destination: destinations[1]},
	}

	results := SearchStays("palace", stays, destinations)
	if len(results) == 0 {
		t.Fatalf("expected matches for palace")
	}
	for _, result := range results {
		if result.Stay.ID == 2 {
			continue
		}
		if result.Score <= 0 {
			t.Fatalf("matched stay %d has non-positive score", result.Stay.ID)
		}
	}
	if results[0].Score < results[len(results)-1].Score {
		t.Fatalf("results not ordered best first: %v", results)
	}
}

func TestSearchStays_NoMatches(t *testing.T) {
	stays := []models.Stay{
		{ID: 1, Name: "Grand Palace"},
	}

	results := SearchStays("zzzzqqqq", stays, nil)
	if len(results) != 0 {
		t.Fatalf("expected no matches, got %v", results)
	}
}

func TestSearchStays_AccentInsensitive(t *testing.T) {
	destinations := []models.Destination{
		{ID: 1, Name: "Đà Nẵng", Country: "Vietnam"},
	}
	stays := []models.Stay{
		{ID: 1, Name: "Đà Nẵng Riverside", Destination: destinations[0]},
	}

	results := SearchStays("da nang", stays, destinations)
	if len(results) != 1 {
		t.Fatalf("expected accent-insensitive match, got %v", results)
	}
}
