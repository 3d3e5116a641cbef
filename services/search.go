package services

import (
	"sort"
	"strings"
	"sync"

	"travelmore/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// ScoredStay pairs a stay with its relevance score for a free-text query.
type ScoredStay struct {
	Stay  models.Stay
	Score int
}

// NormalizeQuery strips accents and case so "Côte d'Azur" matches "cote".
func NormalizeQuery(input string) string {
	input = norm.NFC.String(strings.TrimSpace(input))
	return strings.ToLower(unidecode.Unidecode(input))
}

// NewMatcher builds a closestmatch index over the given keywords.
func NewMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Similarity is 1 - normalized levenshtein distance between two strings.
func Similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// UniqueCountries collects the distinct normalized country names for the
// country matcher.
func UniqueCountries(destinations []models.Destination) []string {
	seen := make(map[string]bool)
	for _, destination := range destinations {
		if destination.Country != "" {
			seen[NormalizeQuery(destination.Country)] = true
		}
	}

	countries := make([]string, 0, len(seen))
	for country := range seen {
		countries = append(countries, country)
	}
	return countries
}

func scoreStay(query string, stay models.Stay, cmCountry *closestmatch.ClosestMatch) int {
	score := 0

	name := NormalizeQuery(stay.Name)
	if strings.Contains(name, query) {
		score += 20
	} else if Similarity(query, name) > 0.7 {
		score += 12
	}

	if cmCountry != nil && stay.Destination.Country != "" &&
		cmCountry.Closest(query) == NormalizeQuery(stay.Destination.Country) {
		score += 13
	}

	destinationName := NormalizeQuery(stay.Destination.Name)
	if destinationName != "" && strings.Contains(query, destinationName) {
		score += 10
	}

	for _, amenity := range stay.Amenities {
		if Similarity(query, NormalizeQuery(amenity.Name)) > 0.7 ||
			strings.Contains(query, NormalizeQuery(amenity.Name)) {
			score += 4
		}
	}

	return score
}

// SearchStays scores all stays against a free-text query and returns them
// best first. Scoring fans out per stay; order is restored by the sort.
func SearchStays(query string, stays []models.Stay, destinations []models.Destination) []ScoredStay {
	normalizedQuery := NormalizeQuery(query)
	cmCountry := NewMatcher(UniqueCountries(destinations))

	scoreCh := make(chan ScoredStay, len(stays))
	var wg sync.WaitGroup

	for _, stay := range stays {
		wg.Add(1)
		go func(stay models.Stay) {
			defer wg.Done()
			score := scoreStay(normalizedQuery, stay, cmCountry)
			if score > 0 {
				scoreCh <- ScoredStay{Stay: stay, Score: score}
			}
		}(stay)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []ScoredStay
	for scoredStay := range scoreCh {
		scored = append(scored, scoredStay)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
