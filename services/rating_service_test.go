package services

import (
	"testing"

	"travelmore/config"
	"travelmore/models"

	"gorm.io/gorm"
)

func setupRatingDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := setupTestDB(t)
	if err := db.AutoMigrate(&models.RatingStar{}, &models.RatingStay{}, &models.RatingDestination{}); err != nil {
		t.Fatalf("failed to migrate rating tables: %v", err)
	}

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })

	return db
}

func seedStars(t *testing.T, db *gorm.DB) map[int]uint {
	t.Helper()

	stars := make(map[int]uint)
	for value := 1; value <= 5; value++ {
		star := models.RatingStar{Value: value}
		if err := db.Create(&star).Error; err != nil {
			t.Fatalf("failed to seed star %d: %v", value, err)
		}
		stars[value] = star.ID
	}
	return stars
}

func TestUpdateStayRating_IntegerAverage(t *testing.T) {
	db := setupRatingDB(t)
	stars := seedStars(t, db)

	stay := models.Stay{Name: "rated hotel"}
	if err := db.Create(&stay).Error; err != nil {
		t.Fatalf("failed to create stay: %v", err)
	}

	// 5 + 4 + 4 = 13, integer mean 4.
	for i, value := range []int{5, 4, 4} {
		rating := models.RatingStay{UserID: uint(i + 1), StayID: stay.ID, StarID: stars[value]}
		if err := db.Create(&rating).Error; err != nil {
			t.Fatalf("failed to create rating: %v", err)
		}
	}

	if err := UpdateStayRating(stay.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var fresh models.Stay
	if err := db.First(&fresh, stay.ID).Error; err != nil {
		t.Fatalf("failed to reload stay: %v", err)
	}
	if fresh.AvgRating != 4 {
		t.Fatalf("expected avg 4, got %d", fresh.AvgRating)
	}
}

func TestUpdateStayRating_NoRatings(t *testing.T) {
	db := setupRatingDB(t)

	stay := models.Stay{Name: "unrated hotel", AvgRating: 3}
	if err := db.Create(&stay).Error; err != nil {
		t.Fatalf("failed to create stay: %v", err)
	}

	if err := UpdateStayRating(stay.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var fresh models.Stay
	if err := db.First(&fresh, stay.ID).Error; err != nil {
		t.Fatalf("failed to reload stay: %v", err)
	}
	if fresh.AvgRating != 0 {
		t.Fatalf("expected avg reset to 0, got %d", fresh.AvgRating)
	}
}

func TestUpdateDestinationRating(t *testing.T) {
	db := setupRatingDB(t)
	stars := seedStars(t, db)

	destination := models.Destination{Name: "rated city", Country: "France"}
	if err := db.Create(&destination).Error; err != nil {
		t.Fatalf("failed to create destination: %v", err)
	}

	// 2 + 5 = 7, integer mean 3.
	for i, value := range []int{2, 5} {
		rating := models.RatingDestination{UserID: uint(i + 1), DestinationID: destination.ID, StarID: stars[value]}
		if err := db.Create(&rating).Error; err != nil {
			t.Fatalf("failed to create rating: %v", err)
		}
	}

	if err := UpdateDestinationRating(destination.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var fresh models.Destination
	if err := db.First(&fresh, destination.ID).Error; err != nil {
		t.Fatalf("failed to reload destination: %v", err)
	}
	if fresh.AvgRating != 3 {
		t.Fatalf("expected avg 3, got %d", fresh.AvgRating)
	}
}
