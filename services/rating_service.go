package services

import (
	"travelmore/config"
	"travelmore/models"
)

// UpdateStayRating re-averages a stay's star ratings into its cached
// avg_rating column. Mirrors the list-endpoint annotation: integer cast of
// the mean.
func UpdateStayRating(stayID uint) error {
	var ratings []models.RatingStay
	if err := config.DB.Preload("Star").Where("stay_id = ?", stayID).Find(&ratings).Error; err != nil {
		return err
	}

	var totalStars int
	var totalCount int
	for _, rating := range ratings {
		totalStars += rating.Star.Value
		totalCount++
	}

	average := 0
	if totalCount > 0 {
		average = totalStars / totalCount
	}

	if err := config.DB.Model(&models.Stay{}).
		Where("id = ?", stayID).
		Update("avg_rating", average).Error; err != nil {
		return err
	}

	return nil
}

// UpdateDestinationRating re-averages a destination's star ratings.
func UpdateDestinationRating(destinationID uint) error {
	var ratings []models.RatingDestination
	if err := config.DB.Preload("Star").Where("destination_id = ?", destinationID).Find(&ratings).Error; err != nil {
		return err
	}

	var totalStars int
	var totalCount int
	for _, rating := range ratings {
		totalStars += rating.Star.Value
		totalCount++
	}

	average := 0
	if totalCount > 0 {
		average = totalStars / totalCount
	}

	if err := config.DB.Model(&models.Destination{}).
		Where("id = ?", destinationID).
		Update("avg_rating", average).Error; err != nil {
		return err
	}

	return nil
}
