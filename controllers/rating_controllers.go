package controllers

import (
	"log"

	"travelmore/config"
	"travelmore/dto"
	"travelmore/models"
	"travelmore/response"
	"travelmore/services"
	"travelmore/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func findRatingStar(value int) (models.RatingStar, error) {
	var star models.RatingStar
	err := config.DB.Where("value = ?", value).First(&star).Error
	return star, err
}

// RateStay records or replaces the authenticated user's star rating of a
// stay and refreshes the cached average.
func RateStay(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.RateStayRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := validator.ValidateRatingStars(input.Star); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var stay models.Stay
	if err := config.DB.First(&stay, input.StayID).Error; err != nil {
		response.NotFound(c)
		return
	}

	star, err := findRatingStar(input.Star)
	if err != nil {
		response.ServerError(c)
		return
	}

	var rating models.RatingStay
	err = config.DB.Where("user_id = ? AND stay_id = ?", userID, input.StayID).First(&rating).Error
	switch {
	case err == nil:
		rating.StarID = star.ID
		if err := config.DB.Save(&rating).Error; err != nil {
			response.ServerError(c)
			return
		}
	case err == gorm.ErrRecordNotFound:
		rating = models.RatingStay{UserID: userID, StayID: input.StayID, StarID: star.ID}
		if err := config.DB.Create(&rating).Error; err != nil {
			response.ServerError(c)
			return
		}
	default:
		response.ServerError(c)
		return
	}

	if err := services.UpdateStayRating(input.StayID); err != nil {
		log.Printf("Failed to refresh stay %d rating: %v", input.StayID, err)
	}
	invalidateStaysCache()

	config.DB.Preload("User").First(&rating, rating.ID)
	response.Success(c, dto.RatingResponse{
		ID:   rating.ID,
		Star: star.Value,
		User: convertToUserInfo(rating.User),
	})
}

// RateDestination records or replaces the authenticated user's star rating
// of a destination and refreshes the cached average.
func RateDestination(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.RateDestinationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := validator.ValidateRatingStars(input.Star); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var destination models.Destination
	if err := config.DB.First(&destination, input.DestinationID).Error; err != nil {
		response.NotFound(c)
		return
	}

	star, err := findRatingStar(input.Star)
	if err != nil {
		response.ServerError(c)
		return
	}

	var rating models.RatingDestination
	err = config.DB.Where("user_id = ? AND destination_id = ?", userID, input.DestinationID).First(&rating).Error
	switch {
	case err == nil:
		rating.StarID = star.ID
		if err := config.DB.Save(&rating).Error; err != nil {
			response.ServerError(c)
			return
		}
	case err == gorm.ErrRecordNotFound:
		rating = models.RatingDestination{UserID: userID, DestinationID: input.DestinationID, StarID: star.ID}
		if err := config.DB.Create(&rating).Error; err != nil {
			response.ServerError(c)
			return
		}
	default:
		response.ServerError(c)
		return
	}

	if err := services.UpdateDestinationRating(input.DestinationID); err != nil {
		log.Printf("Failed to refresh destination %d rating: %v", input.DestinationID, err)
	}
	invalidateDestinationsCache()

	config.DB.Preload("User").First(&rating, rating.ID)
	response.Success(c, dto.RatingResponse{
		ID:   rating.ID,
		Star: star.Value,
		User: convertToUserInfo(rating.User),
	})
}
