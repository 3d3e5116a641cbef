package controllers

import (
	"strconv"

	"travelmore/config"
	"travelmore/constants"
	"travelmore/dto"
	"travelmore/models"
	"travelmore/response"

	"github.com/gin-gonic/gin"
)

// GetStayReviews lists a stay's reviews, newest first.
func GetStayReviews(c *gin.Context) {
	stayID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid stay id")
		return
	}

	page, limit := parsePagination(c)

	var reviews []models.ReviewStay
	if err := config.DB.
		Preload("User").
		Where("stay_id = ?", stayID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	rows := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		rows = append(rows, convertToStayReviewResponse(review))
	}

	response.SuccessWithPagination(c, paginate(rows, page, limit), page, limit, len(rows))
}

// CreateStayReview adds the authenticated user's review of a stay.
func CreateStayReview(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.CreateReviewStayRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var stay models.Stay
	if err := config.DB.First(&stay, input.StayID).Error; err != nil {
		response.NotFound(c)
		return
	}

	review := models.ReviewStay{
		UserID: userID,
		StayID: input.StayID,
		Text:   input.Text,
	}

	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	config.DB.Preload("User").First(&review, review.ID)
	invalidateStaysCache()

	response.Created(c, convertToStayReviewResponse(review))
}

// DeleteStayReview removes the author's own review; admins may remove any.
func DeleteStayReview(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review id")
		return
	}

	var review models.ReviewStay
	if err := config.DB.First(&review, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if review.UserID != userID && role != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateStaysCache()
	response.Success(c, gin.H{"id": id})
}

// GetDestinationReviews lists a destination's reviews, newest first.
func GetDestinationReviews(c *gin.Context) {
	destinationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid destination id")
		return
	}

	page, limit := parsePagination(c)

	var reviews []models.ReviewDestination
	if err := config.DB.
		Preload("User").
		Where("destination_id = ?", destinationID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	rows := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		rows = append(rows, convertToDestinationReviewResponse(review))
	}

	response.SuccessWithPagination(c, paginate(rows, page, limit), page, limit, len(rows))
}

// CreateDestinationReview adds the authenticated user's review of a
// destination.
func CreateDestinationReview(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.CreateReviewDestinationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var destination models.Destination
	if err := config.DB.First(&destination, input.DestinationID).Error; err != nil {
		response.NotFound(c)
		return
	}

	review := models.ReviewDestination{
		UserID:        userID,
		DestinationID: input.DestinationID,
		Text:          input.Text,
	}

	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	config.DB.Preload("User").First(&review, review.ID)
	invalidateDestinationsCache()

	response.Created(c, convertToDestinationReviewResponse(review))
}

// DeleteDestinationReview removes the author's own review; admins may
// remove any.
func DeleteDestinationReview(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review id")
		return
	}

	var review models.ReviewDestination
	if err := config.DB.First(&review, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if review.UserID != userID && role != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateDestinationsCache()
	response.Success(c, gin.H{"id": id})
}
