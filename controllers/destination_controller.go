package controllers

import (
	"log"
	"strconv"
	"strings"
	"time"

	"travelmore/config"
	"travelmore/dto"
	"travelmore/models"
	"travelmore/response"
	"travelmore/services"

	"github.com/gin-gonic/gin"
)

const destinationsCacheKey = "destinations:all"

func convertToDestinationListResponse(destination models.Destination) dto.DestinationListResponse {
	return dto.DestinationListResponse{
		ID:        destination.ID,
		Name:      destination.Name,
		Country:   destination.Country,
		Image:     destination.Image,
		AvgRating: destination.AvgRating,
	}
}

// GetAllDestinations lists destinations with optional name/country filters.
// The unfiltered annotated list is served from Redis when warm.
func GetAllDestinations(c *gin.Context) {
	page, limit := parsePagination(c)
	nameFilter := strings.ToLower(strings.TrimSpace(c.Query("name")))
	countryFilter := strings.ToLower(strings.TrimSpace(c.Query("country")))

	var allDestinations []dto.DestinationListResponse

	rdb := config.RedisClient
	if rdb != nil {
		if err := services.GetFromRedis(config.Ctx, rdb, destinationsCacheKey, &allDestinations); err != nil {
			log.Printf("Failed to read destinations from Redis: %v", err)
		}
	}

	if len(allDestinations) == 0 {
		var destinations []models.Destination
		if err := config.DB.Find(&destinations).Error; err != nil {
			response.ServerError(c)
			return
		}

		for _, destination := range destinations {
			row := convertToDestinationListResponse(destination)

			var reviewsCount int64
			config.DB.Model(&models.ReviewDestination{}).
				Where("destination_id = ?", destination.ID).
				Count(&reviewsCount)
			row.ReviewsCount = int(reviewsCount)

			allDestinations = append(allDestinations, row)
		}

		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, destinationsCacheKey, allDestinations, 10*time.Minute); err != nil {
				log.Printf("Failed to cache destinations: %v", err)
			}
		}
	}

	filtered := make([]dto.DestinationListResponse, 0, len(allDestinations))
	for _, destination := range allDestinations {
		if nameFilter != "" && !strings.Contains(strings.ToLower(destination.Name), nameFilter) {
			continue
		}
		if countryFilter != "" && !strings.Contains(strings.ToLower(destination.Country), countryFilter) {
			continue
		}
		filtered = append(filtered, destination)
	}

	response.SuccessWithPagination(c, paginate(filtered, page, limit), page, limit, len(filtered))
}

// GetDestinationByID returns the full destination detail with stays,
// reviews and the cached average rating.
func GetDestinationByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid destination id")
		return
	}

	var destination models.Destination
	if err := config.DB.
		Preload("Stays").
		Preload("Stays.Destination").
		First(&destination, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var reviews []models.ReviewDestination
	if err := config.DB.
		Preload("User").
		Where("destination_id = ?", destination.ID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	detail := dto.DestinationDetailResponse{
		ID:          destination.ID,
		Name:        destination.Name,
		Country:     destination.Country,
		Image:       destination.Image,
		Description: destination.Description,
		URLMap:      destination.URLMap,
		AvgRating:   destination.AvgRating,
		CreatedAt:   destination.CreatedAt,
	}

	for _, stay := range destination.Stays {
		detail.Stays = append(detail.Stays, convertToStayListResponse(stay))
	}
	for _, review := range reviews {
		detail.ReviewDestinations = append(detail.ReviewDestinations, convertToDestinationReviewResponse(review))
	}

	response.Success(c, detail)
}

// CreateDestination adds a destination to the catalog. Admin only.
func CreateDestination(c *gin.Context) {
	var input dto.CreateDestinationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	destination := models.Destination{
		Name:        input.Name,
		Country:     input.Country,
		Description: input.Description,
		URLMap:      input.URLMap,
	}

	if err := config.DB.Create(&destination).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateDestinationsCache()
	response.Created(c, destination)
}

// UpdateDestination edits an existing destination. Admin only.
func UpdateDestination(c *gin.Context) {
	var input dto.UpdateDestinationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var destination models.Destination
	if err := config.DB.First(&destination, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Name != "" {
		destination.Name = input.Name
	}
	if input.Country != "" {
		destination.Country = input.Country
	}
	if input.Description != "" {
		destination.Description = input.Description
	}
	if input.URLMap != "" {
		destination.URLMap = input.URLMap
	}

	if err := config.DB.Save(&destination).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateDestinationsCache()
	response.Success(c, destination)
}

// DeleteDestination removes a destination. Admin only.
func DeleteDestination(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid destination id")
		return
	}

	if err := config.DB.Delete(&models.Destination{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateDestinationsCache()
	response.Success(c, gin.H{"id": id})
}

// UploadDestinationImage stores the uploaded file on Cloudinary and saves
// the returned URL on the destination.
func UploadDestinationImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid destination id")
		return
	}

	var destination models.Destination
	if err := config.DB.First(&destination, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file")
		return
	}
	defer file.Close()

	url, err := uploadImage(file, "destinations")
	if err != nil {
		response.ServerError(c)
		return
	}

	destination.Image = url
	if err := config.DB.Save(&destination).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateDestinationsCache()
	response.Success(c, gin.H{"image": url})
}

func invalidateDestinationsCache() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, destinationsCacheKey); err != nil {
		log.Printf("Failed to invalidate destinations cache: %v", err)
	}
}
