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
	"gorm.io/gorm"
)

const staysCacheKey = "stays:all"

func convertToStayListResponse(stay models.Stay) dto.StayListResponse {
	return dto.StayListResponse{
		ID:                 stay.ID,
		Name:               stay.Name,
		NameDestination:    stay.Destination.Name,
		CountryDestination: stay.Destination.Country,
		Image:              stay.Image,
		AvgRating:          stay.AvgRating,
	}
}

func loadStaysForListing() ([]models.Stay, error) {
	var stays []models.Stay
	err := config.DB.
		Preload("Destination").
		Preload("Amenities").
		Find(&stays).Error
	return stays, err
}

// GetAllStays lists stays. With ?search= the fuzzy matcher orders results
// by relevance; otherwise the annotated list is served from Redis when warm.
func GetAllStays(c *gin.Context) {
	page, limit := parsePagination(c)
	search := strings.TrimSpace(c.Query("search"))

	if search != "" {
		stays, err := loadStaysForListing()
		if err != nil {
			response.ServerError(c)
			return
		}

		var destinations []models.Destination
		if err := config.DB.Find(&destinations).Error; err != nil {
			response.ServerError(c)
			return
		}

		scored := services.SearchStays(search, stays, destinations)

		rows := make([]dto.StayListResponse, 0, len(scored))
		for _, match := range scored {
			rows = append(rows, convertToStayListResponse(match.Stay))
		}

		response.SuccessWithPagination(c, paginate(rows, page, limit), page, limit, len(rows))
		return
	}

	nameFilter := strings.ToLower(strings.TrimSpace(c.Query("name")))

	var allStays []dto.StayListResponse

	rdb := config.RedisClient
	if rdb != nil {
		if err := services.GetFromRedis(config.Ctx, rdb, staysCacheKey, &allStays); err != nil {
			log.Printf("Failed to read stays from Redis: %v", err)
		}
	}

	if len(allStays) == 0 {
		stays, err := loadStaysForListing()
		if err != nil {
			response.ServerError(c)
			return
		}

		for _, stay := range stays {
			row := convertToStayListResponse(stay)

			var reviewsCount int64
			config.DB.Model(&models.ReviewStay{}).
				Where("stay_id = ?", stay.ID).
				Count(&reviewsCount)
			row.ReviewsCount = int(reviewsCount)

			allStays = append(allStays, row)
		}

		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, staysCacheKey, allStays, 10*time.Minute); err != nil {
				log.Printf("Failed to cache stays: %v", err)
			}
		}
	}

	filtered := allStays
	if nameFilter != "" {
		filtered = make([]dto.StayListResponse, 0, len(allStays))
		for _, stay := range allStays {
			if strings.Contains(strings.ToLower(stay.Name), nameFilter) {
				filtered = append(filtered, stay)
			}
		}
	}

	response.SuccessWithPagination(c, paginate(filtered, page, limit), page, limit, len(filtered))
}

// GetStayByID returns the full stay detail: rooms, frames, amenities,
// reviews and the cached average rating.
func GetStayByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid stay id")
		return
	}

	var stay models.Stay
	if err := config.DB.
		Preload("Destination").
		Preload("Amenities").
		Preload("Rooms").
		Preload("Rooms.Amenities").
		Preload("StayFrames").
		Preload("ReviewStays", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Preload("User")
		}).
		First(&stay, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	detail := dto.StayDetailResponse{
		ID:          stay.ID,
		Name:        stay.Name,
		Country:     stay.Destination.Country,
		Address:     stay.Address,
		Image:       stay.Image,
		Description: stay.Description,
		URLMap:      stay.URLMap,
		AvgRating:   stay.AvgRating,
		CreatedAt:   stay.CreatedAt,
	}

	for _, frame := range stay.StayFrames {
		detail.StayFrames = append(detail.StayFrames, dto.FrameResponse{
			ID:    frame.ID,
			Title: frame.Title,
			Image: frame.Image,
		})
	}
	for _, room := range stay.Rooms {
		detail.Rooms = append(detail.Rooms, convertToAccommodationListResponse(room))
	}
	for _, amenity := range stay.Amenities {
		detail.Amenities = append(detail.Amenities, amenity.Name)
	}
	for _, review := range stay.ReviewStays {
		detail.ReviewStays = append(detail.ReviewStays, convertToStayReviewResponse(review))
	}

	response.Success(c, detail)
}

// CreateStay adds a stay under a destination. Landlord or admin only.
func CreateStay(c *gin.Context) {
	var input dto.CreateStayRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var destination models.Destination
	if err := config.DB.First(&destination, input.DestinationID).Error; err != nil {
		response.BadRequest(c, "Destination does not exist")
		return
	}

	stay := models.Stay{
		Name:          input.Name,
		DestinationID: input.DestinationID,
		Address:       input.Address,
		Description:   input.Description,
		URLMap:        input.URLMap,
	}

	if len(input.AmenityIDs) > 0 {
		var amenities []models.Amenity
		if err := config.DB.Find(&amenities, input.AmenityIDs).Error; err != nil {
			response.ServerError(c)
			return
		}
		stay.Amenities = amenities
	}

	if err := config.DB.Create(&stay).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateStaysCache()
	response.Created(c, stay)
}

// UpdateStay edits an existing stay. Landlord or admin only.
func UpdateStay(c *gin.Context) {
	var input dto.UpdateStayRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var stay models.Stay
	if err := config.DB.First(&stay, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Name != "" {
		stay.Name = input.Name
	}
	if input.Address != "" {
		stay.Address = input.Address
	}
	if input.Description != "" {
		stay.Description = input.Description
	}
	if input.URLMap != "" {
		stay.URLMap = input.URLMap
	}

	if err := config.DB.Save(&stay).Error; err != nil {
		response.ServerError(c)
		return
	}

	if len(input.AmenityIDs) > 0 {
		var amenities []models.Amenity
		if err := config.DB.Find(&amenities, input.AmenityIDs).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := config.DB.Model(&stay).Association("Amenities").Replace(amenities); err != nil {
			response.ServerError(c)
			return
		}
	}

	invalidateStaysCache()
	response.Success(c, stay)
}

// DeleteStay removes a stay; its bookings go with it. Admin only.
func DeleteStay(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid stay id")
		return
	}

	if err := config.DB.Select("Bookings").Delete(&models.Stay{ID: uint(id)}).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateStaysCache()
	response.Success(c, gin.H{"id": id})
}

// CreateStayFrame attaches a gallery image to a stay.
func CreateStayFrame(c *gin.Context) {
	var input dto.CreateFrameRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var stay models.Stay
	if err := config.DB.First(&stay, input.OwnerID).Error; err != nil {
		response.NotFound(c)
		return
	}

	frame := models.StayFrame{
		StayID: stay.ID,
		Title:  input.Title,
		Image:  input.Image,
	}

	if err := config.DB.Create(&frame).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, dto.FrameResponse{ID: frame.ID, Title: frame.Title, Image: frame.Image})
}

// UploadStayImage stores the uploaded file on Cloudinary and saves the URL
// as the stay's cover image.
func UploadStayImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid stay id")
		return
	}

	var stay models.Stay
	if err := config.DB.First(&stay, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file")
		return
	}
	defer file.Close()

	url, err := uploadImage(file, "stays")
	if err != nil {
		response.ServerError(c)
		return
	}

	stay.Image = url
	if err := config.DB.Save(&stay).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateStaysCache()
	response.Success(c, gin.H{"image": url})
}

func invalidateStaysCache() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, staysCacheKey); err != nil {
		log.Printf("Failed to invalidate stays cache: %v", err)
	}
}
