package controllers

import (
	"strconv"
	"strings"

	"travelmore/config"
	"travelmore/dto"
	"travelmore/models"
	"travelmore/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func convertToAccommodationListResponse(room models.Accommodation) dto.AccommodationListResponse {
	row := dto.AccommodationListResponse{
		ID:          room.ID,
		Name:        room.Name,
		Stay:        room.Stay.Name,
		TypeRoom:    room.TypeRoom,
		NumberRooms: room.NumberRooms,
		NumberBeds:  room.NumberBeds,
		IsBooked:    room.IsBooked,
		NightPrice:  room.NightPrice,
		Image:       room.Image,
	}
	for _, amenity := range room.Amenities {
		row.Amenities = append(row.Amenities, amenity.Name)
	}
	return row
}

func parseNightPrice(raw *string) (decimal.NullDecimal, error) {
	if raw == nil || *raw == "" {
		return decimal.NullDecimal{}, nil
	}
	value, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(value), nil
}

// GetAllAccommodations lists rooms, optionally filtered by stay.
func GetAllAccommodations(c *gin.Context) {
	page, limit := parsePagination(c)

	query := config.DB.Preload("Stay").Preload("Amenities")
	if stayID := c.Query("stayId"); stayID != "" {
		query = query.Where("stay_id = ?", stayID)
	}
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var rooms []models.Accommodation
	if err := query.Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	rows := make([]dto.AccommodationListResponse, 0, len(rooms))
	for _, room := range rooms {
		rows = append(rows, convertToAccommodationListResponse(room))
	}

	response.SuccessWithPagination(c, paginate(rows, page, limit), page, limit, len(rows))
}

// GetAccommodationByID returns the room detail with amenities and frames.
func GetAccommodationByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Accommodation
	if err := config.DB.
		Preload("Stay").
		Preload("Amenities").
		Preload("RoomFrames").
		First(&room, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	detail := dto.AccommodationDetailResponse{
		ID:          room.ID,
		Name:        room.Name,
		Stay:        room.Stay.Name,
		TypeRoom:    room.TypeRoom,
		NumberRooms: room.NumberRooms,
		NumberBeds:  room.NumberBeds,
		IsBooked:    room.IsBooked,
		NightPrice:  room.NightPrice,
		Image:       room.Image,
	}
	for _, amenity := range room.Amenities {
		detail.Amenities = append(detail.Amenities, dto.AmenityResponse{ID: amenity.ID, Name: amenity.Name})
	}
	for _, frame := range room.RoomFrames {
		detail.RoomFrames = append(detail.RoomFrames, dto.FrameResponse{
			ID:    frame.ID,
			Title: frame.Title,
			Image: frame.Image,
		})
	}

	response.Success(c, detail)
}

// CreateAccommodation adds a room to a stay. Landlord or admin only.
func CreateAccommodation(c *gin.Context) {
	var input dto.CreateAccommodationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var stay models.Stay
	if err := config.DB.First(&stay, input.StayID).Error; err != nil {
		response.BadRequest(c, "Stay does not exist")
		return
	}

	nightPrice, err := parseNightPrice(input.NightPrice)
	if err != nil {
		response.BadRequest(c, "Invalid nightPrice")
		return
	}

	room := models.Accommodation{
		Name:       input.Name,
		StayID:     input.StayID,
		NightPrice: nightPrice,
	}
	if input.TypeRoom != "" {
		room.TypeRoom = input.TypeRoom
		if err := room.ValidateTypeRoom(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}
	if input.NumberRooms != "" {
		room.NumberRooms = input.NumberRooms
	}
	if input.NumberBeds != "" {
		room.NumberBeds = input.NumberBeds
		if err := room.ValidateNumberBeds(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	if len(input.AmenityIDs) > 0 {
		var amenities []models.Amenity
		if err := config.DB.Find(&amenities, input.AmenityIDs).Error; err != nil {
			response.ServerError(c)
			return
		}
		room.Amenities = amenities
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.Conflict(c, "Room name already in use")
		return
	}

	invalidateStaysCache()
	response.Created(c, room)
}

// UpdateAccommodation edits an existing room. Landlord or admin only.
func UpdateAccommodation(c *gin.Context) {
	var input dto.UpdateAccommodationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var room models.Accommodation
	if err := config.DB.First(&room, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Name != "" {
		room.Name = input.Name
	}
	if input.TypeRoom != "" {
		room.TypeRoom = input.TypeRoom
		if err := room.ValidateTypeRoom(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}
	if input.NumberRooms != "" {
		room.NumberRooms = input.NumberRooms
	}
	if input.NumberBeds != "" {
		room.NumberBeds = input.NumberBeds
		if err := room.ValidateNumberBeds(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}
	if input.NightPrice != nil {
		nightPrice, err := parseNightPrice(input.NightPrice)
		if err != nil {
			response.BadRequest(c, "Invalid nightPrice")
			return
		}
		room.NightPrice = nightPrice
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	if len(input.AmenityIDs) > 0 {
		var amenities []models.Amenity
		if err := config.DB.Find(&amenities, input.AmenityIDs).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := config.DB.Model(&room).Association("Amenities").Replace(amenities); err != nil {
			response.ServerError(c)
			return
		}
	}

	invalidateStaysCache()
	response.Success(c, room)
}

// DeleteAccommodation removes a room and its bookings. Admin only.
func DeleteAccommodation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	if err := config.DB.Select("Bookings").Delete(&models.Accommodation{ID: uint(id)}).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateStaysCache()
	response.Success(c, gin.H{"id": id})
}

// CreateAccommodationFrame attaches a gallery image to a room.
func CreateAccommodationFrame(c *gin.Context) {
	var input dto.CreateFrameRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var room models.Accommodation
	if err := config.DB.First(&room, input.OwnerID).Error; err != nil {
		response.NotFound(c)
		return
	}

	frame := models.AccommodationFrame{
		AccommodationID: room.ID,
		Title:           input.Title,
		Image:           input.Image,
	}

	if err := config.DB.Create(&frame).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, dto.FrameResponse{ID: frame.ID, Title: frame.Title, Image: frame.Image})
}

// UploadAccommodationImage stores the uploaded file on Cloudinary and
// saves the URL as the room's cover image.
func UploadAccommodationImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Accommodation
	if err := config.DB.First(&room, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file")
		return
	}
	defer file.Close()

	url, err := uploadImage(file, "rooms")
	if err != nil {
		response.ServerError(c)
		return
	}

	room.Image = url
	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"image": url})
}

// GetAllAmenities lists the amenity catalog.
func GetAllAmenities(c *gin.Context) {
	var amenities []models.Amenity
	if err := config.DB.Order("name").Find(&amenities).Error; err != nil {
		response.ServerError(c)
		return
	}

	rows := make([]dto.AmenityResponse, 0, len(amenities))
	for _, amenity := range amenities {
		rows = append(rows, dto.AmenityResponse{ID: amenity.ID, Name: amenity.Name})
	}

	response.Success(c, rows)
}

// CreateAmenity adds an amenity to the catalog. Admin only.
func CreateAmenity(c *gin.Context) {
	var input dto.CreateAmenityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	amenity := models.Amenity{Name: input.Name}
	if err := config.DB.Create(&amenity).Error; err != nil {
		response.Conflict(c, "Amenity already exists")
		return
	}

	response.Created(c, dto.AmenityResponse{ID: amenity.ID, Name: amenity.Name})
}
