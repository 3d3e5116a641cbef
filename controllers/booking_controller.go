package controllers

import (
	"log"
	"strconv"
	"time"

	"travelmore/config"
	"travelmore/constants"
	"travelmore/dto"
	"travelmore/errors"
	"travelmore/models"
	"travelmore/response"
	"travelmore/services"
	"travelmore/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// BookingController carries the booking engine and the websocket hub the
// other controllers don't need.
type BookingController struct {
	engine *services.BookingEngine
	ws     *melody.Melody
}

func NewBookingController(engine *services.BookingEngine, ws *melody.Melody) *BookingController {
	return &BookingController{engine: engine, ws: ws}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:             booking.ID,
		FirstName:      booking.User.FirstName,
		LastName:       booking.User.LastName,
		FullName:       booking.User.FullName(),
		ArrivalDate:    booking.ArrivalDate.Format(constants.DateLayout),
		DepartureDate:  booking.DepartureDate.Format(constants.DateLayout),
		NumberOfGuests: booking.NumberOfGuests,
		Stay:           convertToStayListResponse(booking.Stay),
		Room: dto.BookingRoomResponse{
			ID:         booking.Accommodation.ID,
			StayID:     booking.Accommodation.StayID,
			Name:       booking.Accommodation.Name,
			NightPrice: booking.Accommodation.NightPrice.Decimal.StringFixed(2),
		},
		TotalPrice: booking.TotalPrice.StringFixed(2),
		CreatedAt:  booking.CreatedAt,
	}
}

// respondBookingError maps engine rejections onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeRoomUnavailable:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeInvalidRoomForStay, errors.ErrCodeInvalidDateRange, errors.ErrCodeMissingRate:
		response.BadRequest(c, appErr.Message)
	case errors.ErrCodeDBNotFound:
		response.NotFound(c)
	default:
		response.ServerError(c)
	}
}

// GetBookings lists the authenticated user's bookings, newest first.
func (bc *BookingController) GetBookings(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	page, limit := parsePagination(c)

	var bookings []models.Booking
	if err := config.DB.
		Preload("User").
		Preload("Stay").
		Preload("Stay.Destination").
		Preload("Accommodation").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	rows := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		rows = append(rows, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, paginate(rows, page, limit), page, limit, len(rows))
}

// CreateBooking validates and prices the reservation, persists it, then
// notifies the guest by email and the websocket listeners.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := validator.ValidateStruct(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	if err := validator.ValidateBookingRequest(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	arrival, err := time.Parse(constants.DateLayout, input.ArrivalDate)
	if err != nil {
		response.BadRequest(c, "Invalid arrivalDate")
		return
	}
	departure, err := time.Parse(constants.DateLayout, input.DepartureDate)
	if err != nil {
		response.BadRequest(c, "Invalid departureDate")
		return
	}

	booking, err := bc.engine.CreateBooking(c.Request.Context(), services.BookingRequest{
		UserID:          userID,
		StayID:          input.StayID,
		AccommodationID: input.AccommodationID,
		ArrivalDate:     arrival,
		DepartureDate:   departure,
		NumberOfGuests:  input.NumberOfGuests,
	}, time.Now())
	if err != nil {
		respondBookingError(c, err)
		return
	}

	invalidateStaysCache()

	var created models.Booking
	if err := config.DB.
		Preload("User").
		Preload("Stay").
		Preload("Stay.Destination").
		Preload("Accommodation").
		First(&created, booking.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	go func(b models.Booking) {
		if err := services.SendBookingEmail(b.User.Email, b.ID,
			b.TotalPrice.StringFixed(2),
			b.ArrivalDate.Format(constants.DateLayout),
			b.DepartureDate.Format(constants.DateLayout)); err != nil {
			log.Printf("Failed to send booking email for booking %d: %v", b.ID, err)
		}
	}(created)

	if bc.ws != nil {
		if err := services.BroadcastBooking(bc.ws, &created); err != nil {
			log.Printf("Failed to broadcast booking %d: %v", created.ID, err)
		}
	}

	response.Created(c, convertToBookingResponse(created))
}

// CheckAvailability re-derives a room's is_booked flag on demand and
// returns the fresh value.
func (bc *BookingController) CheckAvailability(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	today := time.Now()
	isBooked, err := bc.engine.RecomputeAvailability(c.Request.Context(), uint(roomID), today)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	invalidateStaysCache()

	response.Success(c, dto.AvailabilityResponse{
		RoomID:   uint(roomID),
		Today:    today.Format(constants.DateLayout),
		IsBooked: isBooked,
	})
}
