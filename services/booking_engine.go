package services

import (
	"context"
	stderrors "errors"
	"time"

	"travelmore/builders"
	"travelmore/errors"
	"travelmore/models"
	"travelmore/services/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BookingEngine turns a reservation request into a priced Booking row and
// keeps the room's derived is_booked flag in line with the booking set.
// All date decisions take an injected "today"; the engine never reads the
// wall clock itself.
type BookingEngine struct {
	db     *gorm.DB
	logger logger.Logger
}

// BookingEngineOptions carries the engine's dependencies.
type BookingEngineOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewBookingEngine(opts BookingEngineOptions) *BookingEngine {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingEngine{
		db:     opts.DB,
		logger: l,
	}
}

// BookingRequest is a candidate reservation before any write happens.
type BookingRequest struct {
	UserID          uint
	StayID          uint
	AccommodationID uint
	ArrivalDate     time.Time
	DepartureDate   time.Time
	NumberOfGuests  int
}

// Nights counts whole calendar days between arrival and departure.
func Nights(arrivalDate, departureDate time.Time) int {
	arrival := truncateToDate(arrivalDate)
	departure := truncateToDate(departureDate)
	return int(departure.Sub(arrival).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CalculateTotalPrice prices a stay range against a nightly rate. Pure:
// exact decimal arithmetic, no I/O. The rate is optional on the room, so
// a missing rate is the caller's error to surface, not a panic.
func CalculateTotalPrice(nightPrice decimal.NullDecimal, arrivalDate, departureDate time.Time) (decimal.Decimal, error) {
	nights := Nights(arrivalDate, departureDate)
	if nights <= 0 {
		return decimal.Zero, errors.NewAppError(errors.ErrCodeInvalidDateRange,
			"Departure date must be after arrival date", nil)
	}
	if !nightPrice.Valid {
		return decimal.Zero, errors.NewAppError(errors.ErrCodeMissingRate,
			"The room has no nightly price set", nil)
	}
	return nightPrice.Decimal.Mul(decimal.NewFromInt(int64(nights))), nil
}

// CreateBooking runs the full reservation sequence: validate, price,
// persist, recompute the room flag. Conflict check, persist and recompute
// share one transaction so a booking can never land with a stale room
// flag.
func (e *BookingEngine) CreateBooking(ctx context.Context, req BookingRequest, today time.Time) (*models.Booking, error) {
	var stay models.Stay
	if err := e.db.WithContext(ctx).First(&stay, req.StayID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Stay not found", errors.ErrStayNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load stay", err)
	}

	var room models.Accommodation
	if err := e.db.WithContext(ctx).First(&room, req.AccommodationID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Room not found", errors.ErrRoomNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load room", err)
	}

	if room.StayID != req.StayID {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRoomForStay,
			"There isn't this room in the selected hotel", errors.ErrInvalidRoomForStay)
	}

	totalPrice, err := CalculateTotalPrice(room.NightPrice, req.ArrivalDate, req.DepartureDate)
	if err != nil {
		return nil, err
	}

	booking := builders.NewBookingBuilder().
		WithUser(req.UserID).
		WithStay(req.StayID).
		WithRoom(req.AccommodationID).
		WithDates(truncateToDate(req.ArrivalDate), truncateToDate(req.DepartureDate)).
		WithGuests(req.NumberOfGuests).
		WithTotalPrice(totalPrice).
		Build()

	// Validation shares the write transaction, and the room row is read
	// again inside it: the snapshot loaded above may predate a concurrent
	// booking that flipped the flag before this transaction opened.
	err = e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Accommodation
		if err := tx.First(&current, req.AccommodationID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Failed to load room", err)
		}
		if err := validateBooking(tx, &current, req); err != nil {
			return err
		}
		if err := tx.Create(booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Failed to create booking", err)
		}
		if _, err := recomputeAvailability(tx, req.AccommodationID, today); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("booking %d created: room %d, %s -> %s, total %s",
		booking.ID, req.AccommodationID,
		booking.ArrivalDate.Format("2006-01-02"), booking.DepartureDate.Format("2006-01-02"),
		booking.TotalPrice.StringFixed(2))

	return booking, nil
}

// validateBooking applies both pre-persistence checks. Neither writes.
func validateBooking(tx *gorm.DB, room *models.Accommodation, req BookingRequest) error {
	if room.StayID != req.StayID {
		return errors.NewAppError(errors.ErrCodeInvalidRoomForStay,
			"There isn't this room in the selected hotel", errors.ErrInvalidRoomForStay)
	}

	// Conflict rule as shipped: an overlapping booking only blocks the
	// request while the room's global flag is set. Per-range interval
	// tracking would be stricter; see DESIGN.md.
	if !room.IsBooked {
		return nil
	}

	var conflicts int64
	err := tx.Model(&models.Booking{}).
		Where("stay_id = ? AND accommodation_id = ? AND arrival_date <= ? AND departure_date >= ?",
			req.StayID, req.AccommodationID,
			truncateToDate(req.DepartureDate), truncateToDate(req.ArrivalDate)).
		Count(&conflicts).Error
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Failed to check room availability", err)
	}
	if conflicts > 0 {
		return errors.NewAppError(errors.ErrCodeRoomUnavailable,
			"The room is already booked for the selected dates", errors.ErrRoomUnavailable)
	}
	return nil
}

// RecomputeAvailability re-derives a room's is_booked flag from its booking
// set and persists it. Safe to call standalone; running it twice with an
// unchanged booking set yields the same flag.
func (e *BookingEngine) RecomputeAvailability(ctx context.Context, roomID uint, today time.Time) (bool, error) {
	return recomputeAvailability(e.db.WithContext(ctx), roomID, today)
}

func recomputeAvailability(tx *gorm.DB, roomID uint, today time.Time) (bool, error) {
	var room models.Accommodation
	if err := tx.First(&room, roomID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return false, errors.NewAppError(errors.ErrCodeDBNotFound, "Room not found", errors.ErrRoomNotFound)
		}
		return false, errors.NewAppError(errors.ErrCodeDBError, "Failed to load room", err)
	}

	var bookings []models.Booking
	if err := tx.Where("accommodation_id = ?", roomID).Find(&bookings).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Failed to load bookings", err)
	}

	day := truncateToDate(today)
	flag := false
	for _, booking := range bookings {
		// Bookings already departed are dropped from the active set, but
		// only while the stored flag says the room was booked.
		if booking.DepartureDate.Before(day) && room.IsBooked {
			continue
		}
		flag = true
		break
	}

	if err := tx.Model(&models.Accommodation{}).Where("id = ?", roomID).
		Update("is_booked", flag).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Failed to update room status", err)
	}
	return flag, nil
}
