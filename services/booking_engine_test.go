package services

import (
	"context"
	"testing"
	"time"

	"travelmore/errors"
	"travelmore/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Destination{},
		&models.Stay{},
		&models.Amenity{},
		&models.Accommodation{},
		&models.Booking{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedRoom(t *testing.T, db *gorm.DB, name, nightPrice string) (models.Stay, models.Accommodation) {
	t.Helper()

	stay := models.Stay{Name: name + " hotel"}
	if err := db.Create(&stay).Error; err != nil {
		t.Fatalf("failed to create stay: %v", err)
	}

	room := models.Accommodation{
		Name:   name,
		StayID: stay.ID,
	}
	if nightPrice != "" {
		room.NightPrice = decimal.NewNullDecimal(mustDecimal(t, nightPrice))
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to create room: %v", err)
	}

	return stay, room
}

func TestNights(t *testing.T) {
	if got := Nights(date(2025, 6, 1), date(2025, 6, 2)); got != 1 {
		t.Fatalf("expected 1 night, got %d", got)
	}
	if got := Nights(date(2025, 6, 1), date(2025, 6, 8)); got != 7 {
		t.Fatalf("expected 7 nights, got %d", got)
	}
	if got := Nights(date(2025, 6, 1), date(2025, 6, 1)); got != 0 {
		t.Fatalf("expected 0 nights, got %d", got)
	}
}

func TestCalculateTotalPrice_OneNight(t *testing.T) {
	price := decimal.NewNullDecimal(mustDecimal(t, "100.00"))

	total, err := CalculateTotalPrice(price, date(2025, 6, 1), date(2025, 6, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total.StringFixed(2) != "100.00" {
		t.Fatalf("expected 100.00, got %s", total.StringFixed(2))
	}
}

func TestCalculateTotalPrice_Exact(t *testing.T) {
	price := decimal.NewNullDecimal(mustDecimal(t, "200.00"))

	total, err := CalculateTotalPrice(price, date(2025, 6, 1), date(2025, 6, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(mustDecimal(t, "400.00")) {
		t.Fatalf("expected exactly 400.00, got %s", total.String())
	}

	// Fractional rates must not pick up float error.
	price = decimal.NewNullDecimal(mustDecimal(t, "99.99"))
	total, err = CalculateTotalPrice(price, date(2025, 6, 1), date(2025, 6, 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(mustDecimal(t, "299.97")) {
		t.Fatalf("expected exactly 299.97, got %s", total.String())
	}
}

func TestCalculateTotalPrice_InvalidRange(t *testing.T) {
	price := decimal.NewNullDecimal(mustDecimal(t, "100.00"))

	_, err := CalculateTotalPrice(price, date(2025, 6, 2), date(2025, 6, 2))
	if !errors.IsCode(err, errors.ErrCodeInvalidDateRange) {
		t.Fatalf("expected INVALID_DATE_RANGE, got %v", err)
	}

	_, err = CalculateTotalPrice(price, date(2025, 6, 5), date(2025, 6, 2))
	if !errors.IsCode(err, errors.ErrCodeInvalidDateRange) {
		t.Fatalf("expected INVALID_DATE_RANGE, got %v", err)
	}
}

func TestCalculateTotalPrice_MissingRate(t *testing.T) {
	_, err := CalculateTotalPrice(decimal.NullDecimal{}, date(2025, 6, 1), date(2025, 6, 2))
	if !errors.IsCode(err, errors.ErrCodeMissingRate) {
		t.Fatalf("expected MISSING_RATE, got %v", err)
	}
}

func TestCreateBooking_OK(t *testing.T) {
	db := setupTestDB(t)
	engine := NewBookingEngine(BookingEngineOptions{DB: db})
	stay, room := seedRoom(t, db, "sea view", "150.00")

	booking, err := engine.CreateBooking(context.Background(), BookingRequest{
		UserID:          1,
		StayID:          stay.ID,
		AccommodationID: room.ID,
		ArrivalDate:     date(2025, 7, 1),
		DepartureDate:   date(2025, 7, 4),
		NumberOfGuests:  2,
	}, date(2025, 6, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !booking.TotalPrice.Equal(mustDecimal(t, "450.00")) {
		t.Fatalf("expected total 450.00, got %s", booking.TotalPrice.String())
	}

	var stored models.Booking
	if err := db.First(&stored, booking.ID).Error; err != nil {
		t.Fatalf("booking not persisted: %v", err)
	}
	if !stored.TotalPrice.Equal(mustDecimal(t, "450.00")) {
		t.Fatalf("stored total drifted: %s", stored.TotalPrice.String())
	}

	var fresh models.Accommodation
	if err := db.First(&fresh, room.ID).Error; err != nil {
		t.Fatalf("failed to reload room: %v", err)
	}
	if !fresh.IsBooked {
		t.Fatalf("expected room flagged booked after a future booking")
	}
}

func TestCreateBooking_RoomFromAnotherStay(t *testing.T) {
	db := setupTestDB(t)
	engine := NewBookingEngine(BookingEngineOptions{DB: db})
	stay, _ := seedRoom(t, db, "north wing", "100.00")
	_, otherRoom := seedRoom(t, db, "south wing", "100.00")

	_, err := engine.CreateBooking(context.Background(), BookingRequest{
		UserID:          1,
		StayID:          stay.ID,
		AccommodationID: otherRoom.ID,
		ArrivalDate:     date(2025, 7, 1),
		DepartureDate:   date(2025, 7, 2),
		NumberOfGuests:  1,
	}, date(2025, 6, 15))
	if !errors.IsCode(err, errors.ErrCodeInvalidRoomForStay) {
		t.Fatalf("expected INVALID_ROOM_FOR_STAY, got %v", err)
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected booking must not persist, found %d rows", count)
	}
}

func TestCreateBooking_OverlapOnBookedRoom(t *testing.T) {
	db := setupTestDB(t)
	engine := NewBookingEngine(BookingEngineOptions{DB: db})
	stay, room := seedRoom(t, db, "garden room", "100.00")

	if _, err := engine.CreateBooking(context.Background(), BookingRequest{
		UserID:          1,
		StayID:          stay.ID,
		AccommodationID: room.ID,
		ArrivalDate:     date(2025, 7, 10),
		DepartureDate:   date(2025, 7, 15),
		NumberOfGuests:  2,
	}, date(2025, 6, 15)); err != nil {
		t.Fatalf("first booking should pass: %v", err)
	}

	_, err := engine.CreateBooking(context.Background(), BookingRequest{
		UserID:          2,
		StayID:          stay.ID,
		AccommodationID: room.ID,
		ArrivalDate:     date(2025, 7, 12),
		DepartureDate:   date(2025, 7, 20),
		NumberOfGuests:  1,
	}, date(2025, 6, 15))
	if !errors.IsCode(err, errors.ErrCodeRoomUnavailable) {
		t.Fatalf("expected ROOM_UNAVAILABLE, got %v", err)
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected only the first booking persisted, found %d rows", count)
	}
}

func TestCreateBooking_OverlapOnUnflaggedRoomAccepted(t *testing.T) {
	db := setupTestDB(t)
	engine := NewBookingEngine(BookingEngineOptions{DB: db})
	stay, room := seedRoom(t, db, "annex room", "100.00")

	// An overlapping row exists but the room flag was never raised, e.g.
	// after an import or a manual flag reset. The conflict rule only
	// applies while is_booked is set, so the request must go through.
	prior := models.Booking{
		UserID:          1,
		StayID:          stay.ID,
		AccommodationID: room.ID,
		ArrivalDate:     date(2025, 7, 1),
		DepartureDate:   date(2025, 7, 5),
		NumberOfGuests:  2,
		TotalPrice:      mustDecimal(t, "400.00"),
	}
	if err := db.Create(&prior).Error; err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}

	if _, err := engine.CreateBooking(context.Background(), BookingRequest{
		UserID:          2,
		StayID:          stay.ID,
		AccommodationID: room.ID,
		ArrivalDate:     date(2025, 7, 3),
		DepartureDate:   date(2025, 7, 8),
		NumberOfGuests:  1,
	}, date(2025, 6, 15)); err != nil {
		t.Fatalf("overlap on an unflagged room should be accepted: %v", err)
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected both bookings persisted, found %d rows", count)
	}
}

func TestCreateBooking_ConflictCommittedAfterInitialLoad(t *testing.T) {
	db := setupTestDB(t)
	engine := NewBookingEngine(BookingEngineOptions{DB: db})
	stay, room := seedRoom(t, db, "tower room", "100.00")

	// Simulate a competing booking that commits right after CreateBooking
	// has read the room but before its transaction opens: hook the first
	// room load and land the rival booking there. The re-read inside the
	// transaction must pick up the freshly set flag and reject.
	writer := db.Session(&gorm.Session{NewDB: true})
	roomLoads := 0
	err := db.Callback().Query().After("gorm:query").Register("rival_booking", func(q *gorm.DB) {
		if q.Statement.Table != "accommodations" {
			return
		}
		roomLoads++
		if roomLoads != 1 {
			return
		}
		rival := models.Booking{
			UserID:          1,
			StayID:          stay.ID,
			AccommodationID: room.ID,
			ArrivalDate:     date(2025, 7, 10),
			DepartureDate:   date(2025, 7, 15),
			NumberOfGuests:  2,
			TotalPrice:      mustDecimal(t, "500.00"),
		}
		if err := writer.Create(&rival).Error; err != nil {
			t.Fatalf("failed to create rival booking: %v", err)
		}
		if err := writer.Model(&models.Accommodation{}).Where("id = ?", room.ID).
			Update("is_booked", true).Error; err != nil {
			t.Fatalf("failed to flag room: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("failed to register callback: %v", err)
	}

	_, err = engine.CreateBooking(context.Background(), BookingRequest{
		UserID:          2,
		StayID:          stay.ID,
		AccommodationID: room.ID,
		ArrivalDate:     date(2025, 7, 12),
		DepartureDate:   date(2025, 7, 20),
		NumberOfGuests:  1,
	}, date(2025, 6, 15))
	if !errors.IsCode(err, errors.ErrCodeRoomUnavailable) {
		t.Fatalf("expected ROOM_UNAVAILABLE, got %v", err)
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected only the rival booking persisted, found %d rows", count)
	}
}

func TestCreateBooking_TouchingBoundaryConflicts(t *testing.T) {
	db := setupTestDB(t)
	engine := NewBookingEngine(BookingEngineOptions{DB: db})
	stay, room := seedRoom(t, db, "loft", "100.00")

	if _, err := engine.CreateBooking(context.Background(), BookingRequest{
		UserID:          1,
		StayID:          stay.ID,
		AccommodationID: room.ID,
		ArrivalDate:     date(2025, 7, 1),
		DepartureDate:   date(2025, 7, 5),
		NumberOfGuests:  1,
	}, date(2025, 6, 15)); err != nil {
		t.Fatalf("first booking should pass: %v", err)
	}

	// Arrival on the departure day counts as a conflict under the
	// inclusive overlap rule.
	_, err := engine.CreateBooking(context.Background(), BookingRequest{
		UserID:          2,
		StayID:          stay.ID,
		AccommodationID: room.ID,
		ArrivalDate:     date(2025, 7, 5),
		DepartureDate:   date(2025, 7, 8),
		NumberOfGuests:  1,
	}, date(2025, 6, 15))
	if !errors.IsCode(err, errors.ErrCodeRoomUnavailable) {
		t.Fatalf("expected ROOM_UNAVAILABLE on touching range, got %v", err)
	}
}

func TestCreateBooking_MissingRate(t *testing.T) {
	db := setupTestDB(t)
	engine := NewBookingEngine(BookingEngineOptions{DB: db})
	stay, room := seedRoom(t, db, "unpriced", "")

	_, err := engine.CreateBooking(context.Background(), BookingRequest{
		UserID:          1,
		StayID:          stay.ID,
		AccommodationID: room.ID,
		ArrivalDate:     date(2025, 7, 1),
		DepartureDate:   date(2025, 7, 2),
		NumberOfGuests:  1,
	}, date(2025, 6, 15))
	if !errors.IsCode(err, errors.ErrCodeMissingRate) {
		t.Fatalf("expected MISSING_RATE, got %v", err)
	}
}

func TestCreateBooking_UnknownStayAndRoom(t *testing.T) {
	db := setupTestDB(t)
	engine := NewBookingEngine(BookingEngineOptions{DB: db})
	stay, room := seedRoom(t, db, "known", "100.00")

	_, err := engine.CreateBooking(context.Background(), BookingRequest{
		UserID:          1,
		StayID:          stay.ID + 100,
		AccommodationID: room.ID,
		ArrivalDate:     date(2025, 7, 1),
		DepartureDate:   date(2025, 7, 2),
		NumberOfGuests:  1,
	}, date(2025, 6, 15))
	if !errors.IsCode(err, errors.ErrCodeDBNotFound) {
		t.Fatalf("expected DB_NOT_FOUND for unknown stay, got %v", err)
	}

	_, err = engine.CreateBooking(context.Background(), BookingRequest{
		UserID:          1,
		StayID:          stay.ID,
		AccommodationID: room.ID + 100,
		ArrivalDate:     date(2025, 7, 1),
		DepartureDate:   date(2025, 7, 2),
		NumberOfGuests:  1,
	}, date(2025, 6, 15))
	if !errors.IsCode(err, errors.ErrCodeDBNotFound) {
		t.Fatalf("expected DB_NOT_FOUND for unknown room, got %v", err)
	}
}

func TestRecomputeAvailability_DepartedBookingsRelease(t *testing.T) {
	db := setupTestDB(t)
	engine := NewBookingEngine(BookingEngineOptions{DB: db})
	_, room := seedRoom(t, db, "released", "100.00")

	past := []models.Booking{
		{UserID: 1, StayID: room.StayID, AccommodationID: room.ID,
			ArrivalDate: date(2025, 5, 1), DepartureDate: date(2025, 5, 5)},
		{UserID: 2, StayID: room.StayID, AccommodationID: room.ID,
			ArrivalDate: date(2025, 5, 10), DepartureDate: date(2025, 5, 12)},
	}
	for i := range past {
		if err := db.Create(&past[i]).Error; err != nil {
			t.Fatalf("failed to seed booking: %v", err)
		}
	}
	if err := db.Model(&models.Accommodation{}).Where("id = ?", room.ID).
		Update("is_booked", true).Error; err != nil {
		t.Fatalf("failed to flag room: %v", err)
	}

	flag, err := engine.RecomputeAvailability(context.Background(), room.ID, date(2025, 6, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flag {
		t.Fatalf("expected room released once all bookings departed")
	}

	var fresh models.Accommodation
	if err := db.First(&fresh, room.ID).Error; err != nil {
		t.Fatalf("failed to reload room: %v", err)
	}
	if fresh.IsBooked {
		t.Fatalf("flag not persisted")
	}
}

func TestRecomputeAvailability_FutureBookingHolds(t *testing.T) {
	db := setupTestDB(t)
	engine := NewBookingEngine(BookingEngineOptions{DB: db})
	_, room := seedRoom(t, db, "held", "100.00")

	booking := models.Booking{
		UserID: 1, StayID: room.StayID, AccommodationID: room.ID,
		ArrivalDate: date(2025, 7, 1), DepartureDate: date(2025, 7, 5),
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}

	// Stable under repetition: a future booking pins the flag to true no
	// matter how often the job runs.
	for i := 0; i < 3; i++ {
		flag, err := engine.RecomputeAvailability(context.Background(), room.ID, date(2025, 6, 15))
		if err != nil {
			t.Fatalf("unexpected error on run %d: %v", i, err)
		}
		if !flag {
			t.Fatalf("expected flag held on run %d", i)
		}
	}
}

func TestRecomputeAvailability_NoBookings(t *testing.T) {
	db := setupTestDB(t)
	engine := NewBookingEngine(BookingEngineOptions{DB: db})
	_, room := seedRoom(t, db, "empty", "100.00")

	if err := db.Model(&models.Accommodation{}).Where("id = ?", room.ID).
		Update("is_booked", true).Error; err != nil {
		t.Fatalf("failed to flag room: %v", err)
	}

	for i := 0; i < 3; i++ {
		flag, err := engine.RecomputeAvailability(context.Background(), room.ID, date(2025, 6, 15))
		if err != nil {
			t.Fatalf("unexpected error on run %d: %v", i, err)
		}
		if flag {
			t.Fatalf("expected no-bookings room available on run %d", i)
		}
	}
}

func TestRecomputeAvailability_UnknownRoom(t *testing.T) {
	db := setupTestDB(t)
	engine := NewBookingEngine(BookingEngineOptions{DB: db})

	_, err := engine.RecomputeAvailability(context.Background(), 42, date(2025, 6, 15))
	if !errors.IsCode(err, errors.ErrCodeDBNotFound) {
		t.Fatalf("expected DB_NOT_FOUND, got %v", err)
	}
}
