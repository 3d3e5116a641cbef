package validator

import (
	"testing"

	"travelmore/constants"
	"travelmore/dto"
	"travelmore/errors"
	"travelmore/models"
)

func validBookingRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		StayID:          1,
		AccommodationID: 2,
		ArrivalDate:     "2025-07-01",
		DepartureDate:   "2025-07-04",
		NumberOfGuests:  2,
	}
}

func TestValidateStruct(t *testing.T) {
	req := validBookingRequest()
	if err := ValidateStruct(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req = validBookingRequest()
	req.ArrivalDate = ""
	if err := ValidateStruct(&req); !errors.IsCode(err, errors.ErrCodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR for missing arrival date, got %v", err)
	}
}

func TestValidateBookingRequest_OK(t *testing.T) {
	req := validBookingRequest()
	if err := ValidateBookingRequest(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateBookingRequest_MissingIDs(t *testing.T) {
	req := validBookingRequest()
	req.StayID = 0
	if err := ValidateBookingRequest(&req); !errors.IsCode(err, errors.ErrCodeRequiredField) {
		t.Fatalf("expected REQUIRED_FIELD for stay id, got %v", err)
	}

	req = validBookingRequest()
	req.AccommodationID = 0
	if err := ValidateBookingRequest(&req); !errors.IsCode(err, errors.ErrCodeRequiredField) {
		t.Fatalf("expected REQUIRED_FIELD for room id, got %v", err)
	}
}

func TestValidateBookingRequest_BadDates(t *testing.T) {
	req := validBookingRequest()
	req.ArrivalDate = "01/07/2025"
	if err := ValidateBookingRequest(&req); !errors.IsCode(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("expected INVALID_FORMAT, got %v", err)
	}

	req = validBookingRequest()
	req.DepartureDate = "not-a-date"
	if err := ValidateBookingRequest(&req); !errors.IsCode(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("expected INVALID_FORMAT, got %v", err)
	}
}

func TestValidateBookingRequest_DepartureNotAfterArrival(t *testing.T) {
	req := validBookingRequest()
	req.DepartureDate = req.ArrivalDate
	if err := ValidateBookingRequest(&req); !errors.IsCode(err, errors.ErrCodeInvalidDateRange) {
		t.Fatalf("expected INVALID_DATE_RANGE on same-day, got %v", err)
	}

	req = validBookingRequest()
	req.ArrivalDate = "2025-07-10"
	req.DepartureDate = "2025-07-05"
	if err := ValidateBookingRequest(&req); !errors.IsCode(err, errors.ErrCodeInvalidDateRange) {
		t.Fatalf("expected INVALID_DATE_RANGE on reversed range, got %v", err)
	}
}

func TestValidateBookingRequest_Guests(t *testing.T) {
	req := validBookingRequest()
	req.NumberOfGuests = 0
	if err := ValidateBookingRequest(&req); !errors.IsCode(err, errors.ErrCodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR for zero guests, got %v", err)
	}
}

func TestValidateUser(t *testing.T) {
	user := models.User{Email: "guest@example.com", Password: "secret1", Role: constants.RoleTenant}
	if err := ValidateUser(&user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user = models.User{Password: "secret1"}
	if err := ValidateUser(&user); !errors.IsCode(err, errors.ErrCodeRequiredField) {
		t.Fatalf("expected REQUIRED_FIELD for empty email, got %v", err)
	}

	user = models.User{Email: "not-an-email", Password: "secret1"}
	if err := ValidateUser(&user); !errors.IsCode(err, errors.ErrCodeInvalidEmail) {
		t.Fatalf("expected INVALID_EMAIL, got %v", err)
	}

	user = models.User{Email: "guest@example.com", Password: "short"}
	if err := ValidateUser(&user); !errors.IsCode(err, errors.ErrCodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR for short password, got %v", err)
	}

	user = models.User{Email: "guest@example.com", Password: "secret1", PhoneNumber: "12ab"}
	if err := ValidateUser(&user); !errors.IsCode(err, errors.ErrCodeInvalidPhone) {
		t.Fatalf("expected INVALID_PHONE, got %v", err)
	}

	user = models.User{Email: "guest@example.com", Password: "secret1", Role: 7}
	if err := ValidateUser(&user); !errors.IsCode(err, errors.ErrCodeInvalidRole) {
		t.Fatalf("expected INVALID_ROLE, got %v", err)
	}
}

func TestValidateRatingStars(t *testing.T) {
	for star := constants.RatingStarMin; star <= constants.RatingStarMax; star++ {
		if err := ValidateRatingStars(star); err != nil {
			t.Fatalf("star %d should be valid: %v", star, err)
		}
	}
	if err := ValidateRatingStars(0); !errors.IsCode(err, errors.ErrCodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR for 0 stars, got %v", err)
	}
	if err := ValidateRatingStars(6); !errors.IsCode(err, errors.ErrCodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR for 6 stars, got %v", err)
	}
}

func TestValidateEmailAndPhone(t *testing.T) {
	if err := ValidateEmail("landlord@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateEmail("nope"); !errors.IsCode(err, errors.ErrCodeInvalidEmail) {
		t.Fatalf("expected INVALID_EMAIL, got %v", err)
	}

	if err := ValidatePhone("+84912345678"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidatePhone("123"); !errors.IsCode(err, errors.ErrCodeInvalidPhone) {
		t.Fatalf("expected INVALID_PHONE, got %v", err)
	}
}
