package validator

import (
	"regexp"
	"time"

	"travelmore/constants"
	"travelmore/dto"
	"travelmore/errors"
	"travelmore/models"

	validate "github.com/go-playground/validator/v10"
)

var structValidator = newStructValidator()

func newStructValidator() *validate.Validate {
	v := validate.New()
	v.SetTagName("binding")
	return v
}

// ValidateStruct runs go-playground tag validation on any request struct,
// honoring the same `binding` tags gin enforces on bind. Useful for
// callers that build request DTOs outside the HTTP layer.
func ValidateStruct(s interface{}) error {
	if err := structValidator.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid request payload", err)
	}
	return nil
}

// ValidateUser checks a user record before registration.
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email must not be empty", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password must not be empty", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Invalid phone number", nil)
	}

	if user.Role < constants.RoleTenant || user.Role > constants.RoleAdmin {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Invalid role", nil)
	}

	return nil
}

// ValidateBookingRequest checks field shape only; availability and pricing
// rules belong to the booking engine.
func ValidateBookingRequest(req *dto.CreateBookingRequest) error {
	if req.StayID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Stay id must not be empty", nil)
	}

	if req.AccommodationID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room id must not be empty", nil)
	}

	arrivalDate, err := time.Parse(constants.DateLayout, req.ArrivalDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid arrival date", err)
	}

	departureDate, err := time.Parse(constants.DateLayout, req.DepartureDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid departure date", err)
	}

	if !departureDate.After(arrivalDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Departure date must be after arrival date", nil)
	}

	if req.NumberOfGuests <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Number of guests must be positive", nil)
	}

	return nil
}

// ValidateRatingStars checks the star value is on the 1..5 scale.
func ValidateRatingStars(star int) error {
	if star < constants.RatingStarMin || star > constants.RatingStarMax {
		return errors.NewAppError(errors.ErrCodeValidation, "Star rating must be between 1 and 5", nil)
	}
	return nil
}

// isValidEmail reports whether email looks like an address.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone reports whether phone is a plausible number.
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^\+?[0-9]{9,15}$`)
	return phoneRegex.MatchString(phone)
}

// ValidateEmail checks a bare email string.
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email", nil)
	}
	return nil
}

// ValidatePhone checks a bare phone string.
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Invalid phone number", nil)
	}
	return nil
}
