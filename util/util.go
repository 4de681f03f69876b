package util

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// Collection names.
const (
	UserCollection        = "USERS"
	VetCollection         = "VETS"
	AppointmentCollection = "APPOINTMENTS"
	RescueCollection      = "RESCUES"
	PetCollection         = "PETS"
	DonationCollection    = "DONATIONS"
	VolunteerCollection   = "VOLUNTEERS"
	CounterCollection     = "COUNTERS"
)

// Cache key prefixes.
const (
	UserKey        = "USER:"
	VetKey         = "VET:"
	AppointmentKey = "APPOINTMENT:"
	RescueKey      = "RESCUE:"
	PetKey         = "PET:"
)

// Error kinds. Every error returned out of a service carries one of these;
// controllers map them to HTTP statuses through StatusOf.
const (
	ValidationError = "ValidationError"
	NotFound        = "NotFound"
	SlotUnavailable = "SlotUnavailable"
	Conflict        = "Conflict"
	Unauthorized    = "Unauthorized"
	Forbidden       = "Forbidden"
	InternalError   = "InternalError"
)

const (
	UNABLE_TO_FETCH_CODE_FROM_CONTEXT = "unable to fetch requester code from context"
	SLOT_UNAVAILABLE                  = "the requested slot is not available"
	SLOT_DOES_NOT_EXIST               = "slot does not exist for this vet"
	VET_NOT_FOUND                     = "vet not found"
	RESCUE_NOT_FOUND                  = "rescue record not found"
	APPOINTMENT_NOT_FOUND             = "appointment not found"
	PET_NOT_FOUND                     = "pet not found"
	INVALID_TIME_FORMAT               = "time must be in HH:MM 24h format"
	INVALID_DATE_FORMAT               = "date must be in YYYY-MM-DD format"
	EMAIL_ALREADY_REGISTERED          = "email is already registered"
	INVALID_CREDENTIALS               = "invalid email or password"
	INVALID_USER_TO_ACCESS            = "this user does not have access"
	CODE_GENERATION_EXHAUSTED         = "unable to generate a unique code"
	PLACEHOLDER_IMAGE                 = "https://via.placeholder.com/300x300?text=Adopt+Me"
)

type AppError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func E(kind string, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// KindOf classifies any error; unknown errors count as InternalError.
func KindOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return InternalError
}

func StatusOf(err error) int {
	switch KindOf(err) {
	case ValidationError:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case SlotUnavailable, Conflict:
		return http.StatusConflict
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func SuccessResponse(data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"success": true,
		"data":    data,
	}
}

func FailedResponse(err error) map[string]interface{} {
	return map[string]interface{}{
		"success": false,
		"kind":    KindOf(err),
		"message": err.Error(),
	}
}

/*
* Accept either YYYY-MM-DD or DD-MM-YYYY
* Return the canonical YYYY-MM-DD form used everywhere in the calendar
 */
func NormalizeDate(raw string) (string, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.Format("2006-01-02"), nil
	}
	if t, err := time.Parse("02-01-2006", raw); err == nil {
		return t.Format("2006-01-02"), nil
	}
	return "", E(ValidationError, INVALID_DATE_FORMAT)
}

func ValidateTime(raw string) error {
	if _, err := time.Parse("15:04", raw); err != nil {
		return E(ValidationError, INVALID_TIME_FORMAT)
	}
	return nil
}

/*
* Fetch a field as a trimmed non-empty string
* Writes the trimmed value back into the data map
 */
func GetTrimmedString(data map[string]interface{}, field string) (string, error) {
	raw, ok := data[field]
	if !ok {
		return "", E(ValidationError, field+" is required")
	}
	val, ok := raw.(string)
	if !ok {
		return "", E(ValidationError, field+" must be a string")
	}
	trimmed := strings.TrimSpace(val)
	if trimmed == "" {
		return "", E(ValidationError, field+" must not be empty")
	}
	data[field] = trimmed
	return trimmed, nil
}
