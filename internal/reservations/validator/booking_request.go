package validator

import (
	"errors"
	"fmt"
	"strings"

	apperrors "cocoresort/pkg/errors"
	"cocoresort/pkg/logger"
	"cocoresort/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// FieldDetails lists the failures under "fields" for error responses.
func (v ValidationErrors) FieldDetails() map[string]any {
	return map[string]any{"fields": []ValidationError(v)}
}

// fieldSentinels ties each request field to the domain failure it stands for.
var fieldSentinels = map[string]error{
	"CustomerID":      apperrors.ErrInvalidCustomer,
	"CustomerName":    apperrors.ErrInvalidCustomer,
	"CustomerContact": apperrors.ErrInvalidCustomer,
	"RoomType":        apperrors.ErrNoMatchingRoom,
	"StartDate":       apperrors.ErrInvalidDateFormat,
	"EndDate":         apperrors.ErrInvalidDateFormat,
	"NumPeople":       apperrors.ErrInvalidPartySize,
}

type BookingRequestValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingRequestValidator(log *logger.Logger) *BookingRequestValidator {
	log.Info("Booking request validator initialized successfully")
	return &BookingRequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   log,
	}
}

// Validate checks req's struct tags. The returned error wraps the domain
// sentinel of the first failing field together with every field failure.
func (v *BookingRequestValidator) Validate(req *model.BookingRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	translated := v.translateValidationErrors(validationErrs)
	sentinel, ok := fieldSentinels[validationErrs[0].StructField()]
	if !ok {
		return translated
	}
	return fmt.Errorf("%w: %w", sentinel, translated)
}

func (v *BookingRequestValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "datetime":
			message = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
