package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"quiz-service/internal/apperror"
	"quiz-service/internal/dto"
)

// respondError renders any error from the service layer using the body shape
// its kind calls for. Domain errors carry their own status and code;
// uniqueness conflicts surface as 409; everything else is a 500 with the raw
// message.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.Error
	var fieldErrs validator.ValidationErrors

	switch {
	case errors.As(err, &appErr):
		log.Warn().Str("detail", appErr.Detail).Int("code", appErr.Code).Msg(appErr.Message)
		c.JSON(appErr.Status, dto.ErrorResponse{Error: appErr.Message, Code: appErr.Code})
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Code:   apperror.ValidationCode,
			Errors: fieldMessages(fieldErrs),
		})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		log.Warn().Err(err).Msg("Data integrity violation")
		c.JSON(http.StatusConflict, dto.IntegrityErrorResponse{
			Code:  apperror.DataIntegrityCode,
			Error: err.Error(),
		})
	default:
		log.Error().Err(err).Msg("An unexpected error occurred")
		c.JSON(http.StatusInternalServerError, dto.UnexpectedErrorResponse{
			Error:   "An unexpected error occurred.",
			Message: err.Error(),
		})
	}
}

func fieldMessages(errs validator.ValidationErrors) map[string]string {
	messages := make(map[string]string, len(errs))
	for _, fe := range errs {
		messages[lowerFirst(fe.Field())] = validationMessage(fe)
	}
	return messages
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "number":
		return "Must contain only digits"
	case "min", "max":
		return "Must be between " + minLen(fe) + " and " + maxLen(fe) + " characters"
	default:
		return "Invalid value"
	}
}

// The only length-constrained field is the student number (5-10); params are
// read off the failing tag so the message stays right if that ever changes.
func minLen(fe validator.FieldError) string {
	if fe.Tag() == "min" {
		return fe.Param()
	}
	return "5"
}

func maxLen(fe validator.FieldError) string {
	if fe.Tag() == "max" {
		return fe.Param()
	}
	return "10"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// parseIDParam reads a numeric path id. Malformed ids are rejected with the
// validation body shape before any domain logic runs.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Code:   apperror.ValidationCode,
			Errors: map[string]string{name: "must be a positive integer"},
		})
		return 0, false
	}
	return uint(v), true
}
