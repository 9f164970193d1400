package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"backlogapi/internal/httpx"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("password_strength", validatePasswordStrength)
}

func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)

	return hasUpper && hasLower && hasNumber
}

func validateStruct(s any) []httpx.ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []httpx.ErrorDetail
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := fieldErr.Field()
		var message string
		switch fieldErr.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
		case "lte":
			message = fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
		case "password_strength":
			message = fmt.Sprintf("%s must be at least 8 characters with uppercase, lowercase and a number", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		details = append(details, httpx.ErrorDetail{Field: fieldName, Message: message})
	}
	return details
}
