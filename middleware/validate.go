package middleware

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs struct-tag validation and returns a field -> message map,
// or nil when the value is valid.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"body": "Invalid request body!"}
	}

	errors := make(map[string]string)
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required!", field)
		case "email":
			errors[field] = "Invalid email address!"
		case "oneof":
			errors[field] = fmt.Sprintf("%s must be one of [%s]!", field, fe.Param())
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters!", field, fe.Param())
		case "gte":
			errors[field] = fmt.Sprintf("%s must be at least %s!", field, fe.Param())
		case "lte":
			errors[field] = fmt.Sprintf("%s must be at most %s!", field, fe.Param())
		case "url":
			errors[field] = fmt.Sprintf("%s must be a valid URL!", field)
		default:
			errors[field] = fmt.Sprintf("%s is invalid!", field)
		}
	}
	return errors
}
