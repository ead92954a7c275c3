package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var folderNamePattern = regexp.MustCompile(`^[^/\\:*?"<>|]+$`)

func init() {
	validate = validator.New()

	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("access_level", validateAccessLevel)
	validate.RegisterValidation("folder_name", validateFolderName)
	validate.RegisterValidation("sort_field", validateSortField)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct validates a struct using validator tags
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, e := range validationErrors {
			messages = append(messages, validationMessage(e))
		}
		return errors.New(strings.Join(messages, "; "))
	}
	return err
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	case "user_role":
		return fmt.Sprintf("%s must be one of admin, director, department, user", e.Field())
	case "access_level":
		return fmt.Sprintf("%s must be one of public, department, private", e.Field())
	case "folder_name":
		return fmt.Sprintf("%s contains characters not allowed in folder names", e.Field())
	case "sort_field":
		return fmt.Sprintf("%s must be one of name, date, size, type", e.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", e.Field(), e.Tag())
	}
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "admin", "director", "department", "user":
		return true
	}
	return false
}

func validateAccessLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "public", "department", "private":
		return true
	}
	return false
}

func validateFolderName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	if name == "" || len(name) > 255 {
		return false
	}
	return folderNamePattern.MatchString(name)
}

func validateSortField(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "name", "date", "size", "type":
		return true
	}
	return false
}
