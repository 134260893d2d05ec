package common

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-z0-9_.]+$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidateStruct runs the `validate` tags on s and reports the first failure
// as InvalidArgument.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return InvalidArgument("invalid request")
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required", "notblank", "required_without":
		return InvalidArgument("%s is required", fe.Field())
	case "email":
		return InvalidArgument("invalid email format")
	case "min", "max":
		return InvalidArgument("%s must be between the allowed length", fe.Field())
	default:
		return InvalidArgument("%s is invalid", fe.Field())
	}
}

// NormalizeUsername lowercases and trims; usernames are stored in this form.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateUsername(username string) error {
	username = NormalizeUsername(username)
	if len(username) < 3 || len(username) > 30 {
		return InvalidArgument("username must be between 3 and 30 characters")
	}
	if !usernameRegex.MatchString(username) {
		return InvalidArgument("username can only contain letters, numbers, dots and underscores")
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return InvalidArgument("password must be at least 6 characters long")
	}
	if len(password) > 72 {
		return InvalidArgument("password must be at most 72 characters long")
	}
	return nil
}

func ValidateEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return InvalidArgument("email is required")
	}
	if !emailRegex.MatchString(email) {
		return InvalidArgument("invalid email format")
	}
	return nil
}

// RequireText trims value and fails when nothing is left.
func RequireText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", InvalidArgument("%s is required", field)
	}
	return value, nil
}
