package rest

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation describes one failed field rule.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("strongpassword", validateStrongPassword); err != nil {
		panic(fmt.Sprintf("register strongpassword validation: %v", err))
	}
	if err := v.RegisterValidation("bcryptlen", validateBcryptLength); err != nil {
		panic(fmt.Sprintf("register bcryptlen validation: %v", err))
	}
	return v
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	return IsStrongPassword(fl.Field().String())
}

// MaxPasswordBytes is the longest input bcrypt hashes. max= counts runes,
// so the limit is checked on bytes by its own rule.
const MaxPasswordBytes = 72

func validateBcryptLength(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxPasswordBytes
}

// IsStrongPassword accepts a blank value; otherwise it needs an ASCII
// upper-case letter, an ASCII digit and a character outside [A-Za-z0-9].
// Length is checked by a separate rule.
func IsStrongPassword(value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range value {
		switch {
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		case 'a' <= r && r <= 'z':
		default:
			hasSpecial = true
		}
	}
	return hasUpper && hasDigit && hasSpecial
}

// ValidateRequest returns nil when req satisfies its validate tags.
func ValidateRequest(req interface{}) []Violation {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{{Field: "", Rule: "invalid", Message: err.Error()}}
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: violationMessage(fe),
		})
	}
	return violations
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " wajib diisi"
	case "email":
		return "Format email tidak valid"
	case "min":
		return fmt.Sprintf("%s minimal %s karakter", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s maksimal %s karakter", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s harus salah satu dari: %s", fe.Field(), fe.Param())
	case "bcryptlen":
		return fmt.Sprintf("%s maksimal %d byte", fe.Field(), MaxPasswordBytes)
	case "strongpassword":
		return "Password harus mengandung huruf besar, angka, dan karakter spesial"
	default:
		return fmt.Sprintf("%s tidak valid", fe.Field())
	}
}
