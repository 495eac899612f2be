package validation

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Password policy errors, reported in evaluation order.
var (
	ErrPasswordTooShort      = errors.New("password must be at least 6 characters long")
	ErrPasswordMissingDigit  = errors.New("password must contain a digit")
	ErrPasswordMissingLetter = errors.New("password must contain a letter")
)

// MinPasswordLength is counted in characters, not bytes.
const MinPasswordLength = 6

// Registration is the candidate account typed at the console. Name and email
// are accepted as typed; only the password is checked.
type Registration struct {
	Name     string
	Email    string
	Password string `validate:"min=6,hasdigit,hasletter"`
}

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with the custom password tags
// registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("hasdigit", func(fl validator.FieldLevel) bool {
			return containsRune(fl.Field().String(), unicode.IsDigit)
		})
		_ = v.RegisterValidation("hasletter", func(fl validator.FieldLevel) bool {
			return containsRune(fl.Field().String(), unicode.IsLetter)
		})
		validate = v
	})
	return validate
}

// ValidatePassword applies the policy to a bare password.
func ValidatePassword(password string) error {
	return ValidateRegistration(Registration{Password: password})
}

// ValidateRegistration checks r and returns the first failing rule.
func ValidateRegistration(r Registration) error {
	err := Validator().Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	return toPolicyError(verrs[0])
}

func toPolicyError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "min":
		return ErrPasswordTooShort
	case "hasdigit":
		return ErrPasswordMissingDigit
	case "hasletter":
		return ErrPasswordMissingLetter
	default:
		return fe
	}
}

func containsRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}
	return false
}
