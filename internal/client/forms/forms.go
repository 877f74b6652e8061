// Package forms holds the user-entered forms of the storefront and their
// validation rules.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PasswordMismatchMessage is reported when the confirmation differs from the
// password.
const PasswordMismatchMessage = "Passwords do not match"

// ValidationError names the first invalid field of a form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RegisterForm is the sign-up form.
type RegisterForm struct {
	Name            string `label:"Full Name" validate:"required"`
	Email           string `label:"Email" validate:"required,email"`
	Password        string `label:"Password" validate:"required"`
	ConfirmPassword string `label:"Confirm Password" validate:"eqfield=Password"`
}

// ShippingForm is the shipping section of checkout.
type ShippingForm struct {
	FirstName string `label:"First Name" validate:"required"`
	LastName  string `label:"Last Name" validate:"required"`
	Address   string `label:"Address" validate:"required"`
	City      string `label:"City" validate:"required"`
	State     string `label:"State" validate:"required"`
	ZIP       string `label:"ZIP Code" validate:"required"`
	Email     string `label:"Email" validate:"required,email"`
	Phone     string `label:"Phone" validate:"required"`
}

// PaymentForm is the payment section of checkout. It is only validated, never
// sent anywhere.
type PaymentForm struct {
	CardNumber string `label:"Card Number" validate:"required,numeric,min=12,max=19"`
	Expiry     string `label:"Expiration Date" validate:"required,expiry"`
	CVV        string `label:"CVV" validate:"required,numeric,min=3,max=4"`
	NameOnCard string `label:"Name on Card" validate:"required"`
}

var expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

// Validator checks forms and reports the first problem as *ValidationError.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return expiryRe.MatchString(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Register validates the sign-up form. A password mismatch is reported ahead
// of any other problem.
func (v *Validator) Register(f RegisterForm) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	return v.check(f)
}

func (v *Validator) Shipping(f ShippingForm) error {
	return v.check(f)
}

// Payment validates the card form. Spaces and dashes in the card number are
// ignored.
func (v *Validator) Payment(f PaymentForm) error {
	f.CardNumber = NormalizeCardNumber(f.CardNumber)
	f.Expiry = strings.TrimSpace(f.Expiry)
	f.CVV = strings.TrimSpace(f.CVV)
	return v.check(f)
}

// NormalizeCardNumber drops the separators people type between digit groups.
func NormalizeCardNumber(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(s))
}

// MaskCardNumber keeps only the last four digits visible.
func MaskCardNumber(s string) string {
	n := NormalizeCardNumber(s)
	if len(n) <= 4 {
		return n
	}
	return strings.Repeat("*", len(n)-4) + n[len(n)-4:]
}

func (v *Validator) check(form any) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate form: %w", err)
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "eqfield" {
			return toValidationError(fe)
		}
	}
	return toValidationError(fieldErrs[0])
}

func toValidationError(fe validator.FieldError) *ValidationError {
	label := fe.Field()
	var msg string

	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", label)
	case "email":
		msg = fmt.Sprintf("%s must be a valid email address", label)
	case "eqfield":
		msg = PasswordMismatchMessage
	case "numeric":
		msg = fmt.Sprintf("%s must contain digits only", label)
	case "min":
		msg = fmt.Sprintf("%s must have at least %s digits", label, fe.Param())
	case "max":
		msg = fmt.Sprintf("%s must have at most %s digits", label, fe.Param())
	case "expiry":
		msg = fmt.Sprintf("%s must be in MM/YY format", label)
	default:
		msg = fmt.Sprintf("%s is invalid", label)
	}

	return &ValidationError{Field: label, Message: msg}
}
