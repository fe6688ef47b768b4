package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations enregistre les règles métier partagées par les DTO.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("serial_number", isSerialNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("phone_number", isPhoneNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("reference_code", isReferenceCode); err != nil {
		return err
	}
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}
	return nil
}

var (
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	serialRegex    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\-_/\.]{1,63}$`)
	phoneRegex     = regexp.MustCompile(`^\+?[0-9 ]{8,15}$`)
	referenceRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\-/]{1,31}$`)
)

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func isSerialNumber(fl validator.FieldLevel) bool {
	return serialRegex.MatchString(fl.Field().String())
}

func isPhoneNumber(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func isReferenceCode(fl validator.FieldLevel) bool {
	return referenceRegex.MatchString(fl.Field().String())
}
