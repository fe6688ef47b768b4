package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationProbe struct {
	Serial    string `validate:"omitempty,serial_number"`
	Phone     string `validate:"omitempty,phone_number"`
	Reference string `validate:"omitempty,reference_code"`
	Email     string `validate:"omitempty,email"`
}

func newProbeValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestSerialNumberValidation(t *testing.T) {
	v := newProbeValidator(t)

	assert.NoError(t, v.Struct(validationProbe{Serial: "SN-2024/0042"}))
	assert.NoError(t, v.Struct(validationProbe{Serial: "GE.MRI_7700"}))

	assert.Error(t, v.Struct(validationProbe{Serial: "X"}))
	assert.Error(t, v.Struct(validationProbe{Serial: "-commence-mal"}))
	assert.Error(t, v.Struct(validationProbe{Serial: "avec espace 12"}))
}

func TestPhoneNumberValidation(t *testing.T) {
	v := newProbeValidator(t)

	assert.NoError(t, v.Struct(validationProbe{Phone: "+212612345678"}))
	assert.NoError(t, v.Struct(validationProbe{Phone: "05 22 33 44 55"}))

	assert.Error(t, v.Struct(validationProbe{Phone: "1234"}))
	assert.Error(t, v.Struct(validationProbe{Phone: "06-12-34-56-78"}))
}

func TestReferenceCodeValidation(t *testing.T) {
	v := newProbeValidator(t)

	assert.NoError(t, v.Struct(validationProbe{Reference: "BC-2024/015"}))

	assert.Error(t, v.Struct(validationProbe{Reference: "B"}))
	assert.Error(t, v.Struct(validationProbe{Reference: "réf_accentuée"}))
}

func TestEmailValidationOverride(t *testing.T) {
	v := newProbeValidator(t)

	assert.NoError(t, v.Struct(validationProbe{Email: "amina.berrada@hopital.local"}))

	assert.Error(t, v.Struct(validationProbe{Email: "sans-arobase.example.com"}))
	assert.Error(t, v.Struct(validationProbe{Email: "a@b"}))
}
