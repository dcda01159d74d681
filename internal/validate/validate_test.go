package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string  `json:"email" validate:"required,email"`
	Name   string  `json:"name" validate:"required,min=1,max=10"`
	Phone  string  `json:"phone" validate:"omitempty,phone"`
	Rating float64 `json:"rating" validate:"gte=1,lte=5"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(sampleRequest{Email: "a@b.com", Name: "Sam", Phone: "+61412345678", Rating: 4})
	assert.Nil(t, errs)
}

func TestStructFieldNamesUseJSONTags(t *testing.T) {
	errs := Struct(sampleRequest{Name: "Sam", Rating: 3})
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "field is required", errs[0].Message)
}

func TestStructCollectsAllViolations(t *testing.T) {
	errs := Struct(sampleRequest{Email: "nope", Name: "", Rating: 9})
	require.Len(t, errs, 3)

	fields := map[string]string{}
	for _, e := range errs {
		fields[e.Field] = e.Message
	}
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "field is required", fields["name"])
	assert.Equal(t, "must be 5 or less", fields["rating"])
}

func TestPhoneTag(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		ok    bool
	}{
		{name: "e164", phone: "+61412345678", ok: true},
		{name: "spaces and parens", phone: "(02) 9876 5432 11", ok: true},
		{name: "dashes", phone: "0412-345-678", ok: true},
		{name: "too short", phone: "12345", ok: false},
		{name: "letters", phone: "04real2345678", ok: false},
		{name: "too long", phone: "+1234567890123456", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Struct(sampleRequest{Email: "a@b.com", Name: "x", Phone: tt.phone, Rating: 3})
			if tt.ok {
				assert.Nil(t, errs)
			} else {
				require.Len(t, errs, 1)
				assert.Equal(t, "phone", errs[0].Field)
				assert.Equal(t, "must be a valid phone number", errs[0].Message)
			}
		})
	}
}
