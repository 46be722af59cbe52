package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Iron-Ham/dialogorithm/internal/errors"
	"github.com/Iron-Ham/dialogorithm/internal/phoneformat"
)

func TestValidateRequest_Field(t *testing.T) {
	_, err := ValidateRequest(Request{CallingCode: 1, LocalNumber: "12"}, 4)

	var verr *errors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "local_number", verr.Field)
	assert.Equal(t, "enter a local number with at least 4 digits", verr.Message())
}

func TestValidateRequest_DefaultMinimum(t *testing.T) {
	_, err := ValidateRequest(Request{CallingCode: 1, LocalNumber: "123"}, 0)
	assert.ErrorIs(t, err, errors.ErrTooShort)

	local, err := ValidateRequest(Request{CallingCode: 1, LocalNumber: "1234"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "1234", local)
}

func TestValidateRequest_AgreesWithDigitLimit(t *testing.T) {
	codes := phoneformat.AllCallingCodes()
	rapid.Check(t, func(t *rapid.T) {
		code := rapid.SampledFrom(codes).Draw(t, "code")
		n := rapid.IntRange(4, 16).Draw(t, "length")
		local := strings.Repeat("7", n)

		_, err := ValidateRequest(Request{CallingCode: code, LocalNumber: local}, 4)
		valid := phoneformat.Validate(local, code)
		if valid != (err == nil) {
			t.Fatalf("code %d length %d: Validate=%v err=%v", code, n, valid, err)
		}
	})
}

func TestRawDisplay(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"+15551234567", "+1 (555) 123-4567"},
		{"+44 7911 123456", "+44 7911 123456"},
		{"5551234567", "555 123 4567"},
		{"+1234", "+1234"},
		{"+0044 7911 123456", "+0044 7911 123456"},
		{"+001 555 123 4567", "+001 (555) 123-4567"},
		{"+99999999999999999999 555 123 4567", "+99999999999999999999 555 123 4567"},
	}
	for _, tt := range tests {
		got, err := RawDisplay(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}

	_, err := RawDisplay("no digits")
	assert.ErrorIs(t, err, errors.ErrEmptyInput)
}
