package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Iron-Ham/dialogorithm/internal/compose"
	"github.com/Iron-Ham/dialogorithm/internal/errors"
	"github.com/Iron-Ham/dialogorithm/internal/phoneformat"
)

// DefaultMinLocalDigits is the shortest local number accepted.
const DefaultMinLocalDigits = 4

// Request is one generation from a selected country and a local number.
type Request struct {
	// CallingCode is the country calling code without "+".
	CallingCode int
	// LocalNumber holds the local digits.
	LocalNumber string
	// Signature is a choice as understood by signature.Resolve. Empty means
	// the configured default.
	Signature string
	// CustomSignature is the text used when Signature is "Custom".
	CustomSignature string
}

// ValidateRequest checks req and returns its local digits. Errors are
// ValidationErrors whose cause is ErrMissingCountry, ErrTooShort, ErrTooLong
// or ErrInvalidInput.
func ValidateRequest(req Request, minDigits int) (string, error) {
	if minDigits < 1 {
		minDigits = DefaultMinLocalDigits
	}
	if req.CallingCode <= 0 {
		return "", errors.NewValidationError("select a country first").
			WithField("country").
			WithCause(errors.ErrMissingCountry)
	}

	local := strings.TrimSpace(req.LocalNumber)
	if phoneformat.StripNonDigits(local) != local {
		return "", errors.NewValidationError("the local number may only contain digits").
			WithField("local_number").
			WithValue(local).
			WithCause(errors.ErrInvalidInput)
	}
	if len(local) < minDigits {
		return "", errors.NewValidationError(
			fmt.Sprintf("enter a local number with at least %d digits", minDigits)).
			WithField("local_number").
			WithValue(local).
			WithCause(errors.ErrTooShort)
	}
	if limit := phoneformat.DigitLimit(req.CallingCode); len(local) > limit {
		return "", errors.NewValidationError(
			fmt.Sprintf("+%d allows at most %d local digits", req.CallingCode, limit)).
			WithField("local_number").
			WithValue(local).
			WithCause(errors.ErrTooLong)
	}
	return local, nil
}

// RawDisplay formats a free-form number the way Generate formats a request:
// "+<code> <formatted>" when a country code can be extracted.
func RawDisplay(number string) (string, error) {
	seg, err := compose.Segment(number)
	if err != nil {
		return "", err
	}
	if seg.CountryCode == "" {
		display := phoneformat.FormatDisplay(seg.Subscriber, 0)
		if seg.HasPlus {
			display = "+" + display
		}
		return display, nil
	}
	// The code is kept as typed; leading zeros are digits to render.
	code, err := strconv.Atoi(seg.CountryCode)
	if err != nil {
		code = 0
	}
	return "+" + seg.CountryCode + " " + phoneformat.FormatDisplay(seg.Subscriber, code), nil
}
