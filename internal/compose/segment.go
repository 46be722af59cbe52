package compose

import (
	"strings"

	"github.com/Iron-Ham/dialogorithm/internal/errors"
	"github.com/Iron-Ham/dialogorithm/internal/phoneformat"
)

// subscriberLength is the length of a grouped (NANP style) subscriber number.
const subscriberLength = 10

// Segments is a number split into its country code and subscriber digits.
type Segments struct {
	HasPlus     bool
	CountryCode string
	Subscriber  string
}

// Digits returns the country code followed by the subscriber digits.
func (s Segments) Digits() string {
	return s.CountryCode + s.Subscriber
}

// Grouped reports whether the subscriber is rendered as ( AAA ) EEE - LLLL.
func (s Segments) Grouped() bool {
	return len(s.Subscriber) == subscriberLength
}

// Segment strips formatting from number and splits it. A country code is
// only extracted from "+"-prefixed input: 11 digits starting with 1 give code
// "1", otherwise more than 10 digits give everything before the last 10.
func Segment(number string) (Segments, error) {
	digits := phoneformat.StripNonDigits(number)
	if digits == "" {
		return Segments{}, errors.NewEmptyInputError(number)
	}

	s := Segments{
		HasPlus:    strings.HasPrefix(strings.TrimSpace(number), "+"),
		Subscriber: digits,
	}
	if !s.HasPlus {
		return s, nil
	}

	switch {
	case len(digits) == subscriberLength+1 && digits[0] == '1':
		s.CountryCode, s.Subscriber = "1", digits[1:]
	case len(digits) > subscriberLength:
		cut := len(digits) - subscriberLength
		s.CountryCode, s.Subscriber = digits[:cut], digits[cut:]
	}
	return s, nil
}
