// Package signature provides the heading lines printed above a rendered
// number.
package signature

import (
	"slices"
	"strings"

	"github.com/Iron-Ham/dialogorithm/internal/expression"
)

// Choice values with special meaning.
const (
	Random = "Random"
	Custom = "Custom"
)

// Fallback is used when a custom signature is blank.
const Fallback = "Please call me at:"

var presets = []string{
	"Please call me at:",
	"Contact me:",
	"Reach out via:",
	"Phone:",
	"Business line:",
	"Available at:",
	"You can reach me at:",
	"My direct line:",
	"Telephone:",
	"Feel free to call:",
	"For further assistance:",
	"Professional contact:",
	"Main line:",
	"Office line:",
	"Direct dial:",
	"Kindly reach out at:",
	"Primary contact:",
	"Call for inquiries:",
	"Reach my desk at:",
	"Client services line:",
}

var fixedChoices = []string{
	"Please call me at:",
	"Contact me:",
	"Reach out via:",
	"Phone:",
	"Business line:",
	"Available at:",
	"You can reach me at:",
	"My direct line:",
	"Feel free to call:",
	"Professional contact:",
}

// Presets returns every line Random can pick from.
func Presets() []string {
	return slices.Clone(presets)
}

// Choices returns the options offered to the user: Random, the fixed lines,
// then Custom.
func Choices() []string {
	out := make([]string, 0, len(fixedChoices)+2)
	out = append(out, Random)
	out = append(out, fixedChoices...)
	return append(out, Custom)
}

// IsChoice reports whether choice is one of Choices, ignoring case.
func IsChoice(choice string) bool {
	for _, c := range Choices() {
		if strings.EqualFold(c, choice) {
			return true
		}
	}
	return false
}

// PickRandom returns a uniformly chosen preset.
func PickRandom(rng expression.Rand) string {
	return presets[rng.IntN(len(presets))]
}

// Resolve turns a choice into the signature text. Random picks a preset,
// Custom uses custom (or Fallback when blank), an empty choice means Random,
// and anything else is used verbatim.
func Resolve(choice, custom string, rng expression.Rand) string {
	switch {
	case choice == "" || strings.EqualFold(choice, Random):
		return PickRandom(rng)
	case strings.EqualFold(choice, Custom):
		if text := strings.TrimSpace(custom); text != "" {
			return text
		}
		return Fallback
	default:
		return choice
	}
}
