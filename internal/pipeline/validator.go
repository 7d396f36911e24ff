package pipeline

import (
	"strings"
	"unicode/utf8"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/commonModels"
)

type Validator struct {
	minChars int
	maxChars int
}

// NewValidator builds a validator; minChars below 1 is raised to 1 and maxChars of 0 disables the cap.
func NewValidator(minChars, maxChars int) Validator {
	if minChars < 1 {
		minChars = 1
	}
	if maxChars < 0 {
		maxChars = 0
	}
	return Validator{minChars: minChars, maxChars: maxChars}
}

// Validate checks the trimmed length and hands back the untrimmed text on success.
func (v Validator) Validate(text string) commonModels.ValidationOutcome {
	trimmed := utf8.RuneCountInString(strings.TrimSpace(text))
	if trimmed < v.minChars {
		return commonModels.ValidationOutcome{Accepted: false, Reason: commonModels.ReasonTooShort}
	}
	if v.maxChars > 0 && trimmed > v.maxChars {
		return commonModels.ValidationOutcome{Accepted: false, Reason: commonModels.ReasonTooLong}
	}
	return commonModels.ValidationOutcome{Accepted: true, Text: text}
}

func (v Validator) MaxChars() int {
	return v.maxChars
}
