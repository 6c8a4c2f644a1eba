// Package identifiers normalises and validates the patient identifier typed
// into the verification form.
package identifiers

import (
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const nationalIDLength = 13

var (
	freeFormPattern = regexp.MustCompile(`^[A-Z0-9-]{2,32}$`)
	digitsPattern   = regexp.MustCompile(`^[0-9]+$`)
)

// New returns the validator for scheme, defaulting to national ids.
func New(scheme string) contracts.IdentifierValidator {
	if scheme == constvars.IdentifierSchemeFreeForm {
		return FreeFormValidator{}
	}
	return NationalIDValidator{}
}

// NationalIDValidator accepts 13-digit national ids whose digits 3-4 and 5-6
// hold a plausible birth month and day. Month lengths and leap years are not checked.
type NationalIDValidator struct{}

func (NationalIDValidator) Scheme() string {
	return constvars.IdentifierSchemeNationalID
}

// Validate is total: anything that is not 13 digits once whitespace and dashes
// are removed, blank input included, is a length failure.
func (v NationalIDValidator) Validate(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if len(cleaned) != nationalIDLength || !digitsPattern.MatchString(cleaned) {
		return "", exceptions.ErrIdentifierLength(nil, v.Scheme())
	}
	if cleaned == strings.Repeat("0", nationalIDLength) {
		return "", exceptions.ErrIdentifierInvalid(nil, v.Scheme())
	}

	month, _ := strconv.Atoi(cleaned[2:4])
	if month < 1 || month > 12 {
		return "", exceptions.ErrIdentifierBirthMonth(nil, v.Scheme())
	}

	day, _ := strconv.Atoi(cleaned[4:6])
	if day < 1 || day > 31 {
		return "", exceptions.ErrIdentifierBirthDay(nil, v.Scheme())
	}

	return cleaned, nil
}

// FreeFormValidator accepts short patient codes such as "P101".
type FreeFormValidator struct{}

func (FreeFormValidator) Scheme() string {
	return constvars.IdentifierSchemeFreeForm
}

func (v FreeFormValidator) Validate(raw string) (string, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	if !freeFormPattern.MatchString(cleaned) {
		return "", exceptions.ErrIdentifierFormat(nil, v.Scheme())
	}
	return cleaned, nil
}
