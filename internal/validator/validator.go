// Package validator provides a Validator type for accumulating field-level
// validation errors, plus the format predicates shared by the handler and
// service layers.
package validator

import (
	"regexp"
	"strings"
)

// EmailRX is the email pattern the original user records were validated
// against. It is deliberately loose (no unicode classes).
var EmailRX = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

// PhoneRX matches exactly ten digits.
var PhoneRX = regexp.MustCompile(`^\d{10}$`)

// ObjectIDRX matches the 24-character hexadecimal identifiers used by the
// document store.
var ObjectIDRX = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// Honorifics are the only accepted values for a user's title.
var Honorifics = []string{"Mr", "Mrs", "Miss"}

// Validator holds a map of field names to validation error messages and
// remembers the order failures were recorded in. A Validator with an empty
// Errors map is valid.
type Validator struct {
	Errors map[string]string
	keys   []string
}

// New creates a fresh, empty Validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if the Errors map contains no entries.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records key as failing with the given message. The first failure
// recorded for a field wins; later ones are ignored.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
		v.keys = append(v.keys, key)
	}
}

// First returns the message of the earliest recorded failure, or the empty
// string for a valid Validator. Responses report a single message, so the
// check recorded first is the one a client sees.
func (v *Validator) First() string {
	if len(v.keys) == 0 {
		return ""
	}
	return v.Errors[v.keys[0]]
}

// Check adds an error for key with message only when ok is false.
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// NotBlank returns true if value contains at least one non-whitespace
// character.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Matches returns true if value matches the compiled regexp.
func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

// In returns true if value is present in list.
func In(value string, list ...string) bool {
	for _, item := range list {
		if value == item {
			return true
		}
	}
	return false
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return Matches(s, EmailRX)
}

// ValidPhone reports whether s is exactly ten digits.
func ValidPhone(s string) bool {
	return Matches(s, PhoneRX)
}

// ValidHonorific reports whether s is one of the accepted title values.
func ValidHonorific(s string) bool {
	return In(s, Honorifics...)
}

// ValidRating reports whether n is a whole-star rating between one and five.
func ValidRating(n int) bool {
	return n >= 1 && n <= 5
}

// ValidObjectID reports whether s is a well-formed document identifier.
func ValidObjectID(s string) bool {
	return Matches(s, ObjectIDRX)
}
