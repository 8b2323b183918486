package domain

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	nameMinLen = 2
	nameMaxLen = 32

	passwordMinLen = 4
	passwordMaxLen = 16
)

var (
	nameCharset = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	// local@domain.tld with an optional second domain label ("example.de.org").
	emailShape = regexp.MustCompile(`^[0-9A-Za-z_.]+@[0-9A-Za-z_]+\.[0-9A-Za-z_]+(\.[0-9A-Za-z_]+)?$`)
)

func isNameSeparator(r byte) bool {
	return r == '.' || r == '_' || r == '-'
}

// ValidateName checks a first or last name: 2-32 characters, alphanumeric
// plus '.', '_' and '-', no leading or trailing separator, and no two
// adjacent separators anywhere inside.
func ValidateName(field, v string) error {
	invalid := &ValidationError{
		Field:   field,
		Message: "must be 2-32 characters, alphanumeric with '.', '_' or '-', no separator at the edges and no doubled separators",
	}

	if n := utf8.RuneCountInString(v); n < nameMinLen || n > nameMaxLen {
		return invalid
	}
	if !nameCharset.MatchString(v) {
		return invalid
	}
	if isNameSeparator(v[0]) || isNameSeparator(v[len(v)-1]) {
		return invalid
	}
	for i := 1; i < len(v); i++ {
		if isNameSeparator(v[i]) && isNameSeparator(v[i-1]) {
			return invalid
		}
	}
	return nil
}

// ValidateEmail checks a conventional address shape: a non-empty local part
// that does not start or end with '.', exactly one '@', a domain of one or
// two dot-separated labels, and no whitespace anywhere.
func ValidateEmail(v string) error {
	invalid := &ValidationError{
		Field:   "email",
		Message: "must be a valid address: no whitespace, single '@', local part not starting or ending with '.'",
	}

	if strings.Count(v, "@") != 1 {
		return invalid
	}
	local := v[:strings.Index(v, "@")]
	if local == "" || strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return invalid
	}
	if !emailShape.MatchString(v) {
		return invalid
	}
	return nil
}

// ValidatePassword checks the password policy: 4-16 characters, no
// whitespace, at least one digit, one uppercase letter, one lowercase
// letter, and one special character. A special character is anything that
// is not alphanumeric, whitespace or ':'.
func ValidatePassword(v string) error {
	invalid := &ValidationError{
		Field:   "password",
		Message: "must be 4-16 characters without whitespace, with at least one digit, one uppercase, one lowercase and one special character",
	}

	if n := utf8.RuneCountInString(v); n < passwordMinLen || n > passwordMaxLen {
		return invalid
	}

	var digit, upper, lower, special bool
	for _, r := range v {
		switch {
		case unicode.IsSpace(r):
			return invalid
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsLetter(r):
			// caseless letters are alphanumeric, not special
		case r != ':':
			special = true
		}
	}
	if !digit || !upper || !lower || !special {
		return invalid
	}
	return nil
}

// ValidatePagination checks that both pagination parameters are >= 1.
func ValidatePagination(page, perPage int) error {
	if page < 1 {
		return &ValidationError{Field: "page", Message: "must be greater than or equal to 1"}
	}
	if perPage < 1 {
		return &ValidationError{Field: "per_page", Message: "must be greater than or equal to 1"}
	}
	return nil
}
