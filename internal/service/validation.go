// File: internal/service/validation.go
package service

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"course-market/internal/model"
)

// PasswordPolicy holds the strong-password thresholds. Counts are per
// character class.
type PasswordPolicy struct {
	MinLength    int
	MinLowercase int
	MinUppercase int
	MinNumbers   int
	MinSymbols   int
}

// DefaultPasswordPolicy mirrors the defaults of validator.js isStrongPassword.
var DefaultPasswordPolicy = PasswordPolicy{
	MinLength:    8,
	MinLowercase: 1,
	MinUppercase: 1,
	MinNumbers:   1,
	MinSymbols:   1,
}

// Valid reports whether the password satisfies every threshold of the policy.
func (p PasswordPolicy) Valid(password string) bool {
	var lower, upper, number, symbol int
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower++
		case unicode.IsUpper(r):
			upper++
		case unicode.IsDigit(r):
			number++
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol++
		}
	}
	return len(password) >= p.MinLength &&
		lower >= p.MinLowercase &&
		upper >= p.MinUppercase &&
		number >= p.MinNumbers &&
		symbol >= p.MinSymbols
}

// IsValidUsername reports whether the username is 4 to 30 bytes long and
// contains no space.
func IsValidUsername(username string) bool {
	return len(username) >= 4 && len(username) <= 30 &&
		!strings.Contains(username, " ")
}

// IsValidPassword checks the password against the default policy.
func IsValidPassword(password string) bool {
	return DefaultPasswordPolicy.Valid(password)
}

// CourseDetails carries raw course fields as received from the API layer.
// Numeric and boolean fields stay strings until sanitized and validated.
type CourseDetails struct {
	Title       string
	Description string
	Price       string
	ImageLink   string
	Published   string
}

// SanitizeCourseDetails trims surrounding whitespace from every field. It
// must run before validation, which rejects surrounding garbage.
func SanitizeCourseDetails(d CourseDetails) CourseDetails {
	return CourseDetails{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Price:       strings.TrimSpace(d.Price),
		ImageLink:   strings.TrimSpace(d.ImageLink),
		Published:   strings.TrimSpace(d.Published),
	}
}

// ValidCourseDetails is the all-or-nothing check over sanitized details:
// title 10-50 bytes, description 50-500 bytes, both non-blank; price an
// integer 0..100000 without leading zeros; image link a parseable http(s)
// URL; published boolean-like.
func ValidCourseDetails(d CourseDetails) bool {
	return validTitle(d.Title) &&
		validDescription(d.Description) &&
		validPrice(d.Price) &&
		validImageLink(d.ImageLink) &&
		validPublished(d.Published)
}

// Course converts validated details into a course record. Call only after
// ValidCourseDetails has passed; parse failures are impossible then.
func (d CourseDetails) Course() model.Course {
	price, _ := strconv.Atoi(d.Price)
	return model.Course{
		Title:       d.Title,
		Description: d.Description,
		Price:       price,
		ImageLink:   d.ImageLink,
		Published:   d.Published == "true" || d.Published == "1",
	}
}

func validTitle(s string) bool {
	return len(s) >= 10 && len(s) <= 50 && strings.TrimSpace(s) != ""
}

func validDescription(s string) bool {
	return len(s) >= 50 && len(s) <= 500 && strings.TrimSpace(s) != ""
}

// validPrice accepts decimal integers with no leading zeros, in 0..100000.
func validPrice(s string) bool {
	digits := s
	if strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		digits = digits[1:]
	}
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	if len(digits) > 1 && digits[0] == '0' {
		return false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= 0 && n <= 100000
}

func validImageLink(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validPublished(s string) bool {
	switch s {
	case "true", "false", "0", "1":
		return true
	}
	return false
}
