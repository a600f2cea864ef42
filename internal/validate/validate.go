package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reSize  = regexp.MustCompile(`^(S|M|L|XL|XXL)$`)

	// Forms validates admin CRUD form structs via struct tags.
	Forms = validator.New()
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ID validates a simple resource identifier (product/category ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Q normalizes a free-text search term. Unlike ids, queries may contain
// Somali text, so only length is bounded; the cut lands on a rune
// boundary so the echoed-back value stays valid UTF-8.
func Q(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 50 {
		cut := 50
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}

// Qty parses a quantity with a floor of 1; decrementing below 1 is a
// no-op rather than an error. An upper clamp keeps the WhatsApp message
// sane.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Size validates a garment size, defaulting to M.
func Size(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !reSize.MatchString(s) {
		return "M"
	}
	return s
}

// Price parses a non-negative price from a form field.
func Price(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Password enforces the admin password policy at login.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 64 {
		return false
	}
	return true
}
