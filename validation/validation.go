package validation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Violations maps field names to violation codes. Handlers return it as the
// details of a 400 response.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// RequiredUint flags nil and zero: foreign keys and ids start at 1.
func RequiredUint(field string, value *uint, v Violations) {
	if value == nil || *value == 0 {
		v[field] = "required"
	}
}

func RequiredInt(field string, value *int, v Violations) {
	if value == nil {
		v[field] = "required"
	}
}

func RequiredDecimal(field string, value *decimal.Decimal, v Violations) {
	if value == nil {
		v[field] = "required"
	}
}

func RequiredTime(field string, value *time.Time, v Violations) {
	if value == nil || value.IsZero() {
		v[field] = "required"
	}
}

func PositiveInt(field string, value int, v Violations) {
	if value <= 0 {
		v[field] = "must_be_positive"
	}
}

// OneOf flags values outside a closed set. Presence is checked separately.
func OneOf(field, value string, allowed []string, v Violations) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v[field] = "invalid_value"
}
