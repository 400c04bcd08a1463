package validation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("name", "Alice", v)
	Required("email", "   ", v)
	Required("tel", "", v)

	assert.False(t, v.Empty())
	assert.NotContains(t, v, "name")
	assert.Equal(t, "required", v["email"])
	assert.Equal(t, "required", v["tel"])
}

func TestRequiredUintRejectsZero(t *testing.T) {
	v := Violations{}
	zero := uint(0)
	one := uint(1)
	RequiredUint("missing", nil, v)
	RequiredUint("zero", &zero, v)
	RequiredUint("ok", &one, v)

	assert.Contains(t, v, "missing")
	assert.Contains(t, v, "zero")
	assert.NotContains(t, v, "ok")
}

func TestRequiredIntAllowsZero(t *testing.T) {
	v := Violations{}
	zero := 0
	RequiredInt("missing", nil, v)
	RequiredInt("zero", &zero, v)

	assert.Contains(t, v, "missing")
	assert.NotContains(t, v, "zero", "a zero quantity is a legitimate value")
}

func TestRequiredDecimalAndTime(t *testing.T) {
	v := Violations{}
	price := decimal.NewFromFloat(9.99)
	now := time.Now()
	var zeroTime time.Time
	RequiredDecimal("price", &price, v)
	RequiredDecimal("missing_price", nil, v)
	RequiredTime("date", &now, v)
	RequiredTime("missing_date", nil, v)
	RequiredTime("zero_date", &zeroTime, v)

	assert.NotContains(t, v, "price")
	assert.Contains(t, v, "missing_price")
	assert.NotContains(t, v, "date")
	assert.Contains(t, v, "missing_date")
	assert.Contains(t, v, "zero_date")
}

func TestPositiveInt(t *testing.T) {
	v := Violations{}
	PositiveInt("ok", 3, v)
	PositiveInt("zero", 0, v)
	PositiveInt("negative", -2, v)

	assert.NotContains(t, v, "ok")
	assert.Equal(t, "must_be_positive", v["zero"])
	assert.Equal(t, "must_be_positive", v["negative"])
}

func TestOneOf(t *testing.T) {
	allowed := []string{"pending", "completed", "canceled"}

	v := Violations{}
	OneOf("status", "completed", allowed, v)
	assert.True(t, v.Empty())

	OneOf("status", "shipped", allowed, v)
	assert.Equal(t, "invalid_value", v["status"])

	// Empty values are a presence concern, not a set membership one.
	v = Violations{}
	OneOf("status", "", allowed, v)
	assert.True(t, v.Empty())
}
