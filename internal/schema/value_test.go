package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStringify(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "HOT", Stringify("HOT"))
	assert.Equal(t, "25000", Stringify(25000.0))
	assert.Equal(t, "12.5", Stringify(12.5))
	assert.Equal(t, "42", Stringify(42))
	assert.Equal(t, "a,b", Stringify([]string{"a", "b"}))
	assert.Equal(t, "2024-01-15", Stringify(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-15T09:30:00Z", Stringify(time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty([]string{}))
	assert.True(t, IsEmpty([]string(nil)))
	assert.False(t, IsEmpty(" "))
	assert.False(t, IsEmpty(0.0))
	assert.False(t, IsEmpty([]string{"x"}))
}

func TestFloat(t *testing.T) {
	f, ok := Float("10000")
	assert.True(t, ok)
	assert.Equal(t, 10000.0, f)

	f, ok = Float(" 12.5 ")
	assert.True(t, ok)
	assert.Equal(t, 12.5, f)

	for _, bad := range []any{nil, "", "   ", "abc", true} {
		_, ok := Float(bad)
		assert.False(t, ok, "%v", bad)
	}
}

func TestTime(t *testing.T) {
	got, ok := Time("2024-01-15")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got.UTC())

	_, ok = Time("2024-01-15T10:00:00Z")
	assert.True(t, ok)

	for _, bad := range []any{nil, "", "not-a-date", time.Time{}} {
		_, ok := Time(bad)
		assert.False(t, ok, "%v", bad)
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, Fold("ann lee"), Fold("ANN LEE"))
	assert.Equal(t, Fold("strasse"), Fold("STRASSE"))
}
