package numberutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("90210"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("902a0"))
	assert.True(t, IsDigitsIgnoringSpaces("902 10"))
	assert.False(t, IsDigitsIgnoringSpaces("   "))
	assert.False(t, IsDigitsIgnoringSpaces("New York"))
}

func TestToPositiveInt64(t *testing.T) {
	n, err := ToPositiveInt64("42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), n)

	_, err = ToPositiveInt64("0")
	assert.Error(t, err)
	_, err = ToPositiveInt64("abc")
	assert.Error(t, err)
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 100, ClampInt(500, 1, 100))
	assert.Equal(t, 1, ClampInt(-2, 1, 100))
}
