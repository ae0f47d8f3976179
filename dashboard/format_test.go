package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$64,000.5", FormatPrice(64000.5))
	assert.Equal(t, "$1,234.57", FormatPrice(1234.567))
	assert.Equal(t, "$0.5", FormatPrice(0.5))
	assert.Equal(t, "$0.000012", FormatPrice(0.00001234))
	assert.Equal(t, "$0", FormatPrice(0))
}

func TestFormatLarge(t *testing.T) {
	assert.Equal(t, "$1,200,000,000,000", FormatLarge(1.2e12))
	assert.Equal(t, "$1,000", FormatLarge(999.6))
	assert.Equal(t, "$0", FormatLarge(0))
}

func TestFormatCompact(t *testing.T) {
	assert.Equal(t, "$1.2T", FormatCompact(1.2e12))
	assert.Equal(t, "$5B", FormatCompact(5e9))
	assert.Equal(t, "$250", FormatCompact(250))
}

func TestFormatOptional(t *testing.T) {
	assert.Equal(t, "n/a", formatOptionalInt(nil))
	assert.Equal(t, "2017", formatOptionalInt(ptr(2017)))
	assert.Equal(t, "n/a", formatOptionalString(nil))
	assert.Equal(t, "Panama", formatOptionalString(ptr("Panama")))
}
