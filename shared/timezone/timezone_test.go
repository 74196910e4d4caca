package timezone_test

import (
	"encore/shared/constant"
	"encore/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUsesAppLocation(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestFormat(t *testing.T) {
	instant := time.Date(2025, 6, 1, 19, 30, 0, 0, time.UTC)

	assert.Equal(t, instant.In(timezone.GetLocation()).Format(constant.DateFormat), timezone.Format(instant, constant.DateFormat))
	assert.Empty(t, timezone.Format(time.Time{}, constant.DateFormat))
}

func TestParseDay(t *testing.T) {
	parsed, err := timezone.Parse(constant.DayFormat, "2025-06-01")

	require.NoError(t, err)
	assert.Equal(t, 1, parsed.Day())
	assert.Equal(t, timezone.GetLocation(), parsed.Location())

	_, err = timezone.Parse(constant.DayFormat, "June 1st")
	assert.Error(t, err)
}
