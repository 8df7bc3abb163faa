package textutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "2024年3月5日", FormatDate(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)))
}

func TestConvertToTimezone(t *testing.T) {
	ts := time.Date(2024, 3, 5, 6, 30, 0, 0, time.UTC)

	got, err := ConvertToTimezone(ts, "")
	require.NoError(t, err)
	assert.Equal(t, "2024/03/05 14:30", got)

	got, err = ConvertToTimezone(ts, "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "2024/03/05 01:30", got)

	_, err = ConvertToTimezone(ts, "Mars/Olympus")
	assert.Error(t, err)

	got, err = ConvertToTimezone(time.Time{}, "UTC")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIsValidTimezone(t *testing.T) {
	assert.True(t, IsValidTimezone("Asia/Shanghai"))
	assert.True(t, IsValidTimezone("UTC"))
	assert.False(t, IsValidTimezone(""))
	assert.False(t, IsValidTimezone("Nowhere/Land"))
}
