package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateKey_Valid(t *testing.T) {
	for _, s := range []string{"20240101", "20241231", "19991231", "20240229"} {
		key, err := ParseDateKey(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, key.String())
	}
}

func TestParseDateKey_LeapDay(t *testing.T) {
	_, err := ParseDateKey("20240229")
	assert.NoError(t, err)

	// 2023 is not a leap year
	_, err = ParseDateKey("20230229")
	assert.Error(t, err)
}

func TestParseDateKey_InvalidMonth(t *testing.T) {
	_, err := ParseDateKey("20241301")
	assert.Error(t, err)
}

func TestParseDateKey_InvalidDay(t *testing.T) {
	_, err := ParseDateKey("20240230")
	assert.Error(t, err)

	_, err = ParseDateKey("20240432")
	assert.Error(t, err)
}

func TestParseDateKey_WrongLength(t *testing.T) {
	for _, s := range []string{"", "2024229", "202402290", "2024-02-29"} {
		_, err := ParseDateKey(s)
		assert.Error(t, err, s)
	}
}

func TestParseDateKey_NonDigits(t *testing.T) {
	_, err := ParseDateKey("2024abcd")
	assert.Error(t, err)
}

func TestDateKeyAt_UsesLocation(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	// 2024-03-01 23:30 UTC is already 2024-03-02 in Seoul (UTC+9).
	instant := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, DateKey("20240301"), DateKeyAt(instant, time.UTC))
	assert.Equal(t, DateKey("20240302"), DateKeyAt(instant, seoul))
}
