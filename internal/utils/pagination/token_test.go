package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeOffsetToken(t *testing.T) {
	lastDate := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)

	token := EncodeOffsetToken(lastDate, 40)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, offset, err := DecodeOffsetToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, lastDate, decodedDate)
	assert.Equal(t, 40, offset)
}

func TestDecodeOffsetTokenError(t *testing.T) {
	_, _, err := DecodeOffsetToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	invalidToken := "MjAyMy0wNS0xNVQwMDowMDowMFo=" // date without separator
	_, _, err = DecodeOffsetToken(invalidToken)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	negative := base64.StdEncoding.EncodeToString([]byte("2025-05-15T00:00:00Z|-3"))
	_, _, err = DecodeOffsetToken(negative)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "offset")
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-4))
	assert.Equal(t, 10, NormalizeLimit(10))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+1))
}

func TestPage(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	items := make([]time.Time, 5)
	for i := range items {
		items[i] = base.AddDate(0, 0, -i)
	}
	dateOf := func(d time.Time) time.Time { return d }

	first, token, err := Page(items, 2, "", dateOf)
	require.NoError(t, err)
	assert.Equal(t, items[:2], first)
	require.NotEmpty(t, token)

	second, token, err := Page(items, 2, token, dateOf)
	require.NoError(t, err)
	assert.Equal(t, items[2:4], second)

	last, token, err := Page(items, 2, token, dateOf)
	require.NoError(t, err)
	assert.Equal(t, items[4:], last)
	assert.Empty(t, token, "no token after the final page")

	_, _, err = Page(items, 2, "garbage!", dateOf)
	assert.Error(t, err)
}

func TestPage_StaleToken(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []time.Time{base, base.AddDate(0, 0, -1), base.AddDate(0, 0, -2), base.AddDate(0, 0, -3)}
	dateOf := func(d time.Time) time.Time { return d }

	_, token, err := Page(items, 2, "", dateOf)
	require.NoError(t, err)

	// A newer line lands at the head of the log and shifts everything down.
	shifted := append([]time.Time{base.AddDate(0, 0, 1)}, items...)
	_, _, err = Page(shifted, 2, token, dateOf)
	assert.ErrorIs(t, err, ErrStaleToken)

	_, _, err = Page(items[:1], 2, token, dateOf)
	assert.ErrorIs(t, err, ErrStaleToken, "offset past the end of a shrunk log")

	_, _, err = Page(items, 2, EncodeOffsetToken(base, 0), dateOf)
	assert.ErrorIs(t, err, ErrStaleToken)
}
