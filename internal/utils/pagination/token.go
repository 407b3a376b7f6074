package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// DefaultLimit is used when a caller asks for a page without a usable size.
const DefaultLimit = 50

// MaxLimit caps a single page.
const MaxLimit = 500

// ErrStaleToken is returned when the line before a token's offset no longer
// carries the date the token was issued with.
var ErrStaleToken = errors.New("pagination token is stale, restart from the first page")

// NormalizeLimit clamps a requested page size into [1, MaxLimit].
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EncodeOffsetToken creates a base64 token from the date of the last returned line
// and the offset of the next one. The date lets a decoder notice a log that shifted
// under the cursor.
func EncodeOffsetToken(lastDate time.Time, offset int) string {
	tokenStr := fmt.Sprintf("%s|%d", lastDate.Format(timeFormat), offset)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeOffsetToken parses a token created by EncodeOffsetToken.
func DecodeOffsetToken(token string) (time.Time, int, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (split)")
	}

	lastDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (offset)")
	}
	return lastDate, offset, nil
}

// Page slices items starting at the offset carried by nextToken. It returns the
// page and the token for the following one, empty when the log is exhausted.
func Page[T any](items []T, limit int, nextToken string, dateOf func(T) time.Time) ([]T, string, error) {
	limit = NormalizeLimit(limit)
	offset := 0
	if nextToken != "" {
		lastDate, off, err := DecodeOffsetToken(nextToken)
		if err != nil {
			return nil, "", err
		}
		if off == 0 || off > len(items) || !dateOf(items[off-1]).Equal(lastDate) {
			return nil, "", ErrStaleToken
		}
		offset = off
	}
	if offset >= len(items) {
		return []T{}, "", nil
	}

	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	page := items[offset:end]

	var token string
	if end < len(items) {
		token = EncodeOffsetToken(dateOf(page[len(page)-1]), end)
	}
	return page, token, nil
}
