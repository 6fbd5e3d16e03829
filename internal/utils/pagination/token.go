package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates a URL-safe token from the timestamp and id of the last item on a page.
// Listings are ordered by timestamp then id, both descending, so the pair is a unique cursor.
func EncodeToken(timestamp time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", timestamp.UTC().Format(timeFormat), id)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token created by EncodeToken.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	timestamp, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (timestamp parse): %w", err)
	}
	return timestamp, parts[1], nil
}

// After reports whether an item sorts strictly after the cursor in a newest-first listing.
func After(timestamp time.Time, id string, cursorTime time.Time, cursorID string) bool {
	if timestamp.Equal(cursorTime) {
		return id < cursorID
	}
	return timestamp.Before(cursorTime)
}
