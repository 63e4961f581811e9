package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	MaxListLimit     = 200
	DefaultListLimit = 50
	CursorVersionV1  = "v1"
)

// Cursors are opaque offsets. Status priority ordering rules out keyset
// pagination on created_at alone.
func EncodeOffsetCursor(offset int) string {
	cursorData := fmt.Sprintf("%s:%d", CursorVersionV1, offset)
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeOffsetCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return 0, fmt.Errorf("unsupported cursor version")
	}

	offset, err := strconv.Atoi(payload)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid cursor offset %q", payload)
	}
	return offset, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func ValidateLimit(limit, fallback int) int {
	if limit <= 0 {
		if fallback <= 0 {
			return DefaultListLimit
		}
		limit = fallback
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
