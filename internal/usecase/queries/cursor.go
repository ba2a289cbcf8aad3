package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"checkout-engine/internal/pkg/errs"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)

type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeSeqCursor encodes an exclusive audit sequence position.
func EncodeSeqCursor(seq int64) string {
	data := fmt.Sprintf("%s:%d", CursorVersionV1, seq)
	return base64.URLEncoding.EncodeToString([]byte(data))
}

// DecodeSeqCursor also accepts a bare decimal sequence number.
func DecodeSeqCursor(cursor string) (int64, error) {
	if cursor == "" {
		return 0, fmt.Errorf("cursor cannot be empty")
	}

	if decoded, err := base64.URLEncoding.DecodeString(cursor); err == nil {
		decodedStr := string(decoded)
		if strings.HasPrefix(decodedStr, CursorVersionV1+":") {
			return parseSeq(strings.TrimPrefix(decodedStr, CursorVersionV1+":"))
		}
	}

	return parseSeq(cursor)
}

func parseSeq(s string) (int64, error) {
	seq, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid sequence: %w", err)
	}
	if seq < 0 {
		return 0, fmt.Errorf("sequence cannot be negative")
	}
	return seq, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
