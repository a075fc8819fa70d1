// Copyright (c) 2026 Advora. All rights reserved.

package pagination

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Direction indicates which way a cursor traverses the result set.
type Direction string

const (
	// DirectionForward pages toward later rows in the sorted order.
	DirectionForward Direction = "forward"
	// DirectionBackward pages toward earlier rows in the sorted order.
	DirectionBackward Direction = "backward"
)

// IsValid reports whether d is a recognised [Direction] value.
func (d Direction) IsValid() bool {
	return d == DirectionForward || d == DirectionBackward
}

// Cursor is the logical payload of an opaque pagination token: the row
// reference (field name plus value) and the traversal direction.
//
// # Opacity
//
// Clients must treat the encoded token as a black box. The wire format is
// base64-encoded JSON, but that is an implementation detail subject to change.
type Cursor struct {
	Field     string    `json:"field"`
	Value     any       `json:"value"`
	Direction Direction `json:"direction"`
}

// EncodeCursor serializes a [Cursor] into its opaque token form.
func EncodeCursor(c Cursor) string {
	payload, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(payload)
}

// DecodeCursor parses an opaque token back into a [Cursor].
//
// It returns false for any token that is not valid base64, not valid JSON,
// or that lacks the required field name or direction. Callers treat a false
// result as "start from the first page"; no error is ever propagated.
func DecodeCursor(token string) (Cursor, bool) {
	if token == "" {
		return Cursor{}, false
	}

	payload, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, false
	}

	var cursor Cursor
	if err := json.Unmarshal(payload, &cursor); err != nil {
		return Cursor{}, false
	}

	if cursor.Field == "" || !cursor.Direction.IsValid() {
		return Cursor{}, false
	}
	return cursor, true
}

// canonical renders a cursor-comparable value as a stable string. JSON
// round-trips turn numbers into float64 and timestamps into RFC 3339 strings;
// normalizing both sides keeps equality checks honest.
func canonical(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(v)
	}
}
