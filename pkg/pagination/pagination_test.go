// Copyright (c) 2026 Advora. All rights reserved.

package pagination_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fk-solace/advora/pkg/pagination"
)

type row struct {
	ID   string
	Name string
}

func rowFieldValue(item row, field string) (any, bool) {
	switch field {
	case "id":
		return item.ID, true
	case "name":
		return item.Name, true
	}
	return nil, false
}

func makeRows(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{ID: fmt.Sprintf("id-%03d", i), Name: fmt.Sprintf("name-%03d", i)}
	}
	return rows
}

/*
TestPaginate_OffsetMath verifies the offset-mode invariants across page and
size combinations: hasNextPage == (page*s < N), hasPreviousPage == (page > 1),
totalPages == ceil(N/s).
*/
func TestPaginate_OffsetMath(t *testing.T) {
	const total = 23
	rows := makeRows(total)

	for _, size := range []int{5, 10, 25, 50} {
		for page := 1; page <= 6; page++ {
			name := fmt.Sprintf("page_%d_size_%d", page, size)
			t.Run(name, func(t *testing.T) {
				window, meta := pagination.Paginate(rows, pagination.Request{
					Number: page, Size: size, CursorField: "id",
				}, rowFieldValue)

				assert.LessOrEqual(t, len(window), size)
				assert.Equal(t, total, meta.TotalCount)
				assert.Equal(t, size, meta.PageSize)
				assert.Equal(t, page*size < total, meta.HasNextPage)
				assert.Equal(t, page > 1, meta.HasPreviousPage)

				require.NotNil(t, meta.CurrentPage)
				require.NotNil(t, meta.TotalPages)
				assert.Equal(t, page, *meta.CurrentPage)
				assert.Equal(t, (total+size-1)/size, *meta.TotalPages)
			})
		}
	}
}

/*
TestPaginate_OffsetWindow checks exact window boundaries for a small set.
*/
func TestPaginate_OffsetWindow(t *testing.T) {
	rows := makeRows(3)

	window, meta := pagination.Paginate(rows, pagination.Request{Number: 2, Size: 1, CursorField: "id"}, rowFieldValue)

	require.Len(t, window, 1)
	assert.Equal(t, "id-001", window[0].ID)
	assert.Equal(t, 2, *meta.CurrentPage)
	assert.Equal(t, 3, *meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPreviousPage)
}

/*
TestCursor_RoundTrip ensures encode/decode is an identity on the logical
triple for strings, numbers, and date-like values.
*/
func TestCursor_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		cursor pagination.Cursor
	}{
		{"string_value", pagination.Cursor{Field: "id", Value: "abc-123", Direction: pagination.DirectionForward}},
		{"numeric_value", pagination.Cursor{Field: "yearsOfExperience", Value: float64(7), Direction: pagination.DirectionBackward}},
		{"date_like_value", pagination.Cursor{Field: "createdAt", Value: "2026-01-02T15:04:05Z", Direction: pagination.DirectionForward}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := pagination.EncodeCursor(tt.cursor)
			require.NotEmpty(t, token)

			decoded, ok := pagination.DecodeCursor(token)
			require.True(t, ok)
			assert.Equal(t, tt.cursor, decoded)
		})
	}
}

/*
TestDecodeCursor_Invalid verifies malformed tokens report invalid instead of
failing.
*/
func TestDecodeCursor_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not_base64", "%%%not-base64%%%"},
		{"not_json", "bm90LWpzb24="},
		{"missing_field", `eyJ2YWx1ZSI6MSwiZGlyZWN0aW9uIjoiZm9yd2FyZCJ9`},
		{"bad_direction", `eyJmaWVsZCI6ImlkIiwidmFsdWUiOjEsImRpcmVjdGlvbiI6InNpZGV3YXlzIn0=`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := pagination.DecodeCursor(tt.token)
			assert.False(t, ok)
		})
	}
}

/*
TestPaginate_CursorForward pages forward from a referenced row and mints the
adjacent navigation tokens.
*/
func TestPaginate_CursorForward(t *testing.T) {
	rows := makeRows(10)

	token := pagination.EncodeCursor(pagination.Cursor{Field: "id", Value: "id-002", Direction: pagination.DirectionForward})
	window, meta := pagination.Paginate(rows, pagination.Request{Size: 3, Cursor: token, CursorField: "id"}, rowFieldValue)

	require.Len(t, window, 3)
	assert.Equal(t, "id-003", window[0].ID)
	assert.Equal(t, "id-005", window[2].ID)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPreviousPage)

	// Offset-only fields are omitted in cursor mode.
	assert.Nil(t, meta.CurrentPage)
	assert.Nil(t, meta.TotalPages)

	// The minted next cursor references the window's last row, forward.
	next, ok := pagination.DecodeCursor(meta.NextCursor)
	require.True(t, ok)
	assert.Equal(t, "id-005", next.Value)
	assert.Equal(t, pagination.DirectionForward, next.Direction)

	// The minted prev cursor references the window's first row, backward.
	prev, ok := pagination.DecodeCursor(meta.PrevCursor)
	require.True(t, ok)
	assert.Equal(t, "id-003", prev.Value)
	assert.Equal(t, pagination.DirectionBackward, prev.Direction)
}

/*
TestPaginate_CursorBackward pages backward to the rows preceding the
referenced row.
*/
func TestPaginate_CursorBackward(t *testing.T) {
	rows := makeRows(10)

	token := pagination.EncodeCursor(pagination.Cursor{Field: "id", Value: "id-005", Direction: pagination.DirectionBackward})
	window, _ := pagination.Paginate(rows, pagination.Request{Size: 3, Cursor: token, CursorField: "id"}, rowFieldValue)

	require.Len(t, window, 3)
	assert.Equal(t, "id-002", window[0].ID)
	assert.Equal(t, "id-004", window[2].ID)
}

/*
TestPaginate_CursorFallback covers the silent first-page fallback for
malformed tokens and absent referenced rows.
*/
func TestPaginate_CursorFallback(t *testing.T) {
	rows := makeRows(10)

	tests := []struct {
		name  string
		token string
	}{
		{"malformed_token", "garbage-token"},
		{"row_absent", pagination.EncodeCursor(pagination.Cursor{Field: "id", Value: "id-999", Direction: pagination.DirectionForward})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, meta := pagination.Paginate(rows, pagination.Request{Size: 4, Cursor: tt.token, CursorField: "id"}, rowFieldValue)

			require.Len(t, window, 4)
			assert.Equal(t, "id-000", window[0].ID)
			assert.True(t, meta.HasNextPage)
			assert.False(t, meta.HasPreviousPage)
		})
	}
}

/*
TestEmptyMeta verifies the explicit zero-result envelope shape.
*/
func TestEmptyMeta(t *testing.T) {
	meta := pagination.EmptyMeta(10, "id")

	assert.Equal(t, 0, meta.TotalCount)
	assert.Equal(t, 10, meta.PageSize)
	require.NotNil(t, meta.CurrentPage)
	require.NotNil(t, meta.TotalPages)
	assert.Equal(t, 1, *meta.CurrentPage)
	assert.Equal(t, 0, *meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPreviousPage)
}
