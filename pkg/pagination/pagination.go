// Copyright (c) 2026 Advora. All rights reserved.

/*
Package pagination provides the windowing engine and response metadata for
API list endpoints.

# Overview

The engine operates on an already filtered and sorted result set and supports
two mutually exclusive navigation modes, selected per request by the presence
of a cursor token:

  - Offset mode: classic page-number/page-size windowing with total-page math.
  - Cursor mode: an opaque token referencing a row and a traversal direction;
    the engine locates the row and returns the adjacent window.

Alongside the visible window it produces [Meta] (counts, boundaries, minted
cursors), an RFC 5988 Link header, and a weak ETag validator.
*/
package pagination

import "github.com/fk-solace/advora/pkg/pointer"

// Meta is the pagination metadata included in list response envelopes.
//
// CurrentPage and TotalPages are only meaningful in offset mode and are
// omitted from cursor-mode responses.
type Meta struct {
	TotalCount      int    `json:"totalCount"`
	PageSize        int    `json:"pageSize"`
	CurrentPage     *int   `json:"currentPage,omitempty"`
	TotalPages      *int   `json:"totalPages,omitempty"`
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	NextCursor      string `json:"nextCursor,omitempty"`
	PrevCursor      string `json:"prevCursor,omitempty"`
	CursorField     string `json:"cursorField,omitempty"`
}

// Request selects the window to compute. Cursor mode applies when Cursor is
// non-empty; otherwise Number/Size offset mode is used.
type Request struct {
	Number      int
	Size        int
	Cursor      string
	CursorField string
}

// IsCursorMode reports whether cursor navigation was requested.
func (r Request) IsCursorMode() bool { return r.Cursor != "" }

// Offset returns the zero-based start index of the offset-mode window.
func (r Request) Offset() int {
	if r.Number <= 1 {
		return 0
	}
	return (r.Number - 1) * r.Size
}

// EmptyMeta constructs the explicit zero-result metadata used when a listing
// matches nothing: one (empty) page, no navigation in either direction.
func EmptyMeta(size int, cursorField string) Meta {
	return Meta{
		TotalCount:  0,
		PageSize:    size,
		CurrentPage: pointer.To(1),
		TotalPages:  pointer.To(0),
		CursorField: cursorField,
	}
}

// FieldValueFunc resolves the value of a named field on an item. It is used
// to locate cursor rows and to mint new cursor tokens. The boolean reports
// whether the field is known for the item type.
type FieldValueFunc[T any] func(item T, field string) (any, bool)

// Paginate computes the visible window of the sorted result set plus its
// metadata.
//
// In cursor mode, a token that fails to decode, or that references a row no
// longer present, silently falls back to the first page of the requested
// size. No error is ever surfaced to the caller.
func Paginate[T any](items []T, req Request, fieldValue FieldValueFunc[T]) ([]T, Meta) {
	if req.IsCursorMode() {
		return paginateCursor(items, req, fieldValue)
	}
	return paginateOffset(items, req, fieldValue)
}

// paginateOffset slices rows [(p-1)*s, p*s) of the sorted set.
func paginateOffset[T any](items []T, req Request, fieldValue FieldValueFunc[T]) ([]T, Meta) {
	total := len(items)
	start := req.Offset()
	end := start + req.Size

	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	window := items[start:end]

	totalPages := 0
	if req.Size > 0 {
		totalPages = (total + req.Size - 1) / req.Size
	}

	meta := Meta{
		TotalCount:      total,
		PageSize:        req.Size,
		CurrentPage:     pointer.To(req.Number),
		TotalPages:      pointer.To(totalPages),
		HasNextPage:     req.Number*req.Size < total,
		HasPreviousPage: req.Number > 1,
		CursorField:     req.CursorField,
	}
	mintCursors(&meta, window, req.CursorField, fieldValue)
	return window, meta
}

// paginateCursor decodes the token, locates the referenced row by equality on
// the cursor field, and returns the adjacent window.
func paginateCursor[T any](items []T, req Request, fieldValue FieldValueFunc[T]) ([]T, Meta) {
	total := len(items)

	cursor, ok := DecodeCursor(req.Cursor)
	position := -1
	if ok {
		position = locate(items, cursor.Field, cursor.Value, fieldValue)
	}

	var start, end int
	switch {
	case position < 0:
		// Malformed token or referenced row absent: first page of size s.
		start, end = 0, min(req.Size, total)
	case cursor.Direction == DirectionForward:
		start = position + 1
		end = min(start+req.Size, total)
	default: // backward
		end = position
		start = max(0, end-req.Size)
	}
	if start > total {
		start, end = total, total
	}
	window := items[start:end]

	meta := Meta{
		TotalCount:      total,
		PageSize:        req.Size,
		HasNextPage:     end < total,
		HasPreviousPage: start > 0,
		CursorField:     req.CursorField,
	}
	mintCursors(&meta, window, req.CursorField, fieldValue)
	return window, meta
}

// mintCursors attaches fresh navigation tokens: a forward cursor referencing
// the window's last row when a further page exists, and a backward cursor
// referencing its first row when a prior page exists.
func mintCursors[T any](meta *Meta, window []T, cursorField string, fieldValue FieldValueFunc[T]) {
	if len(window) == 0 || cursorField == "" || fieldValue == nil {
		return
	}

	if meta.HasNextPage {
		if value, ok := fieldValue(window[len(window)-1], cursorField); ok {
			meta.NextCursor = EncodeCursor(Cursor{Field: cursorField, Value: value, Direction: DirectionForward})
		}
	}
	if meta.HasPreviousPage {
		if value, ok := fieldValue(window[0], cursorField); ok {
			meta.PrevCursor = EncodeCursor(Cursor{Field: cursorField, Value: value, Direction: DirectionBackward})
		}
	}
}

// locate performs a linear equality scan for the row whose field matches the
// cursor value. Values are compared on their canonical string form so that
// numbers survive the JSON round-trip inside tokens.
func locate[T any](items []T, field string, value any, fieldValue FieldValueFunc[T]) int {
	if fieldValue == nil {
		return -1
	}
	want := canonical(value)
	for i, item := range items {
		got, ok := fieldValue(item, field)
		if ok && canonical(got) == want {
			return i
		}
	}
	return -1
}
