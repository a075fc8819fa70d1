// Copyright (c) 2026 Advora. All rights reserved.

package pagination_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fk-solace/advora/pkg/pagination"
)

func intPtr(v int) *int { return &v }

/*
TestLinkHeader_OffsetFirstPage checks that the first of several pages emits
first/last/next but omits prev.
*/
func TestLinkHeader_OffsetFirstPage(t *testing.T) {
	requestURL, err := url.Parse("http://localhost:8080/api/v1/advocates?limit=10&degree=MD")
	require.NoError(t, err)

	meta := pagination.Meta{
		TotalCount:  50,
		PageSize:    10,
		CurrentPage: intPtr(1),
		TotalPages:  intPtr(5),
		HasNextPage: true,
	}
	header := pagination.LinkHeader(requestURL, meta, pagination.Request{Number: 1, Size: 10})

	assert.Contains(t, header, `rel="first"`)
	assert.Contains(t, header, `rel="last"`)
	assert.Contains(t, header, `rel="next"`)
	assert.NotContains(t, header, `rel="prev"`)

	// Unrelated query parameters survive into every generated link.
	assert.Contains(t, header, "degree=MD")
	assert.Contains(t, header, "page=5")
}

/*
TestLinkHeader_OffsetMiddlePage checks that an interior page emits all four
relations.
*/
func TestLinkHeader_OffsetMiddlePage(t *testing.T) {
	requestURL, err := url.Parse("http://localhost:8080/api/v1/advocates?page=3&limit=10")
	require.NoError(t, err)

	meta := pagination.Meta{
		TotalCount:      50,
		PageSize:        10,
		CurrentPage:     intPtr(3),
		TotalPages:      intPtr(5),
		HasNextPage:     true,
		HasPreviousPage: true,
	}
	header := pagination.LinkHeader(requestURL, meta, pagination.Request{Number: 3, Size: 10})

	assert.Contains(t, header, `rel="first"`)
	assert.Contains(t, header, `rel="prev"`)
	assert.Contains(t, header, `rel="next"`)
	assert.Contains(t, header, `rel="last"`)
	assert.Contains(t, header, "page=2")
	assert.Contains(t, header, "page=4")
}

/*
TestLinkHeader_CursorMode checks that cursor navigation emits prev/next
carrying the minted tokens and never page relations.
*/
func TestLinkHeader_CursorMode(t *testing.T) {
	requestURL, err := url.Parse("http://localhost:8080/api/v1/advocates?cursor=old-token&limit=10")
	require.NoError(t, err)

	meta := pagination.Meta{
		TotalCount:      50,
		PageSize:        10,
		HasNextPage:     true,
		HasPreviousPage: true,
		NextCursor:      "next-token",
		PrevCursor:      "prev-token",
	}
	header := pagination.LinkHeader(requestURL, meta, pagination.Request{Size: 10, Cursor: "old-token", CursorField: "id"})

	assert.Contains(t, header, `rel="next"`)
	assert.Contains(t, header, `rel="prev"`)
	assert.Contains(t, header, "cursor=next-token")
	assert.Contains(t, header, "cursor=prev-token")
	assert.NotContains(t, header, `rel="first"`)
	assert.NotContains(t, header, `rel="last"`)
}

/*
TestWeakETag verifies the validator shape and its sensitivity to the page
window inputs.
*/
func TestWeakETag(t *testing.T) {
	etag := pagination.WeakETag(50, 1, 10, "createdAt", "desc")

	assert.True(t, len(etag) > 4)
	assert.Equal(t, `W/"`, etag[:3])
	assert.Equal(t, `"`, etag[len(etag)-1:])

	// Same inputs produce the same validator; any changed input produces a new one.
	assert.Equal(t, etag, pagination.WeakETag(50, 1, 10, "createdAt", "desc"))
	assert.NotEqual(t, etag, pagination.WeakETag(51, 1, 10, "createdAt", "desc"))
	assert.NotEqual(t, etag, pagination.WeakETag(50, 2, 10, "createdAt", "desc"))
	assert.NotEqual(t, etag, pagination.WeakETag(50, 1, 10, "lastName", "desc"))
}
