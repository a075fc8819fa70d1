// Copyright (c) 2026 Advora. All rights reserved.

package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fk-solace/advora/pkg/pointer"
)

// LinkHeader renders the RFC 5988 navigation relations for a computed page.
//
// Offset mode always emits first and last, plus next/prev when the
// corresponding page exists. Cursor mode emits next/prev carrying the minted
// tokens. Every link preserves the unrelated query parameters of the original
// request and overwrites only page, limit, and cursor.
func LinkHeader(requestURL *url.URL, meta Meta, req Request) string {
	var entries []string

	if req.IsCursorMode() {
		if meta.PrevCursor != "" {
			entries = append(entries, linkEntry(cursorLink(requestURL, meta.PrevCursor, req.Size), "prev"))
		}
		if meta.NextCursor != "" {
			entries = append(entries, linkEntry(cursorLink(requestURL, meta.NextCursor, req.Size), "next"))
		}
		return strings.Join(entries, ", ")
	}

	totalPages := pointer.Val(meta.TotalPages)
	if totalPages < 1 {
		totalPages = 1
	}

	entries = append(entries, linkEntry(pageLink(requestURL, 1, req.Size), "first"))
	if meta.HasPreviousPage {
		entries = append(entries, linkEntry(pageLink(requestURL, req.Number-1, req.Size), "prev"))
	}
	if meta.HasNextPage {
		entries = append(entries, linkEntry(pageLink(requestURL, req.Number+1, req.Size), "next"))
	}
	entries = append(entries, linkEntry(pageLink(requestURL, totalPages, req.Size), "last"))

	return strings.Join(entries, ", ")
}

// linkEntry formats one comma-separated Link header element.
func linkEntry(target, rel string) string {
	return fmt.Sprintf(`<%s>; rel=%q`, target, rel)
}

// pageLink rebuilds the request URL for an offset-mode page.
func pageLink(requestURL *url.URL, page, limit int) string {
	link := *requestURL
	values := link.Query()
	values.Del("cursor")
	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(limit))
	link.RawQuery = values.Encode()
	return link.String()
}

// cursorLink rebuilds the request URL for a cursor-mode page.
func cursorLink(requestURL *url.URL, cursor string, limit int) string {
	link := *requestURL
	values := link.Query()
	values.Del("page")
	values.Set("cursor", cursor)
	values.Set("limit", strconv.Itoa(limit))
	link.RawQuery = values.Encode()
	return link.String()
}
