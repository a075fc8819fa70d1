// Copyright (c) 2026 Advora. All rights reserved.

package pagination

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// WeakETag derives a weak cache validator from the shape of a page: total
// count, page number, page size, and the sort field/direction.
//
// It identifies an equivalent-enough representation rather than hashing the
// response body, so it changes when the window would change but not on
// byte-level differences in serialization.
func WeakETag(totalCount, page, limit int, sortField, sortDir string) string {
	seed := fmt.Sprintf("%d:%d:%d:%s:%s", totalCount, page, limit, sortField, sortDir)
	sum := blake2b.Sum256([]byte(seed))
	return `W/"` + hex.EncodeToString(sum[:8]) + `"`
}
