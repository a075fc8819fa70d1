// Copyright (c) 2026 Advora. All rights reserved.

package advocate

import "context"

// Repository abstracts advocate persistence. The listing pipeline fetches the
// complete projected set and windows it in memory, so the storage contract is
// a full hydrated scan plus point lookups and writes.
type Repository interface {
	FetchAll(context context.Context) ([]*Advocate, error)
	FindByID(context context.Context, id string) (*Advocate, error)
	Create(context context.Context, a *Advocate) error
}
