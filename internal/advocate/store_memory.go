// Copyright (c) 2026 Advora. All rights reserved.

package advocate

import (
	"context"
	"sync"
	"time"

	"github.com/fk-solace/advora/internal/platform/apperr"
	"github.com/fk-solace/advora/pkg/uuid"
)

// MemoryRepository is the explicit in-memory implementation of [Repository].
//
// It replaces the "unconfigured database" state with a constructed null
// object: the server wires it in when no DSN is provided, so every handler
// sees the same interface regardless of environment. It also backs the
// package tests.
type MemoryRepository struct {
	mu        sync.RWMutex
	advocates []*Advocate
}

// NewMemoryRepository constructs an empty in-memory advocate store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// FetchAll returns a snapshot of the stored advocates, newest first.
func (repository *MemoryRepository) FetchAll(_ context.Context) ([]*Advocate, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	snapshot := make([]*Advocate, 0, len(repository.advocates))
	// Insertion order is oldest-first; reverse to match the default
	// newest-first fetch order of the SQL store.
	for i := len(repository.advocates) - 1; i >= 0; i-- {
		clone := *repository.advocates[i]
		snapshot = append(snapshot, &clone)
	}
	return snapshot, nil
}

// FindByID returns the stored advocate with the given id.
func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*Advocate, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, a := range repository.advocates {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("Advocate")
}

// Create appends the advocate, assigning an id and timestamps when absent.
func (repository *MemoryRepository) Create(_ context.Context, a *Advocate) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.New()
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}
	if a.Specialties == nil {
		a.Specialties = []string{}
	}

	clone := *a
	repository.advocates = append(repository.advocates, &clone)
	return nil
}
