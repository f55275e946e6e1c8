// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"
	"errors"
)

// ErrNotFound is the absent-result signal: no row exists for the requested id.
// It is never used for storage failures.
var ErrNotFound = errors.New("record not found")

// CRUDRepository defines data access for one entity type T written through payload I.
// No business logic here: persistence only, one statement per call.
type CRUDRepository[T any, I any] interface {
	// List returns a page of rows ordered by primary key and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[T], error)

	// FindByID returns the row with the given id or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*T, error)

	// Create inserts a row and returns it as stored, including the generated id.
	Create(ctx context.Context, in I) (*T, error)

	// Update overwrites every writable field of the row and returns the reloaded row.
	// It returns ErrNotFound without inserting anything when the id does not exist.
	Update(ctx context.Context, id int64, in I) (*T, error)

	// Delete removes the row and returns its last-known values, or ErrNotFound.
	Delete(ctx context.Context, id int64) (*T, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
