package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"farmacia/internal/repository"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrInUse            = errors.New("record is still referenced")
)

// DefaultLimit is the page size used when the caller does not give one.
const DefaultLimit = 100

// SQLSTATE foreign_key_violation.
const pgForeignKeyViolation = "23503"

// ListResult is the service-level DTO for a page of records.
type ListResult[T any] struct {
	Items []T `json:"data"`
	Total int `json:"total"`
}

// CRUDService defines the use cases shared by every catalog entity.
type CRUDService[T any, I any] interface {
	// List returns up to limit records after skipping skip, ordered by id.
	List(ctx context.Context, skip, limit int) (*ListResult[T], error)

	// Get returns a single record or ErrNotFound. Ids below 1 never match and
	// are answered without a query, as are those of Update and Delete.
	Get(ctx context.Context, id int64) (*T, error)

	// Create persists a new record and returns it with its generated id.
	Create(ctx context.Context, in I) (*T, error)

	// Update fully replaces the record's fields. Missing records yield ErrNotFound.
	Update(ctx context.Context, id int64, in I) (*T, error)

	// Delete removes the record and returns its last values. Missing records yield ErrNotFound.
	Delete(ctx context.Context, id int64) (*T, error)
}

type crudService[T any, I any] struct {
	repo repository.CRUDRepository[T, I]
}

// NewCRUDService constructs a CRUDService on top of a repository.
func NewCRUDService[T any, I any](repo repository.CRUDRepository[T, I]) CRUDService[T, I] {
	return &crudService[T, I]{repo: repo}
}

func (s *crudService[T, I]) List(ctx context.Context, skip, limit int) (*ListResult[T], error) {
	if limit < 0 {
		limit = DefaultLimit
	}
	if skip < 0 {
		skip = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: skip})
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return &ListResult[T]{Items: res.Items, Total: res.Total}, nil
}

func (s *crudService[T, I]) Get(ctx context.Context, id int64) (*T, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	out, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, ErrInvalidReference)
	}
	return out, nil
}

func (s *crudService[T, I]) Create(ctx context.Context, in I) (*T, error) {
	out, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, classify(err, ErrInvalidReference)
	}
	return out, nil
}

func (s *crudService[T, I]) Update(ctx context.Context, id int64, in I) (*T, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	out, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, classify(err, ErrInvalidReference)
	}
	return out, nil
}

// Delete removes a record. A foreign key violation here means other rows still
// point at it, so it maps to ErrInUse instead of ErrInvalidReference.
func (s *crudService[T, I]) Delete(ctx context.Context, id int64) (*T, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	out, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, classify(err, ErrInUse)
	}
	return out, nil
}

// classify translates repository and driver errors into service errors.
// Anything it does not recognise is returned wrapped but otherwise untouched.
func classify(err error, onForeignKey error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s", onForeignKey, pgErr.ConstraintName)
	}
	return fmt.Errorf("storage: %w", err)
}
