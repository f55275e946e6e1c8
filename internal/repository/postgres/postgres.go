// Package postgres implements the repository contracts on PostgreSQL using
// database/sql with parameterized queries. It contains no business logic.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"farmacia/internal/repository"
)

type scanner interface {
	Scan(dest ...any) error
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// countRows runs a COUNT(*) query.
func countRows(ctx context.Context, q queryer, query string) (int, error) {
	var total int
	if err := q.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// listPage runs the count query followed by the page query and scans every row.
func listPage[T any](ctx context.Context, q queryer, countQuery, pageQuery string, pq repository.PageQuery, scan func(scanner) (*T, error)) (*repository.PageResult[T], error) {
	total, err := countRows(ctx, q, countQuery)
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, pageQuery, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[T]{
		Items: items,
		Total: total,
	}, nil
}

// deref returns the pointed-to value, or the zero value for nil.
func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// scanOne scans a single-row result, mapping sql.ErrNoRows to repository.ErrNotFound.
func scanOne[T any](row *sql.Row, scan func(scanner) (*T, error)) (*T, error) {
	out, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}
