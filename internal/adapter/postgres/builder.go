package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder returns a squirrel statement builder using $N placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// SelectAll runs the built query and scans every row into dst (a pointer to a slice).
func SelectAll(ctx context.Context, q Querier, dst any, b squirrel.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, sql, args...)
}

// GetOne runs the built query and scans exactly one row into dst.
// A missing row surfaces as pgx.ErrNoRows.
func GetOne(ctx context.Context, q Querier, dst any, b squirrel.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, q, dst, sql, args...)
}

// Count runs a built COUNT query and returns the single integer result.
func Count(ctx context.Context, q Querier, b squirrel.Sqlizer) (int, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ExecBuilt runs a built write statement and returns the affected row count.
func ExecBuilt(ctx context.Context, q Querier, b squirrel.Sqlizer) (int64, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
