package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the common interface implemented by *pgxpool.Pool, pgx.Tx and
// pgxmock pools.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Builder is the squirrel statement builder configured for PostgreSQL placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// unexported context key type for storing tx
type txCtxKey struct{}

// withTx puts a transaction into the context.
func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// QuerierFromCtx returns the transaction from context if present,
// otherwise returns fallback.
func QuerierFromCtx(ctx context.Context, fallback Querier) Querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return fallback
}

// Sqlizer is satisfied by every squirrel builder.
type Sqlizer interface {
	ToSql() (string, []any, error)
}

// QueryRow builds q and runs it as a single-row query on the context querier.
func QueryRow(ctx context.Context, db Querier, q Sqlizer) (pgx.Row, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return QuerierFromCtx(ctx, db).QueryRow(ctx, sql, args...), nil
}

// Query builds q and runs it on the context querier.
func Query(ctx context.Context, db Querier, q Sqlizer) (pgx.Rows, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return QuerierFromCtx(ctx, db).Query(ctx, sql, args...)
}

// Exec builds q and executes it on the context querier.
func Exec(ctx context.Context, db Querier, q Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return QuerierFromCtx(ctx, db).Exec(ctx, sql, args...)
}
