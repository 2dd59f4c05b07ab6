// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/partlane/qnotify/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ Database = (*database)(nil)

// Database provides a database interface.
type Database interface {
	NamedQueryContext(ctx context.Context, query string, args any) (*sqlx.Rows, error)
	NamedExecContext(ctx context.Context, query string, args any) (sql.Result, error)
	QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

type database struct {
	db     *sqlx.DB
	tracer trace.Tracer
}

// NewDatabase creates a Database instance with traced operations.
func NewDatabase(db *sqlx.DB, tracer trace.Tracer) Database {
	return &database{
		db:     db,
		tracer: tracer,
	}
}

func (d *database) NamedQueryContext(ctx context.Context, query string, args any) (*sqlx.Rows, error) {
	ctx, span := d.startSpan(ctx, "sql_named_query", query)
	defer span.End()
	rows, err := d.db.NamedQueryContext(ctx, query, args)
	record(span, err)
	return rows, err
}

func (d *database) NamedExecContext(ctx context.Context, query string, args any) (sql.Result, error) {
	ctx, span := d.startSpan(ctx, "sql_named_exec", query)
	defer span.End()
	res, err := d.db.NamedExecContext(ctx, query, args)
	record(span, err)
	return res, err
}

func (d *database) QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row {
	ctx, span := d.startSpan(ctx, "sql_query_row", query)
	defer span.End()
	return d.db.QueryRowxContext(ctx, query, args...)
}

func (d *database) QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error) {
	ctx, span := d.startSpan(ctx, "sql_queryx", query)
	defer span.End()
	rows, err := d.db.QueryxContext(ctx, query, args...)
	record(span, err)
	return rows, err
}

func (d *database) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	ctx, span := d.startSpan(ctx, "sql_query", query)
	defer span.End()
	rows, err := d.db.QueryContext(ctx, query, args...)
	record(span, err)
	return rows, err
}

func (d *database) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	ctx, span := d.startSpan(ctx, "sql_exec", query)
	defer span.End()
	res, err := d.db.ExecContext(ctx, query, args...)
	record(span, err)
	return res, err
}

func (d *database) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	ctx, span := d.startSpan(ctx, "sql_begin_tx", "")
	defer span.End()
	tx, err := d.db.BeginTxx(ctx, opts)
	record(span, err)
	return tx, err
}

func (d *database) startSpan(ctx context.Context, name, query string) (context.Context, trace.Span) {
	opts := []trace.SpanStartOption{trace.WithSpanKind(trace.SpanKindClient)}
	if query != "" {
		opts = append(opts, trace.WithAttributes(attribute.String("db.statement", query)))
	}
	return tracing.StartSpan(ctx, d.tracer, name, opts...)
}

func record(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, fmt.Sprintf("operation failed: %s", err))
	}
}
