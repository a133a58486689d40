// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

const txTimeout = 60 * time.Second

type txKey struct{}

type Config struct {
	DSN string
	// ApplicationName tags connections in pg_stat_activity, primary and elevated pools use different names
	ApplicationName string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

func (c Config) poolConfig() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	if c.TracingEnabled {
		// uses the global TracerProvider set up by tracing.NewTracer
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	if c.ApplicationName != "" {
		config.ConnConfig.RuntimeParams["application_name"] = c.ApplicationName
	}

	if c.MaxConns > 0 {
		config.MaxConns = c.MaxConns
	}
	if c.MinConns > 0 && c.MinConns <= config.MaxConns {
		config.MinConns = c.MinConns
	}
	if c.MaxConnLifetime > 0 {
		config.MaxConnLifetime = c.MaxConnLifetime
		config.MaxConnLifetimeJitter = c.MaxConnLifetime / 10
	}
	if c.MaxConnIdleTime > 0 {
		config.MaxConnIdleTime = c.MaxConnIdleTime
	}

	return config, nil
}

// pendingTx holds a transaction that is only opened by the first statement run through it.
type pendingTx struct {
	db     *sql.DB
	tx     *sql.Tx
	cancel context.CancelFunc
}

func (p *pendingTx) begin() (*sql.Tx, error) {
	if p.tx != nil {
		return p.tx, nil
	}

	// detached from the request context, bounded by txTimeout
	ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
	tx, err := p.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	p.tx = tx
	p.cancel = cancel
	return tx, nil
}

func (p *pendingTx) started() bool {
	return p.tx != nil
}

func (p *pendingTx) release() {
	if p.cancel != nil {
		p.cancel()
	}
}

func pendingTxFromContext(ctx context.Context) *pendingTx {
	p, _ := ctx.Value(txKey{}).(*pendingTx)
	return p
}

type DBClient struct {
	pool *pgxpool.Pool
	db   *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a dollar placeholder builder bound to the transaction carried by ctx,
// or to the pool when there is none.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	p := pendingTxFromContext(ctx)
	if p == nil {
		return builder.RunWith(d.db)
	}

	tx, err := p.begin()
	if err != nil {
		d.logger.Errorf("failed to begin transaction, running without one: %v", err)
		return builder.RunWith(d.db)
	}

	return builder.RunWith(tx)
}

// WithTx runs fn with a context whose statements share one transaction. The transaction is
// committed when fn succeeds and rolled back otherwise. Nested calls join the outer transaction.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if pendingTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	ctx, span := d.tracer.Start(ctx, "db.DBClient.WithTx")
	defer span.End()

	p := &pendingTx{db: d.db}
	defer p.release()

	if err := fn(context.WithValue(ctx, txKey{}, p)); err != nil {
		if p.started() {
			if rbErr := p.tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				d.logger.Errorf("failed to rollback transaction: %v", rbErr)
			}
		}
		return err
	}

	if !p.started() {
		return nil
	}

	if err := p.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient opens a pgx pool for cfg and checks it can reach the database.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := cfg.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %v", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to start metrics collection for database: %v", err)
		}
	}

	d := new(DBClient)
	d.pool = pool
	d.db = stdlib.OpenDBFromPool(pool)

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	if err := d.db.Ping(); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to connect to the database %s: %v", config.ConnConfig.Database, err)
	}

	return d, nil
}

// NewDBClientFromDB wraps an already opened handle. Close releases db, there is no pool.
func NewDBClientFromDB(db *sql.DB, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *DBClient {
	d := new(DBClient)
	d.db = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}
