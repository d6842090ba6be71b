package db

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// PoolConfig bounds the connection pool shared by all handlers. The
// caller decides where the values come from; this package never reads
// the environment.
type PoolConfig struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
}

// Connect opens the account store: pgx over database/sql, wrapped in
// sqlx for struct scanning. The pool is verified with a ping and a
// round-trip query before any handler sees it.
func Connect(dsn string, pool PoolConfig) (*sqlx.DB, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("db: parse dsn: %w", err)
	}

	// Fail startup fast when Postgres is unreachable.
	cfg.ConnectTimeout = 5 * time.Second

	conn := sqlx.NewDb(stdlib.OpenDB(*cfg), "pgx")
	conn.SetMaxOpenConns(pool.MaxOpen)
	conn.SetMaxIdleConns(pool.MaxIdle)
	conn.SetConnMaxLifetime(pool.MaxLifetime)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("db: connect: %w", err)
	}

	var one int
	if err := conn.QueryRow("SELECT 1").Scan(&one); err != nil {
		conn.Close()
		return nil, fmt.Errorf("db: health check: %w", err)
	}

	return conn, nil
}
