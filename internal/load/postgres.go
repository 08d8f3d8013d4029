package load

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"CoinPulse/internal/model"
)

// PostgresConfig holds connection parameters for the warehouse database.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Schema   string
	Table    string
}

// PostgresLoader appends price records to a Postgres table via pgx.
type PostgresLoader struct {
	pool   *pgxpool.Pool
	schema string
	table  string
}

// NewPostgresLoader opens a connection pool against the configured database.
// Schema and table creation is deferred to Load so every run independently
// guarantees the target exists.
func NewPostgresLoader(ctx context.Context, cfg PostgresConfig) (*PostgresLoader, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, &LoadError{Op: "connect", Err: err}
	}
	poolConfig.MaxConns = 5

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, &LoadError{Op: "connect", Err: err}
	}

	log.Printf("[INFO] postgres loader opened: %s:%d/%s", cfg.Host, cfg.Port, cfg.Database)
	return &PostgresLoader{pool: pool, schema: cfg.Schema, table: cfg.Table}, nil
}

func (l *PostgresLoader) ensure(ctx context.Context) error {
	stmts := []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, l.schema),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.%s (
			coin      TEXT NOT NULL,
			usd_price NUMERIC NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL
		)`, l.schema, l.table),
	}
	for _, s := range stmts {
		if _, err := l.pool.Exec(ctx, s); err != nil {
			return &LoadError{Op: "ensure", Err: err}
		}
	}
	return nil
}

// Load ensures the destination exists, then inserts all records in one
// transaction. Either the whole batch commits or none of it does.
func (l *PostgresLoader) Load(ctx context.Context, records []model.PriceRecord) error {
	if err := l.ensure(ctx); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return &LoadError{Op: "begin", Err: err}
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{l.schema, l.table},
		[]string{"coin", "usd_price", "timestamp"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			return []interface{}{r.Coin, r.PriceUSD, r.Timestamp}, nil
		}),
	)
	if err != nil {
		tx.Rollback(ctx)
		return &LoadError{Op: "insert", Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return &LoadError{Op: "commit", Err: err}
	}
	return nil
}

// Close releases the connection pool.
func (l *PostgresLoader) Close() error {
	l.pool.Close()
	return nil
}
