package load

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"CoinPulse/internal/model"
)

// SQLiteLoader appends price records to a local SQLite database. SQLite has
// no schemas, so the destination collapses to a single table name.
type SQLiteLoader struct {
	db    *sql.DB
	table string
	mu    sync.Mutex
}

// NewSQLiteLoader opens (or creates) the SQLite database.
func NewSQLiteLoader(dbPath, table string) (*SQLiteLoader, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, &LoadError{Op: "connect", Err: err}
	}

	// WAL mode for better concurrent read performance (Grafana reads while the job writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, &LoadError{Op: "connect", Err: fmt.Errorf("set WAL mode: %w", err)}
	}

	log.Printf("[INFO] sqlite loader opened: %s", dbPath)
	return &SQLiteLoader{db: db, table: table}, nil
}

func (l *SQLiteLoader) ensure(ctx context.Context) error {
	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		coin      TEXT NOT NULL,
		usd_price REAL NOT NULL,
		timestamp DATETIME NOT NULL
	)`, l.table)
	if _, err := l.db.ExecContext(ctx, stmt); err != nil {
		return &LoadError{Op: "ensure", Err: err}
	}
	return nil
}

// Load ensures the destination table exists, then inserts all records in
// one transaction.
func (l *SQLiteLoader) Load(ctx context.Context, records []model.PriceRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensure(ctx); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return &LoadError{Op: "begin", Err: err}
	}

	stmt, err := tx.PrepareContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (coin, usd_price, timestamp) VALUES (?,?,?)`, l.table))
	if err != nil {
		tx.Rollback()
		return &LoadError{Op: "insert", Err: err}
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Coin, r.PriceUSD, r.Timestamp); err != nil {
			tx.Rollback()
			return &LoadError{Op: "insert", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &LoadError{Op: "commit", Err: err}
	}
	return nil
}

// Close closes the underlying database handle.
func (l *SQLiteLoader) Close() error {
	return l.db.Close()
}
