// Package sqliterepo stores pets in a local SQLite file. The CLI uses it so a
// pet survives between invocations without a database server.
package sqliterepo

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One writer at a time; a second connection would only wait on the lock.
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pet_entities (
		pet_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		payload TEXT NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (pet_id, kind)
	);

	CREATE TABLE IF NOT EXISTS pet_events (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		event_id TEXT NOT NULL UNIQUE,
		pet_id TEXT NOT NULL,
		type TEXT NOT NULL,
		occurred_at INTEGER NOT NULL,
		payload TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_pet_events_pet ON pet_events(pet_id, occurred_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

type txKeyType struct{}

var txKey = txKeyType{}

// ext returns the transaction carried by ctx, or the connection.
func (db *DB) ext(ctx context.Context) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey).(*sqlx.Tx); ok && tx != nil {
		return tx
	}
	return db.conn
}

// TxManager runs use cases in a SQLite transaction.
type TxManager struct {
	db *DB
}

func NewTxManager(db *DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey).(*sqlx.Tx); ok && tx != nil {
		return fn(ctx)
	}
	tx, err := t.db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txKey, tx)); err != nil {
		return err
	}
	return tx.Commit()
}
