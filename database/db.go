package database

import (
	"database/sql"
	"esantiye/models"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type state int

const (
	stateUninitialized state = iota
	stateConnected
	stateSchemaReady
)

// Statement kinds reported to a StatementObserver
const (
	KindQueryMany = "query_many"
	KindQueryOne  = "query_one"
	KindExec      = "exec"
)

// StatementObserver is notified after every statement the DAL runs
type StatementObserver interface {
	ObserveStatement(kind string, err error)
}

// TimestampFormat is how CURRENT_TIMESTAMP stores values
const TimestampFormat = "2006-01-02 15:04:05"

// Result is what a mutation reports back
type Result struct {
	LastInsertID int64
	RowsAffected int64
}

// DB owns the single sqlite session shared by every handler.
type DB struct {
	conn *sql.DB

	mu       sync.RWMutex
	state    state
	observer StatementObserver
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection serves the whole process; the driver queues statements on it
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{conn: db, state: stateConnected}, nil
}

// SetObserver installs a hook that sees every statement outcome.
func (db *DB) SetObserver(o StatementObserver) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.observer = o
}

// Migrate creates every table that does not exist yet, in declaration order.
func (db *DB) Migrate() error {
	if db == nil {
		return ErrNotInitialized
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if db.state == stateUninitialized {
		return ErrNotInitialized
	}

	for _, table := range Schema {
		if _, err := db.conn.Exec(table.DDL); err != nil {
			return fmt.Errorf("migration failed for %s: %w", table.Name, err)
		}
	}

	db.state = stateSchemaReady
	return nil
}

// Ready reports whether the schema has been created.
func (db *DB) Ready() bool {
	if db == nil {
		return false
	}
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.state == stateSchemaReady
}

// QueryMany runs a read and returns every matching row. An empty result is a
// non-nil empty slice.
func (db *DB) QueryMany(query string, args ...any) ([]models.Row, error) {
	if !db.Ready() {
		return nil, ErrNotInitialized
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, db.fail(KindQueryMany, err)
	}
	defer rows.Close()

	result, err := scanRows(rows)
	if err != nil {
		return nil, db.fail(KindQueryMany, err)
	}

	db.observe(KindQueryMany, nil)
	return result, nil
}

// QueryOne runs a read expected to match at most one row. It returns nil, nil
// when nothing matches.
func (db *DB) QueryOne(query string, args ...any) (models.Row, error) {
	if !db.Ready() {
		return nil, ErrNotInitialized
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, db.fail(KindQueryOne, err)
	}
	defer rows.Close()

	result, err := scanRows(rows)
	if err != nil {
		return nil, db.fail(KindQueryOne, err)
	}

	db.observe(KindQueryOne, nil)
	if len(result) == 0 {
		return nil, nil
	}
	return result[0], nil
}

// Exec runs an insert, update or delete.
func (db *DB) Exec(query string, args ...any) (Result, error) {
	if !db.Ready() {
		return Result{}, ErrNotInitialized
	}

	res, err := db.conn.Exec(query, args...)
	if err != nil {
		return Result{}, db.fail(KindExec, err)
	}

	// sqlite3 always reports both values
	id, _ := res.LastInsertId()
	affected, _ := res.RowsAffected()

	db.observe(KindExec, nil)
	return Result{LastInsertID: id, RowsAffected: affected}, nil
}

// Close releases the session. Any later statement fails with ErrNotInitialized.
func (db *DB) Close() error {
	if db == nil || db.conn == nil {
		return nil
	}

	db.mu.Lock()
	db.state = stateUninitialized
	db.mu.Unlock()

	return db.conn.Close()
}

func (db *DB) fail(kind string, err error) error {
	dbErr := &DatabaseError{Op: kind, Err: err}
	db.observe(kind, dbErr)
	return dbErr
}

func (db *DB) observe(kind string, err error) {
	db.mu.RLock()
	o := db.observer
	db.mu.RUnlock()

	if o != nil {
		o.ObserveStatement(kind, err)
	}
}

func scanRows(rows *sql.Rows) ([]models.Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	// Initialize with empty slice to avoid returning nil
	result := make([]models.Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(models.Row, len(columns))
		for i, col := range columns {
			switch v := values[i].(type) {
			case []byte:
				row[col] = string(v)
			case time.Time:
				// The driver parses DATETIME columns; hand back the stored text
				row[col] = v.UTC().Format(TimestampFormat)
			default:
				row[col] = v
			}
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
