package sqlstore

import (
	"fmt"
	"strings"

	log "github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver, cgo
	_ "modernc.org/sqlite"          // sqlite driver, pure go

	"github.com/Makepad-fr/tada/internal/model"
)

const (
	// DefaultFileName is the database file used when no path is configured.
	DefaultFileName = "TodoList.db"
	// DefaultVersion is the current schema version.
	DefaultVersion = 1
	// DefaultDriver is the pure-go sqlite driver.
	DefaultDriver = "sqlite"

	tableName = "todo_items"
)

var (
	sqlCreate = `CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id INTEGER PRIMARY KEY,
		text TEXT,
		urgent INTEGER
	)`
	sqlDrop = `DROP TABLE IF EXISTS ` + tableName
)

// Options tune how the store is opened.
type Options struct {
	Driver  string // "sqlite" (modernc) or "sqlite3" (mattn), default "sqlite"
	Version int    // schema version, default DefaultVersion
}

// Store is the single handle to the todo table.
type Store struct {
	db      *sqlx.DB
	version int
}

// Open opens the database at path and makes sure the table matches the schema version.
func Open(path string, opts Options) (*Store, error) {
	if path == "" {
		path = DefaultFileName
	}
	if opts.Driver == "" {
		opts.Driver = DefaultDriver
	}
	if opts.Version <= 0 {
		opts.Version = DefaultVersion
	}

	db, err := sqlx.Open(opts.Driver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1) // one handle for the whole session

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database: %w (also failed to close db: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, version: opts.Version}
	if err := s.initialize(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("%w (also failed to close db: %v)", err, closeErr)
		}
		return nil, err
	}
	log.Printf("[DEBUG] opened %s with driver %s, schema version %d", path, opts.Driver, opts.Version)
	return s, nil
}

// initialize creates the table on a fresh file and recreates it on version mismatch.
func (s *Store) initialize() error {
	current, err := s.Version()
	if err != nil {
		return err
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if current != 0 && current != s.version {
		log.Printf("[WARN] schema version changed %d -> %d, dropping %s", current, s.version, tableName)
		if _, err := tx.Exec(sqlDrop); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	if _, err := tx.Exec(sqlCreate); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	if current != s.version {
		// pragma values can't be bound as parameters
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", s.version)); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Version returns the schema version recorded in the database file.
func (s *Store) Version() (int, error) {
	var v int
	if err := s.db.Get(&v, "PRAGMA user_version"); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}

// Insert appends a row and returns its identifier.
func (s *Store) Insert(text string, urgent bool) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO `+tableName+` (text, urgent) VALUES (?, ?)`, text, boolToInt(urgent))
	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	log.Printf("[DEBUG] inserted item %d, urgent=%v", id, urgent)
	return id, nil
}

// QueryAll returns every row in insertion order.
func (s *Store) QueryAll() ([]model.Item, error) {
	rows, err := s.db.Queryx(`SELECT id, text, urgent FROM ` + tableName + ` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	items := []model.Item{}
	for rows.Next() {
		var it model.Item
		if err := rows.StructScan(&it); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	s.dump(cols, items)
	return items, nil
}

// DeleteByText removes every row whose text equals text exactly.
func (s *Store) DeleteByText(text string) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM `+tableName+` WHERE text = ?`, text)
	if err != nil {
		return 0, fmt.Errorf("failed to delete items by text: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	log.Printf("[DEBUG] deleted %d row(s) with text %q", n, text)
	return n, nil
}

// DeleteByID removes the row with the given identifier.
func (s *Store) DeleteByID(id int64) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM `+tableName+` WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	log.Printf("[DEBUG] deleted %d row(s) with id %d", n, id)
	return n, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) dump(cols []string, items []model.Item) {
	log.Printf("[DEBUG] database version: %d", s.version)
	log.Printf("[DEBUG] columns: %d (%s)", len(cols), strings.Join(cols, ", "))
	log.Printf("[DEBUG] results: %d", len(items))
	for _, it := range items {
		log.Printf("[DEBUG] row: %d, %s, %d", it.ID, it.Text, boolToInt(it.Urgent))
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
