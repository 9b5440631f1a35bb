package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/jcdickinson/quarry/internal/mine"
)

type DB struct {
	conn *sql.DB
}

func New(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	conn, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) initSchema() error {
	queries := []string{
		`CREATE SEQUENCE IF NOT EXISTS seq_struct_id START 1;`,
		`CREATE SEQUENCE IF NOT EXISTS seq_field_id START 1;`,

		`CREATE TABLE IF NOT EXISTS structs (
			id INTEGER PRIMARY KEY,
			path TEXT NOT NULL UNIQUE,
			simple_name TEXT NOT NULL,
			module_path TEXT NOT NULL,
			shape TEXT NOT NULL,
			exported_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_structs_name ON structs (simple_name)`,
		`CREATE INDEX IF NOT EXISTS idx_structs_module ON structs (module_path)`,

		`CREATE TABLE IF NOT EXISTS fields (
			id INTEGER PRIMARY KEY,
			struct_id INTEGER NOT NULL REFERENCES structs(id),
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			type_name TEXT NOT NULL,
			is_public BOOLEAN NOT NULL,
			UNIQUE(struct_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fields_struct ON fields (struct_id)`,
	}

	for _, q := range queries {
		if _, err := db.conn.Exec(q); err != nil {
			return fmt.Errorf("executing %q: %w", q, err)
		}
	}
	return nil
}

// StructRow is the stored form of one mined struct.
type StructRow struct {
	ID         int
	Path       string
	SimpleName string
	ModulePath string
	Shape      string
	ExportedAt time.Time
}

// InsertStruct stores one struct and its fields. Existing rows for the same
// path are replaced so repeated exports converge on the latest mine; the
// delete and re-insert commit as one transaction.
func (db *DB) InsertStruct(s *mine.Struct) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`DELETE FROM fields WHERE struct_id IN (SELECT id FROM structs WHERE path = ?)`, s.Path)
	if err != nil {
		return fmt.Errorf("deleting fields for %s: %w", s.Path, err)
	}
	if _, err := tx.Exec(`DELETE FROM structs WHERE path = ?`, s.Path); err != nil {
		return fmt.Errorf("deleting struct %s: %w", s.Path, err)
	}

	_, err = tx.Exec(
		`INSERT INTO structs (id, path, simple_name, module_path, shape)
		 VALUES (nextval('seq_struct_id'), ?, ?, ?, ?)`,
		s.Path, s.SimpleName, s.ModulePath, s.Shape.String(),
	)
	if err != nil {
		return fmt.Errorf("inserting struct %s: %w", s.Path, err)
	}

	var structID int
	if err := tx.QueryRow("SELECT currval('seq_struct_id')").Scan(&structID); err != nil {
		return fmt.Errorf("getting struct id: %w", err)
	}

	for i, f := range s.Fields {
		_, err := tx.Exec(
			`INSERT INTO fields (id, struct_id, position, name, type_name, is_public)
			 VALUES (nextval('seq_field_id'), ?, ?, ?, ?, ?)`,
			structID, i, f.Name, f.TypeName, f.IsPublic,
		)
		if err != nil {
			return fmt.Errorf("inserting field %s.%s: %w", s.Path, f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing struct %s: %w", s.Path, err)
	}
	return nil
}

// GetStruct reassembles a mined struct from its stored rows. Returns nil
// with no error when the path is absent.
func (db *DB) GetStruct(path string) (*mine.Struct, error) {
	var row StructRow
	err := db.conn.QueryRow(
		`SELECT id, path, simple_name, module_path, shape, exported_at FROM structs WHERE path = ?`,
		path,
	).Scan(&row.ID, &row.Path, &row.SimpleName, &row.ModulePath, &row.Shape, &row.ExportedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s := &mine.Struct{
		Path:       row.Path,
		SimpleName: row.SimpleName,
		ModulePath: row.ModulePath,
		Shape:      shapeFromString(row.Shape),
	}

	rows, err := db.conn.Query(
		`SELECT name, type_name, is_public FROM fields WHERE struct_id = ? ORDER BY position`,
		row.ID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		f := mine.Field{StructPath: s.Path}
		if err := rows.Scan(&f.Name, &f.TypeName, &f.IsPublic); err != nil {
			return nil, err
		}
		s.Fields = append(s.Fields, f)
	}
	return s, rows.Err()
}

func (db *DB) ListPaths() ([]string, error) {
	rows, err := db.conn.Query(`SELECT path FROM structs ORDER BY path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

func (db *DB) CountStructs() (int, error) {
	var count int
	err := db.conn.QueryRow(`SELECT COUNT(*) FROM structs`).Scan(&count)
	return count, err
}

func (db *DB) CountFields() (int, error) {
	var count int
	err := db.conn.QueryRow(`SELECT COUNT(*) FROM fields`).Scan(&count)
	return count, err
}

func shapeFromString(s string) mine.Shape {
	switch s {
	case "tuple":
		return mine.ShapeTuple
	case "unit":
		return mine.ShapeUnit
	default:
		return mine.ShapeNamed
	}
}
