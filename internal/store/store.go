package store

import (
	"database/sql"
	"fmt"

	"reposicion-assistant/internal/catalog"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS items_reposicion (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	numero_sencillo TEXT NOT NULL,
	codigos         TEXT NOT NULL,
	cod_a           TEXT,
	cod_b           TEXT,
	proceso         TEXT NOT NULL,
	maq             TEXT,
	ckt_grp         TEXT,
	type            TEXT,
	size            TEXT,
	color           TEXT,
	cut_length      TEXT,
	general         TEXT,
	planta          TEXT,
	qty             TEXT
);

CREATE INDEX IF NOT EXISTS idx_numero_sencillo ON items_reposicion(numero_sencillo);
CREATE INDEX IF NOT EXISTS idx_codigos         ON items_reposicion(codigos);
CREATE INDEX IF NOT EXISTS idx_proceso         ON items_reposicion(proceso);
CREATE INDEX IF NOT EXISTS idx_maq             ON items_reposicion(maq);

CREATE TABLE IF NOT EXISTS session_log (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	turn       INTEGER NOT NULL,
	speaker    TEXT NOT NULL,
	step       TEXT,
	line       TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_log_session ON session_log(session_id);
`
// #endregion schema

// #region store-struct
// Store is the durable backing layer: the item table replaced wholesale on
// each import, plus the append-only session log.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region replace-items
// ReplaceItems swaps the entire item table for the given rows in one
// transaction. Insertion order is preserved through the rowid.
func (s *Store) ReplaceItems(rows []catalog.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM items_reposicion`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO items_reposicion (numero_sencillo, codigos, cod_a, cod_b, proceso, maq,
		 ckt_grp, type, size, color, cut_length, general, planta, qty)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(
			r.NumeroSencillo, r.Codigos, r.CodA, r.CodB, r.Proceso, r.Maq,
			r.CktGrp, r.Type, r.Size, r.Color, r.CutLength, r.General,
			r.Planta, r.Qty,
		)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
	}

	return tx.Commit()
}
// #endregion replace-items

// #region load-dataset
// LoadDataset reads every item row back in insertion order and builds the
// in-memory dataset. An empty table yields an empty dataset, not an error.
func (s *Store) LoadDataset() (*catalog.Dataset, error) {
	rows, err := s.db.Query(
		`SELECT numero_sencillo, codigos, cod_a, cod_b, proceso, maq,
		        ckt_grp, type, size, color, cut_length, general, planta, qty
		 FROM items_reposicion ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var records []catalog.Record
	for rows.Next() {
		var r catalog.Record
		err := rows.Scan(
			&r.NumeroSencillo, &r.Codigos, &r.CodA, &r.CodB, &r.Proceso, &r.Maq,
			&r.CktGrp, &r.Type, &r.Size, &r.Color, &r.CutLength, &r.General,
			&r.Planta, &r.Qty,
		)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return catalog.NewDataset(records), nil
}
// #endregion load-dataset

// #region item-count
// ItemCount returns the number of stored item rows.
func (s *Store) ItemCount() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM items_reposicion`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}
// #endregion item-count

// #region import-workbook
// ImportWorkbook reads an Excel workbook and replaces the item table with its
// contents. Returns the number of imported rows. A *catalog.SchemaError is
// returned when a mandatory column is missing; nothing is replaced in that
// case.
func (s *Store) ImportWorkbook(path string) (int, error) {
	records, err := ReadWorkbook(path)
	if err != nil {
		return 0, err
	}
	if err := s.ReplaceItems(records); err != nil {
		return 0, fmt.Errorf("replace items: %w", err)
	}
	return len(records), nil
}
// #endregion import-workbook
