package export

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"planetgen/internal/planet"
)

// VegetationStore persists placed trees in a SQLite database so external
// tools can query them without loading a snapshot.
type VegetationStore struct {
	db *sql.DB
}

func OpenVegetationStore(path string) (*VegetationStore, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	// WAL is much faster for the batch-insert workload.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	schema := `CREATE TABLE IF NOT EXISTS vegetation (
		id INTEGER PRIMARY KEY,
		biome TEXT NOT NULL,
		x REAL NOT NULL,
		y REAL NOT NULL,
		z REAL NOT NULL,
		height REAL NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &VegetationStore{db: db}, nil
}

// InsertBatch writes all instances in one transaction.
func (s *VegetationStore) InsertBatch(instances []planet.VegetationInstance) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO vegetation (id, biome, x, y, z, height) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, inst := range instances {
		if _, err := stmt.Exec(inst.ID, inst.Biome.String(), inst.Pos.X(), inst.Pos.Y(), inst.Pos.Z(), inst.Height); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("inserting tree %d: %w", inst.ID, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of stored trees.
func (s *VegetationStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM vegetation`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *VegetationStore) Close() error {
	return s.db.Close()
}
