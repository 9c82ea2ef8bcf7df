package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"shotwiz/pkg/models"
)

// ErrNotFound is returned when a placement id has no record.
var ErrNotFound = errors.New("placement not found")

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) init() error {
	queryPlacements := `
	CREATE TABLE IF NOT EXISTS placements (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		batch_id TEXT NOT NULL DEFAULT '',
		source_path TEXT NOT NULL,
		dest_path TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		size_bytes INTEGER NOT NULL DEFAULT 0,
		placed_at DATETIME NOT NULL
	);`

	queryIndex := `CREATE INDEX IF NOT EXISTS idx_placements_batch ON placements(batch_id);`

	if _, err := s.db.Exec(queryPlacements); err != nil {
		return fmt.Errorf("failed to create placements table: %w", err)
	}
	if _, err := s.db.Exec(queryIndex); err != nil {
		return fmt.Errorf("failed to create placements index: %w", err)
	}
	return nil
}

// Save records a completed placement and sets its ID.
func (s *Store) Save(p *models.Placement) error {
	res, err := s.db.Exec(`
		INSERT INTO placements (batch_id, source_path, dest_path, category, size_bytes, placed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.BatchID, p.SourcePath, p.DestPath, p.Category, p.SizeBytes, p.PlacedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert placement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// ListPlacements returns the newest placements first. filterField is one of
// name, category or batch; unknown fields are ignored.
func (s *Store) ListPlacements(limit int, filterField, filterValue string) ([]models.Placement, error) {
	baseQuery := `
	SELECT id, batch_id, source_path, dest_path, category, size_bytes, placed_at
	FROM placements`

	var args []interface{}

	// Whitelist filter fields to prevent injection
	fieldMap := map[string]string{
		"name":     "dest_path",
		"category": "category",
		"batch":    "batch_id",
	}

	if dbField, ok := fieldMap[filterField]; ok && filterValue != "" {
		baseQuery += fmt.Sprintf(" WHERE %s LIKE ?", dbField)
		args = append(args, "%"+filterValue+"%")
	}

	baseQuery += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query placements: %w", err)
	}
	defer rows.Close()

	var results []models.Placement
	for rows.Next() {
		var p models.Placement
		var ts time.Time

		err := rows.Scan(&p.ID, &p.BatchID, &p.SourcePath, &p.DestPath, &p.Category, &p.SizeBytes, &ts)
		if err != nil {
			return nil, fmt.Errorf("failed to scan placement: %w", err)
		}
		p.PlacedAt = ts
		results = append(results, p)
	}
	return results, rows.Err()
}

func (s *Store) ListAllPaths() (map[int64]string, error) {
	rows, err := s.db.Query("SELECT id, dest_path FROM placements")
	if err != nil {
		return nil, fmt.Errorf("failed to query paths: %w", err)
	}
	defer rows.Close()

	paths := make(map[int64]string)
	for rows.Next() {
		var id int64
		var path string
		if err := rows.Scan(&id, &path); err != nil {
			return nil, err
		}
		paths[id] = path
	}
	return paths, rows.Err()
}

func (s *Store) DeletePlacement(id int64) error {
	_, err := s.db.Exec("DELETE FROM placements WHERE id = ?", id)
	return err
}

func (s *Store) GetPlacementPath(id int64) (string, error) {
	var path string
	err := s.db.QueryRow("SELECT dest_path FROM placements WHERE id = ?", id).Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return path, err
}
