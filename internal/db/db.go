package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // Import for side-effects only

	"mspro-labs/shoe-scout/internal/models"
)

// ErrRunNotFound is returned when no archived run matches an id.
var ErrRunNotFound = errors.New("run not found")

// Connect opens the SQLite archive, creating its directory and schema if needed.
func Connect(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Use robust connection settings to prevent "database locked" errors
	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on", dbPath)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return db, nil
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
	  id TEXT PRIMARY KEY,
	  query TEXT NOT NULL,
	  pages INTEGER NOT NULL,
	  product_count INTEGER NOT NULL,
	  file_path TEXT,
	  started_at DATETIME NOT NULL,
	  finished_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS products (
	  run_id TEXT NOT NULL,
	  position INTEGER NOT NULL,
	  name TEXT,
	  price TEXT,
	  detail_url TEXT,
	  shoe_type TEXT,
	  article TEXT,
	  color TEXT,
	  country TEXT,
	  season TEXT,
	  material TEXT,
	  size TEXT,
	  PRIMARY KEY (run_id, position),
	  FOREIGN KEY (run_id) REFERENCES runs (id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_runs_finished ON runs(finished_at);
	`
	_, err := db.Exec(schema)
	return err
}

// SaveRun stores a run and its products in one transaction. A new id is
// assigned when run.ID is empty. It returns the run id.
func SaveRun(db *sql.DB, run models.Run, products []models.ProductRecord) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	run.ProductCount = len(products)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, query, pages, product_count, file_path, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Query, run.Pages, run.ProductCount,
		sql.NullString{String: run.FilePath, Valid: run.FilePath != ""},
		run.StartedAt.UTC(), run.FinishedAt.UTC(),
	)
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("failed to insert run %s: %w", run.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO products (
	  run_id, position, name, price, detail_url,
	  shoe_type, article, color, country, season, material, size
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return "", err
	}
	defer stmt.Close()

	for i, p := range products {
		_, err := stmt.ExecContext(ctx,
			run.ID, i, p.Name, p.Price,
			sql.NullString{String: p.DetailURL, Valid: p.DetailURL != ""},
			p.ShoeType, p.Article, p.Color, p.Country, p.Season, p.Material, p.Size,
		)
		if err != nil {
			tx.Rollback()
			return "", fmt.Errorf("failed to insert product %d of run %s: %w", i, run.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", err
	}
	return run.ID, nil
}

// ListRuns returns archived runs, newest first.
func ListRuns(db *sql.DB) ([]models.Run, error) {
	rows, err := db.Query(`
		SELECT id, query, pages, product_count, COALESCE(file_path, ''), started_at, finished_at
		FROM runs
		ORDER BY finished_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		var r models.Run
		if err := rows.Scan(&r.ID, &r.Query, &r.Pages, &r.ProductCount, &r.FilePath, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun returns one archived run.
func GetRun(db *sql.DB, id string) (models.Run, error) {
	var r models.Run
	err := db.QueryRow(`
		SELECT id, query, pages, product_count, COALESCE(file_path, ''), started_at, finished_at
		FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.Query, &r.Pages, &r.ProductCount, &r.FilePath, &r.StartedAt, &r.FinishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return r, err
}

// GetRunProducts returns the products of a run in their scraped order.
func GetRunProducts(db *sql.DB, runID string) ([]models.ProductRecord, error) {
	rows, err := db.Query(`
		SELECT name, price, COALESCE(detail_url, ''), shoe_type, article, color, country, season, material, size
		FROM products
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.ProductRecord
	for rows.Next() {
		var p models.ProductRecord
		if err := rows.Scan(
			&p.Name, &p.Price, &p.DetailURL,
			&p.ShoeType, &p.Article, &p.Color, &p.Country, &p.Season, &p.Material, &p.Size,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// SetRunFile records where a run was last exported.
func SetRunFile(db *sql.DB, runID, path string) error {
	_, err := db.Exec("UPDATE runs SET file_path = ? WHERE id = ?", path, runID)
	return err
}
