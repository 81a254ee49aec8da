package spots

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/surfcheck/surf-terminal/internal/models"
	_ "modernc.org/sqlite"
)

// DefaultDBPath returns the default path to the spot catalog database
func DefaultDBPath() string {
	return filepath.Join("data", "surf-terminal.db")
}

// Repository reads the spot catalog from the SQLite database, provisioning it
// from the bundled seed set on first use.
type Repository struct {
	dbPath string

	once    sync.Once
	db      *sql.DB
	initErr error
}

// NewRepository creates a repository for the database at dbPath
func NewRepository(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

func (r *Repository) open() (*sql.DB, error) {
	r.once.Do(func() {
		r.initErr = ProvisionSpotsDatabase(r.dbPath, nil)
		if r.initErr != nil {
			return
		}

		r.db, r.initErr = sql.Open("sqlite", r.dbPath)
		if r.initErr != nil {
			return
		}
		// Set pragmas for performance
		_, _ = r.db.Exec("PRAGMA journal_mode=WAL")
		_, _ = r.db.Exec("PRAGMA synchronous=NORMAL")
	})
	return r.db, r.initErr
}

// Spots returns every spot in catalog order. Implements catalog.SpotSource.
func (r *Repository) Spots(ctx context.Context) ([]models.SurfSpot, error) {
	db, err := r.open()
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	rows, err := db.QueryContext(ctx,
		"SELECT id, name, latitude, longitude, description, difficulty FROM surf_spots ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying spots: %w", err)
	}
	defer rows.Close()

	var result []models.SurfSpot
	for rows.Next() {
		var s models.SurfSpot
		var description sql.NullString
		var difficulty string

		if err := rows.Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude, &description, &difficulty); err != nil {
			return nil, fmt.Errorf("scanning spot: %w", err)
		}
		s.Description = description.String
		s.Difficulty, err = models.ParseDifficulty(difficulty)
		if err != nil {
			return nil, fmt.Errorf("spot %s: %w", s.ID, err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating spots: %w", err)
	}

	return result, nil
}

// Close releases the underlying database handle
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
