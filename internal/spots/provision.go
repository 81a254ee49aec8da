package spots

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

var provisionMu sync.Mutex

// NeedsProvisioning checks if the surf spots database needs to be provisioned
func NeedsProvisioning(dbPath string) (bool, error) {
	// If file doesn't exist, we need to provision
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return true, nil
	}

	// Check if surf_spots table exists
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return false, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='surf_spots'").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking for surf_spots table: %w", err)
	}

	return count == 0, nil
}

// ProvisionSpotsDatabase writes the bundled sample spots into the SQLite
// database, creating the file and schema if needed. Safe to call repeatedly;
// an already provisioned database is left alone.
func ProvisionSpotsDatabase(dbPath string, progressChan chan<- string) error {
	provisionMu.Lock()
	defer provisionMu.Unlock()

	needs, err := NeedsProvisioning(dbPath)
	if err != nil {
		return err
	}
	if !needs {
		return nil
	}

	sendProgress := func(msg string) {
		if progressChan != nil {
			progressChan <- msg
		} else {
			log.Println(msg)
		}
	}

	sendProgress("Surf spots table not found, provisioning...")

	// Create data directory if it doesn't exist
	dataDir := filepath.Dir(dbPath)
	if err = os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database for building: %w", err)
	}
	defer db.Close()

	if err = buildSpotsDatabase(db); err != nil {
		return fmt.Errorf("building database: %w", err)
	}

	sendProgress(fmt.Sprintf("Successfully provisioned surf spots database at %s", dbPath))
	return nil
}

// buildSpotsDatabase creates the surf_spots table and inserts the seed spots.
// The position column preserves catalog order across reads.
func buildSpotsDatabase(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS surf_spots (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			description TEXT,
			difficulty TEXT NOT NULL,
			position INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_surf_spots_difficulty ON surf_spots(difficulty);
	`)
	if err != nil {
		return fmt.Errorf("creating surf_spots table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() // Rollback on error

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO surf_spots (id, name, latitude, longitude, description, difficulty, position) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, s := range Seed() {
		if _, err = stmt.Exec(s.ID, s.Name, s.Latitude, s.Longitude, s.Description, string(s.Difficulty), i); err != nil {
			return fmt.Errorf("inserting spot %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
