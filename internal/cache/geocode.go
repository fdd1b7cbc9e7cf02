package cache

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"weather-cli/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS geocode_cache (
    zip TEXT PRIMARY KEY,
    lat REAL NOT NULL,
    lon REAL NOT NULL
);`

// GeocodeCache is a SQLite backed ZIP -> coordinate cache. ZIP keys are
// stored as given; only geocoding results are cached, never weather
// responses.
type GeocodeCache struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path and
// ensures the schema exists.
func Open(path string) (*GeocodeCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open geocode cache %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init geocode cache schema: %w", err)
	}

	return &GeocodeCache{db: db}, nil
}

// Get returns the cached coordinate for zip. The boolean reports
// whether the key was present; a miss is not an error.
func (c *GeocodeCache) Get(zip string) (models.Coordinate, bool, error) {
	var coord models.Coordinate
	row := c.db.QueryRow(`SELECT lat, lon FROM geocode_cache WHERE zip = ?;`, zip)
	if err := row.Scan(&coord.Lat, &coord.Lon); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Coordinate{}, false, nil
		}
		return models.Coordinate{}, false, fmt.Errorf("get geocode cache zip=%q: %w", zip, err)
	}
	return coord, true, nil
}

// Put stores (or replaces) the coordinate for zip.
func (c *GeocodeCache) Put(zip string, coord models.Coordinate) error {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO geocode_cache (zip, lat, lon) VALUES (?, ?, ?);`,
		zip, coord.Lat, coord.Lon,
	)
	if err != nil {
		return fmt.Errorf("insert geocode cache zip=%q: %w", zip, err)
	}
	return nil
}

func (c *GeocodeCache) Close() error {
	return c.db.Close()
}
