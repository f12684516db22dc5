// Package cache mirrors sidecar bibliography records into a small SQLite
// table for repeated reads. The sidecar file stays authoritative; the
// mirror is rebuilt whenever the sidecar's content hash changes.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/kimlab/readpaper/internal/bib"
	"github.com/kimlab/readpaper/internal/record"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
  id TEXT,
  doi TEXT,
  pmid TEXT,
  pmcid TEXT,
  author TEXT,
  author1 TEXT,
  title TEXT,
  year INTEGER,
  journal TEXT,
  publisher TEXT,
  url TEXT,
  local_url TEXT,
  abstract TEXT,
  keywords TEXT,
  entry_type TEXT
);
CREATE TABLE IF NOT EXISTS _meta (
  key TEXT PRIMARY KEY,
  value TEXT
);`

// Cache is the tabular fast path over one sidecar file.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Sync rebuilds the mirror from the sidecar when its content hash differs
// from the stored one. A missing sidecar clears the mirror.
func (c *Cache) Sync(sidecarPath string) error {
	data, err := os.ReadFile(sidecarPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading sidecar: %w", err)
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	stored, err := c.storedHash()
	if err != nil {
		return err
	}
	if stored == hash {
		return nil
	}

	recs, err := bib.Read(sidecarPath)
	if err != nil {
		return err
	}
	if err := c.replace(recs); err != nil {
		return err
	}
	return c.setStoredHash(hash)
}

// Invalidate drops the stored hash so the next Sync rebuilds the mirror.
// Call it whenever the authoritative sidecar is rewritten.
func (c *Cache) Invalidate() error {
	_, err := c.db.Exec(`DELETE FROM _meta WHERE key = 'bib_hash'`)
	return err
}

// Records returns the mirrored records.
func (c *Cache) Records() ([]record.Record, error) {
	rows, err := c.db.Query(`SELECT id, doi, pmid, pmcid, author, author1, title, year,
		journal, publisher, url, local_url, abstract, keywords, entry_type FROM records`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []record.Record
	for rows.Next() {
		var rec record.Record
		var id, keywords string
		if err := rows.Scan(&id, &rec.DOI, &rec.PMID, &rec.PMCID, &rec.Author,
			&rec.Author1, &rec.Title, &rec.Year, &rec.Journal, &rec.Publisher,
			&rec.URL, &rec.LocalURL, &rec.Abstract, &keywords, &rec.EntryType); err != nil {
			return nil, err
		}
		if keywords != "" {
			var kws []string
			for _, k := range strings.Split(keywords, ",") {
				if k = strings.TrimSpace(k); k != "" {
					kws = append(kws, k)
				}
			}
			rec.Keywords = kws
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// replace swaps the mirror's contents in one transaction.
func (c *Cache) replace(recs []record.Record) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM records`); err != nil {
		return err
	}
	for _, rec := range recs {
		_, err := tx.Exec(`INSERT INTO records (id, doi, pmid, pmcid, author, author1,
			title, year, journal, publisher, url, local_url, abstract, keywords, entry_type)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID(), rec.DOI, rec.PMID, rec.PMCID, rec.Author, rec.Author1,
			rec.Title, rec.Year, rec.Journal, rec.Publisher, rec.URL, rec.LocalURL,
			rec.Abstract, strings.Join(rec.Keywords, ", "), rec.EntryType)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (c *Cache) storedHash() (string, error) {
	var hash sql.NullString
	err := c.db.QueryRow(`SELECT value FROM _meta WHERE key = 'bib_hash'`).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return hash.String, nil
}

func (c *Cache) setStoredHash(hash string) error {
	_, err := c.db.Exec(`INSERT OR REPLACE INTO _meta (key, value) VALUES ('bib_hash', ?)`, hash)
	return err
}
