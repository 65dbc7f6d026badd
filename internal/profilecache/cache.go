// Package profilecache stores estimated error profiles in SQLite, keyed by
// the BLAKE3 digest of the alignment file they were estimated from.
//
// Estimating a profile means decoding every record of a BAM file; hashing
// the same file is far cheaper, so repeated runs against one alignment
// reuse the stored rates.
package profilecache

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/zeebo/blake3"
	_ "modernc.org/sqlite"

	"readsim/core/errprofile"
)

const schema = `CREATE TABLE IF NOT EXISTS profiles (
	digest      TEXT PRIMARY KEY,
	mismatch    REAL NOT NULL,
	insertion   REAL NOT NULL,
	deletion    REAL NOT NULL,
	total_bases INTEGER NOT NULL,
	mismatches  INTEGER NOT NULL,
	insertions  INTEGER NOT NULL,
	deletions   INTEGER NOT NULL,
	records     INTEGER NOT NULL,
	created_at  TEXT NOT NULL
)`

// Cache is a handle on one cache database.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("profile cache %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("profile cache %s: %w", path, err)
	}
	return &Cache{db: db}, nil
}

// Get looks up digest. ok is false when nothing is stored.
func (c *Cache) Get(ctx context.Context, digest string) (p errprofile.Profile, n errprofile.Counts, ok bool, err error) {
	row := c.db.QueryRowContext(ctx, `SELECT mismatch, insertion, deletion,
		total_bases, mismatches, insertions, deletions, records
		FROM profiles WHERE digest = ?`, digest)
	err = row.Scan(&p.Mismatch, &p.Insertion, &p.Deletion,
		&n.TotalBases, &n.Mismatches, &n.Insertions, &n.Deletions, &n.Records)
	if errors.Is(err, sql.ErrNoRows) {
		return errprofile.Profile{}, errprofile.Counts{}, false, nil
	}
	if err != nil {
		return errprofile.Profile{}, errprofile.Counts{}, false, err
	}
	return p, n, true, nil
}

// Put stores p and its counts under digest, replacing any earlier entry.
func (c *Cache) Put(ctx context.Context, digest string, p errprofile.Profile, n errprofile.Counts) error {
	_, err := c.db.ExecContext(ctx, `INSERT OR REPLACE INTO profiles
		(digest, mismatch, insertion, deletion, total_bases, mismatches, insertions, deletions, records, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		digest, p.Mismatch, p.Insertion, p.Deletion,
		n.TotalBases, n.Mismatches, n.Insertions, n.Deletions, n.Records,
		time.Now().UTC().Format(time.RFC3339))
	return err
}

func (c *Cache) Close() error { return c.db.Close() }

// DigestFile returns the hex BLAKE3-256 digest of the file at path.
func DigestFile(path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer fh.Close()
	h := blake3.New()
	if _, err := io.Copy(h, fh); err != nil {
		return "", fmt.Errorf("digest %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
