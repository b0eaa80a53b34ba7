package skribbl

import (
	"bytes"
	"database/sql"
	"fmt"
	"image"
	"time"

	"github.com/bodgit/skribbl/picture"
	_ "github.com/mattn/go-sqlite3"
)

// Cache stores converted pictures and a history of drawing sessions in an
// SQLite database.
type Cache struct {
	db *sql.DB
}

// NewCache opens or creates the database in file.
func NewCache(file string) (*Cache, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS picture (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, options TEXT NOT NULL, picture BLOB NOT NULL, UNIQUE(sha1, options))"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS session (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, started INTEGER NOT NULL, duration INTEGER NOT NULL, drawn INTEGER NOT NULL, total INTEGER NOT NULL, cancelled INTEGER NOT NULL, timed_out INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{
		db: db,
	}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FindPicture returns the picture converted from the source with the given
// SHA-1 using options, or nil if there is none.
func (c *Cache) FindPicture(sha, options string) (*image.Paletted, error) {
	var b []byte
	switch err := c.db.QueryRow("SELECT picture FROM picture WHERE sha1 = ? AND options = ?", sha, options).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		m, err := picture.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("skribbl: cached picture %s: %w", sha, err)
		}
		return m.(*image.Paletted), nil
	default:
		return nil, err
	}
}

// AddPicture stores m as the picture converted from the source with the
// given SHA-1 using options, replacing any previous one.
func (c *Cache) AddPicture(sha, options string, m image.Image) error {
	b := new(bytes.Buffer)
	if err := picture.Encode(b, m); err != nil {
		return err
	}
	if _, err := c.db.Exec("INSERT OR REPLACE INTO picture (sha1, options, picture) VALUES (?, ?, ?)", sha, options, b.Bytes()); err != nil {
		return err
	}
	return nil
}

// Record is the outcome of one drawing session.
type Record struct {
	ID       int64
	SHA1     string
	Started  time.Time
	Duration time.Duration
	Result
}

// AddRecord stores r in the session history.
func (c *Cache) AddRecord(r Record) error {
	if _, err := c.db.Exec("INSERT INTO session (sha1, started, duration, drawn, total, cancelled, timed_out) VALUES (?, ?, ?, ?, ?, ?, ?)",
		r.SHA1, r.Started.UnixNano(), int64(r.Duration), r.Drawn, r.Total, r.Cancelled, r.TimedOut); err != nil {
		return err
	}
	return nil
}

// Records returns up to limit sessions, most recent first.
func (c *Cache) Records(limit int) ([]Record, error) {
	rows, err := c.db.Query("SELECT id, sha1, started, duration, drawn, total, cancelled, timed_out FROM session ORDER BY started DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var started, duration int64
		if err := rows.Scan(&r.ID, &r.SHA1, &started, &duration, &r.Drawn, &r.Total, &r.Cancelled, &r.TimedOut); err != nil {
			return nil, err
		}
		r.Started = time.Unix(0, started)
		r.Duration = time.Duration(duration)
		records = append(records, r)
	}

	return records, rows.Err()
}
