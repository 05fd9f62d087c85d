package dataset

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Labels attached to manifest rows.
const (
	LabelValid   = "valid"
	LabelInvalid = "invalid"
)

const schema = `
CREATE TABLE IF NOT EXISTS images (
	id         TEXT PRIMARY KEY,
	filename   TEXT NOT NULL UNIQUE,
	label      TEXT NOT NULL,
	mutation   TEXT NOT NULL DEFAULT '',
	size       INTEGER NOT NULL,
	palette    TEXT NOT NULL,
	side       INTEGER NOT NULL,
	dots       INTEGER NOT NULL,
	curves     INTEGER NOT NULL,
	seed       INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_images_label ON images(label);
`

// Image is one manifest row: a rendered file plus the parameters that
// produced it. Seed together with Size and Mutation is enough to
// regenerate the underlying pattern.
type Image struct {
	ID        string
	Filename  string
	Label     string
	Mutation  string
	Size      int
	Palette   string
	Side      int
	Dots      int
	Curves    int
	Seed      int64
	CreatedAt time.Time
}

// Manifest records every rendered dataset image in a sqlite database so
// a build can be audited, resumed or exported as a label file.
type Manifest struct {
	db *sql.DB
	mu sync.RWMutex
}

// OpenManifest opens the manifest database at path, creating the file
// and its parent directory when missing.
func OpenManifest(path string) (*Manifest, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create manifest dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return nil, err
		}
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create manifest schema: %w", err)
	}

	return &Manifest{db: db}, nil
}

// Close closes the underlying database.
func (m *Manifest) Close() error {
	return m.db.Close()
}

// Record upserts one image row. The filename is the natural key, so
// re-running a build replaces earlier rows instead of duplicating them.
func (m *Manifest) Record(img Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if img.ID == "" {
		img.ID = uuid.NewString()
	}
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now().UTC()
	}

	_, err := m.db.Exec(`
		INSERT INTO images (id, filename, label, mutation, size, palette, side, dots, curves, seed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(filename) DO UPDATE SET
			label = excluded.label,
			mutation = excluded.mutation,
			size = excluded.size,
			palette = excluded.palette,
			side = excluded.side,
			dots = excluded.dots,
			curves = excluded.curves,
			seed = excluded.seed,
			created_at = excluded.created_at
	`, img.ID, img.Filename, img.Label, img.Mutation, img.Size, img.Palette,
		img.Side, img.Dots, img.Curves, img.Seed, img.CreatedAt)
	if err != nil {
		return fmt.Errorf("record image: %w", err)
	}
	return nil
}

// Count returns the number of recorded images carrying label. The empty
// label counts every row.
func (m *Manifest) Count(label string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	query := "SELECT COUNT(*) FROM images"
	args := []any{}
	if label != "" {
		query += " WHERE label = ?"
		args = append(args, label)
	}

	var n int
	if err := m.db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count images: %w", err)
	}
	return n, nil
}

// List returns the recorded images carrying label, ordered by filename.
// The empty label lists every row.
func (m *Manifest) List(label string) ([]Image, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	query := `
		SELECT id, filename, label, mutation, size, palette, side, dots, curves, seed, created_at
		FROM images`
	args := []any{}
	if label != "" {
		query += " WHERE label = ?"
		args = append(args, label)
	}
	query += " ORDER BY filename"

	rows, err := m.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	var images []Image
	for rows.Next() {
		var img Image
		var createdAt sql.NullTime
		if err := rows.Scan(&img.ID, &img.Filename, &img.Label, &img.Mutation,
			&img.Size, &img.Palette, &img.Side, &img.Dots, &img.Curves,
			&img.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		if createdAt.Valid {
			img.CreatedAt = createdAt.Time
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return images, nil
}

// ExportCSV writes every recorded image as a "filename,label" row,
// preceded by a header, in filename order.
func (m *Manifest) ExportCSV(w io.Writer) error {
	images, err := m.List("")
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"filename", "label"}); err != nil {
		return fmt.Errorf("export labels: %w", err)
	}
	for _, img := range images {
		if err := cw.Write([]string{img.Filename, img.Label}); err != nil {
			return fmt.Errorf("export labels: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export labels: %w", err)
	}
	return nil
}
