// Package repo implements the flat-file record store behind the portal.
// Each collection is a CSV file with a fixed header row; records are read and
// written whole ("list all", "append", "rewrite all"). Point updates are
// read-modify-rewrite over the full collection.
//
// Concurrency and durability:
//   - A per-collection mutex serializes access inside one process, so a
//     single instance never interleaves writes to the same file.
//   - rewriteAll truncates and rewrites in place. A crash mid-rewrite leaves
//     the collection in an undefined intermediate state; there is no
//     journaling or atomic rename. This is a known, accepted hazard of the
//     format; the deployment assumption is a single writer process.
//   - Multiple processes sharing one data directory can lose updates
//     (last full rewrite wins). Do not deploy that way.
package repo

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrNotFound is returned by typed lookups when no record matches.
var ErrNotFound = errors.New("record not found")

// timeLayout matches the timestamps the collections have always carried:
// ISO-8601 UTC without a zone designator, microsecond precision.
const timeLayout = "2006-01-02T15:04:05.999999"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime is deliberately tolerant: collections written by earlier tooling
// carry a few timestamp shapes. A row that cannot be parsed yields the zero
// time rather than failing the whole scan.
func parseTime(s string) time.Time {
	for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// table is one CSV-backed collection.
type table struct {
	path   string
	header []string
	mu     sync.Mutex
}

// readAll returns every data row (header stripped) in file order.
func (t *table) readAll() ([][]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.readAllLocked()
}

func (t *table) readAllLocked() ([][]string, error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate rows from older schema revisions
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

// appendRow adds one record to the end of the collection.
func (t *table) appendRow(row []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := os.OpenFile(t.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// rewriteAll replaces the full collection (header + rows). Not atomic: see
// the package comment for the torn-write hazard.
func (t *table) rewriteAll(rows [][]string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := os.Create(t.path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ensure creates the backing file with the schema header (and optional seed
// rows) when it is missing. When seedIfEmpty is true the file is also
// re-seeded if it exists but holds no data rows, which is how the users
// collection gets its provisioned accounts back after a wipe.
func (t *table) ensure(seed [][]string, seedIfEmpty bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := os.Stat(t.path); err == nil {
		if !seedIfEmpty {
			return nil
		}
		rows, rerr := t.readAllLocked()
		if rerr == nil && len(rows) > 0 {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	f, err := os.Create(t.path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.header); err != nil {
		return err
	}
	for _, row := range seed {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Store groups the five portal collections rooted at one data directory.
type Store struct {
	region string

	users         table
	complaints    table
	posts         table
	announcements table
	feedback      table
}

// Open prepares a Store under dir, creating the directory and any missing
// collection files. region is the single service region this deployment is
// scoped to; the seeded accounts are provisioned inside it (plus one
// deliberately out-of-region account exercising the region-mismatch path).
func Open(dir, region string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	s := &Store{
		region: region,
		users: table{
			path:   filepath.Join(dir, "users.csv"),
			header: []string{"id", "username", "password_hash", "is_admin", "region", "area_code"},
		},
		complaints: table{
			path: filepath.Join(dir, "complaints.csv"),
			header: []string{
				"id", "username", "name", "house", "category", "description", "attachment",
				"created_at", "status", "department", "admin_notes", "latitude", "longitude",
				"sla_due", "priority",
			},
		},
		posts: table{
			path:   filepath.Join(dir, "posts.csv"),
			header: []string{"id", "username", "region", "content", "created_at", "votes", "attachment"},
		},
		announcements: table{
			path:   filepath.Join(dir, "announcements.csv"),
			header: []string{"id", "author", "content", "created_at", "attachment"},
		},
		feedback: table{
			path:   filepath.Join(dir, "feedback.csv"),
			header: []string{"complaint_id", "username", "rating", "suggestion", "created_at"},
		},
	}

	if err := s.users.ensure(seedUsers(region), true); err != nil {
		return nil, err
	}
	for _, t := range []*table{&s.complaints, &s.posts, &s.announcements, &s.feedback} {
		if err := t.ensure(nil, false); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Region returns the service region this store was opened for.
func (s *Store) Region() string { return s.region }
