// Package registry persists the named project registry in a SQLite
// database. The discovery engine hands it (name, path) pairs; nothing
// in this package walks the filesystem.
package registry

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/vcode-cli/vcode/pkg/discovery"
	vcerrors "github.com/vcode-cli/vcode/pkg/errors"
)

// created_at holds a unix timestamp; SQLite has no native time type.
const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	path       TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
`

// Project is a registered project entry.
type Project struct {
	ID        string
	Name      string
	Path      string
	CreatedAt time.Time
}

// Store wraps the registry database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the registry database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, vcerrors.NewRegistryErrorWithCause("Open", "", "failed to create registry directory", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, vcerrors.NewRegistryErrorWithCause("Open", "", "failed to open registry database", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, vcerrors.NewRegistryErrorWithCause("Open", "", "failed to initialize schema", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add registers a project, replacing the path if the name already
// exists.
func (s *Store) Add(name, path string) error {
	if name == "" {
		return vcerrors.NewRegistryError("Add", name, "project name must not be empty")
	}

	_, err := s.db.Exec(`
		INSERT INTO projects (id, name, path, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET path = excluded.path`,
		uuid.New().String(), name, path, time.Now().Unix())
	if err != nil {
		return vcerrors.NewRegistryErrorWithCause("Add", name, "insert failed", err)
	}
	return nil
}

// Get returns the path registered for name.
func (s *Store) Get(name string) (string, bool, error) {
	var path string
	err := s.db.QueryRow(`SELECT path FROM projects WHERE name = ?`, name).Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, vcerrors.NewRegistryErrorWithCause("Get", name, "query failed", err)
	}
	return path, true, nil
}

// Remove deletes a project by name. Removing an unknown name is an
// error so the CLI can tell the user the name was wrong.
func (s *Store) Remove(name string) error {
	res, err := s.db.Exec(`DELETE FROM projects WHERE name = ?`, name)
	if err != nil {
		return vcerrors.NewRegistryErrorWithCause("Remove", name, "delete failed", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return vcerrors.NewRegistryError("Remove", name, "project not found")
	}
	return nil
}

// Rename changes a project's name, keeping its path and identity.
func (s *Store) Rename(oldName, newName string) error {
	res, err := s.db.Exec(`UPDATE projects SET name = ? WHERE name = ?`, newName, oldName)
	if err != nil {
		return vcerrors.NewRegistryErrorWithCause("Rename", oldName, "update failed", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return vcerrors.NewRegistryError("Rename", oldName, "project not found")
	}
	return nil
}

// List returns all projects sorted by name, case-insensitively.
func (s *Store) List() ([]Project, error) {
	rows, err := s.db.Query(`
		SELECT id, name, path, created_at FROM projects
		ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, vcerrors.NewRegistryErrorWithCause("List", "", "query failed", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.Name, &p.Path, &createdAt); err != nil {
			return nil, vcerrors.NewRegistryErrorWithCause("List", "", "scan failed", err)
		}
		p.CreatedAt = time.Unix(createdAt, 0)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, vcerrors.NewRegistryErrorWithCause("List", "", "iteration failed", err)
	}
	return projects, nil
}

// Search returns projects whose name or path contains query,
// case-insensitively, in name order.
func (s *Store) Search(query string) ([]Project, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var matched []Project
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Path), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Clear removes every project from the registry.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM projects`); err != nil {
		return vcerrors.NewRegistryErrorWithCause("Clear", "", "delete failed", err)
	}
	return nil
}

// AddFound registers scan results one at a time, tolerating individual
// failures so one bad entry does not abort the batch. It returns the
// number added and the per-item failures.
func (s *Store) AddFound(projects []discovery.FoundProject) (int, []error) {
	added := 0
	var failures []error
	for _, p := range projects {
		if err := s.Add(p.Name, p.Path); err != nil {
			failures = append(failures, err)
			continue
		}
		added++
	}
	return added, failures
}
