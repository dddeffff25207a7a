package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/floorcopy/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
)

// Store is a SQLite-based storage for building models.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.floorcopy/data/model.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".floorcopy", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "model.db")

	// Pragmas in the DSN apply to every pooled connection.
	db, err := sql.Open("sqlite", dbPath+
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ModelStore returns a ModelStore interface backed by this store.
func (s *Store) ModelStore() driven.ModelStore {
	return &modelStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Model Store ====================

// modelStore implements driven.ModelStore.
type modelStore struct {
	store *Store
}

var _ driven.ModelStore = (*modelStore)(nil)

// Load returns every persisted element in creation order.
func (s *modelStore) Load(ctx context.Context) (*driven.Model, error) {
	model := &driven.Model{Solids: make(map[domain.ElementID]*domain.Solid)}

	var err error
	if model.Levels, err = s.loadLevels(ctx); err != nil {
		return nil, err
	}
	if model.FloorTypes, err = s.loadFloorTypes(ctx); err != nil {
		return nil, err
	}
	if model.Floors, err = s.loadFloors(ctx); err != nil {
		return nil, err
	}
	if model.Openings, err = s.loadOpenings(ctx); err != nil {
		return nil, err
	}
	if err := s.loadSolids(ctx, model.Solids); err != nil {
		return nil, err
	}
	return model, nil
}

func (s *modelStore) loadLevels(ctx context.Context) ([]domain.Level, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, elevation FROM levels ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying levels: %w", err)
	}
	defer rows.Close()

	var levels []domain.Level //nolint:prealloc // size unknown from query
	for rows.Next() {
		var l domain.Level
		if err := rows.Scan(&l.ID, &l.Name, &l.Elevation); err != nil {
			return nil, fmt.Errorf("scanning level: %w", err)
		}
		levels = append(levels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating levels: %w", err)
	}
	return levels, nil
}

func (s *modelStore) loadFloorTypes(ctx context.Context) ([]domain.FloorType, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, thickness FROM floor_types ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying floor types: %w", err)
	}
	defer rows.Close()

	var types []domain.FloorType //nolint:prealloc // size unknown from query
	for rows.Next() {
		var ft domain.FloorType
		if err := rows.Scan(&ft.ID, &ft.Name, &ft.Thickness); err != nil {
			return nil, fmt.Errorf("scanning floor type: %w", err)
		}
		types = append(types, ft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating floor types: %w", err)
	}
	return types, nil
}

func (s *modelStore) loadFloors(ctx context.Context) ([]domain.Floor, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, type_id, level_id, structural, boundary, elevation_offset, temporary
		FROM floors ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying floors: %w", err)
	}
	defer rows.Close()

	var floors []domain.Floor //nolint:prealloc // size unknown from query
	for rows.Next() {
		var f domain.Floor
		var boundaryJSON string
		if err := rows.Scan(&f.ID, &f.Name, &f.TypeID, &f.LevelID, &f.Structural,
			&boundaryJSON, &f.Offset, &f.Temporary); err != nil {
			return nil, fmt.Errorf("scanning floor: %w", err)
		}
		if err := json.Unmarshal([]byte(boundaryJSON), &f.Boundary); err != nil {
			return nil, fmt.Errorf("unmarshaling boundary of floor %s: %w", f.ID, err)
		}
		floors = append(floors, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating floors: %w", err)
	}
	return floors, nil
}

func (s *modelStore) loadOpenings(ctx context.Context) ([]domain.Opening, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, host_id, loop, cut FROM openings ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying openings: %w", err)
	}
	defer rows.Close()

	var openings []domain.Opening //nolint:prealloc // size unknown from query
	for rows.Next() {
		var o domain.Opening
		var loopJSON string
		if err := rows.Scan(&o.ID, &o.HostID, &loopJSON, &o.Cut); err != nil {
			return nil, fmt.Errorf("scanning opening: %w", err)
		}
		if err := json.Unmarshal([]byte(loopJSON), &o.Loop); err != nil {
			return nil, fmt.Errorf("unmarshaling loop of opening %s: %w", o.ID, err)
		}
		openings = append(openings, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating openings: %w", err)
	}
	return openings, nil
}

func (s *modelStore) loadSolids(ctx context.Context, into map[domain.ElementID]*domain.Solid) error {
	rows, err := s.store.db.QueryContext(ctx, "SELECT floor_id, faces FROM solids")
	if err != nil {
		return fmt.Errorf("querying solids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id domain.ElementID
		var facesJSON string
		if err := rows.Scan(&id, &facesJSON); err != nil {
			return fmt.Errorf("scanning solid: %w", err)
		}
		var solid domain.Solid
		if err := json.Unmarshal([]byte(facesJSON), &solid.Faces); err != nil {
			return fmt.Errorf("unmarshaling solid of floor %s: %w", id, err)
		}
		into[id] = &solid
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating solids: %w", err)
	}
	return nil
}

// SaveLevel stores or updates a level.
func (s *modelStore) SaveLevel(ctx context.Context, level domain.Level) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO levels (id, name, elevation)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			elevation = excluded.elevation
	`, level.ID, level.Name, level.Elevation)
	if err != nil {
		return fmt.Errorf("saving level: %w", err)
	}
	return nil
}

// SaveFloorType stores or updates a floor type.
func (s *modelStore) SaveFloorType(ctx context.Context, floorType domain.FloorType) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO floor_types (id, name, thickness)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			thickness = excluded.thickness
	`, floorType.ID, floorType.Name, floorType.Thickness)
	if err != nil {
		return fmt.Errorf("saving floor type: %w", err)
	}
	return nil
}

// SaveFloor stores or updates a floor.
func (s *modelStore) SaveFloor(ctx context.Context, floor domain.Floor) error {
	boundaryJSON, err := json.Marshal(floor.Boundary)
	if err != nil {
		return fmt.Errorf("marshalling boundary: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO floors (id, name, type_id, level_id, structural, boundary, elevation_offset, temporary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			type_id = excluded.type_id,
			level_id = excluded.level_id,
			structural = excluded.structural,
			boundary = excluded.boundary,
			elevation_offset = excluded.elevation_offset,
			temporary = excluded.temporary
	`, floor.ID, floor.Name, floor.TypeID, floor.LevelID, floor.Structural,
		string(boundaryJSON), floor.Offset, floor.Temporary)
	if err != nil {
		return fmt.Errorf("saving floor: %w", err)
	}
	return nil
}

// SaveOpening stores or updates an opening.
func (s *modelStore) SaveOpening(ctx context.Context, opening domain.Opening) error {
	loopJSON, err := json.Marshal(opening.Loop)
	if err != nil {
		return fmt.Errorf("marshalling loop: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO openings (id, host_id, loop, cut)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			host_id = excluded.host_id,
			loop = excluded.loop,
			cut = excluded.cut
	`, opening.ID, opening.HostID, string(loopJSON), opening.Cut)
	if err != nil {
		return fmt.Errorf("saving opening: %w", err)
	}
	return nil
}

// SaveSolid stores the materialised solid of a floor.
func (s *modelStore) SaveSolid(ctx context.Context, floorID domain.ElementID, solid *domain.Solid) error {
	if solid == nil {
		return fmt.Errorf("%w: nil solid", domain.ErrInvalidInput)
	}
	facesJSON, err := json.Marshal(solid.Faces)
	if err != nil {
		return fmt.Errorf("marshalling solid: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO solids (floor_id, faces)
		VALUES (?, ?)
		ON CONFLICT(floor_id) DO UPDATE SET faces = excluded.faces
	`, floorID, string(facesJSON))
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("floor %s: %w", floorID, domain.ErrNotFound)
		}
		return fmt.Errorf("saving solid: %w", err)
	}
	return nil
}

// DeleteFloor removes a floor, its openings and its solid.
func (s *modelStore) DeleteFloor(ctx context.Context, id domain.ElementID) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range []string{
		"DELETE FROM solids WHERE floor_id = ?",
		"DELETE FROM openings WHERE host_id = ?",
		"DELETE FROM floors WHERE id = ?",
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("deleting floor: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing floor delete: %w", err)
	}
	return nil
}

// DeleteOpening removes an opening.
func (s *modelStore) DeleteOpening(ctx context.Context, id domain.ElementID) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM openings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting opening: %w", err)
	}
	return nil
}

// ==================== Helper Functions ====================

// isForeignKeyError reports whether err is a SQLite foreign key violation.
func isForeignKeyError(err error) bool {
	var target interface{ Code() int }
	// SQLITE_CONSTRAINT_FOREIGNKEY
	if errors.As(err, &target) && target.Code() == 787 {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
