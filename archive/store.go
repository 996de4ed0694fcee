package archive

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"crawshaw.io/sqlite"
	"github.com/google/uuid"

	"github.com/katalvlaran/isomap/core"
)

var (
	// ErrRunNotFound is returned by Get when no run matches the id.
	ErrRunNotFound = errors.New("archive: run not found")

	// ErrAmbiguousID is returned by Get when an id prefix matches several runs.
	ErrAmbiguousID = fmt.Errorf("archive: ambiguous run id prefix: %w", core.ErrInvalidParameter)

	// ErrBadRun is returned by Save for a run without coordinates or with
	// ragged rows.
	ErrBadRun = fmt.Errorf("archive: run has no rectangular coordinates: %w", core.ErrInvalidParameter)
)

// DefaultListLimit caps List when limit ≤ 0.
const DefaultListLimit = 20

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
	id            TEXT PRIMARY KEY,
	created_at    INTEGER NOT NULL,
	source        TEXT NOT NULL,
	n             INTEGER NOT NULL,
	k             INTEGER NOT NULL,
	d             INTEGER NOT NULL,
	policy        TEXT NOT NULL,
	method        TEXT NOT NULL,
	solver        TEXT NOT NULL,
	edges         INTEGER NOT NULL,
	components    INTEGER NOT NULL,
	negative_mass REAL NOT NULL,
	elapsed_ns    INTEGER NOT NULL,
	eigenvalues   BLOB NOT NULL,
	coords        BLOB NOT NULL
);`

const runColumns = `id, created_at, source, n, k, d, policy, method, solver,
	edges, components, negative_mass, elapsed_ns, eigenvalues`

// Store is a SQLite-backed run archive.
type Store struct {
	conn *sqlite.Conn
	path string
}

// Open opens (creating if needed) the archive at path and ensures its schema.
func Open(path string) (*Store, error) {
	conn, err := sqlite.OpenConn(path, sqlite.SQLITE_OPEN_CREATE|sqlite.SQLITE_OPEN_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("archive: open %q: %w", path, err)
	}
	s := &Store{conn: conn, path: path}
	if err = s.exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("archive: create schema: %w", err)
	}

	return s, nil
}

// Path returns the database file the store was opened on.
func (s *Store) Path() string { return s.path }

// Close releases the connection.
func (s *Store) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}

	return nil
}

func (s *Store) exec(query string) error {
	stmt, err := s.conn.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Reset()
	_, err = stmt.Step()

	return err
}

// Save stores run, assigning ID and CreatedAt when they are empty, and
// returns the stored id. N and D are taken from the shape of Coords.
func (s *Store) Save(run *Run) (string, error) {
	if run == nil || len(run.Coords) == 0 {
		return "", ErrBadRun
	}
	cols := len(run.Coords[0])
	for _, r := range run.Coords {
		if len(r) != cols {
			return "", ErrBadRun
		}
	}
	run.N, run.D = len(run.Coords), cols
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	stmt, err := s.conn.Prepare(`
	INSERT INTO runs (` + runColumns + `, coords)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return "", fmt.Errorf("archive: prepare insert: %w", err)
	}
	defer stmt.Reset()

	stmt.BindText(1, run.ID)
	stmt.BindInt64(2, run.CreatedAt.UnixNano())
	stmt.BindText(3, run.Source)
	stmt.BindInt64(4, int64(run.N))
	stmt.BindInt64(5, int64(run.K))
	stmt.BindInt64(6, int64(run.D))
	stmt.BindText(7, run.Policy)
	stmt.BindText(8, run.Method)
	stmt.BindText(9, run.Solver)
	stmt.BindInt64(10, int64(run.Edges))
	stmt.BindInt64(11, int64(run.Components))
	stmt.BindFloat(12, run.NegativeMass)
	stmt.BindInt64(13, int64(run.Elapsed))
	bindFloats(stmt, 14, run.Eigenvalues)
	bindFloats(stmt, 15, flatten(run.Coords))

	if _, err = stmt.Step(); err != nil {
		return "", fmt.Errorf("archive: insert run %s: %w", run.ID, err)
	}

	return run.ID, nil
}

// List returns the most recent runs first, without coordinates.
func (s *Store) List(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	stmt, err := s.conn.Prepare(`SELECT ` + runColumns + ` FROM runs ORDER BY created_at DESC, id LIMIT ?;`)
	if err != nil {
		return nil, fmt.Errorf("archive: prepare list: %w", err)
	}
	defer stmt.Reset()
	stmt.BindInt64(1, int64(limit))

	var runs []Run
	for {
		hasRow, err := stmt.Step()
		if err != nil {
			return nil, fmt.Errorf("archive: list: %w", err)
		}
		if !hasRow {
			break
		}
		run, err := scanRun(stmt)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, nil
}

// Get loads the run whose id equals or starts with id, coordinates included.
func (s *Store) Get(id string) (*Run, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("archive: empty run id: %w", core.ErrInvalidParameter)
	}
	stmt, err := s.conn.Prepare(`SELECT ` + runColumns + `, coords FROM runs WHERE substr(id, 1, length(?1)) = ?1 LIMIT 2;`)
	if err != nil {
		return nil, fmt.Errorf("archive: prepare get: %w", err)
	}
	defer stmt.Reset()
	stmt.BindText(1, id)

	var found *Run
	for {
		hasRow, err := stmt.Step()
		if err != nil {
			return nil, fmt.Errorf("archive: get %s: %w", id, err)
		}
		if !hasRow {
			break
		}
		if found != nil {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousID, id)
		}
		run, err := scanRun(stmt)
		if err != nil {
			return nil, err
		}
		flat, err := decodeFloats(columnBlob(stmt, 14))
		if err != nil {
			return nil, err
		}
		if run.Coords, err = reshape(flat, run.N, run.D); err != nil {
			return nil, err
		}
		found = &run
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %q", ErrRunNotFound, id)
	}

	return found, nil
}

// scanRun reads the runColumns of the current row.
func scanRun(stmt *sqlite.Stmt) (Run, error) {
	run := Run{
		ID:           stmt.ColumnText(0),
		CreatedAt:    time.Unix(0, stmt.ColumnInt64(1)).UTC(),
		Source:       stmt.ColumnText(2),
		N:            int(stmt.ColumnInt64(3)),
		K:            int(stmt.ColumnInt64(4)),
		D:            int(stmt.ColumnInt64(5)),
		Policy:       stmt.ColumnText(6),
		Method:       stmt.ColumnText(7),
		Solver:       stmt.ColumnText(8),
		Edges:        int(stmt.ColumnInt64(9)),
		Components:   int(stmt.ColumnInt64(10)),
		NegativeMass: stmt.ColumnFloat(11),
		Elapsed:      time.Duration(stmt.ColumnInt64(12)),
	}
	eig, err := decodeFloats(columnBlob(stmt, 13))
	if err != nil {
		return Run{}, fmt.Errorf("archive: run %s eigenvalues: %w", run.ID, err)
	}
	run.Eigenvalues = eig

	return run, nil
}

// bindFloats binds xs as a blob; an empty slice binds a zero-length blob
// rather than NULL.
func bindFloats(stmt *sqlite.Stmt, param int, xs []float64) {
	if len(xs) == 0 {
		stmt.BindZeroBlob(param, 0)
		return
	}
	stmt.BindBytes(param, encodeFloats(xs))
}

func columnBlob(stmt *sqlite.Stmt, col int) []byte {
	buf := make([]byte, stmt.ColumnLen(col))
	stmt.ColumnBytes(col, buf)

	return buf
}
