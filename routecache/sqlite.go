package routecache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hexroute/connectivity"
	"hexroute/obs"
	"hexroute/pathfind"
)

// InitSchema creates the path_cache table, adapted from the teacher's
// repositories.InitSchema: one statement per table/index, all inside a
// single transaction so a partial failure never leaves the schema
// half-created.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("routecache: init schema: db is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("routecache: init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTable := `
	CREATE TABLE IF NOT EXISTS path_cache (
        digest      TEXT NOT NULL,
        anchor_row  INTEGER NOT NULL,
        anchor_col  INTEGER NOT NULL,
        anchor_ix   INTEGER NOT NULL,
        payload     BLOB NOT NULL,
        PRIMARY KEY (digest, anchor_row, anchor_col, anchor_ix)
    );
	`

	if _, err := tx.Exec(createTable); err != nil {
		return fmt.Errorf("routecache: init schema: exec statement: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("routecache: init schema: commit tx: %w", err)
	}
	return nil
}

// SqliteCache is a SQLite-backed PathCache, adapted from the teacher's
// SqliteDistanceCache: one DB-level row per (digest, anchor), the enumerated
// paths stored as a JSON blob since neither driver needs to query into it.
type SqliteCache struct {
	DB *sql.DB
}

// NewSqliteCache wraps db, which must already have InitSchema applied.
func NewSqliteCache(db *sql.DB) *SqliteCache {
	return &SqliteCache{DB: db}
}

func (s *SqliteCache) GetMany(ctx context.Context, key Key, anchors []connectivity.TokenSpace) (_ map[connectivity.TokenSpace][]*pathfind.Path, err error) {
	defer obs.Time(ctx, "routecache.sqlite.get_many")(&err)

	if s.DB == nil {
		return nil, errors.New("routecache: sqlite cache: db is nil")
	}
	if len(anchors) == 0 {
		return map[connectivity.TokenSpace][]*pathfind.Path{}, nil
	}

	digest := key.digest()
	out := make(map[connectivity.TokenSpace][]*pathfind.Path, len(anchors))

	placeholders := make([]string, len(anchors))
	args := make([]any, 0, 1+3*len(anchors))
	args = append(args, digest)
	for i, a := range anchors {
		placeholders[i] = "(?, ?, ?)"
		args = append(args, a.Hex.Row, a.Hex.Col, a.SpaceIx)
	}

	q := fmt.Sprintf(`
	SELECT anchor_row, anchor_col, anchor_ix, payload
    FROM path_cache
    WHERE digest = ?
        AND (anchor_row, anchor_col, anchor_ix) IN (%s);
	`, strings.Join(placeholders, ","))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("routecache: get many: query path_cache: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row, col, ix int
		var payload []byte
		if err := rows.Scan(&row, &col, &ix, &payload); err != nil {
			return nil, fmt.Errorf("routecache: get many: scan rows: %w", err)
		}
		paths, err := decodePaths(payload)
		if err != nil {
			return nil, fmt.Errorf("routecache: get many: %w", err)
		}
		out[connectivity.TokenSpace{Hex: connectivity.HexAddr{Row: row, Col: col}, SpaceIx: ix}] = paths
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("routecache: get many: row iteration: %w", err)
	}

	return out, nil
}

func (s *SqliteCache) PutMany(ctx context.Context, key Key, paths map[connectivity.TokenSpace][]*pathfind.Path) (err error) {
	defer obs.Time(ctx, "routecache.sqlite.put_many")(&err)

	if s.DB == nil {
		return errors.New("routecache: sqlite cache: db is nil")
	}
	if len(paths) == 0 {
		return nil
	}

	digest := key.digest()

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("routecache: put many: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO path_cache (digest, anchor_row, anchor_col, anchor_ix, payload)
    VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("routecache: put many: db prepare: %w", err)
	}
	defer stmt.Close()

	for anchor, ps := range paths {
		payload, err := encodePaths(ps)
		if err != nil {
			return fmt.Errorf("routecache: put many anchor=%s: %w", anchor, err)
		}
		if _, err := stmt.ExecContext(ctx, digest, anchor.Hex.Row, anchor.Hex.Col, anchor.SpaceIx, payload); err != nil {
			return fmt.Errorf("routecache: put many anchor=%s: %w", anchor, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("routecache: put many: commit: %w", err)
	}
	return nil
}
