package routecache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hexroute/connectivity"
	"hexroute/obs"
	"hexroute/pathfind"
)

// OpenPostgres opens and pings a pgx-backed *sql.DB, adapted from the
// teacher's internal/platform/db.Open with the same pool tuning: route
// optimization is CPU-bound once paths are enumerated, so the cache
// connection pool stays small and long-lived rather than bursty.
func OpenPostgres(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("routecache: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("routecache: verify postgres connection: %w", err)
	}

	return db, nil
}

// InitPostgresSchema creates the path_cache table for a Postgres-backed
// cache, the same shape as InitSchema's SQLite table.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("routecache: init postgres schema: db is nil")
	}
	_, err := db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS path_cache (
        digest      TEXT NOT NULL,
        anchor_row  INTEGER NOT NULL,
        anchor_col  INTEGER NOT NULL,
        anchor_ix   INTEGER NOT NULL,
        payload     BYTEA NOT NULL,
        PRIMARY KEY (digest, anchor_row, anchor_col, anchor_ix)
    );
	`)
	if err != nil {
		return fmt.Errorf("routecache: init postgres schema: %w", err)
	}
	return nil
}

// PostgresCache is a Postgres-backed PathCache, for deployments that share
// one path cache across multiple optimizer processes. Adapted from the
// teacher's SQLDistanceCache: the same ANY($n::type[]) batched lookup and
// ON CONFLICT upsert, applied to the path-cache payload instead of a
// distance row.
type PostgresCache struct {
	DB *sql.DB
}

// NewPostgresCache wraps db, which must already have InitPostgresSchema
// applied.
func NewPostgresCache(db *sql.DB) *PostgresCache {
	return &PostgresCache{DB: db}
}

func (p *PostgresCache) GetMany(ctx context.Context, key Key, anchors []connectivity.TokenSpace) (_ map[connectivity.TokenSpace][]*pathfind.Path, err error) {
	defer obs.Time(ctx, "routecache.postgres.get_many")(&err)

	if p.DB == nil {
		return nil, errors.New("routecache: postgres cache: db is nil")
	}
	if len(anchors) == 0 {
		return map[connectivity.TokenSpace][]*pathfind.Path{}, nil
	}

	rows32, cols32, ixs32 := make([]int32, len(anchors)), make([]int32, len(anchors)), make([]int32, len(anchors))
	for i, a := range anchors {
		rows32[i] = int32(a.Hex.Row)
		cols32[i] = int32(a.Hex.Col)
		ixs32[i] = int32(a.SpaceIx)
	}

	q := `
	SELECT anchor_row, anchor_col, anchor_ix, payload
    FROM path_cache
    WHERE digest = $1
        AND anchor_row = ANY($2::int[])
        AND anchor_col = ANY($3::int[])
        AND anchor_ix = ANY($4::int[]);
	`

	rows, err := p.DB.QueryContext(ctx, q, key.digest(), rows32, cols32, ixs32)
	if err != nil {
		return nil, fmt.Errorf("routecache: get many: query path_cache: %w", err)
	}
	defer rows.Close()

	wanted := make(map[connectivity.TokenSpace]bool, len(anchors))
	for _, a := range anchors {
		wanted[a] = true
	}

	out := make(map[connectivity.TokenSpace][]*pathfind.Path, len(anchors))
	for rows.Next() {
		var row, col, ix int
		var payload []byte
		if err := rows.Scan(&row, &col, &ix, &payload); err != nil {
			return nil, fmt.Errorf("routecache: get many: scan rows: %w", err)
		}
		anchor := connectivity.TokenSpace{Hex: connectivity.HexAddr{Row: row, Col: col}, SpaceIx: ix}
		if !wanted[anchor] {
			// The ANY() filters are independent per column, so a row
			// whose (row,col,ix) triple isn't actually in anchors can
			// still match; drop it rather than trust the join alone.
			continue
		}
		paths, err := decodePaths(payload)
		if err != nil {
			return nil, fmt.Errorf("routecache: get many: %w", err)
		}
		out[anchor] = paths
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("routecache: get many: row iteration: %w", err)
	}

	return out, nil
}

func (p *PostgresCache) PutMany(ctx context.Context, key Key, paths map[connectivity.TokenSpace][]*pathfind.Path) (err error) {
	defer obs.Time(ctx, "routecache.postgres.put_many")(&err)

	if p.DB == nil {
		return errors.New("routecache: postgres cache: db is nil")
	}
	if len(paths) == 0 {
		return nil
	}

	digest := key.digest()

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("routecache: put many: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO path_cache (digest, anchor_row, anchor_col, anchor_ix, payload)
    VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (digest, anchor_row, anchor_col, anchor_ix) DO UPDATE
	SET payload = EXCLUDED.payload;
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
