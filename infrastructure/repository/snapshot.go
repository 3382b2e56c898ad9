package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/wakuli/retail-analytics-api/infrastructure/database/postgres"
)

const (
	datasetSnapshotsTable = "dataset_snapshots"

	// snapshot sources
	SourceERP     = "erp"
	SourcePayroll = "payroll"

	// snapshot collections
	CollectionRevenue = "revenue"
	CollectionCosts   = "costs"
	CollectionCapex   = "capex"
	CollectionLabor   = "labor"
)

// SnapshotRepository caches synced dataset collections as JSON documents, one
// row per source and collection. Syncs replace the whole collection, so the
// cache always holds the latest complete snapshot.
type SnapshotRepository interface {
	Save(source, collection string, payload interface{}) error
	Load(source, collection string, out interface{}) (bool, error)
	LastSyncedAt(source string) (*time.Time, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) Save(source, collection string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize %s/%s snapshot: %w", source, collection, err)
	}

	query, args, err := squirrel.
		Insert(datasetSnapshotsTable).
		Columns("source", "collection", "payload", "synced_at").
		Values(source, collection, data, squirrel.Expr("NOW()")).
		Suffix(`
			ON CONFLICT (source, collection) DO UPDATE SET
				payload = EXCLUDED.payload,
				synced_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build snapshot upsert: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to save %s/%s snapshot: %w", source, collection, err)
	}

	return nil
}

// Load unmarshals the cached collection into out. Returns false when no
// snapshot exists yet.
func (r *snapshotRepository) Load(source, collection string, out interface{}) (bool, error) {
	query, args, err := squirrel.
		Select("payload").
		From(datasetSnapshotsTable).
		Where(squirrel.Eq{"source": source, "collection": collection}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build snapshot query: %w", err)
	}

	var data []byte
	if err := r.conn.QueryRow(query, args...).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to load %s/%s snapshot: %w", source, collection, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to deserialize %s/%s snapshot: %w", source, collection, err)
	}

	return true, nil
}

func (r *snapshotRepository) LastSyncedAt(source string) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(synced_at)").
		From(datasetSnapshotsTable).
		Where(squirrel.Eq{"source": source}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sync status query: %w", err)
	}

	var syncedAt sql.NullTime
	if err := r.conn.QueryRow(query, args...).Scan(&syncedAt); err != nil {
		return nil, fmt.Errorf("failed to load sync status: %w", err)
	}

	if !syncedAt.Valid {
		return nil, nil
	}

	return &syncedAt.Time, nil
}
