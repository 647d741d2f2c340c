package sqliterepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"lovepet/internal/app/ports"
)

type EntityRepo struct {
	db *DB
}

func NewEntityRepo(db *DB) EntityRepo {
	return EntityRepo{db: db}
}

func (r EntityRepo) Get(ctx context.Context, petID string, kind ports.EntityKind) ([]byte, error) {
	var payload string
	err := sqlx.GetContext(ctx, r.db.ext(ctx), &payload,
		"SELECT payload FROM pet_entities WHERE pet_id = ? AND kind = ?",
		petID, string(kind),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

func (r EntityRepo) Put(ctx context.Context, petID string, kind ports.EntityKind, payload []byte) error {
	_, err := r.db.ext(ctx).ExecContext(ctx,
		"INSERT OR REPLACE INTO pet_entities (pet_id, kind, payload, updated_at) VALUES (?, ?, ?, ?)",
		petID, string(kind), string(payload), time.Now().Unix(),
	)
	return err
}

// PetIDs lists every pet with at least one stored record.
func (r EntityRepo) PetIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := sqlx.SelectContext(ctx, r.db.ext(ctx), &ids,
		"SELECT DISTINCT pet_id FROM pet_entities ORDER BY pet_id",
	)
	return ids, err
}
