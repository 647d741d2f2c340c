package sqliterepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"lovepet/internal/domain/event"
)

type eventRow struct {
	EventID    string `db:"event_id"`
	Type       string `db:"type"`
	OccurredAt int64  `db:"occurred_at"`
	Payload    string `db:"payload"`
}

type EventRepo struct {
	db *DB
}

func NewEventRepo(db *DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, petID string, events []event.Event) error {
	ext := r.db.ext(ctx)
	for _, e := range events {
		payload, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", e.Type, err)
		}
		if _, err := ext.ExecContext(ctx,
			"INSERT INTO pet_events (event_id, pet_id, type, occurred_at, payload) VALUES (?, ?, ?, ?, ?)",
			e.ID, petID, e.Type, e.OccurredAt.UnixNano(), string(payload),
		); err != nil {
			return err
		}
	}
	return nil
}

func (r EventRepo) ListByPetID(ctx context.Context, petID string, limit int) ([]event.Event, error) {
	if limit <= 0 {
		limit = -1
	}
	var rows []eventRow
	err := sqlx.SelectContext(ctx, r.db.ext(ctx), &rows,
		"SELECT event_id, type, occurred_at, payload FROM pet_events WHERE pet_id = ? ORDER BY occurred_at DESC, seq DESC LIMIT ?",
		petID, limit,
	)
	if err != nil {
		return nil, err
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		_ = json.Unmarshal([]byte(row.Payload), &payload)
		out = append(out, event.Event{
			ID:         row.EventID,
			Type:       row.Type,
			OccurredAt: time.Unix(0, row.OccurredAt).UTC(),
			Payload:    payload,
		})
	}
	return out, nil
}
