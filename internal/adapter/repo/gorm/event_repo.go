package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"lovepet/internal/adapter/repo/gorm/model"
	"lovepet/internal/domain/event"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, petID string, events []event.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.PetEvent, 0, len(events))
	for _, e := range events {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", e.Type, err)
		}
		rows = append(rows, model.PetEvent{
			EventID:    e.ID,
			PetID:      petID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    datatypes.JSON(b),
		})
	}
	return dbFor(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListByPetID(ctx context.Context, petID string, limit int) ([]event.Event, error) {
	rows := []model.PetEvent{}
	query := dbFor(ctx, r.db).
		Where(&model.PetEvent{PetID: petID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "occurred_at"}, Desc: true},
				{Column: clause.Column{Name: "seq"}, Desc: true},
			},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, event.Event{
			ID:         row.EventID,
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}

func (r EventRepo) DeletePet(ctx context.Context, petID string) error {
	return dbFor(ctx, r.db).
		Where("pet_id = ?", petID).
		Delete(&model.PetEvent{}).Error
}
