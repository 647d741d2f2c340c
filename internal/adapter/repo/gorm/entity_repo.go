package gormrepo

import (
	"context"
	"errors"
	"time"

	"lovepet/internal/adapter/repo/gorm/model"
	"lovepet/internal/app/ports"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntityRepo keeps each pet record as one jsonb row keyed by pet and kind.
type EntityRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewEntityRepo(db *gorm.DB) EntityRepo {
	return EntityRepo{db: db, now: time.Now}
}

func (r EntityRepo) Get(ctx context.Context, petID string, kind ports.EntityKind) ([]byte, error) {
	var row model.PetEntity
	err := dbFor(ctx, r.db).
		Where(&model.PetEntity{PetID: petID, Kind: string(kind)}).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return []byte(row.Payload), nil
}

func (r EntityRepo) Put(ctx context.Context, petID string, kind ports.EntityKind, payload []byte) error {
	row := model.PetEntity{
		PetID:     petID,
		Kind:      string(kind),
		Payload:   datatypes.JSON(payload),
		UpdatedAt: r.now(),
	}
	return dbFor(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pet_id"}, {Name: "kind"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&row).Error
}

// PetIDs lists every pet with at least one stored record.
func (r EntityRepo) PetIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := dbFor(ctx, r.db).
		Model(&model.PetEntity{}).
		Distinct("pet_id").
		Order("pet_id").
		Pluck("pet_id", &ids).Error
	return ids, err
}

// DeletePet drops every record of petID. Used by integration tests.
func (r EntityRepo) DeletePet(ctx context.Context, petID string) error {
	return dbFor(ctx, r.db).
		Where("pet_id = ?", petID).
		Delete(&model.PetEntity{}).Error
}
