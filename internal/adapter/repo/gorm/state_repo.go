package gormrepo

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"galaxytrader/internal/adapter/repo/gorm/model"
	"galaxytrader/internal/adapter/repo/savecodec"
	"galaxytrader/internal/app/ports"
	"galaxytrader/internal/domain/trading"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultSlotID names the single save slot; the game is single-player.
const DefaultSlotID = "galaxyTraderState"

type GameStateRepo struct {
	db   *gorm.DB
	slot string

	Now func() time.Time
	Rng *rand.Rand
}

func NewGameStateRepo(db *gorm.DB) *GameStateRepo {
	return &GameStateRepo{db: db, slot: DefaultSlotID}
}

func (r *GameStateRepo) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&model.GameSave{})
}

func (r *GameStateRepo) Load(ctx context.Context) (trading.GameState, bool, error) {
	var row model.GameSave
	err := r.db.WithContext(ctx).Where("slot_id = ?", r.slot).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.fresh(ctx, "no saved game found")
		}
		return trading.GameState{}, false, err
	}

	state, err := savecodec.Decode(row.Payload)
	if err != nil {
		if errors.Is(err, ports.ErrIntegrity) {
			return r.fresh(ctx, "saved game failed its integrity check")
		}
		return r.fresh(ctx, "saved game is unreadable: "+err.Error())
	}
	return state, false, nil
}

func (r *GameStateRepo) Save(ctx context.Context, state trading.GameState) error {
	data, err := savecodec.Encode(state)
	if err != nil {
		return err
	}
	row := model.GameSave{SlotID: r.slot, Payload: data, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
}

func (r *GameStateRepo) fresh(ctx context.Context, reason string) (trading.GameState, bool, error) {
	log.Printf("gormrepo: %s, creating a new world", reason)
	state := trading.NewGameState(r.now(), r.rng())
	if err := r.Save(ctx, state); err != nil {
		return trading.GameState{}, false, err
	}
	return state, true, nil
}

func (r *GameStateRepo) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *GameStateRepo) rng() *rand.Rand {
	if r.Rng == nil {
		r.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r.Rng
}
