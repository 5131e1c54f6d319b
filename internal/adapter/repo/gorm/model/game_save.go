package model

import "time"

// GameSave is the single-row save slot. Payload is the encoded snapshot blob;
// its digest is verified on decode, not trusted from the database.
type GameSave struct {
	SlotID    string `gorm:"primaryKey;column:slot_id"`
	Payload   []byte `gorm:"column:payload"`
	UpdatedAt time.Time
}

func (GameSave) TableName() string { return "game_saves" }
