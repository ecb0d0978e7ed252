package directory

import (
	"context"
	"time"
)

// Directory is the external room lookup. It is consulted exactly once per
// inbound connection attempt, before the websocket handshake.
type Directory interface {
	GameExists(ctx context.Context, id string) (bool, error)
	CreateGame(ctx context.Context, id string) error
}

// GameRecord is a persisted room. Only its existence matters to the
// broker; game state itself is never stored.
type GameRecord struct {
	ID        string `gorm:"primaryKey;type:varchar(12)"`
	CreatedAt time.Time
}

func (GameRecord) TableName() string { return "games" }

// User mirrors the bootstrap schema of the account store. Unused by the
// broker itself; migrated so the schema exists for the account service.
type User struct {
	ID       int    `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"type:text"`
	Password string `gorm:"type:text"`
}

func (User) TableName() string { return "users" }
