package directory

import (
	"context"
	"errors"
	"fmt"
	"os"

	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the PostgreSQL directory from POSTGRES_* env vars and
// migrates the bootstrap schema.
func Connect() (*gorm.DB, error) {
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_DATABASE"),
	)

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := db.AutoMigrate(&GameRecord{}, &User{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Postgres is the GORM-backed Directory.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) GameExists(ctx context.Context, id string) (bool, error) {
	var rec GameRecord
	err := p.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *Postgres) CreateGame(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Create(&GameRecord{ID: id}).Error
}
