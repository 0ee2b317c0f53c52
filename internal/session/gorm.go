package session

import (
	"context"
	"errors"
	"time"

	"github.com/PendemixAI/vax-tracker/internal/db"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schema holds the sessions table.
const Schema = "app_dashboard"

// GormStore keeps sessions in Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(d *gorm.DB) *GormStore {
	return &GormStore{db: d}
}

// Migrate creates the schema and sessions table.
func (g *GormStore) Migrate() error {
	if err := db.EnsureSchema(g.db, Schema); err != nil {
		return err
	}
	return g.db.AutoMigrate(&Session{})
}

func (g *GormStore) Create(ctx context.Context, s *Session) error {
	return g.db.WithContext(ctx).Create(s).Error
}

func (g *GormStore) Find(ctx context.Context, tokenHash string) (*Session, error) {
	var s Session
	err := g.db.WithContext(ctx).First(&s, "token_hash = ?", tokenHash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (g *GormStore) SaveView(ctx context.Context, id uuid.UUID, v View) error {
	res := g.db.WithContext(ctx).Model(&Session{}).Where("id = ?", id).Updates(map[string]interface{}{
		"view_country":  v.Country,
		"view_region":   v.Region,
		"view_top_n":    v.TopN,
		"view_compare":  v.Compare,
		"view_download": v.Download,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *GormStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := g.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&Session{})
	return res.RowsAffected, res.Error
}
