package dao

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jarana/guia/internal/domain"
)

// singletonID is the primary key of the only site_configs row.
const singletonID = 1

type SiteConfig struct {
	ID              uint   `gorm:"primaryKey"`
	HeaderText      string `gorm:"size:200"`
	FooterText      string `gorm:"size:200"`
	LastUpdatedText string `gorm:"size:200"`
	UpdatedAt       time.Time
}

func (SiteConfig) TableName() string {
	return "site_configs"
}

type SiteConfigDAO struct {
	db *gorm.DB
}

func NewSiteConfigDAO(db *gorm.DB) *SiteConfigDAO {
	return &SiteConfigDAO{
		db: db,
	}
}

// Get loads the singleton, inserting the default texts when it does not exist.
func (d *SiteConfigDAO) Get(ctx context.Context) (SiteConfig, error) {
	defaults := domain.DefaultSiteConfig()

	var c SiteConfig
	err := d.db.WithContext(ctx).
		Where(SiteConfig{ID: singletonID}).
		Attrs(SiteConfig{
			HeaderText:      defaults.HeaderText,
			FooterText:      defaults.FooterText,
			LastUpdatedText: defaults.LastUpdatedText,
		}).
		FirstOrCreate(&c).Error
	if err != nil {
		return SiteConfig{}, translateErr(err)
	}

	return c, nil
}

func (d *SiteConfigDAO) Save(ctx context.Context, c SiteConfig) (SiteConfig, error) {
	c.ID = singletonID
	if err := d.db.WithContext(ctx).Save(&c).Error; err != nil {
		return SiteConfig{}, translateErr(err)
	}

	return c, nil
}
