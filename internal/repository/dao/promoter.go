package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Promoter struct {
	ID        uint   `gorm:"primaryKey"`
	Locality  string `gorm:"size:100;not null"`
	Name      string `gorm:"size:100;not null"`
	ImageKind string `gorm:"size:16"`
	ImageRef  string `gorm:"size:500"`
	ImageKey  string `gorm:"size:200"`
	Instagram string `gorm:"size:200"`
	WhatsApp  string `gorm:"column:whatsapp;size:200"`
	Order     int    `gorm:"column:display_order;not null;index"`
	Visible   bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Promoter) TableName() string {
	return "promoters"
}

type PromoterDAO struct {
	db *gorm.DB
}

func NewPromoterDAO(db *gorm.DB) *PromoterDAO {
	return &PromoterDAO{
		db: db,
	}
}

func (d *PromoterDAO) Insert(ctx context.Context, p Promoter) (Promoter, error) {
	if err := d.db.WithContext(ctx).Create(&p).Error; err != nil {
		return Promoter{}, translateErr(err)
	}

	return p, nil
}

func (d *PromoterDAO) FindByID(ctx context.Context, id uint) (Promoter, error) {
	var p Promoter

	if err := d.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return Promoter{}, translateErr(err)
	}

	return p, nil
}

// FindAll returns every promoter in insertion order.
func (d *PromoterDAO) FindAll(ctx context.Context) ([]Promoter, error) {
	var ps []Promoter

	if err := d.db.WithContext(ctx).Order("id asc").Find(&ps).Error; err != nil {
		return nil, translateErr(err)
	}

	return ps, nil
}

func (d *PromoterDAO) Update(ctx context.Context, p Promoter) (Promoter, error) {
	if err := d.db.WithContext(ctx).Save(&p).Error; err != nil {
		return Promoter{}, translateErr(err)
	}

	return p, nil
}

func (d *PromoterDAO) DeleteByID(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Promoter{}, id)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
