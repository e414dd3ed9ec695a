package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type TransportProvider struct {
	ID          uint   `gorm:"primaryKey"`
	City        string `gorm:"size:100;not null"`
	TaxiName    string `gorm:"size:100;not null"`
	Owner       string `gorm:"size:100"`
	Description string `gorm:"size:200"`
	Price       string `gorm:"size:50"` // free text, e.g. "S/ 10 - 15"
	WhatsApp    string `gorm:"column:whatsapp;size:200"`
	Order       int    `gorm:"column:display_order;not null;index"`
	Visible     bool   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TransportProvider) TableName() string {
	return "transport_providers"
}

type TransportDAO struct {
	db *gorm.DB
}

func NewTransportDAO(db *gorm.DB) *TransportDAO {
	return &TransportDAO{
		db: db,
	}
}

func (d *TransportDAO) Insert(ctx context.Context, t TransportProvider) (TransportProvider, error) {
	if err := d.db.WithContext(ctx).Create(&t).Error; err != nil {
		return TransportProvider{}, translateErr(err)
	}

	return t, nil
}

func (d *TransportDAO) FindByID(ctx context.Context, id uint) (TransportProvider, error) {
	var t TransportProvider

	if err := d.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return TransportProvider{}, translateErr(err)
	}

	return t, nil
}

func (d *TransportDAO) FindAll(ctx context.Context) ([]TransportProvider, error) {
	var ts []TransportProvider

	if err := d.db.WithContext(ctx).Order("id asc").Find(&ts).Error; err != nil {
		return nil, translateErr(err)
	}

	return ts, nil
}

func (d *TransportDAO) Update(ctx context.Context, t TransportProvider) (TransportProvider, error) {
	if err := d.db.WithContext(ctx).Save(&t).Error; err != nil {
		return TransportProvider{}, translateErr(err)
	}

	return t, nil
}

func (d *TransportDAO) DeleteByID(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&TransportProvider{}, id)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
