package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jarana/guia/internal/domain"
	"github.com/jarana/guia/internal/repository/dao"
)

// Store implements domain.Store on top of a gorm handle, which may be a
// transaction.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) Promoters() domain.PromoterRepository {
	return NewPromoterRepository(dao.NewPromoterDAO(s.db))
}

func (s *Store) Transports() domain.TransportRepository {
	return NewTransportRepository(dao.NewTransportDAO(s.db))
}

func (s *Store) SiteConfig() domain.SiteConfigRepository {
	return NewSiteConfigRepository(dao.NewSiteConfigDAO(s.db))
}

// Transaction runs fn in a database transaction. The transaction commits when
// fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx domain.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}
