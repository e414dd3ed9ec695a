package repository

import (
	"context"
	"fmt"

	"github.com/jarana/guia/internal/domain"
	"github.com/jarana/guia/internal/repository/dao"
)

type TransportDAO interface {
	Insert(ctx context.Context, t dao.TransportProvider) (dao.TransportProvider, error)
	FindByID(ctx context.Context, id uint) (dao.TransportProvider, error)
	FindAll(ctx context.Context) ([]dao.TransportProvider, error)
	Update(ctx context.Context, t dao.TransportProvider) (dao.TransportProvider, error)
	DeleteByID(ctx context.Context, id uint) error
}

type TransportRepository struct {
	dao TransportDAO
}

func NewTransportRepository(dao TransportDAO) *TransportRepository {
	return &TransportRepository{
		dao: dao,
	}
}

func (r *TransportRepository) Create(ctx context.Context, t domain.TransportProvider) (domain.TransportProvider, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(t))
	if err != nil {
		return domain.TransportProvider{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TransportRepository) FindByID(ctx context.Context, id uint) (domain.TransportProvider, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.TransportProvider{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TransportRepository) FindAll(ctx context.Context) ([]domain.TransportProvider, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	providers := make([]domain.TransportProvider, len(found))
	for i, t := range found {
		providers[i] = r.daoToDomain(t)
	}

	return providers, nil
}

func (r *TransportRepository) Update(ctx context.Context, t domain.TransportProvider) (domain.TransportProvider, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(t))
	if err != nil {
		return domain.TransportProvider{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TransportRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteByID -> %w", err)
	}

	return nil
}

func (r *TransportRepository) domainToDao(t domain.TransportProvider) dao.TransportProvider {
	return dao.TransportProvider{
		ID:          t.ID,
		City:        t.City,
		TaxiName:    t.TaxiName,
		Owner:       t.Owner,
		Description: t.Description,
		Price:       t.Price,
		WhatsApp:    t.WhatsApp,
		Order:       t.Order,
		Visible:     t.Visible,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *TransportRepository) daoToDomain(t dao.TransportProvider) domain.TransportProvider {
	return domain.TransportProvider{
		ID:          t.ID,
		City:        t.City,
		TaxiName:    t.TaxiName,
		Owner:       t.Owner,
		Description: t.Description,
		Price:       t.Price,
		WhatsApp:    t.WhatsApp,
		Order:       t.Order,
		Visible:     t.Visible,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
