package repository

import (
	"context"
	"fmt"

	"github.com/jarana/guia/internal/domain"
	"github.com/jarana/guia/internal/repository/dao"
)

var (
	ErrNotFound = dao.ErrRecordNotFound
	ErrConflict = dao.ErrDuplicated
)

type PromoterDAO interface {
	Insert(ctx context.Context, p dao.Promoter) (dao.Promoter, error)
	FindByID(ctx context.Context, id uint) (dao.Promoter, error)
	FindAll(ctx context.Context) ([]dao.Promoter, error)
	Update(ctx context.Context, p dao.Promoter) (dao.Promoter, error)
	DeleteByID(ctx context.Context, id uint) error
}

type PromoterRepository struct {
	dao PromoterDAO
}

func NewPromoterRepository(dao PromoterDAO) *PromoterRepository {
	return &PromoterRepository{
		dao: dao,
	}
}

func (r *PromoterRepository) Create(ctx context.Context, p domain.Promoter) (domain.Promoter, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(p))
	if err != nil {
		return domain.Promoter{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PromoterRepository) FindByID(ctx context.Context, id uint) (domain.Promoter, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Promoter{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PromoterRepository) FindAll(ctx context.Context) ([]domain.Promoter, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	promoters := make([]domain.Promoter, len(found))
	for i, p := range found {
		promoters[i] = r.daoToDomain(p)
	}

	return promoters, nil
}

func (r *PromoterRepository) Update(ctx context.Context, p domain.Promoter) (domain.Promoter, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(p))
	if err != nil {
		return domain.Promoter{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *PromoterRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteByID -> %w", err)
	}

	return nil
}

func (r *PromoterRepository) domainToDao(p domain.Promoter) dao.Promoter {
	return dao.Promoter{
		ID:        p.ID,
		Locality:  p.Locality,
		Name:      p.Name,
		ImageKind: string(p.Image.Kind),
		ImageRef:  p.Image.Ref,
		ImageKey:  p.Image.Key,
		Instagram: p.Instagram,
		WhatsApp:  p.WhatsApp,
		Order:     p.Order,
		Visible:   p.Visible,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *PromoterRepository) daoToDomain(p dao.Promoter) domain.Promoter {
	return domain.Promoter{
		ID:       p.ID,
		Locality: p.Locality,
		Name:     p.Name,
		Image: domain.Image{
			Kind: domain.ImageKind(p.ImageKind),
			Ref:  p.ImageRef,
			Key:  p.ImageKey,
		},
		Instagram: p.Instagram,
		WhatsApp:  p.WhatsApp,
		Order:     p.Order,
		Visible:   p.Visible,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
