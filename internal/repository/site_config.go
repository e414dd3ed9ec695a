package repository

import (
	"context"
	"fmt"

	"github.com/jarana/guia/internal/domain"
	"github.com/jarana/guia/internal/repository/dao"
)

type SiteConfigDAO interface {
	Get(ctx context.Context) (dao.SiteConfig, error)
	Save(ctx context.Context, c dao.SiteConfig) (dao.SiteConfig, error)
}

type SiteConfigRepository struct {
	dao SiteConfigDAO
}

func NewSiteConfigRepository(dao SiteConfigDAO) *SiteConfigRepository {
	return &SiteConfigRepository{
		dao: dao,
	}
}

func (r *SiteConfigRepository) Get(ctx context.Context) (domain.SiteConfig, error) {
	found, err := r.dao.Get(ctx)
	if err != nil {
		return domain.SiteConfig{}, fmt.Errorf("r.dao.Get -> %w", err)
	}

	return daoToDomainSiteConfig(found), nil
}

func (r *SiteConfigRepository) Save(ctx context.Context, c domain.SiteConfig) (domain.SiteConfig, error) {
	saved, err := r.dao.Save(ctx, dao.SiteConfig{
		HeaderText:      c.HeaderText,
		FooterText:      c.FooterText,
		LastUpdatedText: c.LastUpdatedText,
	})
	if err != nil {
		return domain.SiteConfig{}, fmt.Errorf("r.dao.Save -> %w", err)
	}

	return daoToDomainSiteConfig(saved), nil
}

func daoToDomainSiteConfig(c dao.SiteConfig) domain.SiteConfig {
	return domain.SiteConfig{
		HeaderText:      c.HeaderText,
		FooterText:      c.FooterText,
		LastUpdatedText: c.LastUpdatedText,
	}
}
