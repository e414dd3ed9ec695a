package service

import (
	"context"
	"fmt"

	"github.com/jarana/guia/internal/domain"
	"github.com/jarana/guia/internal/repository"
)

var (
	ErrNotFound = repository.ErrNotFound
)

type PromoterPage struct {
	Config    domain.SiteConfig
	Promoters []domain.Promoter
}

type TransportPage struct {
	Config    domain.SiteConfig
	Providers []domain.TransportProvider
	Cities    []string
}

type AdminListing struct {
	Config    domain.SiteConfig
	Promoters []domain.Promoter
	Providers []domain.TransportProvider
}

// CatalogService serves the read side: public pages and the admin listing.
type CatalogService struct {
	store domain.Store
}

func NewCatalogService(store domain.Store) *CatalogService {
	return &CatalogService{
		store: store,
	}
}

func (s *CatalogService) SiteConfig(ctx context.Context) (domain.SiteConfig, error) {
	c, err := s.store.SiteConfig().Get(ctx)
	if err != nil {
		return domain.SiteConfig{}, fmt.Errorf("s.store.SiteConfig().Get -> %w", err)
	}

	return c, nil
}

func (s *CatalogService) PromoterPage(ctx context.Context) (PromoterPage, error) {
	c, err := s.SiteConfig(ctx)
	if err != nil {
		return PromoterPage{}, err
	}

	all, err := s.store.Promoters().FindAll(ctx)
	if err != nil {
		return PromoterPage{}, fmt.Errorf("s.store.Promoters().FindAll -> %w", err)
	}

	return PromoterPage{
		Config:    c,
		Promoters: domain.SelectVisibleOrdered(all, false),
	}, nil
}

func (s *CatalogService) TransportPage(ctx context.Context) (TransportPage, error) {
	c, err := s.SiteConfig(ctx)
	if err != nil {
		return TransportPage{}, err
	}

	all, err := s.store.Transports().FindAll(ctx)
	if err != nil {
		return TransportPage{}, fmt.Errorf("s.store.Transports().FindAll -> %w", err)
	}

	providers := domain.SelectVisibleOrdered(all, false)

	return TransportPage{
		Config:    c,
		Providers: providers,
		Cities:    domain.DeriveCityList(providers),
	}, nil
}

func (s *CatalogService) AdminListing(ctx context.Context) (AdminListing, error) {
	c, err := s.SiteConfig(ctx)
	if err != nil {
		return AdminListing{}, err
	}

	promoters, err := s.store.Promoters().FindAll(ctx)
	if err != nil {
		return AdminListing{}, fmt.Errorf("s.store.Promoters().FindAll -> %w", err)
	}

	providers, err := s.store.Transports().FindAll(ctx)
	if err != nil {
		return AdminListing{}, fmt.Errorf("s.store.Transports().FindAll -> %w", err)
	}

	return AdminListing{
		Config:    c,
		Promoters: domain.SelectVisibleOrdered(promoters, true),
		Providers: domain.SelectVisibleOrdered(providers, true),
	}, nil
}

func (s *CatalogService) Promoter(ctx context.Context, id uint) (domain.Promoter, error) {
	p, err := s.store.Promoters().FindByID(ctx, id)
	if err != nil {
		return domain.Promoter{}, fmt.Errorf("s.store.Promoters().FindByID -> %w", err)
	}

	return p, nil
}

func (s *CatalogService) Transport(ctx context.Context, id uint) (domain.TransportProvider, error) {
	t, err := s.store.Transports().FindByID(ctx, id)
	if err != nil {
		return domain.TransportProvider{}, fmt.Errorf("s.store.Transports().FindByID -> %w", err)
	}

	return t, nil
}
