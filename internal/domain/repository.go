package domain

import "context"

type PromoterRepository interface {
	Create(ctx context.Context, p Promoter) (Promoter, error)
	FindByID(ctx context.Context, id uint) (Promoter, error)
	FindAll(ctx context.Context) ([]Promoter, error)
	Update(ctx context.Context, p Promoter) (Promoter, error)
	Delete(ctx context.Context, id uint) error
}

type TransportRepository interface {
	Create(ctx context.Context, t TransportProvider) (TransportProvider, error)
	FindByID(ctx context.Context, id uint) (TransportProvider, error)
	FindAll(ctx context.Context) ([]TransportProvider, error)
	Update(ctx context.Context, t TransportProvider) (TransportProvider, error)
	Delete(ctx context.Context, id uint) error
}

type SiteConfigRepository interface {
	// Get returns the singleton, creating it with defaults when missing.
	Get(ctx context.Context) (SiteConfig, error)
	Save(ctx context.Context, c SiteConfig) (SiteConfig, error)
}

// Store gives access to every repository. Repositories obtained from the
// Store passed to fn share one transaction.
type Store interface {
	Promoters() PromoterRepository
	Transports() TransportRepository
	SiteConfig() SiteConfigRepository
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
