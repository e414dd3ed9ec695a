package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jarana/guia/internal/domain"
)

var (
	ErrUnknownMutation = domain.ErrUnknownMutation
	ErrUnknownTable    = domain.ErrUnknownTable
	ErrInvalidImage    = domain.ErrInvalidImage
	ErrUploadFailed    = domain.ErrUploadFailed
)

// AdminService applies admin panel mutations and record edits. Every call
// commits at most one transaction.
type AdminService struct {
	store  domain.Store
	images ImageStore
}

func NewAdminService(store domain.Store, images ImageStore) *AdminService {
	return &AdminService{
		store:  store,
		images: images,
	}
}

// Apply dispatches m on its tag. Toggle and delete of an id that does not
// exist return ErrNotFound, the same as the edit operations.
func (s *AdminService) Apply(ctx context.Context, m domain.Mutation) error {
	switch m.Tag {
	case domain.MutationUpdateConfig:
		return s.updateSiteConfig(ctx, m.SiteConfig)
	case domain.MutationAddPromoter:
		_, err := s.CreatePromoter(ctx, m.Promoter)
		return err
	case domain.MutationAddTransport:
		_, err := s.CreateTransport(ctx, m.Transport)
		return err
	case domain.MutationToggle:
		return s.ToggleVisible(ctx, m.Table, m.ID)
	case domain.MutationDelete:
		return s.Delete(ctx, m.Table, m.ID)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMutation, m.Tag)
	}
}

func (s *AdminService) updateSiteConfig(ctx context.Context, c domain.SiteConfig) error {
	return s.store.Transaction(ctx, func(tx domain.Store) error {
		if _, err := tx.SiteConfig().Save(ctx, c); err != nil {
			return fmt.Errorf("tx.SiteConfig().Save -> %w", err)
		}
		return nil
	})
}

func (s *AdminService) CreatePromoter(ctx context.Context, in domain.PromoterInput) (domain.Promoter, error) {
	img, uploaded, err := s.resolveImage(ctx, in)
	if err != nil {
		return domain.Promoter{}, err
	}

	var created domain.Promoter
	err = s.store.Transaction(ctx, func(tx domain.Store) error {
		var err error
		created, err = tx.Promoters().Create(ctx, domain.Promoter{
			Locality:  in.Locality,
			Name:      in.Name,
			Image:     img,
			Instagram: in.Instagram,
			WhatsApp:  in.WhatsApp,
			Order:     orderOrDefault(in.Order),
			Visible:   true,
		})
		if err != nil {
			return fmt.Errorf("tx.Promoters().Create -> %w", err)
		}
		return nil
	})
	if err != nil {
		if uploaded {
			s.discardImage(ctx, img)
		}
		return domain.Promoter{}, err
	}

	return created, nil
}

func (s *AdminService) CreateTransport(ctx context.Context, in domain.TransportInput) (domain.TransportProvider, error) {
	var created domain.TransportProvider
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		var err error
		created, err = tx.Transports().Create(ctx, domain.TransportProvider{
			City:        in.City,
			TaxiName:    in.TaxiName,
			Owner:       in.Owner,
			Description: in.Description,
			Price:       in.Price,
			WhatsApp:    in.WhatsApp,
			Order:       orderOrDefault(in.Order),
			Visible:     true,
		})
		if err != nil {
			return fmt.Errorf("tx.Transports().Create -> %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.TransportProvider{}, err
	}

	return created, nil
}

func (s *AdminService) ToggleVisible(ctx context.Context, table domain.Table, id uint) error {
	return s.store.Transaction(ctx, func(tx domain.Store) error {
		switch table {
		case domain.TablePromoter:
			p, err := tx.Promoters().FindByID(ctx, id)
			if err != nil {
				return fmt.Errorf("tx.Promoters().FindByID -> %w", err)
			}
			p.Visible = !p.Visible
			if _, err = tx.Promoters().Update(ctx, p); err != nil {
				return fmt.Errorf("tx.Promoters().Update -> %w", err)
			}
		case domain.TableTransport:
			t, err := tx.Transports().FindByID(ctx, id)
			if err != nil {
				return fmt.Errorf("tx.Transports().FindByID -> %w", err)
			}
			t.Visible = !t.Visible
			if _, err = tx.Transports().Update(ctx, t); err != nil {
				return fmt.Errorf("tx.Transports().Update -> %w", err)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownTable, table)
		}
		return nil
	})
}

func (s *AdminService) Delete(ctx context.Context, table domain.Table, id uint) error {
	var orphan domain.Image

	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		switch table {
		case domain.TablePromoter:
			p, err := tx.Promoters().FindByID(ctx, id)
			if err != nil {
				return fmt.Errorf("tx.Promoters().FindByID -> %w", err)
			}
			if err = tx.Promoters().Delete(ctx, id); err != nil {
				return fmt.Errorf("tx.Promoters().Delete -> %w", err)
			}
			orphan = p.Image
		case domain.TableTransport:
			if err := tx.Transports().Delete(ctx, id); err != nil {
				return fmt.Errorf("tx.Transports().Delete -> %w", err)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownTable, table)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.discardImage(ctx, orphan)

	return nil
}

// UpdatePromoter overwrites the editable fields of a promoter. Order only
// changes when given. The picture is replaced by a new upload, else by a
// non-empty URL, else kept.
func (s *AdminService) UpdatePromoter(ctx context.Context, id uint, in domain.PromoterInput) (domain.Promoter, error) {
	if _, err := s.store.Promoters().FindByID(ctx, id); err != nil {
		return domain.Promoter{}, fmt.Errorf("s.store.Promoters().FindByID -> %w", err)
	}

	img, uploaded, err := s.resolveImage(ctx, in)
	if err != nil {
		return domain.Promoter{}, err
	}

	var (
		updated  domain.Promoter
		replaced domain.Image
	)
	err = s.store.Transaction(ctx, func(tx domain.Store) error {
		p, err := tx.Promoters().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("tx.Promoters().FindByID -> %w", err)
		}

		p.Locality = in.Locality
		p.Name = in.Name
		p.Instagram = in.Instagram
		p.WhatsApp = in.WhatsApp
		if in.Order != nil {
			p.Order = *in.Order
		}
		// The edit form echoes the current hosted URL back, which carries no
		// key. Same ref means the picture is unchanged.
		if !img.IsZero() && img.Ref != p.Image.Ref {
			replaced = p.Image
			p.Image = img
		}

		if updated, err = tx.Promoters().Update(ctx, p); err != nil {
			return fmt.Errorf("tx.Promoters().Update -> %w", err)
		}
		return nil
	})
	if err != nil {
		if uploaded {
			s.discardImage(ctx, img)
		}
		return domain.Promoter{}, err
	}

	s.discardImage(ctx, replaced)

	return updated, nil
}

func (s *AdminService) UpdateTransport(ctx context.Context, id uint, in domain.TransportInput) (domain.TransportProvider, error) {
	var updated domain.TransportProvider

	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		t, err := tx.Transports().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("tx.Transports().FindByID -> %w", err)
		}

		t.City = in.City
		t.TaxiName = in.TaxiName
		t.Owner = in.Owner
		t.Description = in.Description
		t.Price = in.Price
		t.WhatsApp = in.WhatsApp
		if in.Order != nil {
			t.Order = *in.Order
		}

		if updated, err = tx.Transports().Update(ctx, t); err != nil {
			return fmt.Errorf("tx.Transports().Update -> %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.TransportProvider{}, err
	}

	return updated, nil
}

// resolveImage turns the form's picture fields into a stored image. uploaded
// reports whether a new file was stored and must be cleaned up on failure.
func (s *AdminService) resolveImage(ctx context.Context, in domain.PromoterInput) (img domain.Image, uploaded bool, err error) {
	if in.Upload != nil && len(in.Upload.Data) > 0 {
		if s.images == nil {
			return domain.Image{}, false, fmt.Errorf("%w: no image store configured", ErrUploadFailed)
		}

		img, err = s.images.Save(ctx, *in.Upload)
		if err != nil {
			if errors.Is(err, ErrInvalidImage) {
				return domain.Image{}, false, err
			}
			return domain.Image{}, false, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		return img, true, nil
	}

	if in.ImageURL != "" {
		return domain.RemoteImage(in.ImageURL, ""), false, nil
	}

	return domain.Image{}, false, nil
}

func (s *AdminService) discardImage(ctx context.Context, img domain.Image) {
	if img.IsZero() || s.images == nil {
		return
	}

	if err := s.images.Delete(ctx, img); err != nil {
		zap.L().Warn("failed to delete image", zap.String("ref", img.Ref), zap.Error(err))
	}
}

func orderOrDefault(order *int) int {
	if order == nil {
		return domain.DefaultOrder
	}

	return *order
}
