package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarana/guia/internal/domain"
)

func TestAdminService_AddPromoterDefaults(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewAdminService(store, &fakeImageStore{})

	err := svc.Apply(ctx, domain.Mutation{
		Tag: domain.MutationAddPromoter,
		Promoter: domain.PromoterInput{
			Locality: "Tarapoto",
			Name:     "Ana",
			ImageURL: "https://cdn.example.com/ana.png",
		},
	})
	require.NoError(t, err)

	all, err := store.Promoters().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.DefaultOrder, all[0].Order)
	assert.True(t, all[0].Visible)
	assert.Equal(t, domain.RemoteImage("https://cdn.example.com/ana.png", ""), all[0].Image)
}

func TestAdminService_AddPromoterPrefersUpload(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	images := &fakeImageStore{}
	svc := NewAdminService(store, images)

	p, err := svc.CreatePromoter(ctx, domain.PromoterInput{
		Name:     "Ana",
		ImageURL: "https://cdn.example.com/ana.png",
		Upload:   &domain.ImageUpload{Filename: "ana.PNG", Data: []byte("png")},
		Order:    intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ImageLocalFile, p.Image.Kind)
	assert.Equal(t, 0, p.Order)
	assert.Len(t, images.saved, 1)
}

func TestAdminService_AddPromoterUploadErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid extension", func(t *testing.T) {
		store := newTestStore(t)
		svc := NewAdminService(store, &fakeImageStore{})

		_, err := svc.CreatePromoter(ctx, domain.PromoterInput{
			Name:   "Ana",
			Upload: &domain.ImageUpload{Filename: "ana.exe", Data: []byte("x")},
		})
		assert.ErrorIs(t, err, ErrInvalidImage)

		all, err := store.Promoters().FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("hosting failure", func(t *testing.T) {
		store := newTestStore(t)
		svc := NewAdminService(store, &fakeImageStore{saveErr: errors.New("503")})

		_, err := svc.CreatePromoter(ctx, domain.PromoterInput{
			Name:   "Ana",
			Upload: &domain.ImageUpload{Filename: "ana.jpg", Data: []byte("x")},
		})
		assert.ErrorIs(t, err, ErrUploadFailed)

		all, err := store.Promoters().FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("transaction failure discards upload", func(t *testing.T) {
		images := &fakeImageStore{}
		svc := NewAdminService(brokenTxStore{newTestStore(t)}, images)

		_, err := svc.CreatePromoter(ctx, domain.PromoterInput{
			Name:   "Ana",
			Upload: &domain.ImageUpload{Filename: "ana.gif", Data: []byte("x")},
		})
		assert.ErrorIs(t, err, errTxBroken)
		require.Len(t, images.saved, 1)
		assert.Equal(t, images.saved, images.deleted)
	})
}

func TestAdminService_AddTransport(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewAdminService(store, nil)

	err := svc.Apply(ctx, domain.Mutation{
		Tag: domain.MutationAddTransport,
		Transport: domain.TransportInput{
			City:     "Lima",
			TaxiName: "Taxi Uno",
			Price:    "S/ 10",
			Order:    intPtr(3),
		},
	})
	require.NoError(t, err)

	all, err := store.Transports().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Lima", all[0].City)
	assert.Equal(t, 3, all[0].Order)
	assert.True(t, all[0].Visible)
}

func TestAdminService_UpdateSiteConfig(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewAdminService(store, nil)

	want := domain.SiteConfig{
		HeaderText:      "JARANA VIP",
		FooterText:      "pie",
		LastUpdatedText: "ACTUALIZADO HASTA: 12/05",
	}
	require.NoError(t, svc.Apply(ctx, domain.Mutation{Tag: domain.MutationUpdateConfig, SiteConfig: want}))

	got, err := store.SiteConfig().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAdminService_ToggleTwiceRestores(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewAdminService(store, nil)

	tr, err := svc.CreateTransport(ctx, domain.TransportInput{City: "Lima", TaxiName: "Uno"})
	require.NoError(t, err)

	toggle := domain.Mutation{Tag: domain.MutationToggle, Table: domain.TableTransport, ID: tr.ID}

	require.NoError(t, svc.Apply(ctx, toggle))
	got, err := store.Transports().FindByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.False(t, got.Visible)

	require.NoError(t, svc.Apply(ctx, toggle))
	got, err = store.Transports().FindByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.True(t, got.Visible)
}

func TestAdminService_DeletePromoter(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	images := &fakeImageStore{}
	svc := NewAdminService(store, images)

	p, err := svc.CreatePromoter(ctx, domain.PromoterInput{
		Name:   "Ana",
		Upload: &domain.ImageUpload{Filename: "ana.jpeg", Data: []byte("x")},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Apply(ctx, domain.Mutation{Tag: domain.MutationDelete, Table: domain.TablePromoter, ID: p.ID}))

	_, err = store.Promoters().FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []domain.Image{p.Image}, images.deleted)

	catalog := NewCatalogService(store)

	page, err := catalog.PromoterPage(ctx)
	require.NoError(t, err)
	assert.Empty(t, page.Promoters)

	listing, err := catalog.AdminListing(ctx)
	require.NoError(t, err)
	assert.Empty(t, listing.Promoters)
}

func TestAdminService_DeleteTransport(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewAdminService(store, nil)
	catalog := NewCatalogService(store)

	kept, err := svc.CreateTransport(ctx, domain.TransportInput{City: "Tarapoto", TaxiName: "Uno"})
	require.NoError(t, err)
	gone, err := svc.CreateTransport(ctx, domain.TransportInput{City: "Lima", TaxiName: "Dos"})
	require.NoError(t, err)
	// Hidden records only show up in the admin listing.
	require.NoError(t, svc.ToggleVisible(ctx, domain.TableTransport, kept.ID))

	require.NoError(t, svc.Apply(ctx, domain.Mutation{Tag: domain.MutationDelete, Table: domain.TableTransport, ID: gone.ID}))

	_, err = store.Transports().FindByID(ctx, gone.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	page, err := catalog.TransportPage(ctx)
	require.NoError(t, err)
	assert.Empty(t, page.Providers)
	assert.Empty(t, page.Cities)

	listing, err := catalog.AdminListing(ctx)
	require.NoError(t, err)
	require.Len(t, listing.Providers, 1)
	assert.Equal(t, kept.ID, listing.Providers[0].ID)
}

func TestAdminService_Rejections(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewAdminService(store, nil)

	tests := []struct {
		name     string
		mutation domain.Mutation
		wantErr  error
	}{
		{
			name:     "unknown tag",
			mutation: domain.Mutation{Tag: "drop_everything"},
			wantErr:  ErrUnknownMutation,
		},
		{
			name:     "toggle unknown table",
			mutation: domain.Mutation{Tag: domain.MutationToggle, Table: "usuarios", ID: 1},
			wantErr:  ErrUnknownTable,
		},
		{
			name:     "delete unknown table",
			mutation: domain.Mutation{Tag: domain.MutationDelete, Table: "usuarios", ID: 1},
			wantErr:  ErrUnknownTable,
		},
		{
			name:     "toggle missing promoter",
			mutation: domain.Mutation{Tag: domain.MutationToggle, Table: domain.TablePromoter, ID: 404},
			wantErr:  ErrNotFound,
		},
		{
			name:     "delete missing transport",
			mutation: domain.Mutation{Tag: domain.MutationDelete, Table: domain.TableTransport, ID: 404},
			wantErr:  ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Apply(ctx, tt.mutation)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	promoters, err := store.Promoters().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, promoters)
}

func TestAdminService_UpdatePromoter(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	images := &fakeImageStore{}
	svc := NewAdminService(store, images)

	p, err := svc.CreatePromoter(ctx, domain.PromoterInput{
		Name:     "Ana",
		ImageURL: "https://cdn.example.com/ana.png",
		Order:    intPtr(5),
	})
	require.NoError(t, err)

	t.Run("empty picture fields keep the current image", func(t *testing.T) {
		updated, err := svc.UpdatePromoter(ctx, p.ID, domain.PromoterInput{
			Locality: "Moyobamba",
			Name:     "Ana M.",
		})
		require.NoError(t, err)
		assert.Equal(t, "Moyobamba", updated.Locality)
		assert.Equal(t, p.Image, updated.Image)
		assert.Equal(t, 5, updated.Order)
	})

	t.Run("upload replaces the image", func(t *testing.T) {
		updated, err := svc.UpdatePromoter(ctx, p.ID, domain.PromoterInput{
			Name:   "Ana",
			Upload: &domain.ImageUpload{Filename: "nueva.png", Data: []byte("x")},
			Order:  intPtr(1),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ImageLocalFile, updated.Image.Kind)
		assert.Equal(t, 1, updated.Order)
		assert.Equal(t, []domain.Image{p.Image}, images.deleted)
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := svc.UpdatePromoter(ctx, 404, domain.PromoterInput{Name: "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAdminService_UpdatePromoterKeepsHostedImage(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	images := &fakeImageStore{hostURL: "https://app.ufs.sh/f/"}
	svc := NewAdminService(store, images)

	p, err := svc.CreatePromoter(ctx, domain.PromoterInput{
		Name:   "Ana",
		Upload: &domain.ImageUpload{Filename: "KEY1.png", Data: []byte("x")},
	})
	require.NoError(t, err)
	require.Equal(t, domain.RemoteImage("https://app.ufs.sh/f/KEY1.png", "KEY1.png"), p.Image)

	// The edit form submits the current URL unchanged.
	updated, err := svc.UpdatePromoter(ctx, p.ID, domain.PromoterInput{
		Name:     "Ana M.",
		ImageURL: p.Image.Ref,
	})
	require.NoError(t, err)
	assert.Equal(t, p.Image, updated.Image)
	assert.Empty(t, images.deleted)

	stored, err := store.Promoters().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "KEY1.png", stored.Image.Key)
}

func TestAdminService_UpdateTransport(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewAdminService(store, nil)

	tr, err := svc.CreateTransport(ctx, domain.TransportInput{City: "Lima", TaxiName: "Uno"})
	require.NoError(t, err)

	updated, err := svc.UpdateTransport(ctx, tr.ID, domain.TransportInput{
		City:        "Cusco",
		TaxiName:    "Dos",
		Owner:       "Luis",
		Description: "24h",
		Price:       "S/ 15",
		WhatsApp:    "51911222333",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cusco", updated.City)
	assert.Equal(t, domain.DefaultOrder, updated.Order)
	assert.True(t, updated.Visible)

	_, err = svc.UpdateTransport(ctx, 404, domain.TransportInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}
