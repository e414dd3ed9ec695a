package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarana/guia/internal/domain"
)

func TestCatalogService_PromoterPage(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	admin := NewAdminService(store, nil)
	catalog := NewCatalogService(store)

	a, err := admin.CreatePromoter(ctx, domain.PromoterInput{Name: "A", Order: intPtr(2)})
	require.NoError(t, err)
	_, err = admin.CreatePromoter(ctx, domain.PromoterInput{Name: "B", Order: intPtr(1)})
	require.NoError(t, err)
	_, err = admin.CreatePromoter(ctx, domain.PromoterInput{Name: "C", Order: intPtr(1)})
	require.NoError(t, err)
	require.NoError(t, admin.ToggleVisible(ctx, domain.TablePromoter, a.ID))

	page, err := catalog.PromoterPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSiteConfig(), page.Config)

	var names []string
	for _, p := range page.Promoters {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"B", "C"}, names)

	listing, err := catalog.AdminListing(ctx)
	require.NoError(t, err)
	require.Len(t, listing.Promoters, 3)
	assert.Equal(t, "A", listing.Promoters[2].Name)
	assert.False(t, listing.Promoters[2].Visible)
}

func TestCatalogService_TransportPage(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	admin := NewAdminService(store, nil)
	catalog := NewCatalogService(store)

	page, err := catalog.TransportPage(ctx)
	require.NoError(t, err)
	assert.Empty(t, page.Providers)
	assert.NotNil(t, page.Cities)
	assert.Empty(t, page.Cities)

	for _, in := range []domain.TransportInput{
		{City: "Lima", TaxiName: "Uno", Order: intPtr(2)},
		{City: " Cusco", TaxiName: "Dos", Order: intPtr(1)},
		{City: "Lima ", TaxiName: "Tres", Order: intPtr(3)},
	} {
		_, err := admin.CreateTransport(ctx, in)
		require.NoError(t, err)
	}
	hidden, err := admin.CreateTransport(ctx, domain.TransportInput{City: "Iquitos", TaxiName: "Cuatro"})
	require.NoError(t, err)
	require.NoError(t, admin.ToggleVisible(ctx, domain.TableTransport, hidden.ID))

	page, err = catalog.TransportPage(ctx)
	require.NoError(t, err)
	require.Len(t, page.Providers, 3)
	assert.Equal(t, "Dos", page.Providers[0].TaxiName)
	assert.Equal(t, []string{"Cusco", "Lima"}, page.Cities)
}

func TestCatalogService_Lookup(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	catalog := NewCatalogService(store)

	_, err := catalog.Promoter(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = catalog.Transport(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
