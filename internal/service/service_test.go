package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jarana/guia/internal/db/dbtest"
	"github.com/jarana/guia/internal/domain"
	"github.com/jarana/guia/internal/repository"
	"github.com/jarana/guia/internal/repository/dao"
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()

	gdb := dbtest.NewSQLite(t)
	require.NoError(t, dao.InitTables(context.Background(), gdb))

	return repository.NewStore(gdb)
}

// fakeImageStore records what it is asked to store and delete. With hostURL
// set it behaves like a hosted store and keys every file by its name.
type fakeImageStore struct {
	mu      sync.Mutex
	hostURL string
	saveErr error
	saved   []domain.Image
	deleted []domain.Image
}

func (f *fakeImageStore) Save(_ context.Context, upload domain.ImageUpload) (domain.Image, error) {
	if _, err := imageExtension(upload.Filename); err != nil {
		return domain.Image{}, err
	}
	if f.saveErr != nil {
		return domain.Image{}, f.saveErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	img := domain.LocalImage(upload.Filename)
	if f.hostURL != "" {
		img = domain.RemoteImage(f.hostURL+upload.Filename, upload.Filename)
	}
	f.saved = append(f.saved, img)

	return img, nil
}

func (f *fakeImageStore) Delete(_ context.Context, img domain.Image) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, img)

	return nil
}

var errTxBroken = errors.New("transaction broken")

// brokenTxStore reads through to a real store but refuses to open transactions.
type brokenTxStore struct {
	domain.Store
}

func (s brokenTxStore) Transaction(context.Context, func(tx domain.Store) error) error {
	return errTxBroken
}

func intPtr(v int) *int {
	return &v
}
