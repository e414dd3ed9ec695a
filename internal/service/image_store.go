package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jarana/guia/internal/domain"
)

// ImageStore keeps uploaded promoter pictures somewhere they can be served from.
type ImageStore interface {
	Save(ctx context.Context, upload domain.ImageUpload) (domain.Image, error)
	Delete(ctx context.Context, img domain.Image) error
}

var allowedImageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

// imageExtension returns the lower-cased extension of filename, or
// domain.ErrInvalidImage when it is not an accepted picture format.
func imageExtension(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return "", domain.ErrInvalidImage
	}

	return ext, nil
}

// LocalImageStore writes pictures into a directory served under /static/uploads.
type LocalImageStore struct {
	dir string
}

func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	return &LocalImageStore{
		dir: dir,
	}, nil
}

func (s *LocalImageStore) Dir() string {
	return s.dir
}

func (s *LocalImageStore) Save(_ context.Context, upload domain.ImageUpload) (domain.Image, error) {
	ext, err := imageExtension(upload.Filename)
	if err != nil {
		return domain.Image{}, err
	}
	if len(upload.Data) == 0 {
		return domain.Image{}, errors.New("empty file")
	}

	name := uuid.NewString() + "." + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), upload.Data, 0o644); err != nil {
		return domain.Image{}, fmt.Errorf("os.WriteFile -> %w", err)
	}

	return domain.LocalImage(name), nil
}

// Delete removes a picture previously written by Save. Other image kinds are
// ignored.
func (s *LocalImageStore) Delete(_ context.Context, img domain.Image) error {
	if img.Kind != domain.ImageLocalFile || img.Ref == "" {
		return nil
	}

	name := filepath.Base(img.Ref)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("os.Remove -> %w", err)
	}

	return nil
}
