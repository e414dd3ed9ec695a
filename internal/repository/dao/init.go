package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/jarana/guia/internal/domain"
)

var (
	ErrRecordNotFound = domain.ErrNotFound
	ErrDuplicated     = domain.ErrConflict
)

// InitTables creates the tables if they are missing and seeds the site
// config singleton.
func InitTables(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&Promoter{},
		&TransportProvider{},
		&SiteConfig{},
	); err != nil {
		return err
	}

	_, err := NewSiteConfigDAO(db).Get(ctx)
	return err
}

func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		(pgErr.Code == pgerrcode.UniqueViolation || pgErr.Code == pgerrcode.ForeignKeyViolation) {
		return ErrDuplicated
	}

	return err
}
