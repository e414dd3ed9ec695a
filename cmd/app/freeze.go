package app

import (
	"fmt"

	"go.uber.org/zap"
)

const DefaultFreezeDir = "docs"

// Freeze writes a static copy of the public site into dest.
func Freeze(dest string) error {
	s, err := newServer()
	if err != nil {
		return err
	}

	zap.L().Info("freezing site", zap.String("dest", dest))
	if err = s.Freeze(dest); err != nil {
		return fmt.Errorf("failed to freeze the site -> %w", err)
	}
	zap.L().Info("site frozen", zap.String("dest", dest))

	return nil
}
