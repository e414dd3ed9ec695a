package api

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// frozenPages maps the public routes to the files they are written to.
var frozenPages = map[string]string{
	"/":            "index.html",
	"/transportes": filepath.Join("transportes", "index.html"),
}

// Freeze renders the public pages into dest as static files and copies the
// local uploads next to them, so dest can be served by any static host. The
// public pages only link relative to themselves, which keeps the output
// working under a sub-path such as a GitHub Pages project site.
func (s *Server) Freeze(dest string) error {
	for path, file := range frozenPages {
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			return fmt.Errorf("freeze %s: status %d", path, w.Code)
		}

		target := filepath.Join(dest, file)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("os.MkdirAll -> %w", err)
		}
		if err := os.WriteFile(target, w.Body.Bytes(), 0o644); err != nil {
			return fmt.Errorf("os.WriteFile -> %w", err)
		}
		zap.L().Info("page frozen", zap.String("path", path), zap.String("file", target))
	}

	uploads := filepath.Join(dest, filepath.FromSlash(uploadsDir))
	if err := copyDir(s.Config.Images.UploadDir, uploads); err != nil {
		return fmt.Errorf("copyDir -> %w", err)
	}

	return nil
}

func copyDir(src, dst string) error {
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		return copyFile(path, target)
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
