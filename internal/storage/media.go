// Package storage is the product-image object store. The contract mirrors
// a cloud bucket (upload by path with overwrite, public-URL resolution);
// the shipped implementation writes under the media dir that the server
// already exposes at /media/*.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"carwo/internal/faults"
)

type MediaStore interface {
	// Upload stores the object at the given bucket-relative path,
	// overwriting any existing object, and returns its public URL.
	Upload(objPath string, r io.Reader) (string, error)
}

// ObjectPath builds a collision-resistant storage path from the current
// timestamp, a random suffix and the original file's extension, e.g.
// products/1717171717171-3f9a2c.jpg
func ObjectPath(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		ext = "bin"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("products/%d-%s.%s", time.Now().UnixMilli(), suffix, ext)
}

// DiskStore keeps objects under Dir and serves them from PublicBase.
type DiskStore struct {
	Dir        string
	PublicBase string // e.g. "/media"
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{Dir: dir, PublicBase: "/media"}
}

func (s *DiskStore) Upload(objPath string, r io.Reader) (string, error) {
	clean := path.Clean(objPath)
	if clean == "." || strings.HasPrefix(clean, "..") || path.IsAbs(clean) {
		return "", faults.Newf(faults.Upload, "invalid object path %q", objPath)
	}
	full := filepath.Join(s.Dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", faults.Wrap(faults.Upload, "create media dir", err)
	}
	f, err := os.Create(full) // truncates: overwrite-on-conflict
	if err != nil {
		return "", faults.Wrap(faults.Upload, "create object", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(full)
		return "", faults.Wrap(faults.Upload, "write object", err)
	}
	return s.PublicBase + "/" + clean, nil
}
