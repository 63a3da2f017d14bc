package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store เก็บไฟล์รูปลง disk ใต้ dir แล้วคืน public URL path
// (เสิร์ฟผ่าน route static "/uploads" ใน main)
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the file under a fresh uuid key, keeping the original extension.
// Returns the public path for the stored file.
func (s *Store) Save(origName string, r io.Reader) (string, error) {
	filename := uuid.New().String() + filepath.Ext(origName)
	savePath := filepath.Join(s.dir, "drivers", filename)

	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return "/uploads/drivers/" + filename, nil
}
