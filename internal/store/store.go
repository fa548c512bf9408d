package store

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
)

var ErrNoJob = errors.New("job not found")

// FS keeps uploaded snapshots under Root/<job>/uploads. Reports are never
// written; they are recomputed from the uploads on request.
type FS struct{ Root string }

func New(root string) (*FS, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FS{Root: root}, nil
}

func (s *FS) JobDir(id string) string     { return filepath.Join(s.Root, id) }
func (s *FS) uploadDir(id string) string { return filepath.Join(s.JobDir(id), "uploads") }

// NewJob allocates a job id and its upload directory.
func (s *FS) NewJob() (string, error) {
	id := uuid.NewString()
	return id, os.MkdirAll(s.uploadDir(id), 0o755)
}

// Put stores one upload. Only the base name of name is used.
func (s *FS) Put(id, name string, r io.Reader) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNoJob
	}
	name = filepath.Base(filepath.Clean("/" + name))
	if name == "/" || name == "." {
		return errors.New("store: empty file name")
	}
	dst, err := os.Create(filepath.Join(s.uploadDir(id), name))
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// Files lists the job's uploads by path, sorted by name.
func (s *FS) Files(id string) ([]string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNoJob
	}
	entries, err := os.ReadDir(s.uploadDir(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoJob
	}
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out = append(out, filepath.Join(s.uploadDir(id), e.Name()))
	}
	sort.Strings(out)
	return out, nil
}
