package posterfs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

// maxNameAttempts bounds the timestamp bumps when looking for a free name.
const maxNameAttempts = 3600

// Store writes posters into a directory.
type Store struct {
	dir    string
	logger *slog.Logger

	mu   sync.Mutex
	last string // last file name handed out
}

// New creates a Store writing into dir. The directory is created on the
// first Save.
func New(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// Save writes data atomically under a name derived from req and at. When
// that name was used by the previous Save or already exists, the
// timestamp is moved forward one second at a time until it is free.
func (s *Store) Save(ctx context.Context, req domain.PosterRequest, at time.Time, data []byte) (*domain.Poster, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create posters directory %s", s.dir)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name, stamp, err := s.freeName(req, at)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(s.dir, name)
	if err := writeAtomic(path, data); err != nil {
		return nil, err
	}
	s.last = name

	s.logger.Debug("poster written", "path", path, "bytes", len(data))
	return &domain.Poster{
		Path:      path,
		Format:    req.Format,
		Size:      len(data),
		CreatedAt: stamp,
	}, nil
}

func (s *Store) freeName(req domain.PosterRequest, at time.Time) (string, time.Time, error) {
	stamp := at.Truncate(time.Second)
	for i := 0; i < maxNameAttempts; i++ {
		name := domain.PosterFileName(req.City, req.Theme, stamp, req.Format)
		if name != s.last {
			_, err := os.Stat(filepath.Join(s.dir, name))
			if os.IsNotExist(err) {
				return name, stamp, nil
			}
			if err != nil {
				return "", time.Time{}, errors.Wrapf(err, "stat %s", name)
			}
		}
		stamp = stamp.Add(time.Second)
	}
	return "", time.Time{}, errors.Errorf("no free poster name for %s/%s after %d attempts", req.City, req.Theme, maxNameAttempts)
}

// writeAtomic writes data to a temporary file in the target directory and
// renames it into place.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temporary poster file")
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.Wrapf(err, "write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.Wrapf(err, "close %s", tmpName)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return errors.Wrapf(err, "chmod %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return errors.Wrapf(err, "rename poster to %s", path)
	}
	return nil
}
