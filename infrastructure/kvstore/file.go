package kvstore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// File stores one JSON document per key in a flat directory. It is the
// default driver and the closest analogue of the browser-local storage the
// dashboard data originally lived in.
type File struct {
	fs     afero.Fs
	dir    string
	prefix string
	mu     sync.Mutex
}

func NewFile(fs afero.Fs, dir, prefix string) (*File, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating storage directory")
	}

	return &File{fs: fs, dir: dir, prefix: prefix}, nil
}

func (s *File) path(key string) string {
	return filepath.Join(s.dir, s.prefix+key+".json")
}

func (s *File) Get(key string, out any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).WithField("key", key).Warn("failed to read stored value")
		}
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		// A corrupt document is masked as absent; the caller falls back
		// to its default.
		logrus.WithError(err).WithField("key", key).Warn("discarding undecodable stored value")
		return false
	}

	return true
}

func (s *File) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encoding value for key %s", key)
	}

	if err := afero.WriteFile(s.fs, s.path(key), raw, 0o644); err != nil {
		return errors.Wrapf(err, "writing key %s", key)
	}

	return nil
}

func (s *File) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "deleting key %s", key)
	}

	return nil
}

func (s *File) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, errors.Wrap(err, "listing storage directory")
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, s.prefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(strings.TrimPrefix(name, s.prefix), ".json"))
	}

	return keys, nil
}
