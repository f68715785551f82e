package storage

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"

	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"

	"github.com/OCharnyshevich/islandgen/internal/config"
)

// Storage writes generated maps and configs to a filesystem.
type Storage struct {
	fs  billy.Filesystem
	log *slog.Logger
}

// New creates a Storage writing into fs.
func New(fs billy.Filesystem, log *slog.Logger) *Storage {
	return &Storage{fs: fs, log: log}
}

// SaveImage encodes img as PNG and writes it to name atomically.
func (s *Storage) SaveImage(name string, img image.Image) error {
	err := s.atomicWrite(name, func(w io.Writer) error {
		return png.Encode(w, img)
	})
	if err != nil {
		return fmt.Errorf("save image %s: %w", name, err)
	}
	s.log.Info("image written", "path", s.fs.Join(s.fs.Root(), name))
	return nil
}

// SaveConfig writes cfg as indented JSON to name atomically.
func (s *Storage) SaveConfig(name string, cfg *config.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	data = append(data, '\n')

	err = s.atomicWrite(name, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return fmt.Errorf("save config %s: %w", name, err)
	}
	return nil
}

// atomicWrite streams into a temp file next to path and renames it into place.
func (s *Storage) atomicWrite(path string, write func(io.Writer) error) (err error) {
	tmp := path + ".tmp"
	f, err := s.fs.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, s.fs.Remove(tmp))
		}
	}()

	if err := write(f); err != nil {
		return multierr.Append(fmt.Errorf("write temp file: %w", err), f.Close())
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
