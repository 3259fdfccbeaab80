// Package preview holds the image preview slots of the create-project form.
// Selected files are read locally to confirm they decode as images; nothing
// is uploaded.
package preview

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultSlots is the number of previews on the form.
const DefaultSlots = 3

// Image describes a previewed file.
type Image struct {
	Path   string
	Name   string
	Format string
	Width  int
	Height int
	Size   int64
}

// Slots is a fixed number of preview positions.
type Slots struct {
	images []*Image
}

// New returns n empty slots.
func New(n int) *Slots {
	if n <= 0 {
		n = DefaultSlots
	}
	return &Slots{images: make([]*Image, n)}
}

// Len returns the slot count.
func (s *Slots) Len() int { return len(s.images) }

// Load fills slot i with paths[i] for as many paths as there are slots.
// Files that cannot be read or decoded leave their slot untouched and are
// reported in the returned errors.
func (s *Slots) Load(paths []string) []error {
	var errs []error
	for i := 0; i < len(paths) && i < len(s.images); i++ {
		img, err := Inspect(paths[i])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.images[i] = img
	}
	return errs
}

// Set fills one slot.
func (s *Slots) Set(i int, path string) error {
	if i < 0 || i >= len(s.images) {
		return fmt.Errorf("preview: slot %d out of range", i)
	}
	img, err := Inspect(path)
	if err != nil {
		return err
	}
	s.images[i] = img
	return nil
}

// Remove empties slot i.
func (s *Slots) Remove(i int) {
	if i < 0 || i >= len(s.images) {
		return
	}
	s.images[i] = nil
}

// At returns the image in slot i, or nil.
func (s *Slots) At(i int) *Image {
	if i < 0 || i >= len(s.images) {
		return nil
	}
	return s.images[i]
}

// HasAny reports whether at least one slot holds an image.
func (s *Slots) HasAny() bool {
	for _, img := range s.images {
		if img != nil {
			return true
		}
	}
	return false
}

// Paths returns the paths of filled slots in order.
func (s *Slots) Paths() []string {
	var out []string
	for _, img := range s.images {
		if img != nil {
			out = append(out, img.Path)
		}
	}
	return out
}

// Reset empties every slot.
func (s *Slots) Reset() {
	for i := range s.images {
		s.images[i] = nil
	}
}

// Inspect reads path and decodes its image header.
func Inspect(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preview: read %s: %w", filepath.Base(path), err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("preview: %s is not a supported image: %w", filepath.Base(path), err)
	}
	return &Image{
		Path:   path,
		Name:   filepath.Base(path),
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   int64(len(data)),
	}, nil
}
