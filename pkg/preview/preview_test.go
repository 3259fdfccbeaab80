package preview

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFillsSlotsInOrder(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png", 4, 3)
	b := writePNG(t, dir, "b.png", 2, 2)
	s := New(2)

	errs := s.Load([]string{a, b, a})
	if len(errs) != 0 {
		t.Fatalf("errs = %v", errs)
	}
	if s.At(0).Name != "a.png" || s.At(0).Width != 4 || s.At(0).Format != "png" {
		t.Fatalf("slot 0 = %+v", s.At(0))
	}
	if s.At(1).Name != "b.png" {
		t.Fatalf("slot 1 = %+v", s.At(1))
	}
	if s.At(2) != nil {
		t.Fatal("no third slot")
	}
}

func TestLoadReportsBadFiles(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(3)
	errs := s.Load([]string{txt, filepath.Join(dir, "missing.png")})
	if len(errs) != 2 {
		t.Fatalf("errs = %v", errs)
	}
	if s.HasAny() {
		t.Fatal("bad files must not fill slots")
	}
}

func TestRemoveAndReset(t *testing.T) {
	dir := t.TempDir()
	s := New(3)
	if err := s.Set(1, writePNG(t, dir, "c.png", 1, 1)); err != nil {
		t.Fatal(err)
	}
	if !s.HasAny() || len(s.Paths()) != 1 {
		t.Fatal("expected one image")
	}
	s.Remove(1)
	if s.HasAny() {
		t.Fatal("remove should empty the slot")
	}
	if err := s.Set(5, "x"); err == nil {
		t.Fatal("out of range set should fail")
	}
	s.Set(0, writePNG(t, dir, "d.png", 1, 1))
	s.Reset()
	if s.HasAny() {
		t.Fatal("reset should empty all slots")
	}
}
