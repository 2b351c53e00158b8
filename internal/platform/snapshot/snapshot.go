// Package snapshot saves frames as BMP images.
package snapshot

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/fbcore/internal/core"
)

// Encode writes img to w as a 24-bit BMP.
func Encode(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

// Decode reads a BMP back into a canvas-sized color slice.
func Decode(r io.Reader) ([]core.Color, int, int, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("snapshot: %w", err)
	}
	b := img.Bounds()
	out := make([]core.Color, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, core.ColorFromRGBA(img.At(x, y)))
		}
	}
	return out, b.Dx(), b.Dy(), nil
}

// Save writes img to path, creating parent directories.
func Save(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return f.Close()
}

// SaveFrame stores a raw frame under dir (or ~/.fbcore/screenshots when
// dir is empty) as <game>_<timestamp>.bmp and returns the path.
func SaveFrame(dir, game string, pixels []core.Color, w, h int) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("snapshot: %w", err)
		}
		dir = filepath.Join(home, ".fbcore", "screenshots")
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.bmp", game, timestamp))
	return path, Save(path, core.NewCanvas(pixels, w, h))
}
