// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// goRegular parses the embedded Go Regular font once per process.
// FontSource is heavyweight and shared by every canvas.
var goRegular = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// DefaultFontSource returns the embedded Go Regular font.
func DefaultFontSource() (*text.FontSource, error) {
	src, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("canvas: load embedded font: %w", err)
	}
	return src, nil
}

// LoadFontSource loads a TTF file (TTC collections are not supported).
// The caller owns the returned source and should Close it.
func LoadFontSource(path string) (*text.FontSource, error) {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("canvas: load font %s: %w", path, err)
	}
	return src, nil
}

// faceCache hands out faces of a source by pixel size. Resizing a window
// asks for a new size; going back to an old size reuses the face.
type faceCache struct {
	src   *text.FontSource
	faces map[float64]text.Face
}

func (fc *faceCache) face(size float64) text.Face {
	if fc == nil || fc.src == nil || !(size > 0) {
		return nil
	}
	if f, ok := fc.faces[size]; ok {
		return f
	}
	if fc.faces == nil {
		fc.faces = make(map[float64]text.Face)
	}
	f := fc.src.Face(size)
	fc.faces[size] = f
	return f
}
