// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package export records rendered frames and encodes them as a looping
// animated image.
//
// The output format follows the file extension: ".gif" writes an animated
// GIF, ".png" and ".apng" write an animated PNG. Everything is
// best-effort: errors, including encoder panics, are returned to the
// caller, who decides whether they matter.
package export

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/gogpu/rose"
)

// Common errors returned by export operations.
var (
	// ErrUnsupportedFormat is returned for an output path whose extension
	// has no encoder.
	ErrUnsupportedFormat = errors.New("export: unsupported format")

	// ErrNoFrames is returned when saving an empty recording.
	ErrNoFrames = errors.New("export: no frames recorded")
)

// Format identifies an animated image encoding.
type Format int

// Supported formats.
const (
	FormatGIF Format = iota + 1
	FormatAPNG
)

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatGIF:
		return "gif"
	case FormatAPNG:
		return "apng"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor picks the format for path from its extension.
func FormatFor(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".gif":
		return FormatGIF, nil
	case ".png", ".apng":
		return FormatAPNG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Renderer is a surface that can rasterize its current state.
// *canvas.Canvas satisfies it.
type Renderer interface {
	rose.Surface
	Render() image.Image
}

// Animation replays every frame of sess on r, records the rendered
// images and saves them to path. The session's own surface and state
// are left untouched.
//
// The format is checked before any frame is rendered.
func Animation(path string, sess *rose.Session, r Renderer, opts ...Option) error {
	if _, err := FormatFor(path); err != nil {
		return err
	}
	rec := NewRecorder(opts...)
	err := sess.Replay(r, func(rose.FrameState) error {
		rec.Add(r.Render())
		return nil
	})
	if err != nil {
		return fmt.Errorf("export: replay: %w", err)
	}
	return rec.Save(path)
}
