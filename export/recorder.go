// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"os"

	"github.com/gogpu/rose"
	"github.com/kettek/apng"
)

// Option configures a Recorder.
type Option func(*Recorder)

// WithFPS sets the playback rate written to the file.
func WithFPS(fps float64) Option {
	return func(r *Recorder) {
		r.fps = fps
	}
}

// WithPalette sets the color palette frames are quantized to.
// It must hold between 1 and 256 colors.
func WithPalette(p color.Palette) Option {
	return func(r *Recorder) {
		r.palette = p
	}
}

// Recorder collects frames for one animated image.
//
// Frames are quantized to the palette as they are added, so a long
// recording holds one byte per pixel.
type Recorder struct {
	fps     float64
	palette color.Palette
	frames  []*image.Paletted
}

// NewRecorder creates an empty recorder at rose.FrameRate with the
// Plan 9 palette.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		fps:     rose.FrameRate,
		palette: palette.Plan9,
	}
	for _, opt := range opts {
		opt(r)
	}
	if len(r.palette) == 0 || len(r.palette) > 256 {
		r.palette = palette.Plan9
	}
	return r
}

// Add quantizes img and appends it as the next frame.
func (r *Recorder) Add(img image.Image) {
	b := img.Bounds()
	pm := image.NewPaletted(b, r.palette)
	draw.Draw(pm, b, img, b.Min, draw.Src)
	r.frames = append(r.frames, pm)
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int { return len(r.frames) }

// Delay returns the per-frame delay in hundredths of a second.
func (r *Recorder) Delay() int {
	if !(r.fps > 0) || math.IsInf(r.fps, 0) {
		return int(math.Round(100.0 / rose.FrameRate))
	}
	return max(1, int(math.Round(100/r.fps)))
}

// Save encodes the recording to path in the format its extension names.
func (r *Recorder) Save(path string) (err error) {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	defer recoverEncoder(format, &err)

	rose.Logger().Debug("export: encoding", "path", path, "format", format, "frames", len(r.frames), "delay", r.Delay())
	switch format {
	case FormatGIF:
		return r.saveGIF(path)
	case FormatAPNG:
		return r.saveAPNG(path)
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
}

// EncodeGIF writes the recording as a looping animated GIF.
func (r *Recorder) EncodeGIF(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	delays := make([]int, len(r.frames))
	for i := range delays {
		delays[i] = r.Delay()
	}
	anim := &gif.GIF{
		Image:     r.frames,
		Delay:     delays,
		LoopCount: 0, // loop forever
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("export: encode gif: %w", err)
	}
	return nil
}

// EncodeAPNG writes the recording as a looping animated PNG.
func (r *Recorder) EncodeAPNG(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := apng.APNG{
		Frames:    make([]apng.Frame, len(r.frames)),
		LoopCount: 0, // loop forever
	}
	for i, fr := range r.frames {
		anim.Frames[i] = apng.Frame{
			Image:            fr,
			DelayNumerator:   uint16(r.Delay()),
			DelayDenominator: 100,
		}
	}
	if err := apng.Encode(w, anim); err != nil {
		return fmt.Errorf("export: encode apng: %w", err)
	}
	return nil
}

func (r *Recorder) saveGIF(path string) error {
	return r.saveWith(path, r.EncodeGIF)
}

func (r *Recorder) saveAPNG(path string) error {
	return r.saveWith(path, r.EncodeAPNG)
}

// saveWith creates path and runs encode on it. A failed encode leaves no
// partial file behind.
func (r *Recorder) saveWith(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}

// recoverEncoder turns a panic inside an encoder into an error.
func recoverEncoder(format Format, err *error) {
	if p := recover(); p != nil {
		*err = fmt.Errorf("export: %v encoder panicked: %v", format, p)
	}
}
