// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command rosedraw animates the drawing of a rose curve r = a·cos(kθ).
//
// The curve is revealed a few points per frame, with the completion
// percentage shown in the corner, in a gogpu window (default), a terminal
// or not at all. With -save the animation is also written to a GIF or
// APNG file before it is displayed.
//
// Usage:
//
//	rosedraw [-k 7] [-a 1.0] [-speed 1.0] [-points 3000] [-save rose.gif]
//	         [-display window|term|none] [-size 600] [-literal-tail]
//	         [-font path.ttf] [-verbose]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/rose"
	"github.com/gogpu/rose/canvas"
	"github.com/gogpu/rose/export"
	"github.com/gogpu/rose/headless"
	"github.com/gogpu/rose/term"
	"github.com/gogpu/rose/window"
	"honnef.co/go/curve"
)

type config struct {
	k           int
	a           float64
	speed       float64
	points      int
	save        string
	display     string
	size        int
	literalTail bool
	font        string
	verbose     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func parseFlags(args []string, out io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("rosedraw", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&cfg.k, "k", rose.DefaultK, "petal parameter k in r = a·cos(kθ)")
	fs.Float64Var(&cfg.a, "a", rose.DefaultA, "amplitude a in r = a·cos(kθ)")
	fs.Float64Var(&cfg.speed, "speed", 1.0, "animation speed multiplier")
	fs.IntVar(&cfg.points, "points", rose.DefaultPoints, "number of sample points")
	fs.StringVar(&cfg.save, "save", "", "write the animation to this .gif or .png file")
	fs.StringVar(&cfg.display, "display", "window", "display: window, term or none")
	fs.IntVar(&cfg.size, "size", 600, "canvas size in pixels")
	fs.BoolVar(&cfg.literalTail, "literal-tail", false, "do not force the last frame to reveal every point")
	fs.StringVar(&cfg.font, "font", "", "TTF font for the percent label")
	fs.BoolVar(&cfg.verbose, "verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	switch cfg.display {
	case "window", "term", "none":
	default:
		fmt.Fprintf(out, "rosedraw: unknown -display %q (want window, term or none)\n", cfg.display)
		return cfg, fmt.Errorf("unknown display %q", cfg.display)
	}
	return cfg, nil
}

func run(args []string, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	rose.SetLogger(logger)
	gg.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := rose.Params{K: cfg.k, A: cfg.a, Points: cfg.points}
	pts := rose.Sample(p)
	var schedOpts []rose.ScheduleOption
	if cfg.literalTail {
		schedOpts = append(schedOpts, rose.WithLiteralTail())
	}
	sched := rose.NewSchedule(len(pts), cfg.speed, schedOpts...)
	logger.Info("rose curve",
		"k", p.K, "a", p.A, "petals", rose.PetalCount(p.K),
		"points", len(pts), "frames", sched.Frames, "step", sched.Step)

	canvasOpts, font := canvasOptions(cfg, pts)
	if font != nil {
		defer func() { _ = font.Close() }()
	}
	cv, err := canvas.New(cfg.size, cfg.size, p.Extent(), canvasOpts...)
	if err != nil {
		logger.Error("could not create canvas", "err", err)
		return 1
	}
	defer func() { _ = cv.Close() }()

	sess, err := rose.NewSession(pts, sched, cv)
	if err != nil {
		logger.Error("could not create session", "err", err)
		return 1
	}

	if cfg.save != "" {
		saveAnimation(cfg, p, sess, canvasOpts)
	}

	var drv rose.Driver
	switch cfg.display {
	case "window":
		drv = window.New(cv, window.WithSize(cfg.size, cfg.size), window.WithTitle(sess.State().Title()))
	case "term":
		drv = term.New(cv, term.WithBackground(canvas.DefaultStyle().Background.Color()))
	default:
		drv = headless.New()
	}
	if err := drv.Run(ctx, sess); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("interrupted", "frame", sess.State().Index)
			return 0
		}
		logger.Error("display failed", "display", cfg.display, "err", err)
		return 1
	}
	return 0
}

// canvasOptions builds the canvas options for cfg. A font loaded from
// cfg.font is returned so the caller can close it.
func canvasOptions(cfg config, pts []curve.Point) ([]canvas.Option, *text.FontSource) {
	opts := []canvas.Option{canvas.WithGuide(pts)}
	if cfg.font == "" {
		return opts, nil
	}
	src, err := canvas.LoadFontSource(cfg.font)
	if err != nil {
		rose.Logger().Warn("using default font", "font", cfg.font, "err", err)
		return opts, nil
	}
	return append(opts, canvas.WithFontSource(src)), src
}

// saveAnimation records the whole animation on its own canvas and writes
// it to cfg.save. Failures are logged and otherwise ignored.
func saveAnimation(cfg config, p rose.Params, sess *rose.Session, opts []canvas.Option) {
	log := rose.Logger()
	cv, err := canvas.New(cfg.size, cfg.size, p.Extent(), opts...)
	if err != nil {
		log.Warn("could not save animation", "path", cfg.save, "err", err)
		return
	}
	defer func() { _ = cv.Close() }()

	style := canvas.DefaultStyle()
	pal := export.Palette(style.Background.Color(), style.Stroke.Color(), style.Label.Color())
	if err := export.Animation(cfg.save, sess, cv, export.WithPalette(pal)); err != nil {
		log.Warn("could not save animation", "path", cfg.save, "err", err)
		return
	}
	log.Info("saved animation", "path", cfg.save, "frames", sess.Frames())
}
