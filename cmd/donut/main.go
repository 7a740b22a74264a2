// seehuhn.de/go/donut - ring-shaped progress indicators
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command donut renders a progress ring, described by a scene file, to a
// PNG image or a PDF file.
//
// With -watch, the command keeps running and renders the scene again
// whenever the scene file changes.  Existing segments are updated in
// place, so that only the geometry affected by the change is recomputed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"

	"seehuhn.de/go/donut"
	"seehuhn.de/go/donut/render"
	"seehuhn.de/go/donut/scene"
)

func main() {
	a := &app{}
	flag.StringVar(&a.configFile, "config", "donut.yaml", "scene file")
	flag.StringVar(&a.outFile, "o", "donut.png", "output file")
	flag.StringVar(&a.format, "format", "", "output format, \"png\" or \"pdf\" (default: from the output file name)")
	flag.Func("progress", "override the progress of all segments", func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		a.progress = &v
		return nil
	})
	watch := flag.Bool("watch", false, "render again whenever the scene file changes")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if a.format == "" {
		a.format = strings.ToLower(strings.TrimPrefix(filepath.Ext(a.outFile), "."))
	}
	if a.format != "png" && a.format != "pdf" {
		slog.Error("unsupported output format", "format", a.format)
		os.Exit(2)
	}

	if err := a.update(); err != nil {
		slog.Error("cannot render scene", "error", err)
		os.Exit(1)
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := a.watch(ctx); err != nil {
		slog.Error("watching failed", "error", err)
		os.Exit(1)
	}
}

type app struct {
	configFile string
	outFile    string
	format     string
	progress   *float64

	segs []*donut.Segment
}

// update loads the scene file and renders it.
func (a *app) update() error {
	sc, err := scene.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.progress != nil {
		for i := range sc.Segments {
			sc.Segments[i].Progress = *a.progress
		}
	}

	if a.segs != nil && len(a.segs) == len(sc.Segments) {
		err = sc.Apply(a.segs)
	} else {
		a.segs, err = sc.Build()
	}
	if err != nil {
		return err
	}

	for i, seg := range a.segs {
		spec := sc.Segments[i].Icon
		if spec != "" && seg.IconSize() > 0 && seg.IconBitmap() == nil {
			slog.Warn("icon not available", "segment", i, "name", seg.Name(), "icon", spec)
		}
		slog.Debug("segment",
			"name", seg.Name(),
			"path_length", seg.State().PathLength,
			"drawn_length", seg.DrawnLength())
	}

	if err := a.write(sc); err != nil {
		return fmt.Errorf("%s: %w", a.outFile, err)
	}
	slog.Info("rendered", "scene", a.configFile, "output", a.outFile, "segments", len(a.segs))
	return nil
}

func (a *app) write(sc *scene.Scene) error {
	if a.format == "pdf" {
		return render.PDF(a.outFile, sc, a.segs)
	}

	f, err := os.Create(a.outFile)
	if err != nil {
		return err
	}
	err = render.PNG(f, sc, a.segs)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// watch renders the scene again after every change of the scene file,
// until ctx is cancelled.  Errors in the scene file are logged, and the
// previous output is kept.
func (a *app) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors often replace the file instead of writing to it, so the
	// directory is watched.
	if err := watcher.Add(filepath.Dir(a.configFile)); err != nil {
		return err
	}
	target := filepath.Clean(a.configFile)
	slog.Info("watching for changes", "scene", a.configFile)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := a.update(); err != nil {
				slog.Error("cannot render scene", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			slog.Warn("watch error", "error", err)
		}
	}
}
