// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/vitrine/main.go
// Summary: Terminal entry point: config, screen setup and the event loop.

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"vitrine/app"
	"vitrine/config"
	"vitrine/ui/core"
)

func main() {
	configPath := flag.String("config", "", "path to vitrine.json (default: user config dir)")
	reduced := flag.Bool("reduced-motion", false, "disable animations, jump straight to targets")
	logFile := flag.String("logfile", "", "append logs to this file (default: discard)")
	flag.Parse()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Main: Cannot open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.SetOutput(os.Stderr)
		log.Fatalf("Main: stdout is not a terminal")
	}

	overrides, err := config.ParseOverrides()
	if err != nil {
		log.Fatalf("Main: Bad environment overrides: %v", err)
	}
	if overrides.ConfigPath != "" && *configPath == "" {
		*configPath = overrides.ConfigPath
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Main: Cannot load config: %v", err)
	}
	overrides.Apply(cfg)
	if *reduced {
		cfg.Set("motion", "reduced", true)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Main: Cannot create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Main: Cannot init screen: %v", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	a := app.New(cfg)
	defer a.Close()

	refresh := make(chan bool, 1)
	a.UI.SetRefreshNotifier(refresh)

	w, h := screen.Size()
	a.Resize(w, h)

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	draw := func() {
		blit(screen, a.UI.Render())
		screen.Show()
	}

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	animating := false
	draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if key, isKey := ev.(*tcell.EventKey); isKey {
				if key.Key() == tcell.KeyCtrlC ||
					(key.Key() == tcell.KeyRune && key.Rune() == 'q' && !a.EditingText()) {
					return
				}
			}
			a.HandleEvent(ev)
			animating = a.Tick(time.Now())
			draw()
		case <-refresh:
			animating = a.Tick(time.Now())
			draw()
		case <-ticker.C:
			if !animating {
				continue
			}
			animating = a.Tick(time.Now())
			// One more draw after the last step so targets land exactly.
			draw()
		}
	}
}

// blit copies the composed buffer to the terminal.
func blit(screen tcell.Screen, buf [][]core.Cell) {
	for y, row := range buf {
		for x, cell := range row {
			ch := cell.Ch
			if ch == 0 {
				ch = ' '
			}
			screen.SetContent(x, y, ch, nil, cell.Style)
		}
	}
}
