// Copyright © 2025 Ghostty-web contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/linkterm/main.go
// Summary: Interactive viewer: renders a file with detected links underlined,
// click opens them through the system opener.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/gdamore/tcell/v2"

	"github.com/HageMaster3108/ghostty-web/config"
	"github.com/HageMaster3108/ghostty-web/internal/ansistrip"
	"github.com/HageMaster3108/ghostty-web/links"
	"github.com/HageMaster3108/ghostty-web/term"
)

func main() {
	configPath := flag.String("config", "", "config file")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: linkterm [-config file] <file>")
		os.Exit(2)
	}

	path := *configPath
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "ghostty-web", "config.json")
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("linkterm: %v", err)
	}
	lines, err := readLines(flag.Arg(0))
	if err != nil {
		log.Fatalf("linkterm: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("linkterm: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("linkterm: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	v := &viewer{
		screen:  screen,
		lines:   lines,
		schemes: cfg.SchemeTable(),
		opener:  sysOpener{},
	}
	v.run()
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, ansistrip.Strip(scanner.Text()))
	}
	return lines, scanner.Err()
}

// viewer owns the screen, the scroll position and the links visible in the
// current viewport.
type viewer struct {
	screen  tcell.Screen
	lines   []string
	schemes []links.Scheme
	opener  links.Opener

	top     int
	visible []links.Link

	lastButtons tcell.ButtonMask
}

func (v *viewer) run() {
	v.draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		}
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) (quit bool) {
	_, h := v.screen.Size()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.scroll(-1)
	case tcell.KeyDown:
		v.scroll(1)
	case tcell.KeyPgUp:
		v.scroll(-h)
	case tcell.KeyPgDn:
		v.scroll(h)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			v.scroll(-1)
		case 'j':
			v.scroll(1)
		}
	}
	return false
}

// handleMouse activates the link under a fresh primary-button press.
func (v *viewer) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && v.lastButtons&tcell.Button1 == 0
	v.lastButtons = buttons
	if !pressed {
		return
	}
	x, y := ev.Position()
	for _, l := range v.visible {
		if l.Range.Contains(x, y) {
			l.Activate(ev, l.Text)
			return
		}
	}
}

func (v *viewer) scroll(delta int) {
	_, h := v.screen.Size()
	maxTop := len(v.lines) - h
	if maxTop < 0 {
		maxTop = 0
	}
	v.top += delta
	if v.top > maxTop {
		v.top = maxTop
	}
	if v.top < 0 {
		v.top = 0
	}
	v.draw()
}

// draw lays the visible lines out on a grid, runs link detection per row and
// renders the grid with link ranges underlined.
func (v *viewer) draw() {
	w, h := v.screen.Size()
	grid := term.NewGrid(w, h)
	for y := 0; y < h; y++ {
		if v.top+y < len(v.lines) {
			grid.WriteString(y, v.lines[v.top+y])
		}
	}

	provider := links.NewProvider(grid, v.opener, links.WithSchemes(v.schemes))
	v.visible = v.visible[:0]
	for y := 0; y < h; y++ {
		provider.ProvideLinks(y, func(ls []links.Link) {
			v.visible = append(v.visible, ls...)
		})
	}

	v.screen.Clear()
	linkStyle := tcell.StyleDefault.Underline(true).Foreground(tcell.ColorBlue)
	for y := 0; y < h; y++ {
		row, ok := grid.Row(y)
		if !ok {
			continue
		}
		for x := 0; x < row.Len(); x++ {
			c := row.CellAt(x)
			if c.Rune == 0 {
				continue // continuation cell, tcell fills it from the wide rune
			}
			style := tcell.StyleDefault
			if v.linked(x, y) {
				style = linkStyle
			}
			v.screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	v.screen.Show()
}

func (v *viewer) linked(x, y int) bool {
	for _, l := range v.visible {
		if l.Range.Contains(x, y) {
			return true
		}
	}
	return false
}

// sysOpener opens addresses with the platform opener.
type sysOpener struct{}

func (sysOpener) OpenURL(url string) error {
	name := "xdg-open"
	if runtime.GOOS == "darwin" {
		name = "open"
	}
	cmd := exec.Command(name, url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	go cmd.Wait()
	return nil
}
