// Copyright © 2025 Ghostty-web contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/linkscan/main.go
// Summary: Batch link scanner over stdin, a file, or a command run in a pty.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/creack/pty"
	"github.com/mattn/go-runewidth"
	xterm "golang.org/x/term"

	"github.com/HageMaster3108/ghostty-web/config"
	"github.com/HageMaster3108/ghostty-web/history"
	"github.com/HageMaster3108/ghostty-web/internal/ansistrip"
	"github.com/HageMaster3108/ghostty-web/links"
	"github.com/HageMaster3108/ghostty-web/term"
)

func main() {
	var (
		command    = flag.String("c", "", "run `command` in a pty and scan its output")
		configPath = flag.String("config", "", "config file (default: user config dir)")
		record     = flag.Bool("record", false, "record detected links in the history store")
		recent     = flag.Int("recent", 0, "print the N most recent recorded links and exit")
		osc8       = flag.Bool("osc8", false, "echo each line with OSC 8 hyperlinks around links")
		width      = flag.Int("width", 80, "pty width in columns")
	)
	flag.Parse()

	cfg, err := config.Load(resolveConfigPath(*configPath))
	if err != nil {
		log.Fatalf("linkscan: %v", err)
	}

	if *recent > 0 {
		if err := printRecent(cfg, *recent); err != nil {
			log.Fatalf("linkscan: %v", err)
		}
		return
	}

	var store *history.Store
	if *record {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			log.Fatalf("linkscan: %v", err)
		}
		defer store.Close()
	}

	input, wait, err := openInput(*command, *width, flag.Args())
	if err != nil {
		log.Fatalf("linkscan: %v", err)
	}

	hyperlinks := *osc8
	if hyperlinks && !xterm.IsTerminal(int(os.Stdout.Fd())) {
		log.Print("linkscan: stdout is not a terminal, skipping OSC 8 output")
		hyperlinks = false
	}

	table := cfg.SchemeTable()
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	row := 0
	for scanner.Scan() {
		plain := ansistrip.Strip(scanner.Text())
		found := scanRow(plain, table)
		report(row, plain, found, hyperlinks)
		if store != nil {
			for _, l := range found {
				if err := store.Record(history.Entry{Row: row, URL: l.Text}); err != nil {
					log.Printf("linkscan: %v", err)
				}
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil && !isPtyEOF(*command, err) {
		log.Fatalf("linkscan: read: %v", err)
	}
	if wait != nil {
		wait()
	}
}

// scanRow lays one stripped line out on a single-row grid and runs the
// detection pipeline over it.
func scanRow(plain string, table []links.Scheme) []links.Link {
	w := runewidth.StringWidth(plain)
	if w == 0 {
		return nil
	}
	grid := term.NewGrid(w, 1)
	grid.WriteString(0, plain)

	var found []links.Link
	provider := links.NewProvider(grid, nil, links.WithSchemes(table))
	provider.ProvideLinks(0, func(ls []links.Link) { found = ls })
	return found
}

func report(row int, plain string, found []links.Link, hyperlinks bool) {
	if hyperlinks {
		fmt.Println(osc8Line(plain, found))
		return
	}
	for _, l := range found {
		fmt.Printf("%d:%d-%d\t%s\n", row, l.Range.Start.X, l.Range.End.X, l.Text)
	}
}

// osc8Line rewraps a plain line so each detected link becomes an OSC 8
// hyperlink, walking the line in column space to stay aligned with the
// reported cell ranges.
func osc8Line(plain string, found []links.Link) string {
	var b strings.Builder
	col := 0
	i := 0
	for _, r := range plain {
		w := runewidth.RuneWidth(r)
		if i < len(found) && col == found[i].Range.Start.X {
			fmt.Fprintf(&b, "\x1b]8;;%s\x1b\\", found[i].Text)
		}
		b.WriteRune(r)
		if i < len(found) && col+w-1 == found[i].Range.End.X {
			b.WriteString("\x1b]8;;\x1b\\")
			i++
		}
		col += w
	}
	return b.String()
}

// openInput picks the line source: a pty-wrapped command, a file argument,
// or stdin. The returned wait func (may be nil) reaps the command.
func openInput(command string, width int, args []string) (io.Reader, func() error, error) {
	if command != "" {
		cmd := exec.Command("/bin/sh", "-c", command)
		f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: uint16(width)})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start command: %w", err)
		}
		wait := func() error {
			f.Close()
			return cmd.Wait()
		}
		return f, wait, nil
	}
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}
	return os.Stdin, nil, nil
}

// isPtyEOF reports whether err is the EIO a Linux pty returns when the child
// side closes; for pty input that is a normal end of stream.
func isPtyEOF(command string, err error) bool {
	return command != "" && strings.Contains(err.Error(), "input/output error")
}

func printRecent(cfg config.Config, n int) error {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(n)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%s\t%s\n", e.DetectedAt.Format("2006-01-02 15:04:05"), e.URL)
	}
	return nil
}

func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(dir, "ghostty-web", "config.json")
}
