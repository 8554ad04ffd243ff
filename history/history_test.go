// Copyright © 2025 Ghostty-web contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: history/history_test.go
// Summary: Tests for the SQLite link history store.

package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "links.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_RecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	base := time.Now().Add(-time.Minute)
	entries := []Entry{
		{DetectedAt: base, Row: 1, URL: "https://a.com"},
		{DetectedAt: base.Add(time.Second), Row: 2, URL: "mailto:x@y.com"},
		{DetectedAt: base.Add(2 * time.Second), Row: 3, URL: "https://b.com"},
	}
	for _, e := range entries {
		if err := s.Record(e); err != nil {
			t.Fatalf("failed to record: %v", err)
		}
	}

	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	// Newest first
	if got[0].URL != "https://b.com" || got[2].URL != "https://a.com" {
		t.Errorf("expected newest-first order, got %q .. %q", got[0].URL, got[2].URL)
	}
	if got[0].Scheme != "https" {
		t.Errorf("expected scheme derived from URL, got %q", got[0].Scheme)
	}
}

func TestStore_RecentLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		if err := s.Record(Entry{Row: i, URL: "https://a.com"}); err != nil {
			t.Fatalf("failed to record: %v", err)
		}
	}
	got, err := s.Recent(2)
	if err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected limit of 2, got %d", len(got))
	}
}

func TestStore_ByScheme(t *testing.T) {
	s := openTestStore(t)
	urls := []string{"https://a.com", "mailto:x@y.com", "https://b.com", "tel:+1555"}
	for i, u := range urls {
		if err := s.Record(Entry{Row: i, URL: u}); err != nil {
			t.Fatalf("failed to record: %v", err)
		}
	}

	got, err := s.ByScheme("https", 10)
	if err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 https entries, got %d", len(got))
	}
	for _, e := range got {
		if e.Scheme != "https" {
			t.Errorf("expected https entries only, got %q", e.Scheme)
		}
	}
}

func TestStore_RecordFillsTimestamp(t *testing.T) {
	s := openTestStore(t)
	if err := s.Record(Entry{Row: 0, URL: "https://a.com"}); err != nil {
		t.Fatalf("failed to record: %v", err)
	}
	got, err := s.Recent(1)
	if err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if len(got) != 1 || got[0].DetectedAt.IsZero() {
		t.Error("expected the detection time to be filled in")
	}
}

func TestSchemeOf(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://a.com", "https"},
		{"mailto:x@y.com", "mailto"},
		{"no-scheme-here", ""},
		{":leading", ""},
	}
	for _, c := range cases {
		if got := SchemeOf(c.url); got != c.want {
			t.Errorf("SchemeOf(%q): expected %q, got %q", c.url, c.want, got)
		}
	}
}
