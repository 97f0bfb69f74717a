package main

import (
	"testing"

	"tubetag/internal/config"
	"tubetag/internal/history"
	"tubetag/internal/testsupport"
)

func seedHistory(t *testing.T, env *cliTestEnv) {
	t.Helper()
	store := testsupport.MustOpenHistory(t, env.cfg)
	testsupport.RecordTitles(t, store, "run-one",
		[2]string{"Rick Astley - Never Gonna Give You Up", "RickAstleyVEVO"},
		[2]string{`"Shape of You" - Ed Sheeran`, "Ed Sheeran"},
	)
	testsupport.RecordTitles(t, store, "run-two",
		[2]string{"Blinding Lights (feat. ROSALÍA)", "The Weeknd"},
	)
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}
}

func TestHistoryListCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	seedHistory(t, env)

	tests := []struct {
		name  string
		args  []string
		count int
		first string
	}{
		{name: "recent", args: []string{"history", "list"}, count: 3, first: "Weeknd"},
		{name: "limit", args: []string{"history", "list", "--limit", "1"}, count: 1, first: "Weeknd"},
		{name: "run", args: []string{"history", "list", "--run", "run-one"}, count: 2, first: "Rick Astley"},
		{name: "unknown run", args: []string{"history", "list", "--run", "nope"}, count: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, tt.args, env.configPath, "")
			if err != nil {
				t.Fatalf("history list: %v", err)
			}
			entries := decodeJSON[[]history.Entry](t, out)
			if len(entries) != tt.count {
				t.Fatalf("expected %d entries, got %d", tt.count, len(entries))
			}
			if tt.count > 0 && entries[0].Artist != tt.first {
				t.Fatalf("first artist = %q, want %q", entries[0].Artist, tt.first)
			}
		})
	}
}

func TestHistorySearchCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	seedHistory(t, env)

	out, _, err := runCLI(t, []string{"history", "search", "sheeran"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history search: %v", err)
	}
	matches := decodeJSON[[]history.Match](t, out)
	if len(matches) != 1 || matches[0].Artist != "Ed Sheeran" {
		t.Fatalf("matches = %+v", matches)
	}

	out, _, err = runCLI(t, []string{"history", "search", "zzzz"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history search: %v", err)
	}
	if matches := decodeJSON[[]history.Match](t, out); len(matches) != 0 {
		t.Fatalf("expected no matches, got %+v", matches)
	}

	if _, _, err := runCLI(t, []string{"history", "search"}, env.configPath, ""); err == nil {
		t.Fatal("expected error without a query")
	}
}

func TestHistoryStatsAndClear(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithOutputFormat(config.OutputTable))
	seedHistory(t, env)

	out, _, err := runCLI(t, []string{"history", "stats"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history stats: %v", err)
	}
	requireContains(t, out, "Database: "+env.cfg.Paths.HistoryDB)
	requireContains(t, out, "Method")
	requireContains(t, out, "quoted")
	requireContains(t, out, "Total")

	out, _, err = runCLI(t, []string{"history", "list"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "Ed Sheeran")
	requireContains(t, out, "run-one")

	if _, _, err := runCLI(t, []string{"history", "clear"}, env.configPath, ""); err == nil {
		t.Fatal("expected clear without --yes to fail")
	}
	out, _, err = runCLI(t, []string{"history", "clear", "--yes"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, out, "Cleared 3 history entries")

	out, _, err = runCLI(t, []string{"history", "list"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "History is empty")
}
