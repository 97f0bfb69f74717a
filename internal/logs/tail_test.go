package logs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"tubetag/internal/logs"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tubetag.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestLast(t *testing.T) {
	content := "" +
		"2026-01-02 10:00:00 INFO [batch] Run 1a2b3c4d · Line 1 – title parse decision\n" +
		`{"msg":"batch complete","run_id":"1a2b3c4d-0000-4000-8000-000000000000"}` + "\n" +
		"2026-01-02 10:00:01 INFO [batch] Run ffffffff – batch complete\n" +
		"partial line without newline"
	path := writeLog(t, content)

	tests := []struct {
		name   string
		limit  int
		filter logs.Filter
		want   []string
	}{
		{
			name:  "newest two",
			limit: 2,
			want: []string{
				`{"msg":"batch complete","run_id":"1a2b3c4d-0000-4000-8000-000000000000"}`,
				"2026-01-02 10:00:01 INFO [batch] Run ffffffff – batch complete",
			},
		},
		{
			name:   "full run id matches console prefix",
			limit:  10,
			filter: logs.Filter{RunID: "1a2b3c4d-0000-4000-8000-000000000000"},
			want: []string{
				"2026-01-02 10:00:00 INFO [batch] Run 1a2b3c4d · Line 1 – title parse decision",
				`{"msg":"batch complete","run_id":"1a2b3c4d-0000-4000-8000-000000000000"}`,
			},
		},
		{
			name:   "short run id",
			limit:  10,
			filter: logs.Filter{RunID: "ffffffff"},
			want:   []string{"2026-01-02 10:00:01 INFO [batch] Run ffffffff – batch complete"},
		},
		{name: "zero limit", limit: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, offset, err := logs.Last(path, tt.limit, tt.filter)
			if err != nil {
				t.Fatalf("Last returned error: %v", err)
			}
			if len(lines) != len(tt.want) || (len(tt.want) > 0 && !reflect.DeepEqual(lines, tt.want)) {
				t.Fatalf("Last() = %#v, want %#v", lines, tt.want)
			}
			if offset == 0 {
				t.Fatal("expected offset to advance")
			}
		})
	}
}

func TestLastMissingFile(t *testing.T) {
	lines, offset, err := logs.Last(filepath.Join(t.TempDir(), "absent.log"), 5, logs.Filter{})
	if err != nil || lines != nil || offset != 0 {
		t.Fatalf("Last() = %v, %d, %v", lines, offset, err)
	}
}

func TestFollow(t *testing.T) {
	path := writeLog(t, "start\n")
	_, offset, err := logs.Last(path, 1, logs.Filter{})
	if err != nil {
		t.Fatalf("Last: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	var mu sync.Mutex
	var got []string
	done := make(chan error, 1)
	go func() {
		done <- logs.Follow(ctx, path, offset, 10*time.Millisecond, logs.Filter{RunID: "keep"}, func(line string) {
			mu.Lock()
			got = append(got, line)
			mu.Unlock()
		})
	}()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open append: %v", err)
	}
	if _, err := f.WriteString("drop me\nkeep me\n"); err != nil {
		t.Fatalf("append log: %v", err)
	}
	_ = f.Close()

	deadline := time.Now().Add(5 * time.Second)
	for {
		mu.Lock()
		n := len(got)
		mu.Unlock()
		if n > 0 || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("Follow returned %v, want context.Canceled", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if !reflect.DeepEqual(got, []string{"keep me"}) {
		t.Fatalf("followed lines = %#v", got)
	}
}
