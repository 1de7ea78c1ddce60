package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hostkiosk/kioskctl/internal/export"
	"github.com/hostkiosk/kioskctl/internal/models"
	"github.com/hostkiosk/kioskctl/internal/notify"
)

func init() {
	notify.SetDefault(notify.New(notify.WithOutput(nil)))
}

func hotels() []models.Hotel {
	return []models.Hotel{
		{BaseModel: models.BaseModel{ID: "h1"}, Name: "Harbor", City: "Lisbon", Status: "active", Rooms: 80},
		{BaseModel: models.BaseModel{ID: "h2"}, Name: "Alpine", City: "Innsbruck", Status: "suspended", Rooms: 40},
		{BaseModel: models.BaseModel{ID: "h3"}, Name: "Canal", City: "Amsterdam", Status: "active", Rooms: 120},
	}
}

var hotelColumns = []export.Column{{Key: "id", Label: "ID"}, {Key: "name", Label: "Name"}}

func TestViewAppliesFlags(t *testing.T) {
	f := &ListFlags{Filters: []string{"status=active"}, Sort: "rooms:desc", Page: 1, PageSize: 10}
	view, err := View(f, hotels())
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	rows := view.Rows()
	if len(rows) != 2 || rows[0].ID != "h3" || rows[1].ID != "h1" {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestViewRejectsBadFlags(t *testing.T) {
	if _, err := View(&ListFlags{Filters: []string{"status"}}, hotels()); err == nil {
		t.Fatalf("expected filter parse error")
	}
	if _, err := View(&ListFlags{Sort: "name:sideways"}, hotels()); err == nil {
		t.Fatalf("expected sort parse error")
	}
}

func TestRenderToClampsPage(t *testing.T) {
	var buf bytes.Buffer
	f := &ListFlags{Page: 9, PageSize: 2}
	if err := RenderTo(&buf, "text", f, hotels(), hotelColumns); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "Page 2 of 2 (3 total)") || !strings.Contains(buf.String(), "h3") {
		t.Fatalf("expected last page, got:\n%s", buf.String())
	}
}

func TestExportWritesAllMatchingRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.csv")
	written, err := Export(path, hotels(), hotelColumns)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(written)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "ID,Name\nh1,Harbor\nh2,Alpine\nh3,Canal\n" {
		t.Fatalf("unexpected csv %q", data)
	}
}

func TestWatchDropsStaleResponses(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	release := make(chan struct{})
	load := func(ctx context.Context) (int, error) {
		n := calls.Add(1)
		if n == 1 {
			// First fetch is slow and finishes after the second.
			select {
			case <-release:
			case <-ctx.Done():
			}
		}
		return int(n), nil
	}

	var rendered []int
	var once sync.Once
	render := func(v int) error {
		rendered = append(rendered, v)
		if v >= 2 {
			once.Do(func() {
				close(release)
				time.AfterFunc(30*time.Millisecond, cancel)
			})
		}
		return nil
	}

	if err := Watch(ctx, 10*time.Millisecond, load, render); err != nil {
		t.Fatalf("watch: %v", err)
	}
	for _, v := range rendered {
		if v == 1 {
			t.Fatalf("stale first response was rendered: %v", rendered)
		}
	}
}

func TestWatchRendersWhenLoadsOutlastInterval(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var calls, running, peak atomic.Int32
	load := func(ctx context.Context) (int, error) {
		n := running.Add(1)
		defer running.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		id := calls.Add(1)
		select {
		case <-time.After(30 * time.Millisecond):
		case <-ctx.Done():
		}
		return int(id), nil
	}

	var rendered []int
	render := func(v int) error {
		rendered = append(rendered, v)
		if len(rendered) == 3 {
			cancel()
		}
		return nil
	}

	if err := Watch(ctx, 5*time.Millisecond, load, render); err != nil {
		t.Fatalf("watch: %v", err)
	}
	if len(rendered) < 3 {
		t.Fatalf("slow loads starved the display: %d loads, renders %v", calls.Load(), rendered)
	}
	if got := peak.Load(); got > MaxInFlight {
		t.Fatalf("expected at most %d concurrent loads, saw %d", MaxInFlight, got)
	}
}

func TestWatchKeepsRunningAfterFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	load := func(context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "", errors.New("boom")
		}
		return "ok", nil
	}
	var got string
	err := Watch(ctx, 5*time.Millisecond, load, func(v string) error {
		got = v
		cancel()
		return nil
	})
	if err != nil || got != "ok" {
		t.Fatalf("expected recovery, got %q %v", got, err)
	}
}

func TestReported(t *testing.T) {
	base := errors.New("save failed")
	err := Reported(base)
	if !IsReported(err) || !errors.Is(err, base) {
		t.Fatalf("reported error must unwrap to its cause")
	}
	if IsReported(base) || Reported(nil) != nil {
		t.Fatalf("unexpected reported classification")
	}
}
