package notify

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestNotifier(buf *bytes.Buffer, clock *fakeClock) *Notifier {
	return New(WithOutput(buf), WithColors(false), WithClock(clock.Now), WithTTL(3*time.Second))
}

func TestAddAssignsUniqueIDsInInsertionOrder(t *testing.T) {
	var buf bytes.Buffer
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	n := newTestNotifier(&buf, clock)

	a := n.Success("Hotel created", "")
	b := n.Error("Save failed", "network unreachable")
	c := n.Warning("Kiosk offline", "KSK-0001")

	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Fatalf("toast ids must be unique")
	}
	active := n.Active()
	if len(active) != 3 || active[0].ID != a.ID || active[2].ID != c.ID {
		t.Fatalf("unexpected active toasts %+v", active)
	}

	want := "Hotel created\nError: Save failed: network unreachable\nWarning: Kiosk offline: KSK-0001\n"
	if buf.String() != want {
		t.Fatalf("unexpected rendering:\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestToastsExpireAfterTTL(t *testing.T) {
	var buf bytes.Buffer
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	n := newTestNotifier(&buf, clock)

	n.Info("first", "")
	clock.Advance(2 * time.Second)
	n.Info("second", "")
	clock.Advance(1500 * time.Millisecond)

	active := n.Active()
	if len(active) != 1 || active[0].Title != "second" {
		t.Fatalf("expected only the second toast, got %+v", active)
	}
	clock.Advance(2 * time.Second)
	if len(n.Active()) != 0 {
		t.Fatalf("expected every toast to expire")
	}
}

func TestDismiss(t *testing.T) {
	var buf bytes.Buffer
	clock := &fakeClock{now: time.Now()}
	n := newTestNotifier(&buf, clock)

	a := n.Info("a", "")
	n.Info("b", "")
	if !n.Dismiss(a.ID) {
		t.Fatalf("expected dismiss to find toast")
	}
	if n.Dismiss(a.ID) {
		t.Fatalf("second dismiss must report false")
	}
	if active := n.Active(); len(active) != 1 || active[0].Title != "b" {
		t.Fatalf("unexpected active toasts %+v", active)
	}
}

func TestConcurrentAdd(t *testing.T) {
	n := New(WithOutput(nil), WithTTL(time.Hour))
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n.Info("tick", "")
		}()
	}
	wg.Wait()
	seen := map[string]bool{}
	for _, toast := range n.Active() {
		seen[toast.ID] = true
	}
	if len(seen) != 50 {
		t.Fatalf("expected 50 distinct toasts, got %d", len(seen))
	}
}

func TestToastText(t *testing.T) {
	if got := (Toast{Title: "Saved"}).Text(); got != "Saved" {
		t.Fatalf("unexpected text %q", got)
	}
	if got := (Toast{Message: "only message"}).Text(); !strings.Contains(got, "only message") {
		t.Fatalf("unexpected text %q", got)
	}
}
