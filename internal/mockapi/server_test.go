package mockapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hostkiosk/kioskctl/internal/api"
	"github.com/hostkiosk/kioskctl/internal/listing"
	"github.com/hostkiosk/kioskctl/internal/models"
	"github.com/hostkiosk/kioskctl/internal/permissions"
	"github.com/hostkiosk/kioskctl/internal/utils"
)

func loggedIn(t *testing.T) (*api.Client, *Store) {
	t.Helper()
	store := Seed()
	srv := httptest.NewServer(NewServer(store, nil).Routes())
	t.Cleanup(srv.Close)

	c := api.New(srv.URL, api.Options{})
	if _, err := c.Login(context.Background(), DemoEmail, DemoPassword); err != nil {
		t.Fatalf("login: %v", err)
	}
	return c, store
}

func TestRequiresSession(t *testing.T) {
	srv := httptest.NewServer(NewServer(Seed(), nil).Routes())
	defer srv.Close()

	_, err := api.New(srv.URL, api.Options{}).List(context.Background(), api.ResourceHotels, api.ListOptions{})
	if !utils.IsAuthError(err) {
		t.Fatalf("expected 401, got %v", err)
	}

	_, err = api.New(srv.URL, api.Options{}).Login(context.Background(), DemoEmail, "wrong-password")
	if !utils.IsAuthError(err) {
		t.Fatalf("expected 401 for bad password, got %v", err)
	}
}

func TestLoginReturnsTenant(t *testing.T) {
	c, _ := loggedIn(t)
	if c.TenantID != DemoTenant || !c.IsAuthenticated() {
		t.Fatalf("unexpected session %+v", c)
	}
}

func TestListAppliesServerSideFilter(t *testing.T) {
	c, store := loggedIn(t)
	ctx := context.Background()

	filters := listing.FilterState{}
	filters.Set("status", "online")
	kiosks, err := api.ListAs[models.Kiosk](ctx, c, api.ResourceKiosks, api.ListOptions{Filters: filters})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := 0
	for _, k := range store.Kiosks() {
		if k.Status == "online" {
			want++
		}
	}
	if len(kiosks) != want || want == 0 {
		t.Fatalf("expected %d online kiosks, got %d", want, len(kiosks))
	}
	for _, k := range kiosks {
		if k.Status != "online" {
			t.Fatalf("filter leaked %s with status %s", k.ID, k.Status)
		}
	}

	hotels, err := api.ListAs[models.Hotel](ctx, c, api.ResourceHotels, api.ListOptions{Search: "lisbon"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hotels) != 1 || hotels[0].Name != "Harbor View" {
		t.Fatalf("unexpected search result %+v", hotels)
	}
}

func TestHotelLifecycle(t *testing.T) {
	c, store := loggedIn(t)
	ctx := context.Background()

	var created models.Hotel
	if err := c.Create(ctx, api.ResourceHotels, models.Hotel{Name: "Bay Motel", City: "Cork"}, &created); err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Status != "pending" {
		t.Fatalf("unexpected hotel %+v", created)
	}

	if err := c.Activate(ctx, api.ResourceHotels, created.ID); err != nil {
		t.Fatalf("activate: %v", err)
	}
	var got models.Hotel
	if err := c.Get(ctx, api.ResourceHotels, created.ID, &got); err != nil || got.Status != "active" {
		t.Fatalf("get after activate: %v %+v", err, got)
	}

	if err := c.Delete(ctx, api.ResourceHotels, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := c.Get(ctx, api.ResourceHotels, created.ID, &got); !utils.IsNotFoundError(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	audit := store.Audit()
	last := audit[len(audit)-1]
	if last.Action != "delete" || last.ResourceID != created.ID || last.Actor != DemoEmail {
		t.Fatalf("mutation not audited: %+v", last)
	}
}

func TestCreateHotelValidation(t *testing.T) {
	c, _ := loggedIn(t)
	err := c.Create(context.Background(), api.ResourceHotels, models.Hotel{Name: ""}, nil)
	if apiErr, ok := err.(*utils.APIError); !ok || apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAssignKioskMovesCount(t *testing.T) {
	c, store := loggedIn(t)
	ctx := context.Background()

	if err := c.AssignKiosk(ctx, "k-028", "h-002"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	k, _ := store.Kiosk("k-028")
	h, _ := store.Hotel("h-002")
	if k.HotelID != "h-002" || h.KioskCount != 5 {
		t.Fatalf("unexpected kiosk %+v hotel count %d", k, h.KioskCount)
	}
	if err := c.AssignKiosk(ctx, "k-028", "h-999"); !utils.IsNotFoundError(err) {
		t.Fatalf("expected not found for unknown hotel, got %v", err)
	}
}

func TestRoleEditorRoundTrip(t *testing.T) {
	c, _ := loggedIn(t)
	ctx := context.Background()

	editor, err := permissions.LoadRoleEditor(ctx, c, quiet{}, "r-002")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := editor.Toggle("billing", permissions.Export); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := editor.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	role, err := c.GetRole(ctx, "r-002")
	if err != nil {
		t.Fatalf("get role: %v", err)
	}
	perms := permissions.FromAPIShape(role.Permissions)
	if !perms.Allows("billing", permissions.Export) || !perms.Allows("billing", permissions.View) {
		t.Fatalf("saved matrix lost edits: %+v", role.Permissions)
	}
	if role.UserCount != 2 {
		t.Fatalf("user count must survive updates, got %d", role.UserCount)
	}
}

func TestReports(t *testing.T) {
	c, _ := loggedIn(t)
	ctx := context.Background()

	for _, rt := range models.ReportTypes() {
		report, err := c.Report(ctx, rt)
		if err != nil {
			t.Fatalf("%s: %v", rt, err)
		}
		if report.Title != rt.Title() || len(report.Metrics) == 0 {
			t.Fatalf("unexpected report %+v", report)
		}
	}

	var out models.Report
	if err := c.Get(ctx, api.ResourceReports, "forecast", &out); !utils.IsNotFoundError(err) {
		t.Fatalf("expected not found for unknown report, got %v", err)
	}
}

func TestCreateUserValidation(t *testing.T) {
	c, _ := loggedIn(t)
	err := c.Create(context.Background(), api.ResourceUsers, models.CreateUserRequest{Name: "X", Email: "bad", Password: "short", Role: "Support Agent"}, nil)
	apiErr, ok := err.(*utils.APIError)
	if !ok || apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
