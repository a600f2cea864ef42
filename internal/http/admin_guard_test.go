package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"carwo/internal/config"
	"carwo/internal/http/handlers"
	"carwo/internal/repos"
	"carwo/internal/services"
)

func testApp(t *testing.T) (*fiber.App, *sqlx.DB, *handlers.Deps, *services.AuthService) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	authSvc := &services.AuthService{Users: repos.NewUserRepo(db)}
	cfg := config.Config{MediaDir: t.TempDir(), WhatsAppPhone: "251995817222"}
	deps := handlers.NewDeps(db, cfg, authSvc)

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(handlers.Language())
	// the shipped route table, not a per-test subset
	handlers.Register(app, deps, &handlers.AuthHandler{Auth: authSvc}, authSvc)
	return app, db, deps, authSvc
}

// bindAdminSession wires a sid cookie value to the seeded admin account.
func bindAdminSession(t *testing.T, db *sqlx.DB, sid string) {
	t.Helper()
	if _, err := db.Exec(`INSERT INTO sessions(id,user_id) VALUES(?, 'u-admin')`, sid); err != nil {
		t.Fatalf("bind session: %v", err)
	}
}

func TestAdminRedirectsWhenUnauthenticated(t *testing.T) {
	app, _, _, _ := testApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("want 302 redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/login" {
		t.Fatalf("want redirect to /admin/login, got %q", loc)
	}
}

func TestAdminRedirectsOnDeadSession(t *testing.T) {
	app, db, _, _ := testApp(t)

	bindAdminSession(t, db, "sid-dead")
	// the session ends elsewhere (logout / expiry)
	if _, err := db.Exec(`UPDATE sessions SET user_id=NULL WHERE id='sid-dead'`); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-dead"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/admin/login" {
		t.Fatalf("dead session must redirect to login, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestAdminDashboardWithLiveSession(t *testing.T) {
	app, db, _, _ := testApp(t)

	bindAdminSession(t, db, "sid-live")

	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-live"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
}
