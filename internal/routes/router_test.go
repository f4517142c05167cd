package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/student_support/docs"
	"github.com/student_support/internal/handlers"
	"github.com/student_support/internal/repositories"
	"github.com/student_support/internal/services"
	"github.com/student_support/pkg/kv"
	"github.com/student_support/pkg/utils"
)

const frontend = "http://localhost:5173"

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := utils.RegisterValidators(); err != nil {
		t.Fatalf("RegisterValidators: %v", err)
	}
	store := kv.NewMemoryStore()
	subs := repositories.NewSubmissionRepository(store)
	loc := handlers.NewLocalizer("en")
	r := gin.New()
	SetupRoutes(r, Handlers{
		Intake:    handlers.NewIntakeHandler(services.NewIntakeService(repositories.NewDraftRepository(store, ""), subs, nil), loc),
		Dashboard: handlers.NewDashboardHandler(services.NewCaseService(subs), loc),
		Share:     handlers.NewShareHandler(frontend, loc),
	}, frontend)
	return r
}

func TestRoutesRegistered(t *testing.T) {
	r := newTestEngine(t)
	want := map[string]bool{
		"POST /api/v1/intake/drafts":                     false,
		"GET /api/v1/intake/drafts/:id":                  false,
		"PUT /api/v1/intake/drafts/:id":                  false,
		"DELETE /api/v1/intake/drafts/:id":               false,
		"PUT /api/v1/intake/drafts/:id/consent":          false,
		"POST /api/v1/intake/drafts/:id/submit":          false,
		"GET /api/v1/dashboard/submissions":              false,
		"POST /api/v1/dashboard/submissions/:id/flag":    false,
		"POST /api/v1/dashboard/submissions/:id/respond": false,
		"GET /api/v1/dashboard/summary":                  false,
		"GET /api/v1/dashboard/events":                   false,
		"GET /api/v1/dashboard/export.json":              false,
		"GET /api/v1/dashboard/export.csv":               false,
		"POST /api/v1/dashboard/seed":                    false,
		"DELETE /api/v1/dashboard/data":                  false,
		"GET /api/v1/share/qrcode":                       false,
		"GET /api/v1/share/links":                        false,
		"GET /api/v1/healthz":                            false,
		"GET /swagger/*any":                              false,
	}
	for _, route := range r.Routes() {
		key := route.Method + " " + route.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for key, found := range want {
		if !found {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestEngine(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/dashboard/submissions", nil)
	req.Header.Set("Origin", frontend)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != frontend {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestSwaggerDoc(t *testing.T) {
	r := newTestEngine(t)
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("doc.json status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "/dashboard/submissions") {
		t.Errorf("doc.json does not describe dashboard routes")
	}
}
