package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/student_support/internal/models"
	"github.com/student_support/internal/repositories"
	"github.com/student_support/internal/services"
	"github.com/student_support/pkg/kv"
	"github.com/student_support/pkg/utils"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := utils.RegisterValidators(); err != nil {
		t.Fatalf("RegisterValidators: %v", err)
	}

	store := kv.NewMemoryStore()
	subs := repositories.NewSubmissionRepository(store)
	drafts := repositories.NewDraftRepository(store, "")
	loc := NewLocalizer("en")

	intake := NewIntakeHandler(services.NewIntakeService(drafts, subs, nil), loc)
	dash := NewDashboardHandler(services.NewCaseService(subs), loc)
	share := NewShareHandler("http://localhost:5173", loc)

	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/healthz", Healthz)
	api.POST("/intake/drafts", intake.StartDraft)
	api.GET("/intake/drafts/:id", intake.GetDraft)
	api.PUT("/intake/drafts/:id", intake.UpdateIntake)
	api.DELETE("/intake/drafts/:id", intake.ResetDraft)
	api.PUT("/intake/drafts/:id/consent", intake.SetConsent)
	api.POST("/intake/drafts/:id/submit", intake.Submit)
	api.GET("/dashboard/submissions", dash.ListSubmissions)
	api.POST("/dashboard/submissions/:id/flag", dash.FlagSubmission)
	api.POST("/dashboard/submissions/:id/respond", dash.RespondSubmission)
	api.GET("/dashboard/summary", dash.GetSummary)
	api.GET("/dashboard/events", dash.ListEvents)
	api.GET("/dashboard/export.json", dash.ExportJSON)
	api.GET("/dashboard/export.csv", dash.ExportCSV)
	api.POST("/dashboard/seed", dash.SeedDemoData)
	api.DELETE("/dashboard/data", dash.ClearData)
	api.GET("/share/qrcode", share.GetQRCode)
	api.GET("/share/links", share.GetLinks)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		buf = bytes.NewBuffer(data)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return env
}

func TestIntakeFlowEndToEnd(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/intake/drafts", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("start: %d %s", w.Code, w.Body.String())
	}
	var draft models.Draft
	env := decode(t, w, &draft)
	if draft.ID == "" || draft.Mode != models.ModeAnonymous || env.Message != "Intake started." {
		t.Fatalf("unexpected draft: %+v %+v", draft, env)
	}
	base := "/api/v1/intake/drafts/" + draft.ID

	w = do(t, r, http.MethodPut, base, map[string]string{"issueType": "Academic", "urgency": "high", "message": "<i>help</i>"})
	if w.Code != http.StatusOK {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}
	decode(t, w, &draft)
	if draft.Message != "help" {
		t.Errorf("message not sanitized: %q", draft.Message)
	}

	w = do(t, r, http.MethodPut, base+"/consent", map[string]string{"consentLevel": "immediate"})
	if w.Code != http.StatusOK {
		t.Fatalf("consent: %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPost, base+"/submit?lang=zh", map[string]string{"helpType": "appointment"})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: %d %s", w.Code, w.Body.String())
	}
	var result services.SubmitResult
	env = decode(t, w, &result)
	if env.Message != "您的请求已提交。" {
		t.Errorf("expected zh message, got %q", env.Message)
	}
	if result.NextRoute != "/appointment" || !result.Submission.CrisisFlag || result.Submission.ResponsePref != models.ResponseAppointment {
		t.Errorf("unexpected result: %+v", result)
	}

	w = do(t, r, http.MethodGet, base, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("draft should be gone after submit, got %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/v1/dashboard/events", nil)
	var events []models.EventLog
	decode(t, w, &events)
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3 (start, consent, submitted)", len(events))
	}
	if events[0].Type != models.EventStartAnonymous || events[1].Type != models.EventSetConsent || events[2].Type != models.EventSubmitted {
		t.Errorf("unexpected event order: %+v", events)
	}
}

func TestIntakeValidation(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/intake/drafts", map[string]string{"mode": "loud"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid mode: %d", w.Code)
	}
	w = do(t, r, http.MethodPost, "/api/v1/intake/drafts", map[string]string{"mode": "named"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("named without display name: %d", w.Code)
	}
	w = do(t, r, http.MethodPost, "/api/v1/intake/drafts", map[string]string{"mode": "named", "displayName": "   "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("blank display name: %d", w.Code)
	}
	var blank struct {
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &blank); err != nil || blank.Details["displayName"] != "notblank" {
		t.Errorf("blank display name details: %s", w.Body.String())
	}
	w = do(t, r, http.MethodPut, "/api/v1/intake/drafts/missing/consent", map[string]string{"consentLevel": "maybe"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid consent: %d", w.Code)
	}
	w = do(t, r, http.MethodPut, "/api/v1/intake/drafts/missing/consent", map[string]string{"consentLevel": "none"})
	if w.Code != http.StatusNotFound {
		t.Errorf("missing draft: %d", w.Code)
	}
	w = do(t, r, http.MethodPost, "/api/v1/intake/drafts/missing/submit", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing help type: %d", w.Code)
	}
	w = do(t, r, http.MethodDelete, "/api/v1/intake/drafts/missing", nil)
	if w.Code != http.StatusOK {
		t.Errorf("reset missing draft: %d", w.Code)
	}
}

func TestDashboardListFlagRespond(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/dashboard/submissions", nil)
	env := decode(t, w, nil)
	if w.Code != http.StatusOK || env.Message != "No submissions yet. Try seeding demo data." || string(env.Data) != "[]" {
		t.Fatalf("empty list: %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/api/v1/dashboard/seed", nil, "Accept-Language", "zh-CN,zh;q=0.9")
	env = decode(t, w, nil)
	if w.Code != http.StatusCreated || env.Message != "已生成3个示例提交。" {
		t.Fatalf("seed: %d %s", w.Code, w.Body.String())
	}

	var rows []models.Submission
	w = do(t, r, http.MethodGet, "/api/v1/dashboard/submissions?sort=urgency", nil)
	decode(t, w, &rows)
	if len(rows) != 3 || rows[0].Urgency != models.UrgencyHigh || rows[2].Urgency != models.UrgencyLow {
		t.Fatalf("urgency sort: %+v", rows)
	}

	w = do(t, r, http.MethodGet, "/api/v1/dashboard/submissions?search=FRIEND", nil)
	decode(t, w, &rows)
	if len(rows) != 1 || rows[0].IssueType != "Family/peers" {
		t.Fatalf("search: %+v", rows)
	}

	w = do(t, r, http.MethodGet, "/api/v1/dashboard/submissions?urgency=extreme", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid urgency filter: %d", w.Code)
	}

	id := rows[0].ID
	w = do(t, r, http.MethodPost, "/api/v1/dashboard/submissions/"+id+"/flag", nil)
	var sub models.Submission
	env = decode(t, w, &sub)
	if w.Code != http.StatusOK || sub.Status != models.StatusFlagged || env.Message != "Case flagged." {
		t.Fatalf("flag: %d %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodPost, "/api/v1/dashboard/submissions/"+id+"/flag", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("second flag: %d", w.Code)
	}
	w = do(t, r, http.MethodPost, "/api/v1/dashboard/submissions/"+id+"/respond", nil)
	decode(t, w, &sub)
	if w.Code != http.StatusOK || sub.Status != models.StatusResponded {
		t.Fatalf("respond: %d %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodPost, "/api/v1/dashboard/submissions/ghost/respond", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unknown id should be a no-op: %d", w.Code)
	}

	var summary struct {
		Total    int            `json:"total"`
		Crisis   int            `json:"crisis"`
		ByStatus map[string]int `json:"byStatus"`
	}
	w = do(t, r, http.MethodGet, "/api/v1/dashboard/summary", nil)
	decode(t, w, &summary)
	if summary.Total != 3 || summary.Crisis != 1 || summary.ByStatus["responded"] != 1 || summary.ByStatus["new"] != 2 {
		t.Fatalf("summary: %+v", summary)
	}
}

func TestDashboardExportAndClear(t *testing.T) {
	r := setupRouter(t)
	do(t, r, http.MethodPost, "/api/v1/dashboard/seed", nil)

	w := do(t, r, http.MethodGet, "/api/v1/dashboard/export.csv?consent=none", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("csv: %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="submissions.csv"` {
		t.Errorf("csv disposition = %q", got)
	}
	lines := strings.Split(w.Body.String(), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "id,timestamp,mode,student_initiated,") {
		t.Fatalf("unexpected csv: %q", w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/api/v1/dashboard/export.json?sort=oldest", nil)
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="submissions.json"` {
		t.Errorf("json disposition = %q", got)
	}
	var rows []models.Submission
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil || len(rows) != 3 {
		t.Fatalf("json export: %v, %d rows", err, len(rows))
	}
	if rows[0].Timestamp > rows[2].Timestamp {
		t.Errorf("oldest sort not applied")
	}

	w = do(t, r, http.MethodDelete, "/api/v1/dashboard/data", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("clear: %d", w.Code)
	}
	w = do(t, r, http.MethodGet, "/api/v1/dashboard/export.json", nil)
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("export after clear = %q", w.Body.String())
	}
}

func TestShareEndpoints(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/share/qrcode?size=128", nil)
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("png: %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")) {
		t.Errorf("body is not a png")
	}

	w = do(t, r, http.MethodGet, "/api/v1/share/qrcode?format=dataurl&url=https://example.edu/intake", nil)
	var qr QRCodeData
	decode(t, w, &qr)
	if qr.URL != "https://example.edu/intake" || qr.Size != 512 || !strings.HasPrefix(qr.DataURL, "data:image/png;base64,") {
		t.Fatalf("dataurl: %+v", qr)
	}

	w = do(t, r, http.MethodGet, "/api/v1/share/qrcode?url=ftp://example.edu", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("ftp url: %d", w.Code)
	}
	w = do(t, r, http.MethodGet, "/api/v1/share/qrcode?size=10", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("tiny size: %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/v1/share/links", nil)
	var links EntryLinks
	decode(t, w, &links)
	if links.Intake != "http://localhost:5173/intake" || links.Dashboard != "http://localhost:5173/dashboard" {
		t.Fatalf("links: %+v", links)
	}

	w = do(t, r, http.MethodGet, "/api/v1/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("healthz: %d", w.Code)
	}
}
