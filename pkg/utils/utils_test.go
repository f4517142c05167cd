package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type sample struct {
	Name string `json:"name" binding:"notblank"`
	Sort string `json:"sort" binding:"omitempty,oneof=newest oldest"`
}

func TestValidationDetails(t *testing.T) {
	if err := RegisterValidators(); err != nil {
		t.Fatalf("RegisterValidators: %v", err)
	}
	err := binding.Validator.ValidateStruct(&sample{Name: "   ", Sort: "random"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	details, ok := ValidationDetails(err).(map[string]string)
	if !ok {
		t.Fatalf("expected map details, got %T", ValidationDetails(err))
	}
	if details["name"] != "notblank" || details["sort"] != "oneof=newest oldest" {
		t.Errorf("unexpected details: %v", details)
	}

	if got := ValidationDetails(errors.New("bad json")); got != "bad json" {
		t.Errorf("plain error should pass through, got %v", got)
	}
}

func TestRespondHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondSuccess(c, http.StatusCreated, map[string]string{"id": "x"}, "ok")
	var ok SuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &ok); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusCreated || ok.Status != "success" || ok.Message != "ok" {
		t.Errorf("unexpected success response: %d %+v", w.Code, ok)
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	RespondConflictError(c, "conflict", "detail")
	var apiErr APIErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &apiErr); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusConflict || apiErr.Error != "conflict" || apiErr.Details != "detail" {
		t.Errorf("unexpected error response: %d %+v", w.Code, apiErr)
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	RespondAttachment(c, "submissions.csv", "text/csv; charset=utf-8", []byte("id"))
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="submissions.csv"` {
		t.Errorf("Content-Disposition = %q", got)
	}
}
