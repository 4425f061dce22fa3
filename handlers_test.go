package primarium

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func errorHandlerResponse(t *testing.T, path string, err error) *httptest.ResponseRecorder {
	t.Helper()
	a := &App{Echo: echo.New()}
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	a.httpErrorHandler(err, c)
	return rec
}

func TestErrorHandlerEditorEndpointsAnswerJSON(t *testing.T) {
	rec := errorHandlerResponse(t, "/admin/editor/abc/components",
		echo.NewHTTPError(http.StatusConflict, "component type already present on the page"))

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.Contains(ct, "application/json") {
		t.Fatalf("Content-Type = %q, want JSON", ct)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body.Message == "" {
		t.Error("message field missing from editor error response")
	}
}

func TestErrorHandlerEditorPublishFailureKeepsDetail(t *testing.T) {
	rec := errorHandlerResponse(t, "/admin/editor/abc/publish",
		echo.NewHTTPError(http.StatusBadGateway, "publish webhook returned 500: boom"))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "publish webhook returned 500") {
		t.Errorf("publish failure detail lost: %s", rec.Body.String())
	}
}

func TestErrorHandlerEditorShellGetsHTML(t *testing.T) {
	rec := errorHandlerResponse(t, "/admin/editor/abc/",
		echo.NewHTTPError(http.StatusNotFound, "settlement not found"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<html") {
		t.Error("editor shell errors should render the HTML error page")
	}
}

func TestErrorHandlerAPIEnvelope(t *testing.T) {
	rec := errorHandlerResponse(t, "/api/v1/blog-posts",
		echo.NewHTTPError(http.StatusBadRequest, "settlement parameter is required"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["status"] != "error" {
		t.Errorf("status field = %q, want error", body["status"])
	}
}
