package primarium

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decodeJSONBody(t *testing.T, r *http.Request, v any) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
}

func testSettlement() Settlement {
	return Settlement{ID: "s1", Name: "Florești", Region: "Cluj", Lat: 46.74, Lng: 23.49}
}

func TestBundleName(t *testing.T) {
	got := BundleName(testSettlement())
	if got != "Florești-CLUJ" {
		t.Fatalf("BundleName = %q, want %q", got, "Florești-CLUJ")
	}
}

func TestPublisherCreateSite(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody publishPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		decodeJSONBody(t, r, &gotBody)
		w.Write([]byte("success"))
	}))
	defer srv.Close()

	p := NewPublisher(srv.URL, "")
	files := map[string]string{"index.html": "<html></html>", "styles.css": "body{}", "script.js": ";"}
	if err := p.CreateSite(context.Background(), testSettlement(), files); err != nil {
		t.Fatalf("CreateSite: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotBody.Name != "Florești-CLUJ" {
		t.Errorf("payload name = %q", gotBody.Name)
	}
	if len(gotBody.Files) != 3 || gotBody.Files["index.html"] == "" {
		t.Errorf("payload files = %v", gotBody.Files)
	}
}

func TestPublisherUpdateSiteUsesPatch(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Write([]byte(`{"status":"suuccess"}`))
	}))
	defer srv.Close()

	p := NewPublisher("", srv.URL)
	err := p.UpdateSite(context.Background(), testSettlement(), map[string]string{"index.html": "x"})
	if err != nil {
		t.Fatalf("UpdateSite: %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Errorf("method = %s, want PATCH", gotMethod)
	}
}

func TestPublisherRejectsUnconfirmedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("workflow queued"))
	}))
	defer srv.Close()

	p := NewPublisher(srv.URL, srv.URL)
	err := p.CreateSite(context.Background(), testSettlement(), map[string]string{"index.html": "x"})
	if err == nil {
		t.Fatal("expected error for non-success body")
	}
}

func TestPublisherRejectsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewPublisher(srv.URL, srv.URL)
	err := p.CreateSite(context.Background(), testSettlement(), map[string]string{"index.html": "x"})
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestPublisherUnconfiguredWebhook(t *testing.T) {
	p := NewPublisher("", "")
	if err := p.CreateSite(context.Background(), testSettlement(), nil); err == nil {
		t.Fatal("expected error when webhook URL is empty")
	}
}

func TestIsSuccessBody(t *testing.T) {
	cases := []struct {
		body string
		want bool
	}{
		{"success", true},
		{"suuccess", true},
		{"Success\n", true},
		{`"success"`, true},
		{`{"status":"success"}`, true},
		{`{"status":"suuccess"}`, true},
		{`{"status":"failed"}`, false},
		{"error", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := isSuccessBody([]byte(tc.body)); got != tc.want {
			t.Errorf("isSuccessBody(%q) = %v, want %v", tc.body, got, tc.want)
		}
	}
}
