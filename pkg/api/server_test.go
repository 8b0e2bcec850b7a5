package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/formline/formline-terminal/pkg/models"
	"github.com/formline/formline-terminal/pkg/store"
)

func newTestServer(t *testing.T) (*Server, store.Store) {
	t.Helper()
	st := store.NewJSONStore(filepath.Join(t.TempDir(), store.FormlineDir), &store.SeqIDSource{})
	return NewServer(st), st
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndListForms(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/forms", models.FormDraft{
		Title: "Contact",
		Fields: []models.Field{
			{ID: "text-1", Type: models.FieldText, Label: "Name", Order: 0},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created models.Form
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if created.ID == "" || created.Title != "Contact" {
		t.Errorf("Unexpected created form: %+v", created)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/forms", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var listed struct {
		Forms []models.Form `json:"forms"`
		Count int           `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if listed.Count != 1 || len(listed.Forms) != 1 {
		t.Errorf("Expected one form, got %+v", listed)
	}
}

func TestCreateFormRequiresTitle(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/forms", models.FormDraft{Title: "  "})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestGetUpdateDeleteForm(t *testing.T) {
	srv, st := newTestServer(t)
	form, err := st.CreateForm(models.FormDraft{Title: "Contact"})
	if err != nil {
		t.Fatalf("CreateForm failed: %v", err)
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/forms/"+form.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPut, "/api/forms/"+form.ID, models.FormDraft{Title: "Support"})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated models.Form
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if updated.Title != "Support" {
		t.Errorf("Expected updated title, got %q", updated.Title)
	}

	rec = doJSON(t, srv, http.MethodDelete, "/api/forms/"+form.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodGet, "/api/forms/"+form.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", rec.Code)
	}
}

func TestMissingFormIs404(t *testing.T) {
	srv, _ := newTestServer(t)

	paths := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/forms/missing", nil},
		{http.MethodPut, "/api/forms/missing", models.FormDraft{Title: "X"}},
		{http.MethodDelete, "/api/forms/missing", nil},
		{http.MethodGet, "/api/forms/missing/submissions", nil},
	}
	for _, tt := range paths {
		rec := doJSON(t, srv, tt.method, tt.path, tt.body)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s %s: expected 404, got %d", tt.method, tt.path, rec.Code)
		}
	}
}

func TestSubmissionRoutes(t *testing.T) {
	srv, st := newTestServer(t)
	form, err := st.CreateForm(models.FormDraft{Title: "Contact"})
	if err != nil {
		t.Fatalf("CreateForm failed: %v", err)
	}

	rec := doJSON(t, srv, http.MethodPost, "/api/forms/"+form.ID+"/submissions",
		map[string]any{"data": models.Answers{"text-1": "Ada"}})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var sub models.Submission
	if err := json.Unmarshal(rec.Body.Bytes(), &sub); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if sub.FormID != form.ID || sub.Answers["text-1"] != "Ada" {
		t.Errorf("Unexpected submission: %+v", sub)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/forms/"+form.ID+"/submissions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var listed struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if listed.Count != 1 {
		t.Errorf("Expected one submission, got %d", listed.Count)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPatch, "/api/forms", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow == "" {
		t.Error("Expected Allow header")
	}
}
