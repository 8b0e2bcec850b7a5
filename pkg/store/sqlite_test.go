package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/formline/formline-terminal/pkg/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := OpenSQLiteStore(filepath.Join(t.TempDir(), DBFile), &SeqIDSource{})
	if err != nil {
		t.Fatalf("Failed to open sqlite store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSQLiteFormRoundTrip(t *testing.T) {
	st := newTestSQLiteStore(t)

	created, err := st.CreateForm(contactDraft())
	if err != nil {
		t.Fatalf("CreateForm failed: %v", err)
	}

	got, err := st.GetForm(created.ID)
	if err != nil {
		t.Fatalf("GetForm failed: %v", err)
	}
	if got.Title != "Contact" || got.Description != "Get in touch" {
		t.Errorf("Round trip lost form attributes: %+v", got)
	}
	if len(got.Fields) != 2 {
		t.Fatalf("Expected 2 fields, got %d", len(got.Fields))
	}
	if got.Fields[1].Label != "Email" || !got.Fields[1].Required {
		t.Errorf("Round trip lost field attributes: %+v", got.Fields[1])
	}
}

func TestSQLiteListFormsInCreationOrder(t *testing.T) {
	st := newTestSQLiteStore(t)

	first, _ := st.CreateForm(models.FormDraft{Title: "First"})
	second, _ := st.CreateForm(models.FormDraft{Title: "Second"})

	forms, err := st.ListForms()
	if err != nil {
		t.Fatalf("ListForms failed: %v", err)
	}
	if len(forms) != 2 {
		t.Fatalf("Expected 2 forms, got %d", len(forms))
	}
	if forms[0].ID != first.ID || forms[1].ID != second.ID {
		t.Error("Forms not listed in creation order")
	}
}

func TestSQLiteUpdateForm(t *testing.T) {
	st := newTestSQLiteStore(t)
	created, err := st.CreateForm(contactDraft())
	if err != nil {
		t.Fatalf("CreateForm failed: %v", err)
	}

	draft := contactDraft()
	draft.Title = "Support"
	updated, err := st.UpdateForm(created.ID, draft)
	if err != nil {
		t.Fatalf("UpdateForm failed: %v", err)
	}
	if updated.Title != "Support" {
		t.Errorf("Expected updated title, got %q", updated.Title)
	}

	if _, err := st.UpdateForm("missing", draft); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteDeleteForm(t *testing.T) {
	st := newTestSQLiteStore(t)
	created, err := st.CreateForm(contactDraft())
	if err != nil {
		t.Fatalf("CreateForm failed: %v", err)
	}

	if err := st.DeleteForm(created.ID); err != nil {
		t.Fatalf("DeleteForm failed: %v", err)
	}
	if _, err := st.GetForm(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected form to be gone, got %v", err)
	}
	if err := st.DeleteForm(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on double delete, got %v", err)
	}
}

func TestSQLiteSubmissions(t *testing.T) {
	st := newTestSQLiteStore(t)
	form, err := st.CreateForm(contactDraft())
	if err != nil {
		t.Fatalf("CreateForm failed: %v", err)
	}

	answers := models.Answers{"text-1": "Ada", "checkbox-1": true}
	sub, err := st.CreateSubmission(form.ID, answers)
	if err != nil {
		t.Fatalf("CreateSubmission failed: %v", err)
	}
	if sub.FormID != form.ID {
		t.Errorf("Expected form id %q, got %q", form.ID, sub.FormID)
	}

	subs, err := st.ListSubmissions(form.ID)
	if err != nil {
		t.Fatalf("ListSubmissions failed: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("Expected 1 submission, got %d", len(subs))
	}
	if subs[0].Answers["text-1"] != "Ada" {
		t.Errorf("Round trip lost answers: %+v", subs[0].Answers)
	}
	if subs[0].Answers["checkbox-1"] != true {
		t.Errorf("Round trip lost boolean answer: %+v", subs[0].Answers)
	}
}
