package tui

import (
	"strings"
	"testing"

	"github.com/formline/formline-terminal/pkg/models"
	"github.com/formline/formline-terminal/pkg/store"
)

func newTestFormList(t *testing.T) (*FormListModel, store.Store) {
	t.Helper()
	st := newTestStore(t)
	for _, title := range []string{"Contact", "Survey"} {
		if _, err := st.CreateForm(models.FormDraft{Title: title}); err != nil {
			t.Fatalf("CreateForm failed: %v", err)
		}
	}
	m := NewFormListModel(st)
	m.SetSize(100, 30)
	return m, st
}

func TestFormListLoadsForms(t *testing.T) {
	m, _ := newTestFormList(t)

	if len(m.forms) != 2 {
		t.Fatalf("Expected 2 forms, got %d", len(m.forms))
	}
	view := m.View()
	if !strings.Contains(view, "Contact") || !strings.Contains(view, "Survey") {
		t.Error("Expected both forms in the view")
	}
}

func TestFormListNewFormSwitchesToDesigner(t *testing.T) {
	m, _ := newTestFormList(t)

	_, cmd := m.Update(keyMsg("n"))
	if cmd == nil {
		t.Fatal("Expected a view switch command")
	}
	sw, ok := cmd().(SwitchViewMsg)
	if !ok {
		t.Fatalf("Expected SwitchViewMsg, got %T", cmd())
	}
	if sw.view != designerView || sw.formID != "" {
		t.Errorf("Expected new-form designer switch, got %+v", sw)
	}
}

func TestFormListOpensSelectedForm(t *testing.T) {
	m, _ := newTestFormList(t)
	m.Update(keyMsg("down"))

	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("Expected a view switch command")
	}
	sw := cmd().(SwitchViewMsg)
	if sw.view != designerView || sw.formID != m.forms[1].ID {
		t.Errorf("Expected designer switch for second form, got %+v", sw)
	}

	_, cmd = m.Update(keyMsg("f"))
	sw = cmd().(SwitchViewMsg)
	if sw.view != fillView || sw.formID != m.forms[1].ID {
		t.Errorf("Expected fill switch for second form, got %+v", sw)
	}
}

func TestFormListDeleteWithConfirmation(t *testing.T) {
	m, st := newTestFormList(t)
	target := m.forms[0].ID

	m.Update(keyMsg("d"))
	if !m.deleteConfirm.Active() {
		t.Fatal("Expected the delete confirmation dialog")
	}

	_, cmd := m.Update(keyMsg("y"))
	if cmd == nil {
		t.Fatal("Expected a delete command")
	}
	status, ok := cmd().(StatusMsg)
	if !ok || !strings.HasPrefix(string(status), "✓ Deleted form") {
		t.Errorf("Expected delete status, got %v", status)
	}

	if _, err := st.GetForm(target); err == nil {
		t.Error("Expected the form to be deleted")
	}
	if len(m.forms) != 1 {
		t.Errorf("Expected list reloaded, got %d forms", len(m.forms))
	}
}

func TestFormListDeleteDeclined(t *testing.T) {
	m, st := newTestFormList(t)

	m.Update(keyMsg("d"))
	m.Update(keyMsg("n"))

	if m.deleteConfirm.Active() {
		t.Error("Expected dialog dismissed")
	}
	forms, _ := st.ListForms()
	if len(forms) != 2 {
		t.Errorf("Declined delete must keep the form, got %d", len(forms))
	}
}
