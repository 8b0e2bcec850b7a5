// Package designer holds the in-memory state of a form being edited: the
// working copy of the form, the operations the canvas performs on it, and
// the drag coordinator that turns pointer gestures into those operations.
package designer

import (
	"fmt"
	"strings"

	"github.com/formline/formline-terminal/pkg/models"
	"github.com/formline/formline-terminal/pkg/registry"
	"github.com/formline/formline-terminal/pkg/store"
)

// Session is the single source of truth for the form under edit. It holds
// a working copy; nothing touches the store until Save.
type Session struct {
	Form models.Form

	ids   store.IDSource
	saved models.Form // last persisted state, for dirty tracking
}

// NewSession starts a session for a brand-new form.
func NewSession(ids store.IDSource) *Session {
	if ids == nil {
		ids = store.TimeIDSource{}
	}
	form := models.Form{Title: "New Form"}
	return &Session{Form: form, ids: ids, saved: form.Clone()}
}

// LoadSession starts a session over an existing form definition.
func LoadSession(form models.Form, ids store.IDSource) *Session {
	if ids == nil {
		ids = store.TimeIDSource{}
	}
	return &Session{Form: form.Clone(), ids: ids, saved: form.Clone()}
}

// InsertField appends a new field of the given type, built from registry
// defaults, and returns it. Order is the current field count, so palette
// insertion always lands at the end.
func (s *Session) InsertField(t models.FieldType) models.Field {
	id := s.ids.NewID(string(t))
	field := registry.NewField(t, id, len(s.Form.Fields))
	s.Form.Fields = append(s.Form.Fields, field)
	return field
}

// Reorder removes the field movedID and reinserts it at the position
// currently held by targetID, then renumbers every field to its list
// position. Moving a field onto itself, or naming an unknown id, is a
// no-op and leaves all order values untouched.
func (s *Session) Reorder(movedID, targetID string) {
	if movedID == targetID {
		return
	}
	from := s.indexOf(movedID)
	to := s.indexOf(targetID)
	if from < 0 || to < 0 {
		return
	}

	moved := s.Form.Fields[from]
	s.Form.Fields = append(s.Form.Fields[:from], s.Form.Fields[from+1:]...)
	s.Form.Fields = append(s.Form.Fields[:to], append([]models.Field{moved}, s.Form.Fields[to:]...)...)

	for i := range s.Form.Fields {
		s.Form.Fields[i].Order = i
	}
}

// UpdateField applies a patch to the field with the given id, preserving
// its position, id, type and order. Unknown ids are ignored: the editor
// only ever commits against fields currently in the list.
func (s *Session) UpdateField(id string, patch models.FieldPatch) {
	if i := s.indexOf(id); i >= 0 {
		s.Form.Fields[i] = patch.Apply(s.Form.Fields[i])
	}
}

// DeleteField removes the field with the given id. Remaining order values
// are left with a gap; Save renumbers by list position, which is the one
// authoritative restoration of the dense ranking.
func (s *Session) DeleteField(id string) {
	if i := s.indexOf(id); i >= 0 {
		s.Form.Fields = append(s.Form.Fields[:i], s.Form.Fields[i+1:]...)
	}
}

// Field returns the field with the given id, or false.
func (s *Session) Field(id string) (models.Field, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.Form.Fields[i].Clone(), true
	}
	return models.Field{}, false
}

// Dirty reports whether the working copy differs from the last saved state.
func (s *Session) Dirty() bool {
	if s.Form.Title != s.saved.Title || s.Form.Description != s.saved.Description {
		return true
	}
	if len(s.Form.Fields) != len(s.saved.Fields) {
		return true
	}
	for i, f := range s.Form.Fields {
		g := s.saved.Fields[i]
		if f.ID != g.ID || f.Type != g.Type || f.Label != g.Label ||
			f.Placeholder != g.Placeholder || f.Required != g.Required {
			return true
		}
		if len(f.Options) != len(g.Options) {
			return true
		}
		for j := range f.Options {
			if f.Options[j] != g.Options[j] {
				return true
			}
		}
	}
	return false
}

// Save renumbers all fields to their list position and persists the form:
// create when the working form has no id yet, update otherwise. On success
// the session adopts the stored form (id and timestamps included).
func (s *Session) Save(st store.Store) (*models.Form, error) {
	if strings.TrimSpace(s.Form.Title) == "" {
		return nil, fmt.Errorf("form title is required")
	}

	for i := range s.Form.Fields {
		s.Form.Fields[i].Order = i
	}

	draft := models.FormDraft{
		Title:       strings.TrimSpace(s.Form.Title),
		Description: s.Form.Description,
		Fields:      models.CloneFields(s.Form.Fields),
	}
	if draft.Fields == nil {
		draft.Fields = []models.Field{}
	}

	var saved *models.Form
	var err error
	if s.Form.ID == "" {
		saved, err = st.CreateForm(draft)
	} else {
		saved, err = st.UpdateForm(s.Form.ID, draft)
	}
	if err != nil {
		return nil, err
	}

	s.Form = saved.Clone()
	s.saved = saved.Clone()
	return saved, nil
}

func (s *Session) indexOf(id string) int {
	for i := range s.Form.Fields {
		if s.Form.Fields[i].ID == id {
			return i
		}
	}
	return -1
}
