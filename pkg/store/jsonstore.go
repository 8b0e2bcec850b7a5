package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/formline/formline-terminal/pkg/models"
)

const (
	FormlineDir     = ".formline"
	FormsFile       = "forms.json"
	SubmissionsFile = "submissions.json"
)

// JSONStore keeps forms and submissions in two flat JSON files under the
// project directory, reading and rewriting the whole collection on every
// operation. Fine for the single-session workloads this tool serves.
type JSONStore struct {
	dir string
	ids IDSource
}

// NewJSONStore returns a store rooted at dir. An empty dir means the
// default project directory in the current working directory.
func NewJSONStore(dir string, ids IDSource) *JSONStore {
	if dir == "" {
		dir = FormlineDir
	}
	if ids == nil {
		ids = TimeIDSource{}
	}
	return &JSONStore{dir: dir, ids: ids}
}

// InitProjectStructure creates the project directory and empty collections.
func InitProjectStructure() error {
	if err := os.MkdirAll(FormlineDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", FormlineDir, err)
	}
	for _, name := range []string{FormsFile, SubmissionsFile} {
		path := filepath.Join(FormlineDir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte("[]\n"), 0644); err != nil {
				return fmt.Errorf("failed to create %s: %w", name, err)
			}
		}
	}
	return nil
}

func (s *JSONStore) formsPath() string       { return filepath.Join(s.dir, FormsFile) }
func (s *JSONStore) submissionsPath() string { return filepath.Join(s.dir, SubmissionsFile) }

func (s *JSONStore) readForms() ([]models.Form, error) {
	var forms []models.Form
	if err := readJSON(s.formsPath(), &forms); err != nil {
		return nil, fmt.Errorf("failed to read forms: %w", err)
	}
	return forms, nil
}

func (s *JSONStore) writeForms(forms []models.Form) error {
	if err := writeJSON(s.formsPath(), forms); err != nil {
		return fmt.Errorf("failed to write forms: %w", err)
	}
	return nil
}

func (s *JSONStore) readSubmissions() ([]models.Submission, error) {
	var subs []models.Submission
	if err := readJSON(s.submissionsPath(), &subs); err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}
	return subs, nil
}

func (s *JSONStore) ListForms() ([]models.Form, error) {
	return s.readForms()
}

func (s *JSONStore) GetForm(id string) (*models.Form, error) {
	forms, err := s.readForms()
	if err != nil {
		return nil, err
	}
	for i := range forms {
		if forms[i].ID == id {
			f := forms[i].Clone()
			return &f, nil
		}
	}
	return nil, ErrNotFound
}

func (s *JSONStore) CreateForm(draft models.FormDraft) (*models.Form, error) {
	forms, err := s.readForms()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	form := models.Form{
		ID:          s.ids.NewID("form"),
		Title:       draft.Title,
		Description: draft.Description,
		Fields:      models.CloneFields(draft.Fields),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	forms = append(forms, form)
	if err := s.writeForms(forms); err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *JSONStore) UpdateForm(id string, draft models.FormDraft) (*models.Form, error) {
	forms, err := s.readForms()
	if err != nil {
		return nil, err
	}
	for i := range forms {
		if forms[i].ID != id {
			continue
		}
		forms[i].Title = draft.Title
		forms[i].Description = draft.Description
		forms[i].Fields = models.CloneFields(draft.Fields)
		forms[i].UpdatedAt = time.Now().UTC()
		if err := s.writeForms(forms); err != nil {
			return nil, err
		}
		f := forms[i].Clone()
		return &f, nil
	}
	return nil, ErrNotFound
}

func (s *JSONStore) DeleteForm(id string) error {
	forms, err := s.readForms()
	if err != nil {
		return err
	}
	for i := range forms {
		if forms[i].ID == id {
			forms = append(forms[:i], forms[i+1:]...)
			return s.writeForms(forms)
		}
	}
	return ErrNotFound
}

func (s *JSONStore) CreateSubmission(formID string, answers models.Answers) (*models.Submission, error) {
	subs, err := s.readSubmissions()
	if err != nil {
		return nil, err
	}
	sub := models.Submission{
		ID:          s.ids.NewID("submission"),
		FormID:      formID,
		Answers:     answers,
		SubmittedAt: time.Now().UTC(),
	}
	subs = append(subs, sub)
	if err := writeJSON(s.submissionsPath(), subs); err != nil {
		return nil, fmt.Errorf("failed to write submissions: %w", err)
	}
	return &sub, nil
}

func (s *JSONStore) ListSubmissions(formID string) ([]models.Submission, error) {
	subs, err := s.readSubmissions()
	if err != nil {
		return nil, err
	}
	var out []models.Submission
	for _, sub := range subs {
		if sub.FormID == formID {
			out = append(out, sub)
		}
	}
	return out, nil
}

// readJSON decodes a JSON collection file. A missing file reads as empty.
func readJSON(path string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(content, v)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(content, '\n'), 0644)
}
