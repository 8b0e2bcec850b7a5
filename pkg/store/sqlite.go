package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/formline/formline-terminal/pkg/models"
)

const DBFile = "formline.db"

// SQLiteStore keeps forms and submissions in a single sqlite database.
// Field lists and answer maps are stored as JSON columns; the store never
// queries into them, so there is nothing to normalize.
type SQLiteStore struct {
	db  *sqlx.DB
	ids IDSource
}

type formRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	FieldsJSON  string    `db:"fields_json"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type submissionRow struct {
	ID          string    `db:"id"`
	FormID      string    `db:"form_id"`
	AnswersJSON string    `db:"answers_json"`
	SubmittedAt time.Time `db:"submitted_at"`
}

// OpenSQLiteStore opens (and if needed initializes) the database at path.
func OpenSQLiteStore(path string, ids IDSource) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if ids == nil {
		ids = TimeIDSource{}
	}
	s := &SQLiteStore{db: db, ids: ids}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) init() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS forms (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			fields_json TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS submissions (
			id TEXT PRIMARY KEY,
			form_id TEXT NOT NULL,
			answers_json TEXT NOT NULL,
			submitted_at TIMESTAMP NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_form ON submissions(form_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (r formRow) toForm() (models.Form, error) {
	var fields []models.Field
	if err := json.Unmarshal([]byte(r.FieldsJSON), &fields); err != nil {
		return models.Form{}, fmt.Errorf("failed to decode fields for form %s: %w", r.ID, err)
	}
	return models.Form{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Fields:      fields,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

func (s *SQLiteStore) ListForms() ([]models.Form, error) {
	var rows []formRow
	if err := s.db.Select(&rows, `SELECT * FROM forms ORDER BY created_at`); err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}
	forms := make([]models.Form, 0, len(rows))
	for _, r := range rows {
		f, err := r.toForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	return forms, nil
}

func (s *SQLiteStore) GetForm(id string) (*models.Form, error) {
	var row formRow
	err := s.db.Get(&row, `SELECT * FROM forms WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get form %s: %w", id, err)
	}
	f, err := row.toForm()
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *SQLiteStore) CreateForm(draft models.FormDraft) (*models.Form, error) {
	fields := draft.Fields
	if fields == nil {
		fields = []models.Field{}
	}
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fields: %w", err)
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
	_, err = s.db.Exec(
		`INSERT INTO forms (id, title, description, fields_json, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		form.ID, form.Title, form.Description, string(fieldsJSON), form.CreatedAt, form.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create form: %w", err)
	}
	return &form, nil
}

func (s *SQLiteStore) UpdateForm(id string, draft models.FormDraft) (*models.Form, error) {
	existing, err := s.GetForm(id)
	if err != nil {
		return nil, err
	}
	fields := draft.Fields
	if fields == nil {
		fields = []models.Field{}
	}
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fields: %w", err)
	}
	now := time.Now().UTC()
	_, err = s.db.Exec(
		`UPDATE forms SET title = ?, description = ?, fields_json = ?, updated_at = ? WHERE id = ?`,
		draft.Title, draft.Description, string(fieldsJSON), now, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update form %s: %w", id, err)
	}
	existing.Title = draft.Title
	existing.Description = draft.Description
	existing.Fields = models.CloneFields(draft.Fields)
	existing.UpdatedAt = now
	return existing, nil
}

func (s *SQLiteStore) DeleteForm(id string) error {
	res, err := s.db.Exec(`DELETE FROM forms WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete form %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) CreateSubmission(formID string, answers models.Answers) (*models.Submission, error) {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}
	sub := models.Submission{
		ID:          s.ids.NewID("submission"),
		FormID:      formID,
		Answers:     answers,
		SubmittedAt: time.Now().UTC(),
	}
	_, err = s.db.Exec(
		`INSERT INTO submissions (id, form_id, answers_json, submitted_at) VALUES (?, ?, ?, ?)`,
		sub.ID, sub.FormID, string(answersJSON), sub.SubmittedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	return &sub, nil
}

func (s *SQLiteStore) ListSubmissions(formID string) ([]models.Submission, error) {
	var rows []submissionRow
	err := s.db.Select(&rows, `SELECT * FROM submissions WHERE form_id = ? ORDER BY submitted_at`, formID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	subs := make([]models.Submission, 0, len(rows))
	for _, r := range rows {
		var answers models.Answers
		if err := json.Unmarshal([]byte(r.AnswersJSON), &answers); err != nil {
			return nil, fmt.Errorf("failed to decode answers for submission %s: %w", r.ID, err)
		}
		subs = append(subs, models.Submission{
			ID:          r.ID,
			FormID:      r.FormID,
			Answers:     answers,
			SubmittedAt: r.SubmittedAt,
		})
	}
	return subs, nil
}
