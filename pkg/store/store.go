// Package store is the persistence gateway: CRUD over form definitions and
// append/list over submissions, keyed by opaque string identifiers.
package store

import (
	"errors"

	"github.com/formline/formline-terminal/pkg/models"
)

// ErrNotFound is returned when an operation references an unknown form id.
var ErrNotFound = errors.New("form not found")

// Store is the gateway contract. Implementations assign ids and timestamps;
// callers never set them. CreateSubmission does not verify that the form
// exists; a submission against a deleted form is kept and simply never
// listed from the designer.
type Store interface {
	ListForms() ([]models.Form, error)
	GetForm(id string) (*models.Form, error)
	CreateForm(draft models.FormDraft) (*models.Form, error)
	UpdateForm(id string, draft models.FormDraft) (*models.Form, error)
	DeleteForm(id string) error

	CreateSubmission(formID string, answers models.Answers) (*models.Submission, error)
	ListSubmissions(formID string) ([]models.Submission, error)
}
