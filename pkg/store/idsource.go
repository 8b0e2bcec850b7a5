package store

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// IDSource generates identifiers for newly stored entities. It is injected
// into stores so tests can supply a deterministic source.
type IDSource interface {
	NewID(prefix string) string
}

// TimeIDSource generates ids of the form "<prefix>-<unix millis>-<rand>".
// Two ids generated within the same millisecond can collide on the random
// suffix; this matches the historical format and is accepted for a
// single-user tool.
type TimeIDSource struct{}

func (TimeIDSource) NewID(prefix string) string {
	return fmt.Sprintf("%s-%d-%05x", prefix, time.Now().UnixMilli(), rand.Intn(1<<20))
}

// UUIDSource generates "<prefix>-<uuid>" ids. Selected via the id_format
// setting for users who care about the millisecond-collision window.
type UUIDSource struct{}

func (UUIDSource) NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// SeqIDSource is a deterministic counter-based source for tests.
type SeqIDSource struct {
	n int
}

func (s *SeqIDSource) NewID(prefix string) string {
	s.n++
	return fmt.Sprintf("%s-%d", prefix, s.n)
}

// NewIDSource returns the source matching an id_format setting value.
func NewIDSource(format string) IDSource {
	if format == "uuid" {
		return UUIDSource{}
	}
	return TimeIDSource{}
}
