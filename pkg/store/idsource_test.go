package store

import (
	"regexp"
	"strings"
	"testing"
)

func TestTimeIDSourceFormat(t *testing.T) {
	id := TimeIDSource{}.NewID("form")

	pattern := regexp.MustCompile(`^form-\d+-[0-9a-f]{5}$`)
	if !pattern.MatchString(id) {
		t.Errorf("Unexpected id format: %q", id)
	}
}

func TestUUIDSourceFormat(t *testing.T) {
	id := UUIDSource{}.NewID("submission")

	if !strings.HasPrefix(id, "submission-") {
		t.Errorf("Expected prefix, got %q", id)
	}
	second := UUIDSource{}.NewID("submission")
	if id == second {
		t.Error("Expected distinct ids")
	}
}

func TestSeqIDSource(t *testing.T) {
	ids := &SeqIDSource{}

	if got := ids.NewID("form"); got != "form-1" {
		t.Errorf("Expected form-1, got %q", got)
	}
	if got := ids.NewID("submission"); got != "submission-2" {
		t.Errorf("Expected submission-2, got %q", got)
	}
}

func TestNewIDSourceSelection(t *testing.T) {
	if _, ok := NewIDSource("uuid").(UUIDSource); !ok {
		t.Error("Expected UUIDSource for uuid format")
	}
	if _, ok := NewIDSource("timestamp").(TimeIDSource); !ok {
		t.Error("Expected TimeIDSource for timestamp format")
	}
	if _, ok := NewIDSource("").(TimeIDSource); !ok {
		t.Error("Expected TimeIDSource for unknown format")
	}
}
