package store

import (
	"os"
	"testing"

	"github.com/formline/formline-terminal/pkg/models"
)

func inTempProject(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	os.Chdir(tempDir)
}

func TestReadSettingsDefaults(t *testing.T) {
	inTempProject(t)

	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if settings.Storage.Backend != "json" {
		t.Errorf("Expected json backend default, got %q", settings.Storage.Backend)
	}
	if settings.Storage.IDFormat != "timestamp" {
		t.Errorf("Expected timestamp id format default, got %q", settings.Storage.IDFormat)
	}
	if settings.Designer.DragThreshold != 2 {
		t.Errorf("Expected drag threshold 2, got %d", settings.Designer.DragThreshold)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	inTempProject(t)

	settings := models.DefaultSettings()
	settings.Storage.Backend = "sqlite"
	settings.UI.ShowPreview = false

	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	got, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if got.Storage.Backend != "sqlite" {
		t.Errorf("Expected sqlite backend, got %q", got.Storage.Backend)
	}
	if got.UI.ShowPreview {
		t.Error("Expected preview disabled")
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	inTempProject(t)

	settings := models.DefaultSettings()
	st, err := Open(settings)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, ok := st.(*JSONStore); !ok {
		t.Errorf("Expected JSONStore, got %T", st)
	}

	settings.Storage.Backend = "sqlite"
	st, err = Open(settings)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	sq, ok := st.(*SQLiteStore)
	if !ok {
		t.Fatalf("Expected SQLiteStore, got %T", st)
	}
	sq.Close()

	settings.Storage.Backend = "redis"
	if _, err := Open(settings); err == nil {
		t.Error("Expected error for unknown backend")
	}
}
