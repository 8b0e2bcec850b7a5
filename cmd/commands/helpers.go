package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/formline/formline-terminal/pkg/store"
)

// requireProject is a PreRunE guard: every data command needs an
// initialized .formline directory.
func requireProject(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(store.FormlineDir); os.IsNotExist(err) {
		return fmt.Errorf("no .formline directory found. Run 'formline init' first")
	}
	return nil
}

// openStore reads project settings and opens the configured backend.
func openStore() (store.Store, error) {
	settings, err := store.ReadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	st, err := store.Open(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, nil
}
