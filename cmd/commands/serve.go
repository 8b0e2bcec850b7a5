package commands

import (
	"github.com/spf13/cobra"

	"github.com/formline/formline-terminal/internal/cli"
	"github.com/formline/formline-terminal/pkg/api"
)

var serveAddr string

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the form store over HTTP",
		Long: `Start a JSON REST server exposing forms and submissions.

Routes:
  GET    /api/forms
  POST   /api/forms
  GET    /api/forms/{id}
  PUT    /api/forms/{id}
  DELETE /api/forms/{id}
  GET    /api/forms/{id}/submissions
  POST   /api/forms/{id}/submissions

Examples:
  # Serve on the default port
  formline serve

  # Serve on a custom address
  formline serve --addr :9000`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runServe,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", ":8787", "Address to listen on")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	cli.PrintInfo("Serving forms API on %s", serveAddr)
	return api.NewServer(st).ListenAndServe(serveAddr)
}
