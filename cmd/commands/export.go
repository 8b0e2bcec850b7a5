package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/formline/formline-terminal/internal/cli"
	"github.com/formline/formline-terminal/pkg/renderer"
)

var exportToFile string

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <form-id>",
		Short: "Export a form to stdout or file",
		Long: `Export a form as a markdown document.

By default the rendered form is written to stdout. You can redirect it
to a file using shell redirection or the --file flag.

Examples:
  # Export to stdout
  formline export contact-1712345678901-0a1b2

  # Export to file using flag
  formline export contact-1712345678901-0a1b2 --file contact.md

  # Export the raw definition as YAML
  formline export contact-1712345678901-0a1b2 -o yaml`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runExport,
	}

	cmd.Flags().StringVar(&exportToFile, "file", "", "Write output to file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	form, err := st.GetForm(args[0])
	if err != nil {
		return fmt.Errorf("failed to get form: %w", err)
	}

	outputFormat, _ := cmd.Flags().GetString("output")

	out := os.Stdout
	if exportToFile != "" {
		f, err := os.Create(exportToFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if outputFormat != string(cli.FormatText) {
		if err := cli.OutputResults(out, outputFormat, form); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, renderer.Markdown(*form))
	}

	if exportToFile != "" {
		cli.PrintSuccess("Exported form to %s", exportToFile)
	}
	return nil
}
