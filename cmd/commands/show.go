package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/formline/formline-terminal/internal/cli"
	"github.com/formline/formline-terminal/pkg/renderer"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <form-id>",
		Short: "Show a form's definition",
		Long: `Display the full definition of a form, fields in order.

Examples:
  # Show a form as markdown
  formline show contact-1712345678901-0a1b2

  # Show the raw form as JSON
  formline show contact-1712345678901-0a1b2 -o json`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runShow,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	form, err := st.GetForm(args[0])
	if err != nil {
		return fmt.Errorf("failed to get form: %w", err)
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, form)
	}

	fmt.Print(renderer.Markdown(*form))
	return nil
}
