package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/formline/formline-terminal/internal/cli"
	"github.com/formline/formline-terminal/pkg/renderer"
)

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard <form-id>",
		Short: "Copy a form's rendered markdown to clipboard",
		Long: `Copy a form's markdown rendering to the system clipboard,
ready to paste into a document or issue.

Examples:
  # Copy a form to the clipboard
  formline clipboard contact-1712345678901-0a1b2`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip", "copy"},
		PreRunE: requireProject,
		RunE:    runClipboard,
	}

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	form, err := st.GetForm(args[0])
	if err != nil {
		return fmt.Errorf("failed to get form: %w", err)
	}

	if err := clipboard.WriteAll(renderer.Markdown(*form)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("Copied form to clipboard: %s", form.Title)
	return nil
}
