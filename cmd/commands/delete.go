package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formline/formline-terminal/internal/cli"
)

var deleteForce bool

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <form-id>",
		Short: "Delete a form",
		Long: `Permanently delete a form.

This action cannot be undone. Submissions already recorded for the
form are kept.

Examples:
  # Delete a form (with confirmation)
  formline delete contact-1712345678901-0a1b2

  # Force delete without confirmation
  formline delete contact-1712345678901-0a1b2 --force`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runDelete,
	}

	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Force deletion without confirmation")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	form, err := st.GetForm(args[0])
	if err != nil {
		return fmt.Errorf("failed to get form: %w", err)
	}

	if !deleteForce {
		confirmed, err := cli.Confirm(fmt.Sprintf("Delete form '%s'?", form.Title), false)
		if err != nil {
			return err
		}
		if !confirmed {
			cli.PrintInfo("Deletion cancelled")
			return nil
		}
	}

	if err := st.DeleteForm(form.ID); err != nil {
		return fmt.Errorf("failed to delete form: %w", err)
	}

	cli.PrintSuccess("Deleted form: %s", form.Title)
	return nil
}
