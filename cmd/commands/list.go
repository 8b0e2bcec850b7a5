package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/formline/formline-terminal/internal/cli"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Forms []ListItem `json:"forms" yaml:"forms"`
	Count int        `json:"count" yaml:"count"`
}

// ListItem represents a single form in the list
type ListItem struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      int    `json:"fields" yaml:"fields"`
	Updated     string `json:"updated" yaml:"updated"`
}

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List forms in the current project",
		Long: `List all forms stored in the current project.

Examples:
  # List forms as a table
  formline list

  # List forms as JSON
  formline list -o json`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	forms, err := st.ListForms()
	if err != nil {
		return fmt.Errorf("failed to list forms: %w", err)
	}

	outputFormat, _ := cmd.Flags().GetString("output")

	result := ListResult{Count: len(forms)}
	for _, f := range forms {
		result.Forms = append(result.Forms, ListItem{
			ID:          f.ID,
			Title:       f.Title,
			Description: f.Description,
			Fields:      len(f.Fields),
			Updated:     cli.FormatTime(f.UpdatedAt),
		})
	}

	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, result)
	}

	if len(forms) == 0 {
		cli.PrintInfo("No forms found. Run 'formline' and press 'n' to create one.")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("ID", "TITLE", "FIELDS", "UPDATED")
	for _, item := range result.Forms {
		table.Row(
			item.ID,
			cli.TruncateString(item.Title, 40),
			fmt.Sprintf("%d", item.Fields),
			item.Updated,
		)
	}
	table.Flush()

	return nil
}
